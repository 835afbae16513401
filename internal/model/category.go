package model

type CategoryRef struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Slug        Slug   `json:"slug"`
	Description string `json:"description,omitempty"`
}

// Category carries a post count the store derives from reverse references
// at query time.
type Category struct {
	Title       string `json:"title"`
	Slug        Slug   `json:"slug"`
	Description string `json:"description,omitempty"`
	PostCount   int    `json:"postCount"`
}
