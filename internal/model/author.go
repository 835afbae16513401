package model

type AuthorRef struct {
	Name  string  `json:"name"`
	Slug  Slug    `json:"slug"`
	Bio   []Block `json:"bio,omitempty"`
	Image *Image  `json:"image,omitempty"`
}

type Author struct {
	Name  string  `json:"name"`
	Slug  Slug    `json:"slug"`
	Bio   []Block `json:"bio,omitempty"`
	Image *Image  `json:"image,omitempty"`
}
