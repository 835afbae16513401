package model

import "time"

type Slug struct {
	Current string `json:"current"`
}

// Post is the projection returned by the post queries. Body is only
// populated by the single-post lookup.
type Post struct {
	ID          string        `json:"_id,omitempty"`
	Title       string        `json:"title"`
	Slug        Slug          `json:"slug"`
	PublishedAt *time.Time    `json:"publishedAt,omitempty"`
	Excerpt     string        `json:"excerpt,omitempty"`
	MainImage   *Image        `json:"mainImage,omitempty"`
	Categories  []CategoryRef `json:"categories,omitempty"`
	Author      *AuthorRef    `json:"author,omitempty"`
	Body        []Block       `json:"body,omitempty"`
}

func (p Post) Published() bool {
	return p.PublishedAt != nil
}
