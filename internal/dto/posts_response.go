package dto

import "github.com/CortexBlog/blog-service/internal/model"

type GetPost struct {
	Post      model.Post `json:"post"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	PlainText string     `json:"plainText"`
}
