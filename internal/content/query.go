// Package content is the read-only query catalog over the hosted document
// store. Every operation is a typed Query handed to a Store; nothing here
// mutates the store.
package content

import (
	"context"
	"encoding/json"
	"errors"
)

const (
	QueryLatestPosts   = "getLatestPosts"
	QueryPost          = "getPost"
	QueryPosts         = "getPosts"
	QueryPostCount     = "getPostCount"
	QueryCategories    = "getCategories"
	QueryPostsByAuthor = "getPostsByAuthor"
	QueryAuthor        = "getAuthor"
	QuerySearchPosts   = "searchPosts"
	QueryRelatedPosts  = "getRelatedPosts"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrInvalidRange = errors.New("invalid post range")
)

// Query describes one catalog operation: its name, the GROQ text and the
// named parameters bound into it. A nil parameter value is sent as null.
type Query struct {
	Name   string
	GROQ   string
	Params map[string]any
}

// Store executes a Query and returns the raw JSON result.
type Store interface {
	Fetch(ctx context.Context, q Query) (json.RawMessage, error)
}

// StoreFunc adapts a function to Store.
type StoreFunc func(ctx context.Context, q Query) (json.RawMessage, error)

func (f StoreFunc) Fetch(ctx context.Context, q Query) (json.RawMessage, error) {
	return f(ctx, q)
}
