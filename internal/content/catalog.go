package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CortexBlog/blog-service/internal/model"
)

const (
	DefaultPageEnd      = 8
	DefaultRelatedLimit = 3
)

type Catalog struct {
	store Store
}

func NewCatalog(store Store) *Catalog {
	return &Catalog{
		store: store,
	}
}

// LatestPosts returns the ten most recently published posts.
func (c *Catalog) LatestPosts(ctx context.Context) ([]model.Post, error) {
	return fetch[[]model.Post](ctx, c.store, Query{
		Name: QueryLatestPosts,
		GROQ: groqLatestPosts,
	})
}

// Post returns the full post, body included, or ErrNotFound.
func (c *Catalog) Post(ctx context.Context, slug string) (*model.Post, error) {
	post, err := fetch[*model.Post](ctx, c.store, Query{
		Name:   QueryPost,
		GROQ:   groqPost,
		Params: map[string]any{"slug": slug},
	})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Posts returns the half-open window [start, end) of published posts,
// newest first, optionally restricted to a category slug.
func (c *Catalog) Posts(ctx context.Context, start, end int, category string) ([]model.Post, error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, start, end)
	}
	return fetch[[]model.Post](ctx, c.store, Query{
		Name: QueryPosts,
		GROQ: groqPosts,
		Params: map[string]any{
			"start":    start,
			"end":      end,
			"category": optional(category),
		},
	})
}

// PostCount counts posts matching the same filter as Posts. The count and a
// page are separate queries and may disagree under concurrent edits.
func (c *Catalog) PostCount(ctx context.Context, category string) (int, error) {
	return fetch[int](ctx, c.store, Query{
		Name:   QueryPostCount,
		GROQ:   groqPostCount,
		Params: map[string]any{"category": optional(category)},
	})
}

func (c *Catalog) Categories(ctx context.Context) ([]model.Category, error) {
	return fetch[[]model.Category](ctx, c.store, Query{
		Name: QueryCategories,
		GROQ: groqCategories,
	})
}

func (c *Catalog) PostsByAuthor(ctx context.Context, authorSlug string) ([]model.Post, error) {
	return fetch[[]model.Post](ctx, c.store, Query{
		Name:   QueryPostsByAuthor,
		GROQ:   groqPostsByAuthor,
		Params: map[string]any{"authorSlug": authorSlug},
	})
}

func (c *Catalog) Author(ctx context.Context, slug string) (*model.Author, error) {
	author, err := fetch[*model.Author](ctx, c.store, Query{
		Name:   QueryAuthor,
		GROQ:   groqAuthor,
		Params: map[string]any{"slug": slug},
	})
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrNotFound
	}
	return author, nil
}

// SearchPosts matches the term anywhere in title or excerpt.
func (c *Catalog) SearchPosts(ctx context.Context, term string) ([]model.Post, error) {
	return fetch[[]model.Post](ctx, c.store, Query{
		Name:   QuerySearchPosts,
		GROQ:   groqSearchPosts,
		Params: map[string]any{"query": "*" + term + "*"},
	})
}

// RelatedPosts returns up to limit posts sharing at least one category id
// with the source post, excluding the source post itself.
func (c *Catalog) RelatedPosts(ctx context.Context, postID string, categoryIDs []string, limit int) ([]model.Post, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	if categoryIDs == nil {
		categoryIDs = []string{}
	}
	return fetch[[]model.Post](ctx, c.store, Query{
		Name: QueryRelatedPosts,
		GROQ: groqRelatedPosts,
		Params: map[string]any{
			"postId":      postID,
			"categoryIds": categoryIDs,
			"limit":       limit,
		},
	})
}

func fetch[T any](ctx context.Context, store Store, q Query) (T, error) {
	var result T

	raw, err := store.Fetch(ctx, q)
	if err != nil {
		return result, fmt.Errorf("%s: %w", q.Name, err)
	}
	if len(raw) == 0 {
		return result, nil
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("%s: decode result: %w", q.Name, err)
	}

	return result, nil
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
