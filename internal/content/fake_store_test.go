package content

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/CortexBlog/blog-service/internal/model"
)

// fakeStore evaluates catalog queries against in-memory fixtures by name.
type fakeStore struct {
	posts      []model.Post
	categories []model.Category
	authors    []model.Author
	queries    []Query
	err        error
}

func (f *fakeStore) Fetch(_ context.Context, q Query) (json.RawMessage, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}

	switch q.Name {
	case QueryLatestPosts:
		return json.Marshal(window(f.published(nil), 0, 10))
	case QueryPost:
		slug := q.Params["slug"].(string)
		for _, p := range f.posts {
			if p.Slug.Current == slug {
				return json.Marshal(p)
			}
		}
		return json.RawMessage("null"), nil
	case QueryPosts:
		posts := f.published(inCategory(q.Params["category"]))
		return json.Marshal(window(posts, q.Params["start"].(int), q.Params["end"].(int)))
	case QueryPostCount:
		return json.Marshal(len(f.published(inCategory(q.Params["category"]))))
	case QueryCategories:
		return json.Marshal(f.categories)
	case QueryPostsByAuthor:
		slug := q.Params["authorSlug"].(string)
		return json.Marshal(f.published(func(p model.Post) bool {
			return p.Author != nil && p.Author.Slug.Current == slug
		}))
	case QueryAuthor:
		slug := q.Params["slug"].(string)
		for _, a := range f.authors {
			if a.Slug.Current == slug {
				return json.Marshal(a)
			}
		}
		return json.RawMessage("null"), nil
	case QuerySearchPosts:
		term := strings.ToLower(strings.Trim(q.Params["query"].(string), "*"))
		return json.Marshal(f.published(func(p model.Post) bool {
			return strings.Contains(strings.ToLower(p.Title), term) ||
				strings.Contains(strings.ToLower(p.Excerpt), term)
		}))
	case QueryRelatedPosts:
		postID := q.Params["postId"].(string)
		ids := make(map[string]struct{})
		for _, id := range q.Params["categoryIds"].([]string) {
			ids[id] = struct{}{}
		}
		related := f.published(func(p model.Post) bool {
			if p.ID == postID {
				return false
			}
			for _, c := range p.Categories {
				if _, ok := ids[c.ID]; ok {
					return true
				}
			}
			return false
		})
		return json.Marshal(window(related, 0, q.Params["limit"].(int)))
	}
	return nil, errors.New("unknown query " + q.Name)
}

func (f *fakeStore) published(keep func(model.Post) bool) []model.Post {
	var out []model.Post
	for _, p := range f.posts {
		if p.PublishedAt == nil {
			continue
		}
		if keep != nil && !keep(p) {
			continue
		}
		p.Body = nil
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(*out[j].PublishedAt)
	})
	return out
}

func inCategory(param any) func(model.Post) bool {
	category, ok := param.(string)
	if !ok {
		return nil
	}
	return func(p model.Post) bool {
		for _, c := range p.Categories {
			if c.Slug.Current == category {
				return true
			}
		}
		return false
	}
}

func window(posts []model.Post, start, end int) []model.Post {
	if start > len(posts) {
		start = len(posts)
	}
	if end > len(posts) {
		end = len(posts)
	}
	return append([]model.Post{}, posts[start:end]...)
}
