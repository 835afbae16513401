package service

import (
	"context"
	"errors"

	"github.com/CortexBlog/blog-service/internal/content"
	"github.com/CortexBlog/blog-service/internal/model"
	"go.uber.org/zap"
)

type contentService struct {
	logger  *zap.Logger
	catalog *content.Catalog
}

func newContentService(logger *zap.Logger, catalog *content.Catalog) Content {
	return &contentService{
		logger:  logger,
		catalog: catalog,
	}
}

func (s *contentService) LatestPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := s.catalog.LatestPosts(ctx)
	return posts, s.check(err, "latest posts")
}

func (s *contentService) Post(ctx context.Context, slug string) (*model.Post, error) {
	post, err := s.catalog.Post(ctx, slug)
	return post, s.check(err, "post("+slug+")")
}

func (s *contentService) Posts(ctx context.Context, start, end int, category string) ([]model.Post, error) {
	posts, err := s.catalog.Posts(ctx, start, end, category)
	return posts, s.check(err, "posts")
}

func (s *contentService) PostCount(ctx context.Context, category string) (int, error) {
	count, err := s.catalog.PostCount(ctx, category)
	return count, s.check(err, "post count")
}

func (s *contentService) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.catalog.Categories(ctx)
	return categories, s.check(err, "categories")
}

func (s *contentService) PostsByAuthor(ctx context.Context, authorSlug string) ([]model.Post, error) {
	posts, err := s.catalog.PostsByAuthor(ctx, authorSlug)
	return posts, s.check(err, "author("+authorSlug+") posts")
}

func (s *contentService) Author(ctx context.Context, slug string) (*model.Author, error) {
	author, err := s.catalog.Author(ctx, slug)
	return author, s.check(err, "author("+slug+")")
}

func (s *contentService) SearchPosts(ctx context.Context, term string) ([]model.Post, error) {
	posts, err := s.catalog.SearchPosts(ctx, term)
	return posts, s.check(err, "search results")
}

func (s *contentService) RelatedPosts(ctx context.Context, postID string, categoryIDs []string, limit int) ([]model.Post, error) {
	posts, err := s.catalog.RelatedPosts(ctx, postID, categoryIDs, limit)
	return posts, s.check(err, "post("+postID+") related posts")
}

// check passes caller-facing catalog errors through and hides the rest
// behind ErrInternal after logging them.
func (s *contentService) check(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, content.ErrNotFound) || errors.Is(err, content.ErrInvalidRange) {
		return err
	}
	s.logger.Sugar().Errorf("failed to fetch %s from content store: %s", what, err.Error())
	return ErrInternal
}
