package service

import (
	"context"
	"time"

	"github.com/CortexBlog/blog-service/internal/content"
	"github.com/CortexBlog/blog-service/internal/dto"
	"github.com/CortexBlog/blog-service/internal/model"
	"github.com/CortexBlog/blog-service/internal/notifier"
	"github.com/CortexBlog/blog-service/internal/repository"
	"go.uber.org/zap"
)

type Contact interface {
	// Submit validates the form and sends one notification email,
	// returning the provider's message id.
	Submit(ctx context.Context, input dto.ContactRequest) (string, error)
}

type Subscription struct {
	Provider  string
	Forwarded bool
}

type Newsletter interface {
	Signup(ctx context.Context, input dto.NewsletterRequest) (Subscription, error)
}

type Content interface {
	LatestPosts(ctx context.Context) ([]model.Post, error)
	Post(ctx context.Context, slug string) (*model.Post, error)
	Posts(ctx context.Context, start, end int, category string) ([]model.Post, error)
	PostCount(ctx context.Context, category string) (int, error)
	Categories(ctx context.Context) ([]model.Category, error)
	PostsByAuthor(ctx context.Context, authorSlug string) ([]model.Post, error)
	Author(ctx context.Context, slug string) (*model.Author, error)
	SearchPosts(ctx context.Context, term string) ([]model.Post, error)
	RelatedPosts(ctx context.Context, postID string, categoryIDs []string, limit int) ([]model.Post, error)
}

type Revalidation interface {
	// Purge drops cached content and returns the number of entries removed.
	Purge(ctx context.Context) (int64, error)
}

type Deps struct {
	EmailSender  notifier.EmailSender
	Subscriber   notifier.Subscriber
	ContentStore content.Store
	SenderEmail  string
	ContactEmail string
	CacheTTL     time.Duration
}

type Service struct {
	Contact
	Newsletter
	Content
	Revalidation
}

// New builds the services. Content is nil when deps.ContentStore is nil.
func New(logger *zap.Logger, repo *repository.Repository, deps Deps) *Service {
	s := &Service{
		Contact:      newContactService(logger, deps.EmailSender, deps.SenderEmail, deps.ContactEmail),
		Newsletter:   newNewsletterService(logger, deps.Subscriber),
		Revalidation: newRevalidationService(logger, repo),
	}

	if deps.ContentStore != nil {
		store := deps.ContentStore
		if repo != nil && repo.Redis != nil && deps.CacheTTL > 0 {
			store = newCachedStore(logger, repo.Redis.Content, store, deps.CacheTTL)
		}
		s.Content = newContentService(logger, content.NewCatalog(store))
	}

	return s
}
