package notifier

import (
	"context"
	"fmt"

	"github.com/CortexBlog/blog-service/internal/repository/postgres"
	"go.uber.org/zap"
)

type postgresSubscriber struct {
	logger *zap.Logger
	repo   postgres.Subscriber
}

func NewPostgres(logger *zap.Logger, repo postgres.Subscriber) Subscriber {
	return &postgresSubscriber{
		logger: logger,
		repo:   repo,
	}
}

func (s *postgresSubscriber) Name() string {
	return "postgres"
}

func (s *postgresSubscriber) Subscribe(ctx context.Context, email string) error {
	created, err := s.repo.Create(ctx, email)
	if err != nil {
		s.logger.Sugar().Errorf("failed to store newsletter subscriber: %s", err.Error())
		return fmt.Errorf("%w: %w", ErrSubscribe, err)
	}
	if !created {
		return ErrAlreadySubscribed
	}
	return nil
}
