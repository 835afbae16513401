package service

import (
	"context"

	"github.com/CortexBlog/blog-service/internal/repository"
	"go.uber.org/zap"
)

type revalidationService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newRevalidationService(logger *zap.Logger, repo *repository.Repository) Revalidation {
	return &revalidationService{
		logger: logger,
		repo:   repo,
	}
}

func (s *revalidationService) Purge(ctx context.Context) (int64, error) {
	if s.repo == nil || s.repo.Redis == nil {
		return 0, nil
	}

	purged, err := s.repo.Redis.Content.Purge(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to purge content cache: %s", err.Error())
		return 0, ErrInternal
	}

	s.logger.Sugar().Infof("purged %d cached content queries", purged)
	return purged, nil
}
