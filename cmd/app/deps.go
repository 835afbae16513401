package main

import (
	"context"
	"net/http"

	"github.com/CortexBlog/blog-service/internal/config"
	"github.com/CortexBlog/blog-service/internal/content"
	"github.com/CortexBlog/blog-service/internal/repository/postgres"
	"github.com/CortexBlog/blog-service/internal/sanity"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func newHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.HTTPTimeout}
}

func newContentStore(cfg *config.Config, httpClient *http.Client) content.Store {
	return sanity.New(logger, httpClient, sanity.Config{
		ProjectID:  cfg.Sanity.ProjectID,
		Dataset:    cfg.Sanity.Dataset,
		APIVersion: cfg.Sanity.APIVersion,
		UseCDN:     cfg.Sanity.UseCDN,
		Token:      cfg.Sanity.Token,
	})
}

// connectRedis returns nil when no address is configured.
func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		rdb.Close()
		return nil, err
	}
	logger.Sugar().Infof("Successfully connected to Redis: %s", pong)

	return rdb, nil
}

// connectPostgres returns nil when no DSN is configured.
func connectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, nil
	}

	pool, err := postgres.DB(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("Successfully connected to PostgreSQL")

	return pool, nil
}
