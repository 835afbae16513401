package repository

import (
	"time"

	"github.com/CortexBlog/blog-service/internal/repository/postgres"
	"github.com/CortexBlog/blog-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
)

// Repository groups the optional backing stores. A nil db or rdb leaves the
// corresponding field nil.
type Repository struct {
	Postgres *postgres.PostgresRepository
	Redis    *redisrepo.RedisRepository
}

func New(db postgres.DBTX, rdb *redis.Client, rateLimitWindow time.Duration) *Repository {
	repo := &Repository{}
	if db != nil {
		repo.Postgres = postgres.New(db)
	}
	if rdb != nil {
		repo.Redis = redisrepo.New(rdb, rateLimitWindow)
	}
	return repo
}
