package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/CortexBlog/blog-service/internal/config"
	"github.com/CortexBlog/blog-service/internal/handler"
	"github.com/CortexBlog/blog-service/internal/notifier"
	"github.com/CortexBlog/blog-service/internal/ratelimit"
	"github.com/CortexBlog/blog-service/internal/repository"
	"github.com/CortexBlog/blog-service/internal/repository/postgres"
	"github.com/CortexBlog/blog-service/internal/server"
	"github.com/CortexBlog/blog-service/internal/service"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	httpClient := newHTTPClient(cfg)

	rdb, err := connectRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Sugar().Errorf("failed to ping redis: %s", err.Error())
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	pool, err := connectPostgres(ctx, cfg.Newsletter.DatabaseURL)
	if err != nil {
		logger.Sugar().Errorf("failed to connect to postgres: %s", err.Error())
		return err
	}
	var db postgres.DBTX
	if pool != nil {
		db = pool
		defer pool.Close()
	}

	repos := repository.New(db, rdb, cfg.RateLimit.Window)

	var subscribers postgres.Subscriber
	if repos.Postgres != nil {
		subscribers = repos.Postgres.Subscriber
	}

	deps := service.Deps{
		EmailSender:  notifier.NewEmailSender(cfg.Email, httpClient),
		Subscriber:   notifier.NewSubscriber(logger, cfg.Newsletter, httpClient, subscribers),
		SenderEmail:  cfg.Email.SenderEmail,
		ContactEmail: cfg.Email.ContactEmail,
		CacheTTL:     cfg.ContentCacheTTL,
	}
	if err := cfg.Validate(); err != nil {
		logger.Sugar().Warnf("content API disabled: %s", err.Error())
	} else {
		deps.ContentStore = newContentStore(cfg, httpClient)
	}
	logger.Sugar().Infof("email sender: %s, newsletter provider: %s", deps.EmailSender.Name(), deps.Subscriber.Name())

	limiter, stopLimiter, err := newLimiter(cfg.RateLimit, repos)
	if err != nil {
		logger.Sugar().Errorf("failed to start rate limiter: %s", err.Error())
		return err
	}
	defer stopLimiter()

	services := service.New(logger, repos, deps)
	handlers := handler.New(logger, services, handler.Options{
		AllowedOrigin:    cfg.AllowedOrigin(),
		RevalidateSecret: cfg.RevalidateSecret,
		Limiter:          limiter,
	})

	srv := server.New(config.ServerConfig{
		Port:           cfg.App.Port,
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    cfg.App.ReadTimeout,
		WriteTimeout:   cfg.App.WriteTimeout,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	logger.Sugar().Infof("Server started on :%s", cfg.App.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Sugar().Errorf("failed to run http server: %s", err.Error())
		}
		return err
	case <-quit:
	}

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
		return err
	}

	return nil
}

// newLimiter returns a nil limiter when rate limiting is disabled. Counters
// live in redis when it is configured, otherwise in process memory.
func newLimiter(cfg config.RateLimitConfig, repos *repository.Repository) (*ratelimit.Limiter, func(), error) {
	if !cfg.Enabled {
		return nil, func() {}, nil
	}

	if repos.Redis != nil {
		return ratelimit.New(repos.Redis.RateLimit, cfg.Window, cfg.Max), func() {}, nil
	}

	store := ratelimit.NewMemoryStore(cfg.Window)
	stop, err := store.StartSweeper()
	if err != nil {
		return nil, nil, err
	}
	return ratelimit.New(store, cfg.Window, cfg.Max), stop, nil
}
