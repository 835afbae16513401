package handler

import (
	"net/http"
	"time"

	"github.com/CortexBlog/blog-service/internal/ratelimit"
	"github.com/CortexBlog/blog-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	contactPath    = "/handle-contact-form"
	newsletterPath = "/handle-newsletter-signup"
)

type Options struct {
	// AllowedOrigin is sent as Access-Control-Allow-Origin.
	AllowedOrigin string
	// RevalidateSecret signs revalidation tokens. Empty disables the route.
	RevalidateSecret string
	// Limiter guards the form endpoints. Nil disables rate limiting.
	Limiter *ratelimit.Limiter
}

type Handler struct {
	logger   *zap.Logger
	services *service.Service
	opts     Options
}

func New(logger *zap.Logger, services *service.Service, opts Options) *Handler {
	if opts.AllowedOrigin == "" {
		opts.AllowedOrigin = "*"
	}
	return &Handler{
		logger:   logger,
		services: services,
		opts:     opts,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(h.methodNotAllowed)

	r.Use(
		gin.CustomRecovery(h.recovery),
		h.requestID,
		h.requestLogger,
		h.securityHeaders,
	)

	forms := r.Group("", h.formCORS)
	{
		h.formRoute(forms, contactPath, h.contactSubmit)
		h.formRoute(forms, newsletterPath, h.newsletterSignup)
	}

	v1 := r.Group("/api/v1", cors.New(h.apiCORSConfig()))
	{
		if h.services.Content != nil {
			posts := v1.Group("/posts")
			{
				posts.GET("", h.postsGet)
				posts.GET("/latest", h.postsLatest)
				posts.GET("/count", h.postsCount)
				posts.GET("/search", h.postsSearch)
				posts.GET("/related", h.postsRelated)
				posts.GET("/:slug", h.postsGetBySlug)
			}

			v1.GET("/categories", h.categoriesGet)

			authors := v1.Group("/authors/:slug")
			{
				authors.GET("", h.authorsGetBySlug)
				authors.GET("/posts", h.authorsGetPosts)
			}
		}

		if h.opts.RevalidateSecret != "" {
			v1.POST("/content/revalidate", h.revalidateMiddleware, h.contentRevalidate)
		}
	}

	return r
}

// formRoute registers POST (rate limited) and the preflight. Every other
// method reaches methodNotAllowed through the engine's NoMethod handler.
func (h *Handler) formRoute(g *gin.RouterGroup, path string, handle gin.HandlerFunc) {
	g.POST(path, h.rateLimit, handle)
	g.OPTIONS(path, h.preflight)
}

func (h *Handler) apiCORSConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if h.opts.AllowedOrigin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{h.opts.AllowedOrigin}
	}
	return cfg
}
