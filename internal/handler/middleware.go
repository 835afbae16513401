package handler

import (
	"net/http"
	"time"

	"github.com/CortexBlog/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

func (h *Handler) recovery(c *gin.Context, recovered any) {
	h.logger.Sugar().Errorf("panic while serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(msgInternal))
}

func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("request-id", id)
	c.Header(requestIDHeader, id)

	c.Next()
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()

	c.Next()

	h.logger.Sugar().Infow("request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"request_id", c.GetString("request-id"),
	)
}

func (h *Handler) securityHeaders(c *gin.Context) {
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Frame-Options", "DENY")
	c.Header("X-XSS-Protection", "1; mode=block")
	c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

	c.Next()
}

// formCORS attaches the form endpoints' CORS headers to every response,
// whether or not the request carried an Origin.
func (h *Handler) formCORS(c *gin.Context) {
	h.setFormCORSHeaders(c)

	c.Next()
}

func (h *Handler) setFormCORSHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", h.opts.AllowedOrigin)
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
}

func (h *Handler) preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

// methodNotAllowed answers any method without a route on a known path. The
// form endpoints keep their CORS headers on this path too.
func (h *Handler) methodNotAllowed(c *gin.Context) {
	switch c.Request.URL.Path {
	case contactPath, newsletterPath:
		h.setFormCORSHeaders(c)
	}
	c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(msgMethodNotAllowed))
}

func (h *Handler) rateLimit(c *gin.Context) {
	if h.opts.Limiter == nil {
		c.Next()
		return
	}

	allowed, err := h.opts.Limiter.Allow(c.Request.Context(), c.ClientIP())
	if err != nil {
		h.logger.Sugar().Errorf("failed to check rate limit: %s", err.Error())
	}
	if !allowed {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(msgTooManyRequests))
		return
	}

	c.Next()
}
