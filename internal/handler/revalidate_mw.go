package handler

import (
	"net/http"
	"strings"

	"github.com/CortexBlog/blog-service/internal/dto"
	"github.com/CortexBlog/blog-service/pkg/utils"
	"github.com/gin-gonic/gin"
)

func (h *Handler) revalidateMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(msgUnauthorized))
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(msgUnauthorized))
		return
	}

	claims, err := utils.DecodeJWT(token, []byte(h.opts.RevalidateSecret))
	if err != nil {
		h.logger.Sugar().Infof("rejected revalidation token: %s", err.Error())
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(msgUnauthorized))
		return
	}

	if sub, ok := claims["sub"].(string); ok {
		c.Set("revalidate-subject", sub)
	}

	c.Next()
}
