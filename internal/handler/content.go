package handler

import (
	"net/http"
	"strings"

	"github.com/CortexBlog/blog-service/internal/content"
	"github.com/CortexBlog/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsLatest(c *gin.Context) {
	posts, err := h.services.Content.LatestPosts(c.Request.Context())
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsGet(c *gin.Context) {
	var input dto.GetPostsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgInvalidQuery))
		return
	}

	posts, err := h.services.Content.Posts(c.Request.Context(), input.Start, input.End, input.Category)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsCount(c *gin.Context) {
	var input dto.PostCountRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgInvalidQuery))
		return
	}

	count, err := h.services.Content.PostCount(c.Request.Context(), input.Category)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *Handler) postsSearch(c *gin.Context) {
	var input dto.SearchPostsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgInvalidQuery))
		return
	}

	posts, err := h.services.Content.SearchPosts(c.Request.Context(), strings.TrimSpace(input.Query))
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsRelated(c *gin.Context) {
	var input dto.RelatedPostsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgInvalidQuery))
		return
	}

	posts, err := h.services.Content.RelatedPosts(c.Request.Context(), input.PostID, splitIDs(input.CategoryIDs), input.Limit)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsGetBySlug(c *gin.Context) {
	post, err := h.services.Content.Post(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GetPost{
		Post:      *post,
		ImageURL:  content.ImageURL(post.MainImage, 0, 0),
		PlainText: content.BlockContentToPlainText(post.Body),
	})
}

func (h *Handler) categoriesGet(c *gin.Context) {
	categories, err := h.services.Content.Categories(c.Request.Context())
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *Handler) authorsGetBySlug(c *gin.Context) {
	author, err := h.services.Content.Author(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, author)
}

func (h *Handler) authorsGetPosts(c *gin.Context) {
	posts, err := h.services.Content.PostsByAuthor(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) contentRevalidate(c *gin.Context) {
	purged, err := h.services.Revalidation.Purge(c.Request.Context())
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	h.logger.Sugar().Infof("content revalidated by %q", c.GetString("revalidate-subject"))

	c.JSON(http.StatusOK, dto.RevalidateResponse{
		Message: msgRevalidated,
		Purged:  purged,
	})
}

func splitIDs(s string) []string {
	ids := []string{}
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
