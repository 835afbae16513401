package handler

import (
	"net/http"

	"github.com/CortexBlog/blog-service/internal/dto"
	"github.com/CortexBlog/blog-service/internal/service"
	"github.com/CortexBlog/blog-service/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindForm decodes a form body into input. The honeypot is decoded and
// checked first, so a filled one of any type answers as spam even when the
// other fields would not decode.
func (h *Handler) bindForm(c *gin.Context, input any) bool {
	var trap dto.Honeypot
	if err := c.ShouldBindBodyWith(&trap, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgInvalidRequestBody))
		return false
	}
	if utils.IsSpam(trap.Honeypot) {
		h.errorResponse(c, service.ErrSpamDetected)
		return false
	}

	if err := c.ShouldBindBodyWith(input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgInvalidRequestBody))
		return false
	}
	return true
}

func (h *Handler) contactSubmit(c *gin.Context) {
	var input dto.ContactRequest
	if !h.bindForm(c, &input) {
		return
	}

	id, err := h.services.Contact.Submit(c.Request.Context(), input)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: msgEmailSent,
		ID:      id,
	})
}

func (h *Handler) newsletterSignup(c *gin.Context) {
	var input dto.NewsletterRequest
	if !h.bindForm(c, &input) {
		return
	}

	res, err := h.services.Newsletter.Signup(c.Request.Context(), input)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	if !res.Forwarded {
		c.JSON(http.StatusOK, dto.NewMessageResponse(msgSubscribedNoService))
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse(msgSubscribed))
}
