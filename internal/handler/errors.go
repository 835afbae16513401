package handler

import (
	"errors"
	"net/http"

	"github.com/CortexBlog/blog-service/internal/content"
	"github.com/CortexBlog/blog-service/internal/dto"
	"github.com/CortexBlog/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	msgMethodNotAllowed    = "Method not allowed"
	msgInvalidRequestBody  = "Invalid request body"
	msgSpamDetected        = "Spam detected"
	msgMissingFields       = "Missing required fields"
	msgInvalidEmail        = "Invalid email format"
	msgEmailDelivery       = "Failed to send email"
	msgAlreadySubscribed   = "Email already subscribed"
	msgInternal            = "Internal server error"
	msgNotFound            = "Not found"
	msgInvalidRange        = "Invalid post range"
	msgInvalidQuery        = "Invalid query parameters"
	msgTooManyRequests     = "Too many requests"
	msgUnauthorized        = "Unauthorized"
	msgEmailSent           = "Email sent successfully"
	msgSubscribed          = "Successfully subscribed to newsletter"
	msgSubscribedNoService = "Newsletter subscription received (no service configured)"
	msgRevalidated         = "Content cache purged"
)

var errorResponses = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrSpamDetected, http.StatusBadRequest, msgSpamDetected},
	{service.ErrMissingFields, http.StatusBadRequest, msgMissingFields},
	{service.ErrInvalidEmail, http.StatusBadRequest, msgInvalidEmail},
	{service.ErrAlreadySubscribed, http.StatusBadRequest, msgAlreadySubscribed},
	{content.ErrInvalidRange, http.StatusBadRequest, msgInvalidRange},
	{content.ErrNotFound, http.StatusNotFound, msgNotFound},
	{service.ErrEmailDelivery, http.StatusInternalServerError, msgEmailDelivery},
	{service.ErrSubscribe, http.StatusInternalServerError, msgInternal},
}

// errorStatus maps a service error to the status code and the message shown
// to the caller. Unknown errors become a generic 500.
func errorStatus(err error) (int, string) {
	for _, r := range errorResponses {
		if errors.Is(err, r.err) {
			return r.status, r.message
		}
	}
	return http.StatusInternalServerError, msgInternal
}

func (h *Handler) errorResponse(c *gin.Context, err error) {
	status, message := errorStatus(err)
	c.JSON(status, dto.NewErrorResponse(message))
}
