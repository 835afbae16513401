package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type Buttondown struct {
	logger     *zap.Logger
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewButtondown(logger *zap.Logger, httpClient *http.Client, apiKey string) *Buttondown {
	return &Buttondown{
		logger:     logger,
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    "https://api.buttondown.email/v1",
	}
}

func (b *Buttondown) WithBaseURL(baseURL string) *Buttondown {
	b.baseURL = baseURL
	return b
}

func (b *Buttondown) Name() string {
	return "buttondown"
}

func (b *Buttondown) Subscribe(ctx context.Context, email string) error {
	res, err := postJSON(ctx, b.httpClient, b.baseURL+"/subscribers", map[string]string{
		"Authorization": "Token " + b.apiKey,
	}, map[string]string{
		"email": email,
	})
	if err != nil {
		b.logger.Sugar().Errorf("failed to send request to buttondown: %s", err.Error())
		return fmt.Errorf("%w: %w", ErrSubscribe, err)
	}

	if res.ok() {
		return nil
	}

	if res.status == http.StatusBadRequest && buttondownDuplicate(res.body) {
		return ErrAlreadySubscribed
	}
	b.logger.Sugar().Errorf("ERROR from buttondown, code(%d), details: %s", res.status, string(res.body))
	return fmt.Errorf("%w: buttondown status %d", ErrSubscribe, res.status)
}

// buttondownDuplicate checks the "email" field of an error body, which the
// API sends either as a string or as a list of strings.
func buttondownDuplicate(body []byte) bool {
	var bodyJSON map[string]any
	if err := json.Unmarshal(body, &bodyJSON); err != nil {
		return false
	}

	switch v := bodyJSON["email"].(type) {
	case string:
		return strings.Contains(v, "already exists")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.Contains(s, "already exists") {
				return true
			}
		}
	}
	return false
}
