package notifier

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type ConvertKit struct {
	logger     *zap.Logger
	httpClient *http.Client
	apiKey     string
	formID     string
	baseURL    string
}

func NewConvertKit(logger *zap.Logger, httpClient *http.Client, apiKey, formID string) *ConvertKit {
	return &ConvertKit{
		logger:     logger,
		httpClient: httpClient,
		apiKey:     apiKey,
		formID:     formID,
		baseURL:    "https://api.convertkit.com/v3",
	}
}

func (k *ConvertKit) WithBaseURL(baseURL string) *ConvertKit {
	k.baseURL = baseURL
	return k
}

func (k *ConvertKit) Name() string {
	return "convertkit"
}

// Subscribe has no duplicate mapping: ConvertKit accepts repeat signups.
func (k *ConvertKit) Subscribe(ctx context.Context, email string) error {
	url := fmt.Sprintf("%s/forms/%s/subscribe", k.baseURL, k.formID)
	res, err := postJSON(ctx, k.httpClient, url, nil, map[string]string{
		"api_key": k.apiKey,
		"email":   email,
	})
	if err != nil {
		k.logger.Sugar().Errorf("failed to send request to convertkit: %s", err.Error())
		return fmt.Errorf("%w: %w", ErrSubscribe, err)
	}

	if !res.ok() {
		k.logger.Sugar().Errorf("ERROR from convertkit, code(%d), details: %s", res.status, string(res.body))
		return fmt.Errorf("%w: convertkit status %d", ErrSubscribe, res.status)
	}
	return nil
}
