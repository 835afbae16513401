package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

const mailchimpMemberExists = "Member Exists"

type Mailchimp struct {
	logger     *zap.Logger
	httpClient *http.Client
	apiKey     string
	audienceID string
	baseURL    string
}

type mailchimpError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func NewMailchimp(logger *zap.Logger, httpClient *http.Client, apiKey, audienceID, serverPrefix string) *Mailchimp {
	return &Mailchimp{
		logger:     logger,
		httpClient: httpClient,
		apiKey:     apiKey,
		audienceID: audienceID,
		baseURL:    fmt.Sprintf("https://%s.api.mailchimp.com/3.0", serverPrefix),
	}
}

func (m *Mailchimp) WithBaseURL(baseURL string) *Mailchimp {
	m.baseURL = baseURL
	return m
}

func (m *Mailchimp) Name() string {
	return "mailchimp"
}

func (m *Mailchimp) Subscribe(ctx context.Context, email string) error {
	url := fmt.Sprintf("%s/lists/%s/members", m.baseURL, m.audienceID)
	res, err := postJSON(ctx, m.httpClient, url, map[string]string{
		"Authorization": "apikey " + m.apiKey,
	}, map[string]string{
		"email_address": email,
		"status":        "subscribed",
	})
	if err != nil {
		m.logger.Sugar().Errorf("failed to send request to mailchimp: %s", err.Error())
		return fmt.Errorf("%w: %w", ErrSubscribe, err)
	}

	if res.ok() {
		return nil
	}

	var body mailchimpError
	if err := json.Unmarshal(res.body, &body); err != nil {
		m.logger.Sugar().Errorf("failed to decode error response from mailchimp: %s", err.Error())
		return fmt.Errorf("%w: mailchimp status %d", ErrSubscribe, res.status)
	}
	if body.Title == mailchimpMemberExists {
		return ErrAlreadySubscribed
	}

	m.logger.Sugar().Errorf("ERROR from mailchimp, code(%d), details: %s %s", res.status, body.Title, body.Detail)
	return fmt.Errorf("%w: mailchimp status %d", ErrSubscribe, res.status)
}
