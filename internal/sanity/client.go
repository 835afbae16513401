// Package sanity executes content queries against the Sanity HTTP query API.
package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/CortexBlog/blog-service/internal/content"
	"go.uber.org/zap"
)

var ErrQueryFailed = errors.New("sanity query failed")

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Token      string
	// BaseURL overrides the project host, e.g. for tests.
	BaseURL string
}

type Client struct {
	logger     *zap.Logger
	httpClient *http.Client
	endpoint   string
	token      string
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
	Message string `json:"message"`
}

func New(logger *zap.Logger, httpClient *http.Client, cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		host := "api.sanity.io"
		// Authenticated requests bypass the CDN.
		if cfg.UseCDN && cfg.Token == "" {
			host = "apicdn.sanity.io"
		}
		base = fmt.Sprintf("https://%s.%s", cfg.ProjectID, host)
	}

	apiVersion := strings.TrimPrefix(cfg.APIVersion, "v")

	return &Client{
		logger:     logger,
		httpClient: httpClient,
		endpoint:   fmt.Sprintf("%s/v%s/data/query/%s", strings.TrimRight(base, "/"), apiVersion, cfg.Dataset),
		token:      cfg.Token,
	}
}

// Fetch implements content.Store.
func (c *Client) Fetch(ctx context.Context, q content.Query) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("query", q.GROQ)
	for name, value := range q.Params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var errBody errorResponse
		if err := json.Unmarshal(body, &errBody); err != nil {
			c.logger.Sugar().Errorf("failed to decode error response from sanity query(%s): %s", q.Name, err.Error())
		} else {
			c.logger.Sugar().Errorf("ERROR from sanity query(%s), code(%d), details: %s %s", q.Name, resp.StatusCode, errBody.Error.Description, errBody.Message)
		}
		return nil, fmt.Errorf("%w: status %d", ErrQueryFailed, resp.StatusCode)
	}

	var result queryResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode sanity response: %w", err)
	}

	return result.Result, nil
}
