package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

type httpResult struct {
	status int
	body   []byte
}

func (r httpResult) ok() bool {
	return r.status >= 200 && r.status < 300
}

func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, payload any) (httpResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return httpResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return httpResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return httpResult{}, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return httpResult{}, err
	}

	return httpResult{status: resp.StatusCode, body: respBody}, nil
}
