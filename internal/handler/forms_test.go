package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CortexBlog/blog-service/internal/config"
	"github.com/CortexBlog/blog-service/internal/notifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validContact = `{"name":"Ann","email":"ann@example.com","message":"Hello\nthere"}`

func TestFormCORSHeadersAlwaysPresent(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{"preflight", http.MethodOptions, "", http.StatusOK},
		{"get", http.MethodGet, "", http.StatusMethodNotAllowed},
		{"post", http.MethodPost, validContact, http.StatusOK},
		{"bad post", http.MethodPost, `{"honeypot":"x"}`, http.StatusBadRequest},
	}

	r := testEnv{opts: Options{AllowedOrigin: "https://cortex-blog.com"}}.router()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, contactPath, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "https://cortex-blog.com", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestFormCORSDefaultsToWildcard(t *testing.T) {
	w := do(testEnv{}.router(), http.MethodOptions, newsletterPath, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestFormMethodNotAllowed(t *testing.T) {
	sender := &fakeSender{}
	r := testEnv{sender: sender}.router()

	methods := []string{
		http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete,
		http.MethodTrace, http.MethodConnect, "PURGE",
	}
	for _, path := range []string{contactPath, newsletterPath} {
		for _, method := range methods {
			w := do(r, method, path, "")
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
			assert.Equal(t, msgMethodNotAllowed, decode(t, w)["error"])
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), method)
			assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"), method)
		}
	}
	assert.Empty(t, sender.sent)
}

func TestContactSubmit(t *testing.T) {
	sender := &fakeSender{}
	r := testEnv{sender: sender}.router()

	w := do(r, http.MethodPost, contactPath, validContact)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, msgEmailSent, body["message"])
	assert.Equal(t, "email-123", body["id"])

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "New Contact Form Submission from Ann", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTML, "Hello<br>there")
}

func TestContactSubmitRejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"honeypot first", `{"honeypot":"filled"}`, http.StatusBadRequest, msgSpamDetected},
		{"honeypot with valid fields", `{"name":"Ann","email":"ann@example.com","message":"hi","honeypot":"x"}`, http.StatusBadRequest, msgSpamDetected},
		{"missing name", `{"email":"ann@example.com","message":"hi"}`, http.StatusBadRequest, msgMissingFields},
		{"missing email", `{"name":"Ann","message":"hi"}`, http.StatusBadRequest, msgMissingFields},
		{"invalid email", `{"name":"Ann","email":"ann.example.com","message":"hi"}`, http.StatusBadRequest, msgInvalidEmail},
		{"malformed json", `{"name":`, http.StatusBadRequest, msgInvalidRequestBody},
		{"boolean honeypot", `{"name":"A","email":"a@b.com","message":"hi","honeypot":true}`, http.StatusBadRequest, msgSpamDetected},
		{"numeric honeypot", `{"name":"A","email":"a@b.com","message":"hi","honeypot":1}`, http.StatusBadRequest, msgSpamDetected},
		{"honeypot before field types", `{"name":123,"honeypot":true}`, http.StatusBadRequest, msgSpamDetected},
		{"wrong field type", `{"name":123,"email":"a@b.com","message":"hi"}`, http.StatusBadRequest, msgInvalidRequestBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			w := do(testEnv{sender: sender}.router(), http.MethodPost, contactPath, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decode(t, w)["error"])
			assert.Empty(t, sender.sent)
		})
	}
}

func TestContactSubmitFalsyHoneypotIsNotSpam(t *testing.T) {
	for _, trap := range []string{`null`, `""`, `false`, `0`} {
		sender := &fakeSender{}
		body := `{"name":"Ann","email":"ann@example.com","message":"hi","honeypot":` + trap + `}`

		w := do(testEnv{sender: sender}.router(), http.MethodPost, contactPath, body)
		assert.Equal(t, http.StatusOK, w.Code, trap)
		assert.Len(t, sender.sent, 1, trap)
	}
}

func TestContactSubmitProviderFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("resend: 401 invalid api key")}

	w := do(testEnv{sender: sender}.router(), http.MethodPost, contactPath, validContact)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, msgEmailDelivery, decode(t, w)["error"])
	assert.Len(t, sender.sent, 1)
}

func TestContactSubmitWithoutEmailProvider(t *testing.T) {
	sender := notifier.NewEmailSender(config.EmailConfig{}, http.DefaultClient)
	r := testEnv{sender: sender}.router()

	w := do(r, http.MethodPost, contactPath, validContact)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, msgEmailDelivery, decode(t, w)["error"])
}

func TestNewsletterSignup(t *testing.T) {
	sub := &fakeSubscriber{}
	w := do(testEnv{subscriber: sub}.router(), http.MethodPost, newsletterPath, `{"email":"ann@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, msgSubscribed, decode(t, w)["message"])
	assert.Equal(t, 1, sub.calls)
}

func TestNewsletterSignupOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		err     error
		status  int
		key     string
		message string
	}{
		{"honeypot", `{"email":"ann@example.com","honeypot":"x"}`, nil, http.StatusBadRequest, "error", msgSpamDetected},
		{"object honeypot", `{"email":"ann@example.com","honeypot":{"a":1}}`, nil, http.StatusBadRequest, "error", msgSpamDetected},
		{"missing email", `{}`, nil, http.StatusBadRequest, "error", msgInvalidEmail},
		{"invalid email", `{"email":"ann"}`, nil, http.StatusBadRequest, "error", msgInvalidEmail},
		{"duplicate", `{"email":"ann@example.com"}`, notifier.ErrAlreadySubscribed, http.StatusBadRequest, "error", msgAlreadySubscribed},
		{"provider failure", `{"email":"ann@example.com"}`, notifier.ErrSubscribe, http.StatusInternalServerError, "error", msgInternal},
		{"no provider", `{"email":"ann@example.com"}`, notifier.ErrNotConfigured, http.StatusOK, "message", msgSubscribedNoService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &fakeSubscriber{err: tt.err}
			w := do(testEnv{subscriber: sub}.router(), http.MethodPost, newsletterPath, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decode(t, w)[tt.key])
		})
	}
}

func TestNewsletterMailchimpMemberExists(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/lists/aud-1/members", r.URL.Path)
		assert.Equal(t, "apikey key-1", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"title":"Member Exists","detail":"ann@example.com is already a list member."}`))
	}))
	defer srv.Close()

	sub := notifier.NewMailchimp(zap.NewNop(), srv.Client(), "key-1", "aud-1", "us1").WithBaseURL(srv.URL)

	w := do(testEnv{subscriber: sub}.router(), http.MethodPost, newsletterPath, `{"email":"ann@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgAlreadySubscribed, decode(t, w)["error"])
	assert.Equal(t, 1, calls)
}
