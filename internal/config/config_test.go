package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 10*time.Second, cfg.App.ReadTimeout)
	assert.Equal(t, "noreply@cortex-blog.com", cfg.Email.SenderEmail)
	assert.Equal(t, "contact@cortex-blog.com", cfg.Email.ContactEmail)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, "production", cfg.Sanity.Dataset)
	assert.Equal(t, "2024-01-01", cfg.Sanity.APIVersion)
	assert.True(t, cfg.Sanity.UseCDN)
	assert.Equal(t, time.Minute, cfg.ContentCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, int64(100), cfg.RateLimit.Max)
	assert.Equal(t, "*", cfg.AllowedOrigin())
}

func TestLoadEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FRONTEND_URL", "https://cortex-blog.com")
	t.Setenv("SANITY_PROJECT_ID", "fallback")
	t.Setenv("NEXT_PUBLIC_SANITY_PROJECT_ID", "abc123")
	t.Setenv("MAILCHIMP_API_KEY", "mc-key")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")
	t.Setenv("CONTENT_CACHE_TTL", "5m")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://cortex-blog.com", cfg.AllowedOrigin())
	assert.Equal(t, "abc123", cfg.Sanity.ProjectID)
	assert.Equal(t, "mc-key", cfg.Newsletter.MailchimpAPIKey)
	assert.Equal(t, 2525, cfg.Email.SMTPPort)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 5*time.Minute, cfg.ContentCacheTTL)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  port: \"9090\"\nrate-limit:\n  max: 5\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 10*time.Second, cfg.App.WriteTimeout)
	assert.Equal(t, int64(5), cfg.RateLimit.Max)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsDurationsWithoutUnit(t *testing.T) {
	for _, env := range []string{"CONTENT_CACHE_TTL", "RATE_LIMIT_WINDOW", "HTTP_CLIENT_TIMEOUT"} {
		t.Run(env, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(env, "60")

			_, err := Load("")
			assert.ErrorIs(t, err, ErrDurationUnit)
			assert.Contains(t, err.Error(), `"60"`)
		})
	}
}

func TestLoadRejectsYAMLDurationWithoutUnit(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  read-timeout: 10\n"), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrDurationUnit)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrMissingEnv)
	assert.Contains(t, err.Error(), "SANITY_PROJECT_ID")

	cfg.Sanity = SanityConfig{ProjectID: "abc", Dataset: "production"}
	assert.NoError(t, cfg.Validate())
}
