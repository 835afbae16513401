package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnv   = errors.New("missing required environment variables")
	ErrDurationUnit = errors.New("duration needs a unit such as s, m or h")
)

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type AppConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type EmailConfig struct {
	ResendAPIKey string
	SenderEmail  string
	ContactEmail string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string
}

type NewsletterConfig struct {
	MailchimpAPIKey       string
	MailchimpAudienceID   string
	MailchimpServerPrefix string
	ConvertKitAPIKey      string
	ConvertKitFormID      string
	ButtondownAPIKey      string
	DatabaseURL           string
}

type SanityConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Token      string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled bool
	Window  time.Duration
	Max     int64
}

type Config struct {
	App              AppConfig
	FrontendURL      string
	Email            EmailConfig
	Newsletter       NewsletterConfig
	Sanity           SanityConfig
	Redis            RedisConfig
	RateLimit        RateLimitConfig
	RevalidateSecret string
	ContentCacheTTL  time.Duration
	HTTPTimeout      time.Duration
}

// Load reads .env (if present), the yaml config file and the process
// environment. An empty cfgFile means ./app.yaml, which is optional.
func Load(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("app")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := checkDurations(v); err != nil {
		return nil, err
	}

	cfg := &Config{
		FrontendURL: v.GetString("frontend-url"),
		Email: EmailConfig{
			ResendAPIKey: v.GetString("email.resend-api-key"),
			SenderEmail:  v.GetString("email.sender"),
			ContactEmail: v.GetString("email.contact"),
			SMTPHost:     v.GetString("email.smtp.host"),
			SMTPPort:     v.GetInt("email.smtp.port"),
			SMTPUser:     v.GetString("email.smtp.user"),
			SMTPPass:     v.GetString("email.smtp.pass"),
		},
		Newsletter: NewsletterConfig{
			MailchimpAPIKey:       v.GetString("newsletter.mailchimp.api-key"),
			MailchimpAudienceID:   v.GetString("newsletter.mailchimp.audience-id"),
			MailchimpServerPrefix: v.GetString("newsletter.mailchimp.server-prefix"),
			ConvertKitAPIKey:      v.GetString("newsletter.convertkit.api-key"),
			ConvertKitFormID:      v.GetString("newsletter.convertkit.form-id"),
			ButtondownAPIKey:      v.GetString("newsletter.buttondown.api-key"),
			DatabaseURL:           v.GetString("database-url"),
		},
		Sanity: SanityConfig{
			ProjectID:  v.GetString("sanity.project-id"),
			Dataset:    v.GetString("sanity.dataset"),
			APIVersion: v.GetString("sanity.api-version"),
			UseCDN:     v.GetBool("sanity.use-cdn"),
			Token:      v.GetString("sanity.token"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		App: AppConfig{
			Port:            v.GetString("app.port"),
			ReadTimeout:     v.GetDuration("app.read-timeout"),
			WriteTimeout:    v.GetDuration("app.write-timeout"),
			ShutdownTimeout: v.GetDuration("app.shutdown-timeout"),
		},
		RateLimit: RateLimitConfig{
			Enabled: v.GetBool("rate-limit.enabled"),
			Window:  v.GetDuration("rate-limit.window"),
			Max:     v.GetInt64("rate-limit.max"),
		},
		RevalidateSecret: v.GetString("revalidate-secret"),
		ContentCacheTTL:  v.GetDuration("content.cache-ttl"),
		HTTPTimeout:      v.GetDuration("http-client.timeout"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.read-timeout", 10*time.Second)
	v.SetDefault("app.write-timeout", 10*time.Second)
	v.SetDefault("app.shutdown-timeout", 15*time.Second)

	v.SetDefault("email.sender", "noreply@cortex-blog.com")
	v.SetDefault("email.contact", "contact@cortex-blog.com")
	v.SetDefault("email.smtp.port", 587)

	v.SetDefault("sanity.dataset", "production")
	v.SetDefault("sanity.api-version", "2024-01-01")
	v.SetDefault("sanity.use-cdn", true)

	v.SetDefault("content.cache-ttl", time.Minute)
	v.SetDefault("http-client.timeout", 10*time.Second)

	v.SetDefault("rate-limit.enabled", false)
	v.SetDefault("rate-limit.window", 15*time.Minute)
	v.SetDefault("rate-limit.max", 100)
}

// envBindings maps config keys to the environment variables that feed them,
// in precedence order.
var envBindings = map[string][]string{
	"frontend-url":                       {"FRONTEND_URL"},
	"email.resend-api-key":               {"RESEND_API_KEY"},
	"email.sender":                       {"SENDER_EMAIL"},
	"email.contact":                      {"CONTACT_EMAIL"},
	"email.smtp.host":                    {"SMTP_HOST"},
	"email.smtp.port":                    {"SMTP_PORT"},
	"email.smtp.user":                    {"SMTP_USER"},
	"email.smtp.pass":                    {"SMTP_PASS"},
	"newsletter.mailchimp.api-key":       {"MAILCHIMP_API_KEY"},
	"newsletter.mailchimp.audience-id":   {"MAILCHIMP_AUDIENCE_ID"},
	"newsletter.mailchimp.server-prefix": {"MAILCHIMP_SERVER_PREFIX"},
	"newsletter.convertkit.api-key":      {"CONVERTKIT_API_KEY"},
	"newsletter.convertkit.form-id":      {"CONVERTKIT_FORM_ID"},
	"newsletter.buttondown.api-key":      {"BUTTONDOWN_API_KEY"},
	"database-url":                       {"DATABASE_URL"},
	"sanity.project-id":                  {"NEXT_PUBLIC_SANITY_PROJECT_ID", "SANITY_PROJECT_ID"},
	"sanity.dataset":                     {"NEXT_PUBLIC_SANITY_DATASET", "SANITY_DATASET"},
	"sanity.api-version":                 {"SANITY_API_VERSION"},
	"sanity.use-cdn":                     {"SANITY_USE_CDN"},
	"sanity.token":                       {"SANITY_API_TOKEN"},
	"redis.addr":                         {"REDIS_ADDR"},
	"redis.password":                     {"REDIS_PASSWORD"},
	"redis.db":                           {"REDIS_DB"},
	"revalidate-secret":                  {"REVALIDATE_SECRET"},
	"content.cache-ttl":                  {"CONTENT_CACHE_TTL"},
	"http-client.timeout":                {"HTTP_CLIENT_TIMEOUT"},
	"rate-limit.enabled":                 {"RATE_LIMIT_ENABLED"},
	"rate-limit.window":                  {"RATE_LIMIT_WINDOW"},
	"rate-limit.max":                     {"RATE_LIMIT_MAX"},
	"app.port":                           {"PORT"},
}

var durationKeys = []string{
	"app.read-timeout",
	"app.write-timeout",
	"app.shutdown-timeout",
	"content.cache-ttl",
	"http-client.timeout",
	"rate-limit.window",
}

// checkDurations rejects bare numbers, which viper would read as nanoseconds.
func checkDurations(v *viper.Viper) error {
	for _, key := range durationKeys {
		raw := strings.TrimSpace(v.GetString(key))
		if raw == "0" {
			continue
		}
		if _, err := strconv.ParseFloat(raw, 64); err == nil {
			return fmt.Errorf("%w: %s=%q", ErrDurationUnit, key, raw)
		}
	}
	return nil
}

func bindEnv(v *viper.Viper) error {
	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

// Validate checks the variables the content store cannot work without.
func (c *Config) Validate() error {
	var missing []string
	if c.Sanity.ProjectID == "" {
		missing = append(missing, "SANITY_PROJECT_ID")
	}
	if c.Sanity.Dataset == "" {
		missing = append(missing, "SANITY_DATASET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}
	return nil
}

// AllowedOrigin is the origin echoed in CORS headers of the form endpoints.
func (c *Config) AllowedOrigin() string {
	if c.FrontendURL == "" {
		return "*"
	}
	return c.FrontendURL
}
