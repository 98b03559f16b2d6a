package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP    HTTPConfig
	API     APIConfig
	Session SessionConfig
	Cart    CartConfig
	Audit   AuditConfig
	Storage StorageConfig
	SMTP    SMTPConfig
	Mail    MailConfig
}

type HTTPConfig struct {
	Addr string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	Secret     string
	CookieName string
	Secure     bool
	TTL        time.Duration
}

type CartConfig struct {
	RetryDelay time.Duration
}

// AuditConfig is optional; an empty DSN disables the order audit store.
type AuditConfig struct {
	DSN string
}

type StorageConfig struct {
	Driver string // local | s3

	LocalDir       string
	LocalURLPrefix string

	S3Region        string
	S3Bucket        string
	S3Prefix        string
	S3PublicBaseURL string
}

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	TLSMode       string // none | starttls | tls
	SkipVerifyTLS bool
}

type MailConfig struct {
	From     string
	FromName string

	// HTTP send API, used when no SMTP host is set
	MailtrapURL   string
	MailtrapToken string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the config from the environment only.
func FromEnv() (*Config, error) {
	var errs []error
	dur := func(key string, def time.Duration) time.Duration {
		d, err := getDuration(key, def)
		if err != nil {
			errs = append(errs, err)
		}
		return d
	}
	boolean := func(key string, def bool) bool {
		b, err := getBool(key, def)
		if err != nil {
			errs = append(errs, err)
		}
		return b
	}

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		API: APIConfig{
			BaseURL: getEnv("API_URL", getEnv("VITE_API_URL", "http://localhost:8081/api")),
			Timeout: dur("API_TIMEOUT", 15*time.Second),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", ""),
			CookieName: getEnv("SESSION_COOKIE", "pahana_sid"),
			Secure:     boolean("SESSION_SECURE", false),
			TTL:        dur("SESSION_TTL", 12*time.Hour),
		},
		Cart: CartConfig{
			RetryDelay: dur("CART_RETRY_DELAY", time.Second),
		},
		Audit: AuditConfig{
			DSN: getEnv("DB_DSN", ""),
		},
		Storage: StorageConfig{
			Driver:          strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
			LocalDir:        getEnv("LOCAL_INVOICE_DIR", "./storage/invoices"),
			LocalURLPrefix:  getEnv("LOCAL_INVOICE_URL_PREFIX", "/invoices"),
			S3Region:        getEnv("S3_REGION", ""),
			S3Bucket:        getEnv("S3_BUCKET", ""),
			S3Prefix:        getEnv("S3_PREFIX", "invoices"),
			S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
		},
		SMTP: SMTPConfig{
			Host:          getEnv("SMTP_HOST", ""),
			Port:          getEnv("SMTP_PORT", "1025"),
			User:          getEnv("SMTP_USER", ""),
			Pass:          getEnv("SMTP_PASS", ""),
			TLSMode:       strings.ToLower(getEnv("SMTP_TLS_MODE", "none")),
			SkipVerifyTLS: boolean("SMTP_SKIP_VERIFY", false),
		},
		Mail: MailConfig{
			From:     getEnv("MAIL_FROM", "no-reply@pahanaedu.local"),
			FromName: getEnv("MAIL_FROM_NAME", "Pahana Edu"),

			MailtrapURL:   getEnv("MAILTRAP_API_URL", ""),
			MailtrapToken: getEnv("MAILTRAP_API_TOKEN", ""),
		},
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_URL must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.Session.Secret != "" && len(c.Session.Secret) < 16 {
		return fmt.Errorf("SESSION_SECRET must be at least 16 bytes")
	}
	switch c.Storage.Driver {
	case "local":
		if c.Storage.LocalDir == "" {
			return fmt.Errorf("LOCAL_INVOICE_DIR is required for the local storage driver")
		}
	case "s3":
		if c.Storage.S3Region == "" || c.Storage.S3Bucket == "" || c.Storage.S3PublicBaseURL == "" {
			return fmt.Errorf("S3 config missing: S3_REGION, S3_BUCKET, S3_PUBLIC_BASE_URL required")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER: %s", c.Storage.Driver)
	}
	switch c.SMTP.TLSMode {
	case "none", "starttls", "tls":
	default:
		return fmt.Errorf("SMTP_TLS_MODE must be none, starttls or tls")
	}
	if (c.Mail.MailtrapURL == "") != (c.Mail.MailtrapToken == "") {
		return fmt.Errorf("MAILTRAP_API_URL and MAILTRAP_API_TOKEN must be set together")
	}
	return nil
}

// MailEnabled reports whether invoices can be e-mailed.
func (c *Config) MailEnabled() bool {
	return c.SMTP.Host != "" || c.Mail.MailtrapURL != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getBool(key string, def bool) (bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
