package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	PublicBaseURL     string `mapstructure:"PUBLIC_BASE_URL"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	// Google OAuth + admin session.
	GoogleClientID     string        `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `mapstructure:"GOOGLE_CLIENT_SECRET"`
	OAuthRedirectURL   string        `mapstructure:"OAUTH_REDIRECT_URL"`
	SessionSecret      string        `mapstructure:"SESSION_SECRET"`
	SessionTTL         time.Duration `mapstructure:"SESSION_TTL"`
	AdminEmails        string        `mapstructure:"ADMIN_EMAILS"`

	// Content store backend: firestore, mongo or memory.
	ContentBackend          string        `mapstructure:"CONTENT_BACKEND"`
	FirebaseProjectID       string        `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string        `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseBucket          string        `mapstructure:"FIREBASE_BUCKET"`
	DatabaseURL             string        `mapstructure:"DATABASE_URL"`
	MongoDatabase           string        `mapstructure:"MONGO_DATABASE"`
	ContentCacheTTL         time.Duration `mapstructure:"CONTENT_CACHE_TTL"`

	// Redis configuration. An empty address disables caching and the mail queue.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Image uploads: cloudinary or firebase.
	ImageBackend        string `mapstructure:"IMAGE_BACKEND"`
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	GeminiAPIKey        string `mapstructure:"GEMINI_API_KEY"`
	StripeKey           string `mapstructure:"STRIPE_KEY"`
	ResendAPIKey        string `mapstructure:"RESEND_API_KEY"`
	MailFrom            string `mapstructure:"MAIL_FROM"`
	DonationNotifyEmail string `mapstructure:"DONATION_NOTIFY_EMAIL"`
	DocsPath            string `mapstructure:"DOCS_PATH"`
}

var AppConfig Config

// ConfigurationError reports settings the process cannot start without.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: missing required settings: %s", strings.Join(e.Missing, ", "))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("OAUTH_REDIRECT_URL", "")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", 30*24*time.Hour)
	v.SetDefault("ADMIN_EMAILS", "")
	v.SetDefault("CONTENT_BACKEND", "firestore")
	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	v.SetDefault("FIREBASE_BUCKET", "")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "dharmachain")
	v.SetDefault("CONTENT_CACHE_TTL", 5*time.Minute)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("IMAGE_BACKEND", "cloudinary")
	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("STRIPE_KEY", "")
	v.SetDefault("RESEND_API_KEY", "")
	v.SetDefault("MAIL_FROM", "DharmaChain <donations@dharmachain.org>")
	v.SetDefault("DONATION_NOTIFY_EMAIL", "")
	v.SetDefault("DOCS_PATH", "README.md")
}

// LoadConfig reads config.yaml (if present) and the environment into AppConfig.
func LoadConfig() (*Config, error) {
	v := viper.New()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	AppConfig = cfg
	return &cfg, nil
}

// Validate checks the settings without which sign-in cannot work.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.GoogleClientID) == "" {
		missing = append(missing, "GOOGLE_CLIENT_ID")
	}
	if strings.TrimSpace(c.GoogleClientSecret) == "" {
		missing = append(missing, "GOOGLE_CLIENT_SECRET")
	}
	if strings.TrimSpace(c.SessionSecret) == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

// RedirectURL returns the OAuth callback, derived from PublicBaseURL when not set.
func (c *Config) RedirectURL() string {
	if c.OAuthRedirectURL != "" {
		return c.OAuthRedirectURL
	}
	return strings.TrimRight(c.PublicBaseURL, "/") + "/admin/callback"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
