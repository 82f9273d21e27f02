package config

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Upstream rate provider
	CurrencyAPIKey      string
	CurrencyAPIURL      string
	CurrencyAPITimeout  time.Duration
	RateCacheMaxEntries int
	RedisURL            string

	FrontendURL string

	// SMTP delivery for OTP and password reset mails
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPFromEmail string
	SMTPFromName  string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	PosthogAPIKey string

	LoginRateLimit string
	APIRateLimit   string
}

// ErrMissingAPIKey is returned when CURRENCY_API_KEY is not configured.
var ErrMissingAPIKey = errors.New("CURRENCY_API_KEY is not configured")

// GoogleEnabled reports whether all Google OAuth settings are present.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}

// SMTPEnabled reports whether outgoing mail can be authenticated.
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	setDefaults()
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL environment variable not set.")
	}

	cfg.CurrencyAPIKey = viper.GetString("CURRENCY_API_KEY")
	if cfg.CurrencyAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = parseDuration("JWT_EXPIRY_DURATION", 24*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.CurrencyAPIURL = viper.GetString("CURRENCY_API_URL")
	cfg.CurrencyAPITimeout = parseDuration("CURRENCY_API_TIMEOUT", 10*time.Second)
	cfg.RateCacheMaxEntries = viper.GetInt("RATE_CACHE_MAX_ENTRIES")
	if cfg.RateCacheMaxEntries <= 0 {
		log.Printf("Warning: Invalid value for RATE_CACHE_MAX_ENTRIES (%d). Defaulting to 1000.\n", cfg.RateCacheMaxEntries)
		cfg.RateCacheMaxEntries = 1000
	}
	cfg.RedisURL = viper.GetString("REDIS_URL")

	cfg.FrontendURL = viper.GetString("FRONTEND_URL")

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPass = viper.GetString("SMTP_PASS")
	cfg.SMTPFromEmail = viper.GetString("SMTP_FROM_EMAIL")
	if cfg.SMTPFromEmail == "" {
		cfg.SMTPFromEmail = cfg.SMTPUser
	}
	cfg.SMTPFromName = viper.GetString("SMTP_FROM_NAME")
	if !cfg.SMTPEnabled() {
		log.Println("Warning: SMTP_USER not set. OTP and reset emails will only be logged.")
	}

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if !cfg.GoogleEnabled() {
		log.Println("Warning: Google OAuth settings incomplete. Google sign-in will not function.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "currency-converter")
	viper.SetDefault("CURRENCY_API_KEY", "")
	viper.SetDefault("CURRENCY_API_URL", "https://api.freecurrencyapi.com/v1")
	viper.SetDefault("CURRENCY_API_TIMEOUT", "10s")
	viper.SetDefault("RATE_CACHE_MAX_ENTRIES", 1000)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("FRONTEND_URL", "http://localhost:5173")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")
	viper.SetDefault("SMTP_FROM_EMAIL", "")
	viper.SetDefault("SMTP_FROM_NAME", "Currency Converter")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("API_RATE_LIMIT", "120-M")
}

// parseDuration reads a duration key, falling back to def on invalid input.
func parseDuration(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
