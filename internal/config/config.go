package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

type Config struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	DBUrl        string        `envconfig:"DB_URL"`
	DBMaxConns   int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	StoreBackend string        `envconfig:"STORE_BACKEND" default:"postgres"`
	AppEnv       string        `envconfig:"APP_ENV" default:"production"`
	EnableDocs   bool          `envconfig:"ENABLE_API_DOCS" default:"false"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	SupabaseURL        string `envconfig:"SUPABASE_URL"`
	SupabaseAnonKey    string `envconfig:"SUPABASE_ANON_KEY"`
	SupabaseServiceKey string `envconfig:"SUPABASE_SERVICE_KEY"`
	SupabaseJWTSecret  string `envconfig:"SUPABASE_JWT_SECRET"`
	SupabaseBucket     string `envconfig:"SUPABASE_BUCKET"`

	CORSAllowOrigins string  `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	RateLimitRPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"0"`
	RateLimitBurst   int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	cfg.AppEnv = normalizeEnv(cfg.AppEnv)
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	cfg.SupabaseURL = strings.TrimRight(strings.TrimSpace(cfg.SupabaseURL), "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.StoreBackend {
	case StoreBackendPostgres:
		if c.DBUrl == "" {
			errs = append(errs, errors.New("DB_URL is required when STORE_BACKEND=postgres"))
		}
	case StoreBackendMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreBackendPostgres, StoreBackendMemory, c.StoreBackend))
	}
	if c.SupabaseURL == "" && c.SupabaseJWTSecret == "" {
		errs = append(errs, errors.New("SUPABASE_URL or SUPABASE_JWT_SECRET is required to verify tokens"))
	}
	if c.DBMaxConns < 1 {
		errs = append(errs, errors.New("DB_MAX_CONNS must be at least 1"))
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must not be negative"))
	}
	return errors.Join(errs...)
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.AppEnv == "development"
}

func (c *Config) StorageEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseBucket != "" && c.SupabaseServiceKey != ""
}

func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}
