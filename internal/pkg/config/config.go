package config

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Token    TokenConfig
	Cookie   CookieConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Alerts   AlertConfig
	Insights InsightsConfig
	CORS     CORSConfig
}

// TokenConfig is passed to the session token issuer/verifier.
type TokenConfig struct {
	Secret string `env:"JWT_SECRET, required"`
	Issuer string `env:"JWT_ISSUER, default=propertyhub"`
}

// CookieConfig describes the session cookie written on sign-in.
type CookieConfig struct {
	Name     string `env:"COOKIE_NAME,      default=access_token"`
	Domain   string `env:"COOKIE_DOMAIN"`
	Secure   bool   `env:"COOKIE_SECURE,    default=false"`
	SameSite string `env:"COOKIE_SAME_SITE, default=lax"`
}

// SameSiteMode maps the configured string to http.SameSite.
func (c CookieConfig) SameSiteMode() http.SameSite {
	switch strings.ToLower(c.SameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, required"`
	Database string `env:"MONGO_DB,  default=propertyhub"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// AlertConfig sizes the asynchronous alert dispatcher. Workers=0 writes
// alerts inline.
type AlertConfig struct {
	Workers int `env:"ALERT_WORKERS, default=2"`
	Buffer  int `env:"ALERT_BUFFER,  default=256"`
}

type InsightsConfig struct {
	CacheTTL time.Duration `env:"INSIGHTS_CACHE_TTL, default=5m"`

	// Cron expression for the background refresh. Empty disables it.
	RefreshSchedule string `env:"INSIGHTS_REFRESH_SCHEDULE, default=@every 4m"`
}

type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS, default=http://localhost:5173"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
