package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/yungbote/propdesk-backend/internal/data/db"
	"github.com/yungbote/propdesk-backend/internal/observability"
)

type Config struct {
	LogMode         string        `env:"LOG_MODE" envDefault:"development"`
	LogRedaction    bool          `env:"LOG_REDACTION_ENABLED" envDefault:"true"`
	LogHashSalt     string        `env:"LOG_HASH_SALT"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigins     []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:","`

	// Redis change feed; disabled when RedisAddr is empty.
	RedisAddr       string `env:"REDIS_ADDR"`
	RedisChannel    string `env:"REDIS_CHANNEL" envDefault:"propdesk.changes"`
	RedisLogChanges bool   `env:"REDIS_LOG_CHANGES" envDefault:"false"`

	DB   db.Config
	Otel observability.OtelConfig
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.normalize()
}

// ParseConfig reads Config from environ instead of the process environment.
func ParseConfig(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	switch c.DB.Driver {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	origins := c.CORSOrigins[:0]
	for _, o := range c.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSOrigins = origins
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	return c, nil
}
