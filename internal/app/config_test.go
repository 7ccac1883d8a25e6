package app

import (
	"testing"
	"time"

	"github.com/yungbote/propdesk-backend/internal/data/db"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(map[string]string{})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.LogMode != "development" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DB.Driver != db.DriverPostgres || cfg.DB.Port != "5432" {
		t.Fatalf("unexpected db defaults: %+v", cfg.DB)
	}
	if !cfg.AutoMigrate || cfg.RedisAddr != "" || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Otel.Enabled {
		t.Fatalf("otel should default to disabled")
	}
	if !cfg.LogRedaction || cfg.LogHashSalt != "" {
		t.Fatalf("log redaction should default on without salt")
	}
}

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := ParseConfig(map[string]string{
		"DB_DRIVER":          "SQLite",
		"SQLITE_PATH":        "/tmp/desk.db",
		"HTTP_ADDR":          ":9090",
		"REDIS_ADDR":         "redis:6379",
		"CORS_ALLOW_ORIGINS": "https://a.example.com, ,https://b.example.com",
		"OTEL_ENABLED":       "true",
		"OTEL_SAMPLER_RATIO": "0.5",
		"SHUTDOWN_TIMEOUT":   "3s",
	})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.DB.Driver != db.DriverSQLite || cfg.DB.SQLitePath != "/tmp/desk.db" {
		t.Fatalf("db = %+v", cfg.DB)
	}
	if cfg.HTTPAddr != ":9090" || cfg.RedisAddr != "redis:6379" || cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.com" {
		t.Fatalf("origins = %v", cfg.CORSOrigins)
	}
	if !cfg.Otel.Enabled || cfg.Otel.SampleRatio != 0.5 {
		t.Fatalf("otel = %+v", cfg.Otel)
	}
}

func TestParseConfigRejectsUnknownDriver(t *testing.T) {
	if _, err := ParseConfig(map[string]string{"DB_DRIVER": "mysql"}); err == nil {
		t.Fatalf("expected error")
	}
}
