package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/propdesk-backend/internal/platform/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config selects and addresses the relational store.
type Config struct {
	Driver     string `env:"DB_DRIVER" envDefault:"postgres"`
	Host       string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port       string `env:"POSTGRES_PORT" envDefault:"5432"`
	User       string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password   string `env:"POSTGRES_PASSWORD"`
	Name       string `env:"POSTGRES_NAME" envDefault:"propdesk"`
	SSLMode    string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"propdesk.db"`
}

func (c Config) postgresDSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
		sslMode,
	)
}

type Service struct {
	db     *gorm.DB
	driver string
	log    *logger.Logger
}

// Open connects to the configured store. Postgres is the production driver;
// sqlite serves local runs and tests.
func Open(cfg Config, logg *logger.Logger) (*Service, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" {
		driver = DriverPostgres
	}
	serviceLog := logg.With("service", "DBService", "driver", driver)

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.postgresDSN())
	case DriverSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = "propdesk.db"
		}
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   NewGormLogger(serviceLog),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	serviceLog.Info("Connected to database")
	return &Service{db: gormDB, driver: driver, log: serviceLog}, nil
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) Driver() string { return s.driver }

// Ping checks that the underlying connection pool can reach the store.
func (s *Service) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewGormLogger routes gorm's warnings (slow queries, errors) through the
// service logger.
func NewGormLogger(log *logger.Logger) gormLogger.Interface {
	return gormLogger.New(
		gormWriter{log: log},
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

type gormWriter struct {
	log *logger.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)), "component", "gorm")
}
