package testutil

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/propdesk-backend/internal/data/db"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB opens a private in-memory sqlite database with every table migrated.
// It is closed when the test ends.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	name := strings.ReplaceAll(uuid.New().String(), "-", "")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		tb.Fatalf("sqlite handle: %v", err)
	}
	// One connection keeps the in-memory database alive and serializes
	// writers the way a single request would.
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrateAll(gdb); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return gdb
}

// Count returns the number of rows in model's table.
func Count(tb testing.TB, gdb *gorm.DB, model any) int64 {
	tb.Helper()
	var n int64
	if err := gdb.Model(model).Count(&n).Error; err != nil {
		tb.Fatalf("count %T: %v", model, err)
	}
	return n
}
