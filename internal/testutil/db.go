package testutil

import (
	"testing"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/infrastructure/database/postgres"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// NewTestDB opens an in-memory SQLite database with the cafe schema migrated.
// A single connection keeps every query on the same in-memory database.
func NewTestDB(t *testing.T) *postgres.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db := &postgres.DB{DB: gormDB}
	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}
