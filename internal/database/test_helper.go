package database

import (
	"testing"

	"cdf-insights/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB returns a migrated in-memory sqlite database that is closed
// when the test ends
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// every pooled connection to :memory: is a separate database
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db := &DB{DB: gdb, driver: config.DriverSQLite}
	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// CleanupTestDB empties every table between tests sharing one database
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, model := range schemaModels {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			t.Logf("cleanup %T: %v", model, err)
		}
	}
}
