// Package testutil opens throwaway SQLite databases for package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/clientbook/internal/db"
	"github.com/BruksfildServices01/clientbook/internal/logging"
)

// NewSQLiteDB returns an in-memory database private to t, with foreign
// keys enforced and the same gorm options and pool settings as
// production.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), dbpkg.Options(logging.LevelError))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := dbpkg.Configure(db); err != nil {
		t.Fatalf("failed to configure test database: %v", err)
	}

	t.Cleanup(func() {
		_ = dbpkg.Close(db)
	})

	return db
}
