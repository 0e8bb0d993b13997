// Package testutil builds throwaway databases for package tests.
package testutil

import (
	"testing"

	"github.com/lshigami/trivia/config"
	"github.com/lshigami/trivia/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory sqlite database, seeded with the trivia fixture
// (6 categories, 19 questions) when seed is true.
func NewDB(t testing.TB, seed bool) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.Database{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	if seed {
		require.NoError(t, database.Seed(db))
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
