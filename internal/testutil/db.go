package testutil

import (
	"testing"

	"gym-portal/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an in-memory SQLite database with the signup schema.
// The pool is pinned to one connection so every query sees the same memory
// database and a transaction blocks nothing else in the test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.MemberProfile{},
		&entity.PersonalInfo{},
		&entity.HealthInfo{},
		&entity.MedicalCondition{},
	))

	return db
}

// CountRows returns the number of rows in each signup table keyed by table name.
func CountRows(t *testing.T, db *gorm.DB) map[string]int64 {
	t.Helper()

	counts := make(map[string]int64)
	for _, model := range []interface{ TableName() string }{
		entity.User{},
		entity.MemberProfile{},
		entity.PersonalInfo{},
		entity.HealthInfo{},
		entity.MedicalCondition{},
	} {
		var n int64
		require.NoError(t, db.Table(model.TableName()).Count(&n).Error)
		counts[model.TableName()] = n
	}
	return counts
}
