package database

import (
	"io/fs"
	"testing"

	"gym-portal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := config.DBConfig{Host: "localhost", Port: "5432", User: "gym", Password: "secret", Name: "gym", TimeZone: "UTC"}
	assert.Equal(t, "host=localhost user=gym password=secret dbname=gym port=5432 sslmode=disable TimeZone=UTC", dsn(cfg))
}

func TestMigrationURLEscapesCredentials(t *testing.T) {
	cfg := config.DBConfig{Host: "db", Port: "5432", User: "gym", Password: "p@ss/word", Name: "portal"}
	assert.Equal(t, "pgx5://gym:p%40ss%2Fword@db:5432/portal?sslmode=disable", migrationURL(cfg))
}

func TestMigrationsAreEmbeddedInPairs(t *testing.T) {
	ups, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationsFS, "migrations/*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}
