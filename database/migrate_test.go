package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{
		"00001_create_users.sql",
		"00002_create_reviews.sql",
		"00003_create_revoked_tokens.sql",
	}, names)
}

func TestMigrate_UsesEmbeddedDir(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	var gotDir string
	gooseUp = func(_ context.Context, _ *sql.DB, dir string) error {
		gotDir = dir
		return nil
	}

	require.NoError(t, Migrate(context.Background(), nil))
	assert.Equal(t, "migrations", gotDir)
}

func TestMigrate_WrapsError(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	gooseUp = func(context.Context, *sql.DB, string) error { return errors.New("boom") }

	err := Migrate(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply migrations: boom")
}
