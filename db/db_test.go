package db

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"up", "down", "status", "reset"} {
		c, err := ParseCommand(s)
		require.NoError(t, err)
		require.Equal(t, Command(s), c)
	}

	_, err := ParseCommand("redo")
	require.ErrorIs(t, err, ErrUnknownCommand)
}

func TestEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(embedMigrations, "migrations/*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{
		"migrations/00001_create_catalog.sql",
		"migrations/00002_catalog_indexes.sql",
	}, files)
}
