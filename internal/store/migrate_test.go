package store

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationVersions(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"migrations/002_indexes.sql": {Data: []byte("SELECT 1;")},
		"migrations/001_initial.sql": {Data: []byte("SELECT 1;")},
		"migrations/README.md":       {Data: []byte("notes")},
		"migrations/drafts/x.sql":    {Data: []byte("SELECT 1;")},
	}

	got, err := migrationVersions(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_initial.sql", "002_indexes.sql"}, got)
}

func TestMigrationVersions_Embedded(t *testing.T) {
	t.Parallel()

	got, err := migrationVersions(migrationsFS)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "001_initial_schema.sql", got[0])
}
