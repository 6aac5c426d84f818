package implementations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0002_tokens.sql", "0001_users.SQL", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "0003_nested.sql"), 0o700))

	files, err := migrationFiles(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"0001_users.SQL", "0002_tokens.sql"}, files)
}

func TestMigrationFilesMissingDirectory(t *testing.T) {
	_, err := migrationFiles(filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read migrations directory")
}

func TestShippedMigrationsAreOrdered(t *testing.T) {
	files, err := migrationFiles(filepath.Join("..", "..", "..", "..", "migrations"))

	require.NoError(t, err)
	assert.Equal(t, []string{"0001_create_users.sql", "0002_create_auth_access_tokens.sql"}, files)
}
