package lib

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestHistoryMigrations(t *testing.T) {
	migrations, err := HistoryMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	require.Equal(t, "0001_evaluations", migrations[0].Name)
	require.True(t, strings.HasPrefix(migrations[0].UpSQL, "CREATE TABLE"))
	require.True(t, strings.HasPrefix(migrations[0].DownSQL, "DROP TABLE"))

	require.Equal(t, "0002_evaluations_run", migrations[1].Name)
	require.True(t, strings.HasPrefix(migrations[1].UpSQL, "ALTER TABLE"))
	require.NotEmpty(t, migrations[1].DownSQL)
}

func TestReadMigrationsSortsAndPairs(t *testing.T) {
	fsys := fstest.MapFS{
		"m/0002_b.up.sql":   {Data: []byte("up b")},
		"m/0001_a.down.sql": {Data: []byte("down a")},
		"m/0001_a.up.sql":   {Data: []byte("up a")},
		"m/README.md":       {Data: []byte("ignored")},
	}

	migrations, err := ReadMigrations(fsys, "m")
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	require.Equal(t, "0001_a", migrations[0].Name)
	require.Equal(t, "up a", migrations[0].UpSQL)
	require.Equal(t, "down a", migrations[0].DownSQL)

	require.Equal(t, "0002_b", migrations[1].Name)
	require.Equal(t, "up b", migrations[1].UpSQL)
	require.Equal(t, "", migrations[1].DownSQL)
}

func TestReadMigrationsMissingDir(t *testing.T) {
	_, err := ReadMigrations(fstest.MapFS{}, "missing")
	require.Error(t, err)
}
