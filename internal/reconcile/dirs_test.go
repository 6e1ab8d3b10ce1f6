package reconcile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDirectories(t *testing.T) {
	entries := []Entry{
		{Path: filepath.Join("movies", "Foo (2023).strm")},
		{Path: filepath.Join("movies", "Bar (2020).strm")},
		{Path: filepath.Join("shows", "Baz", "S01E01.strm")},
		{Path: "Rootfile.strm"},
	}

	dirs := PlanDirectories(entries)

	// Shared parents collapse to one, the media root itself is excluded.
	assert.Equal(t, []string{"movies", filepath.Join("shows", "Baz")}, dirs)
}

func TestPlanDirectoriesEmpty(t *testing.T) {
	assert.Empty(t, PlanDirectories(nil))
	assert.Empty(t, PlanDirectories([]Entry{{Path: "OnlyRoot.strm"}}))
}

func TestEnsureDirectoriesCreatesIntermediates(t *testing.T) {
	root := t.TempDir()

	EnsureDirectories(context.Background(), root, []string{
		filepath.Join("shows", "Baz", "Season 01"),
		"movies",
	})

	info, err := os.Stat(filepath.Join(root, "shows", "Baz", "Season 01"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = os.Stat(filepath.Join(root, "movies"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDirectoriesToleratesExistingAndFailures(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "movies"), 0o755))

	// A file occupying a planned directory name makes MkdirAll fail; the
	// remaining directories must still be created.
	require.NoError(t, os.WriteFile(filepath.Join(root, "blocked"), []byte("x"), 0o644))

	EnsureDirectories(context.Background(), root, []string{"blocked", "movies", "shows"})

	info, err := os.Stat(filepath.Join(root, "shows"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
