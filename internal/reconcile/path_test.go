package reconcile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "suffix appended",
			key:  "movies/Foo (2023)",
			want: filepath.Join("movies", "Foo (2023).strm"),
		},
		{
			name: "suffix preserved",
			key:  "shows/Bar.strm",
			want: filepath.Join("shows", "Bar.strm"),
		},
		{
			name: "case of suffix is preserved as given",
			key:  "movies/Baz.STRM",
			want: filepath.Join("movies", "Baz.STRM.strm"),
		},
		{
			name: "bare key",
			key:  "Foo",
			want: "Foo.strm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.key))
		})
	}
}

func TestNormalizeDropsInvalidEntries(t *testing.T) {
	report := NewReport()
	entries := Normalize(context.Background(), map[string]string{
		"movies/Good (2023)": "http://cdn/good",
		"":                   "http://cdn/empty-key",
		"movies/NoURL":       "",
		"movies/Blank":       "   ",
		"../escape":          "http://cdn/escape",
		"/abs/path":          "http://cdn/abs",
	}, report)

	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join("movies", "Good (2023).strm"), entries[0].Path)
	assert.Equal(t, 5, report.Skipped)
}

func TestNormalizeSortsByPath(t *testing.T) {
	report := NewReport()
	entries := Normalize(context.Background(), map[string]string{
		"shows/B":  "http://cdn/b",
		"movies/A": "http://cdn/a",
		"shows/A":  "http://cdn/sa",
	}, report)

	require.Len(t, entries, 3)
	assert.Equal(t, filepath.Join("movies", "A.strm"), entries[0].Path)
	assert.Equal(t, filepath.Join("shows", "A.strm"), entries[1].Path)
	assert.Equal(t, filepath.Join("shows", "B.strm"), entries[2].Path)
}
