// Package reconcile contains the reconciliation engine: normalizing merged
// mapping entries into pointer-file paths, materializing their directories,
// writing files only when content changed, and aggregating a run report.
package reconcile

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/strmsync/strmsync/pkg/constants"
	"github.com/strmsync/strmsync/pkg/logging"
)

// Entry is one normalized (path, URL) pair targeted for reconciliation.
// Path is relative to the media root and always ends with the pointer suffix.
type Entry struct {
	Path string
	URL  string
}

// NormalizePath converts a logical mapping key into a canonical relative
// pointer-file path. The pointer suffix is appended unless already present,
// case preserved as given.
func NormalizePath(key string) string {
	path := filepath.FromSlash(key)
	if !strings.HasSuffix(path, constants.PointerSuffix) {
		path += constants.PointerSuffix
	}
	return path
}

// validKey reports whether a mapping entry can be reconciled. Empty keys or
// URLs carry nothing to write, and keys that would escape the media root
// (absolute paths, ".." segments) are refused rather than sanitized.
func validKey(key, url string) bool {
	if strings.TrimSpace(key) == "" || strings.TrimSpace(url) == "" {
		return false
	}
	return filepath.IsLocal(filepath.FromSlash(key))
}

// Normalize turns a merged mapping into the entry list for this run.
// Invalid items are dropped and counted as skipped; the run is never failed
// by a bad entry. The returned order is sorted by path for stable logs.
func Normalize(ctx context.Context, mapping map[string]string, report *Report) []Entry {
	entries := make([]Entry, 0, len(mapping))
	for key, url := range mapping {
		if !validKey(key, url) {
			logging.Ctx(ctx).Warn().
				Str("key", key).
				Msg("Dropping entry with empty or unsafe key/URL")
			report.Skipped++
			continue
		}
		entries = append(entries, Entry{Path: NormalizePath(key), URL: url})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}
