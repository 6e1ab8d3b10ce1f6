// Package mapping merges per-source mapping documents into one canonical
// key-to-URL mapping.
package mapping

import (
	"context"

	"github.com/strmsync/strmsync/internal/sources"
	"github.com/strmsync/strmsync/pkg/logging"
)

// Merged is the deduplicated union of all successful source mappings.
// Exactly one URL per key; a later source wins on key collision.
type Merged struct {
	entries map[string]string

	// Fetched records how many entries each successful source contributed
	// before deduplication, keyed by source name.
	Fetched map[string]int
}

// Entries returns the merged key-to-URL mapping.
func (m *Merged) Entries() map[string]string {
	return m.entries
}

// Len returns the number of unique keys after the merge.
func (m *Merged) Len() int {
	return len(m.entries)
}

// Merge folds the fetch results into one mapping, iterating them in their
// given (configuration-derived) order so the outcome is independent of
// network timing. Failed sources are skipped; key collisions are resolved
// by overwrite and logged, never treated as errors.
func Merge(ctx context.Context, results []sources.Result) *Merged {
	merged := &Merged{
		entries: make(map[string]string),
		Fetched: make(map[string]int),
	}

	for _, result := range results {
		if !result.OK() {
			continue
		}
		merged.Fetched[result.Source.Name] = len(result.Mapping)

		for key, url := range result.Mapping {
			if previous, collided := merged.entries[key]; collided && previous != url {
				logging.Ctx(ctx).Debug().
					Str("source", result.Source.Name).
					Str("key", key).
					Msg("Key collision, later source wins")
			}
			merged.entries[key] = url
		}
	}

	return merged
}
