package reconcile

import (
	"context"
	"time"

	"github.com/strmsync/strmsync/pkg/logging"
)

// Report aggregates the outcome of one reconciliation pass. It is created
// at run start, finalized at run end, and not persisted across runs.
type Report struct {
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration" yaml:"duration"`

	// Fetched holds per-source entry counts before deduplication.
	Fetched       map[string]int `json:"fetched" yaml:"fetched"`
	FailedSources []string       `json:"failed_sources,omitempty" yaml:"failed_sources,omitempty"`

	// Entries is the number of unique entries after the merge.
	Entries int `json:"entries" yaml:"entries"`
	Updated int `json:"updated" yaml:"updated"`
	Skipped int `json:"skipped" yaml:"skipped"`
	Errored int `json:"errored" yaml:"errored"`

	// Incomplete marks a run whose orchestration failed partway; counts
	// cover only the work done before the failure.
	Incomplete bool `json:"incomplete,omitempty" yaml:"incomplete,omitempty"`
}

// NewReport creates a report for a run starting now.
func NewReport() *Report {
	return &Report{
		StartedAt: time.Now(),
		Fetched:   make(map[string]int),
	}
}

// Record folds one per-entry outcome into the counts.
func (r *Report) Record(outcome Outcome) {
	switch outcome.Status {
	case StatusUpdated:
		r.Updated++
	case StatusSkipped:
		r.Skipped++
	case StatusErrored:
		r.Errored++
	}
}

// Finalize stamps the elapsed duration.
func (r *Report) Finalize() {
	r.Duration = time.Since(r.StartedAt)
}

// Log emits the run summary at the appropriate level.
func (r *Report) Log(ctx context.Context) {
	event := logging.Ctx(ctx).Info()
	if r.Incomplete {
		event = logging.Ctx(ctx).Error()
	}
	event.
		Int("entries", r.Entries).
		Int("updated", r.Updated).
		Int("skipped", r.Skipped).
		Int("errored", r.Errored).
		Strs("failed_sources", r.FailedSources).
		Dur("duration", r.Duration).
		Bool("incomplete", r.Incomplete).
		Msg("Reconciliation pass finished")
}
