package reconcile

import (
	"context"
	"fmt"

	"github.com/strmsync/strmsync/internal/mapping"
	"github.com/strmsync/strmsync/internal/sources"
	"github.com/strmsync/strmsync/pkg/logging"
)

// Runner coordinates one full reconciliation pass: fetch all sources, merge,
// normalize, plan directories, reconcile files, report. Every per-source and
// per-entry failure is isolated; a run always ends in a report, never an
// error.
type Runner struct {
	root    string
	sources []sources.Source
	fetcher *sources.Fetcher
}

// NewRunner creates a runner writing under the given media root.
func NewRunner(root string, srcs []sources.Source, fetcher *sources.Fetcher) *Runner {
	return &Runner{
		root:    root,
		sources: srcs,
		fetcher: fetcher,
	}
}

// Run executes one reconciliation pass. If the orchestration itself fails
// unexpectedly, the panic is recovered and the report comes back flagged
// incomplete rather than crashing the process.
func (r *Runner) Run(ctx context.Context) (report *Report) {
	report = NewReport()
	defer func() {
		if p := recover(); p != nil {
			report.Incomplete = true
			report.Finalize()
			logging.Ctx(ctx).Error().
				Err(fmt.Errorf("reconciliation pass panicked: %v", p)).
				Msg("Run aborted")
		}
	}()

	logging.Ctx(ctx).Info().
		Int("sources", len(r.sources)).
		Str("root", r.root).
		Msg("Starting reconciliation pass")

	results := r.fetcher.FetchAll(ctx, r.sources)
	for _, result := range results {
		if !result.OK() {
			report.FailedSources = append(report.FailedSources, result.Source.Name)
		}
	}

	merged := mapping.Merge(ctx, results)
	report.Fetched = merged.Fetched
	report.Entries = merged.Len()

	// Nothing fetched anywhere: a no-op pass, not an error.
	if merged.Len() == 0 {
		logging.Ctx(ctx).Warn().Msg("Merged mapping is empty, nothing to reconcile")
		report.Finalize()
		report.Log(ctx)
		return report
	}

	entries := Normalize(ctx, merged.Entries(), report)

	// All directories are materialized before the first file write.
	EnsureDirectories(ctx, r.root, PlanDirectories(entries))

	for _, entry := range entries {
		outcome := ReconcileFile(ctx, r.root, entry)
		if outcome.Err != nil {
			logging.Ctx(ctx).Error().
				Err(outcome.Err).
				Str("path", entry.Path).
				Msg("Entry reconciliation failed")
		}
		report.Record(outcome)
	}

	report.Finalize()
	report.Log(ctx)
	return report
}
