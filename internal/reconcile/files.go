package reconcile

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/strmsync/strmsync/pkg/constants"
	"github.com/strmsync/strmsync/pkg/errors"
	"github.com/strmsync/strmsync/pkg/logging"
)

// Status is the terminal per-entry result of one reconciliation pass.
type Status string

const (
	// StatusUpdated means the pointer file was written or rewritten.
	StatusUpdated Status = "updated"
	// StatusSkipped means the on-disk content already matched the target.
	StatusSkipped Status = "skipped"
	// StatusErrored means a read or write failed; Err carries the cause.
	StatusErrored Status = "errored"
)

// Outcome is the result of reconciling a single entry.
type Outcome struct {
	Entry  Entry
	Status Status
	Err    error
}

// ReconcileFile brings one pointer file in line with its target URL. The
// existing content is compared trimmed, so incidental trailing whitespace
// from earlier writes or external edits does not force a rewrite. A missing
// file simply means no previous state. I/O failures produce an errored
// outcome and never abort the remaining entries.
func ReconcileFile(ctx context.Context, root string, entry Entry) Outcome {
	target := filepath.Join(root, entry.Path)

	existing, err := os.ReadFile(target)
	if err != nil && !os.IsNotExist(err) {
		return Outcome{Entry: entry, Status: StatusErrored, Err: errors.WrapIO("read", target, err)}
	}

	if err == nil && strings.TrimSpace(string(existing)) == strings.TrimSpace(entry.URL) {
		logging.Ctx(ctx).Debug().Str("path", entry.Path).Msg("Pointer file up to date")
		return Outcome{Entry: entry, Status: StatusSkipped}
	}

	if err := os.WriteFile(target, []byte(entry.URL), constants.FilePermissions); err != nil {
		return Outcome{Entry: entry, Status: StatusErrored, Err: errors.WrapIO("write", target, err)}
	}

	logging.Ctx(ctx).Debug().Str("path", entry.Path).Msg("Pointer file written")
	return Outcome{Entry: entry, Status: StatusUpdated}
}
