package reconcile

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/strmsync/strmsync/pkg/constants"
	"github.com/strmsync/strmsync/pkg/errors"
	"github.com/strmsync/strmsync/pkg/logging"
)

// PlanDirectories computes the minimal set of distinct parent directories
// the entries need, relative to the media root and excluding the root
// itself. The result is sorted so creation order is deterministic.
func PlanDirectories(entries []Entry) []string {
	seen := make(map[string]struct{})
	for _, entry := range entries {
		parent := filepath.Dir(entry.Path)
		if parent == "." || parent == string(filepath.Separator) {
			continue
		}
		seen[parent] = struct{}{}
	}

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// EnsureDirectories creates every planned directory under the media root,
// missing intermediates included, before any file write happens. A failure
// for one directory is logged and does not stop the others; entries beneath
// it will fail individually at write time instead of vanishing silently.
func EnsureDirectories(ctx context.Context, root string, dirs []string) {
	for _, dir := range dirs {
		target := filepath.Join(root, dir)
		if err := os.MkdirAll(target, constants.DirPermissions); err != nil {
			logging.Ctx(ctx).Error().
				Err(errors.WrapIO("mkdir", target, err)).
				Msg("Directory creation failed")
		}
	}
}
