package materialize

import (
	"io/fs"
	"path/filepath"

	"github.com/treeforge/treeforge/pkg/logging"
	"github.com/treeforge/treeforge/pkg/types"
)

// Dirs creates every directory of the map under root, including missing
// intermediate segments. Pre-existing directories are skipped silently
// apart from a log line; OS-level failures are logged and skipped too, so a
// partially built target tree never aborts the run. Returns the paths that
// were actually created, and the number skipped.
func Dirs(fsys types.FS, dm *types.DirMap, root string, mode fs.FileMode) (created []string, skipped int) {
	logger := logging.GetLogger("materialize.dirs")

	for _, key := range dm.Keys() {
		fullPath := filepath.Join(root, key)

		if _, err := fsys.Stat(fullPath); err == nil {
			logger.Debug().Str("path", fullPath).Msg("Directory already exists, skipping")
			skipped++
			continue
		}

		if err := fsys.MkdirAll(fullPath, mode); err != nil {
			logger.Error().Err(err).Str("path", fullPath).Msg("Failed to create directory")
			skipped++
			continue
		}

		logger.Info().Str("path", fullPath).Msg("Created directory")
		created = append(created, fullPath)
	}
	return created, skipped
}
