package materialize

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/treeforge/treeforge/pkg/logging"
	"github.com/treeforge/treeforge/pkg/types"
)

// relativeMarker prefixes copy sources that live next to the spec file.
const relativeMarker = "./"

// Files materializes the file entries of every directory in the map.
//
// An entry containing a path separator is a copy instruction: the source's
// bytes, permissions and timestamps are copied to directory/basename(source).
// Sources starting with "./" resolve against srcBase, the directory holding
// the spec file. Any other entry creates an empty file with the given mode.
//
// Existing destinations are never overwritten and missing sources are not
// errors; both are logged as warnings and skipped, which is what makes a
// second run against the same root fill gaps only. Returns the paths
// actually written, and the number of entries skipped.
func Files(fsys types.FS, dm *types.DirMap, root, srcBase string, mode fs.FileMode) (created []string, skipped int) {
	logger := logging.GetLogger("materialize.files")

	for _, key := range dm.Keys() {
		files, _ := dm.Get(key)
		if len(files) == 0 {
			continue
		}
		dir := filepath.Join(root, key)

		for _, entry := range files {
			var path string
			var ok bool
			if strings.ContainsRune(entry, '/') {
				path, ok = copyEntry(fsys, logger, entry, dir, srcBase)
			} else {
				path, ok = touchEntry(fsys, logger, entry, dir, mode)
			}
			if ok {
				created = append(created, path)
			} else {
				skipped++
			}
		}
	}
	return created, skipped
}

// copyEntry copies one source file into dir. Returns the destination path
// and whether anything was written.
func copyEntry(fsys types.FS, logger zerolog.Logger, entry, dir, srcBase string) (string, bool) {
	src := entry
	if strings.HasPrefix(src, relativeMarker) {
		src = filepath.Join(srcBase, strings.TrimPrefix(src, relativeMarker))
	}

	info, err := fsys.Stat(src)
	if err != nil {
		logger.Warn().Str("source", src).Msg("Copy source does not exist, skipping")
		return "", false
	}

	dst := filepath.Join(dir, filepath.Base(src))
	if _, err := fsys.Stat(dst); err == nil {
		logger.Warn().Str("path", dst).Msg("File already exists, skipping")
		return "", false
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		logger.Error().Err(err).Str("source", src).Msg("Failed to read copy source")
		return "", false
	}
	if err := fsys.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		logger.Error().Err(err).Str("path", dst).Msg("Failed to copy file")
		return "", false
	}

	// Preserve mode and timestamps; umask may have clipped the write mode.
	if err := fsys.Chmod(dst, info.Mode().Perm()); err != nil {
		logger.Debug().Err(err).Str("path", dst).Msg("Could not preserve file mode")
	}
	if err := fsys.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		logger.Debug().Err(err).Str("path", dst).Msg("Could not preserve file times")
	}

	logger.Info().Str("source", src).Str("path", dst).Msg("Copied file")
	return dst, true
}

// touchEntry creates one empty file in dir. Returns the destination path
// and whether anything was written.
func touchEntry(fsys types.FS, logger zerolog.Logger, entry, dir string, mode fs.FileMode) (string, bool) {
	dst := filepath.Join(dir, entry)
	if _, err := fsys.Stat(dst); err == nil {
		logger.Warn().Str("path", dst).Msg("File already exists, skipping")
		return "", false
	}

	if err := fsys.WriteFile(dst, nil, mode); err != nil {
		logger.Error().Err(err).Str("path", dst).Msg("Failed to create file")
		return "", false
	}

	logger.Info().Str("path", dst).Msg("Created empty file")
	return dst, true
}
