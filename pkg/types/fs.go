package types

import (
	"io/fs"
	"time"
)

// FS is the filesystem surface the materializers operate through. The
// production implementation wraps the OS; tests inject an in-memory one.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error
}
