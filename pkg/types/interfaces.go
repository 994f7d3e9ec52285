package types

import (
	"io/fs"
)

// FS is what template loading, extraction and generation need from a
// filesystem. Paths are passed through unchanged; callers expand ~ and
// resolve relative paths first.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	// WriteFile overwrites existing files
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll succeeds when path already exists as a directory
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}
