package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/spark/pkg/filesystem"
	"github.com/arthur-debert/spark/pkg/types"
)

// FaultFS wraps a types.FS and fails operations on configured paths
type FaultFS struct {
	types.FS

	mu         sync.RWMutex
	errorPaths map[string]error
	writes     []string
	log        *EventLog
}

// NewFaultFS wraps base; a nil base uses an in-memory filesystem
func NewFaultFS(base types.FS) *FaultFS {
	if base == nil {
		base = filesystem.NewMemory()
	}
	return &FaultFS{FS: base, errorPaths: make(map[string]error)}
}

// WithError configures the filesystem to return err for path
func (f *FaultFS) WithError(path string, err error) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errorPaths[filepath.Clean(path)] = err
	return f
}

// WithLog records every successful write in log as "write <path>"
func (f *FaultFS) WithLog(log *EventLog) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.log = log
	return f
}

// Writes returns the paths successfully written, in order
func (f *FaultFS) Writes() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, len(f.writes))
	copy(out, f.writes)
	return out
}

func (f *FaultFS) fault(path string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.errorPaths[filepath.Clean(path)]
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.fault(name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultFS) ReadFile(name string) ([]byte, error) {
	if err := f.fault(name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.fault(name); err != nil {
		return err
	}
	if err := f.FS.WriteFile(name, data, perm); err != nil {
		return err
	}
	f.mu.Lock()
	f.writes = append(f.writes, name)
	log := f.log
	f.mu.Unlock()
	log.Add("write " + name)
	return nil
}

func (f *FaultFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.fault(path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.fault(name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}
