package filesystem

import (
	"path/filepath"

	"github.com/arthur-debert/spark/pkg/types"
)

// Filter decides whether a path found by ListFiles is kept
type Filter func(path string, isDir bool) bool

// ListFiles returns every regular file below root, in lexical order.
// Directories and files for which keep returns false are skipped; a nil
// filter keeps everything.
func ListFiles(fsys types.FS, root string, keep Filter) ([]string, error) {
	var files []string

	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if keep != nil && !keep(path, entry.IsDir()) {
			continue
		}

		if entry.IsDir() {
			nested, err := ListFiles(fsys, path, keep)
			if err != nil {
				return nil, err
			}
			files = append(files, nested...)
			continue
		}

		if entry.Type().IsRegular() {
			files = append(files, path)
		}
	}

	return files, nil
}
