package template

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/arthur-debert/spark/pkg/filesystem"
	"github.com/arthur-debert/spark/pkg/logging"
	"github.com/arthur-debert/spark/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// Generate turns every file below root into a template written to dest.
// .git directories, dest itself and files that are not valid UTF-8 text are
// skipped. File paths are stored relative to root.
func Generate(fsys types.FS, root, dest string) (*Template, error) {
	logger := logging.GetLogger("template.generate")

	absDest, _ := filepath.Abs(dest)
	keep := func(path string, isDir bool) bool {
		if isDir {
			return filepath.Base(path) != ".git"
		}
		abs, _ := filepath.Abs(path)
		return abs != absDest
	}

	list, err := filesystem.ListFiles(fsys, root, keep)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list files in %s", root).
			WithDetail("path", root)
	}

	tmpl := &Template{Files: make([]File, 0, len(list))}
	for _, path := range list {
		data, err := fsys.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path).
				WithDetail("path", path)
		}
		if !utf8.Valid(data) {
			logger.Warn().Str("path", path).Msg("Skipping binary file")
			continue
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		tmpl.Files = append(tmpl.Files, File{
			Path:    filepath.ToSlash(rel),
			Content: string(data),
		})
	}

	out, err := Encode(tmpl)
	if err != nil {
		return nil, err
	}
	if err := fsys.WriteFile(dest, out, 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest).
			WithDetail("path", dest)
	}

	logger.Info().Str("dest", dest).Int("files", len(tmpl.Files)).Msg("Template generated")
	return tmpl, nil
}

// Encode serializes a template document
func Encode(tmpl *Template) ([]byte, error) {
	out, err := toml.Marshal(tmpl)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplateEncode, "failed to encode template")
	}
	return out, nil
}
