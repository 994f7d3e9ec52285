package template

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/arthur-debert/spark/pkg/paths"
	"github.com/arthur-debert/spark/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// Parse decodes a template document
func Parse(data []byte) (*Template, error) {
	var tmpl Template
	if err := toml.Unmarshal(data, &tmpl); err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplateParse, "failed to parse template")
	}
	return &tmpl, nil
}

// Load reads and decodes the template at path
func Load(fsys types.FS, path string) (*Template, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateNotFound, "failed to read template %s", path).
			WithDetail("path", path)
	}

	tmpl, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateParse, "invalid template %s", path).
			WithDetail("path", path)
	}
	return tmpl, nil
}

// Resolve finds the template document for name. The .toml extension is
// added when missing; the working directory is searched before the
// templates directory.
func Resolve(fsys types.FS, name, workDir, templatesDir string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New(errors.ErrInvalidInput, "no template name given")
	}

	file := paths.ExpandHome(name)
	if !strings.HasSuffix(file, paths.TemplateExt) {
		file += paths.TemplateExt
	}

	var candidates []string
	if filepath.IsAbs(file) {
		candidates = append(candidates, file)
	} else {
		candidates = append(candidates, filepath.Join(workDir, file))
		if templatesDir != "" {
			candidates = append(candidates, filepath.Join(templatesDir, file))
		}
	}

	for _, candidate := range candidates {
		if info, err := fsys.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Newf(errors.ErrTemplateNotFound, "template %s not found", name).
		WithDetail("name", name).
		WithDetail("searched", candidates)
}
