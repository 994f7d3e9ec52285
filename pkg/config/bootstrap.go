package config

import (
	_ "embed"

	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/arthur-debert/spark/pkg/keywords"
	"github.com/arthur-debert/spark/pkg/logging"
	"github.com/arthur-debert/spark/pkg/template"
)

//go:embed embedded/bootstrap.toml
var bootstrapTemplate []byte

// BootstrapTemplate returns the template written on first run
func BootstrapTemplate() (*template.Template, error) {
	return template.Parse(bootstrapTemplate)
}

// Bootstrap writes the config file and the "new" meta-template using ex
func (c *Config) Bootstrap(ex *template.Extractor) error {
	logger := logging.GetLogger("config.bootstrap")

	tmpl, err := BootstrapTemplate()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "embedded bootstrap template is invalid")
	}

	store := keywords.New()
	store.Set(keywords.ConfigPath, c.Path)
	store.Set(keywords.TemplatesPath, c.TemplatesPath)

	if _, err := ex.Extract(store, tmpl); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to create config files").
			WithDetail("path", c.Path)
	}

	logger.Info().Str("path", c.Path).Str("templates", c.TemplatesPath).Msg("Config bootstrapped")
	return nil
}

// LoadOrBootstrap loads the config at path, bootstrapping it first when the
// file does not exist yet
func LoadOrBootstrap(path string, ex *template.Extractor) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	if c.Exists() {
		return c, nil
	}

	logger := logging.GetLogger("config")
	logger.Info().Msg("Creating config files and templates for first-time setup...")
	if err := c.Bootstrap(ex); err != nil {
		return nil, err
	}
	return Load(path)
}
