package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/arthur-debert/spark/pkg/keywords"
	"github.com/arthur-debert/spark/pkg/logging"
	"github.com/arthur-debert/spark/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables overriding config keys
const EnvPrefix = "SPARK_"

// Config keys
const (
	KeyTemplatesPath = "templates_path"
	KeyKeywords      = "Keywords"
)

// Config is the resolved user configuration
type Config struct {
	// Path of the config file, with ~ expanded
	Path string
	// TemplatesPath is the directory templates are looked up in
	TemplatesPath string
	// Keywords holds the [Keywords] table, by bare name
	Keywords map[string]string
}

// New returns the configuration for path without reading it. An empty path
// means the default location.
func New(path string) *Config {
	if strings.TrimSpace(path) == "" {
		path = paths.DefaultConfigPath()
	}
	path = paths.ExpandHome(path)
	return &Config{
		Path:          path,
		TemplatesPath: paths.TemplatesDirFor(path),
		Keywords:      map[string]string{},
	}
}

// Exists reports whether the config file is present
func (c *Config) Exists() bool {
	info, err := os.Stat(c.Path)
	return err == nil && !info.IsDir()
}

// Load reads the configuration at path. A missing file is not an error: the
// defaults and environment still apply.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	c := New(path)

	k := koanf.New(".")

	defaults := map[string]interface{}{
		KeyTemplatesPath: c.TemplatesPath,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if c.Exists() {
		if err := k.Load(file.Provider(c.Path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", c.Path).
				WithDetail("path", c.Path)
		}
	}

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if templates := k.String(KeyTemplatesPath); templates != "" {
		c.TemplatesPath = filepath.Clean(paths.ExpandHome(templates))
	}

	for name, value := range k.Cut(KeyKeywords).All() {
		c.Keywords[name] = stringify(value)
	}

	logger.Debug().
		Str("path", c.Path).
		Str("templates", c.TemplatesPath).
		Int("keywords", len(c.Keywords)).
		Msg("Config loaded")

	return c, nil
}

// Store returns the [Keywords] table as tokens, in lexical order of names
func (c *Config) Store() *keywords.Store {
	s := keywords.New()
	names := make([]string, 0, len(c.Keywords))
	for name := range c.Keywords {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.SetName(name, c.Keywords[name])
	}
	return s
}

func stringify(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case nil:
		return ""
	default:
		return fmt.Sprint(value)
	}
}
