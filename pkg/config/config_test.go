package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/arthur-debert/spark/pkg/filesystem"
	"github.com/arthur-debert/spark/pkg/keywords"
	"github.com/arthur-debert/spark/pkg/render"
	"github.com/arthur-debert/spark/pkg/template"
	"github.com/arthur-debert/spark/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T, answers map[string]string) (*template.Extractor, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &template.Extractor{
		FS:       filesystem.NewOS(),
		Prompter: testutil.NewPrompter(answers),
		Renderer: render.New(),
		Out:      &out,
		WorkDir:  t.TempDir(),
		Logger:   zerolog.Nop(),
	}, &out
}

func TestNew(t *testing.T) {
	c := New("/etc/spark/config.toml")
	assert.Equal(t, "/etc/spark/config.toml", c.Path)
	assert.Equal(t, "/etc/spark/templates", c.TemplatesPath)

	t.Setenv("HOME", "/home/u")
	c = New("~/cfg/config.toml")
	assert.Equal(t, "/home/u/cfg/config.toml", c.Path)
	assert.Equal(t, "/home/u/cfg/templates", c.TemplatesPath)

	t.Setenv("SPARK_CONFIG_DIR", "/opt/spark")
	c = New("")
	assert.Equal(t, "/opt/spark/config.toml", c.Path)
}

func TestLoad(t *testing.T) {
	t.Setenv("SPARK_TEMPLATES_PATH", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	t.Run("missing file uses defaults", func(t *testing.T) {
		c, err := Load(path)
		require.NoError(t, err)
		assert.False(t, c.Exists())
		assert.Equal(t, filepath.Join(dir, "templates"), c.TemplatesPath)
		assert.Empty(t, c.Keywords)
	})

	t.Run("keywords table", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte(`
[Keywords]
AUTHOR = "Jane"
LICENSE = "MIT"
YEAR_OFFSET = 3
DEBUG = false
`), 0644))

		c, err := Load(path)
		require.NoError(t, err)
		assert.True(t, c.Exists())
		assert.Equal(t, map[string]string{
			"AUTHOR":      "Jane",
			"LICENSE":     "MIT",
			"YEAR_OFFSET": "3",
			"DEBUG":       "false",
		}, c.Keywords)

		store := c.Store()
		assert.Equal(t, []string{"{{$AUTHOR}}", "{{$DEBUG}}", "{{$LICENSE}}", "{{$YEAR_OFFSET}}"}, store.Keys())
		assert.Equal(t, "Jane", store.Value(keywords.Token("AUTHOR")))
	})

	t.Run("templates path from file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("templates_path = \"/srv/templates\"\n[Keywords]\n"), 0644))
		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/srv/templates", c.TemplatesPath)
	})

	t.Run("templates path from environment", func(t *testing.T) {
		t.Setenv("SPARK_TEMPLATES_PATH", "/env/templates")
		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/env/templates", c.TemplatesPath)
	})

	t.Run("invalid file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("[Keywords\n"), 0644))
		_, err := Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestBootstrap(t *testing.T) {
	t.Setenv("SPARK_TEMPLATES_PATH", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "spark", "config.toml")

	ex, out := newTestExtractor(t, nil)
	c, err := LoadOrBootstrap(path, ex)
	require.NoError(t, err)

	assert.True(t, c.Exists())
	assert.Empty(t, c.Keywords)
	assert.Contains(t, out.String(), "file written")

	config, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[Keywords]\n", string(config))

	newPath := filepath.Join(c.TemplatesPath, "new.toml")
	meta, err := template.Load(filesystem.NewOS(), newPath)
	require.NoError(t, err)
	assert.Equal(t, "Spark Template", meta.Info.Name)
	require.Len(t, meta.Files, 1)
	assert.Equal(t, filepath.Join(c.TemplatesPath, "{{$PROJECTNAME}}.toml"), meta.Files[0].Path)

	// a second call leaves existing files alone
	require.NoError(t, os.WriteFile(path, []byte("[Keywords]\nAUTHOR = \"Jane\"\n"), 0644))
	c, err = LoadOrBootstrap(path, ex)
	require.NoError(t, err)
	assert.Equal(t, "Jane", c.Keywords["AUTHOR"])
}

func TestBootstrapLogsFirstTimeSetup(t *testing.T) {
	t.Setenv("SPARK_TEMPLATES_PATH", "")
	path := filepath.Join(t.TempDir(), "spark", "config.toml")

	var logs bytes.Buffer
	defer func(old zerolog.Logger, level zerolog.Level) {
		log.Logger = old
		zerolog.SetGlobalLevel(level)
	}(log.Logger, zerolog.GlobalLevel())
	log.Logger = zerolog.New(&logs)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ex, _ := newTestExtractor(t, nil)
	_, err := LoadOrBootstrap(path, ex)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"component":"config"`)
	assert.Contains(t, logs.String(), "first-time setup")

	// nothing is logged once the config exists
	logs.Reset()
	_, err = LoadOrBootstrap(path, ex)
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "first-time setup")
}

func TestMetaTemplateWritesTemplates(t *testing.T) {
	t.Setenv("SPARK_TEMPLATES_PATH", "")
	path := filepath.Join(t.TempDir(), "config.toml")

	ex, _ := newTestExtractor(t, map[string]string{template.ProjectNameLabel: "mytpl"})
	c, err := LoadOrBootstrap(path, ex)
	require.NoError(t, err)

	meta, err := template.Load(filesystem.NewOS(), filepath.Join(c.TemplatesPath, "new.toml"))
	require.NoError(t, err)
	_, err = ex.Extract(keywords.New(), meta)
	require.NoError(t, err)

	written, err := template.Load(filesystem.NewOS(), filepath.Join(c.TemplatesPath, "mytpl.toml"))
	require.NoError(t, err)
	assert.Equal(t, "mytpl", written.Info.Name)
	require.Len(t, written.Files, 1)
	assert.Equal(t, "", written.Files[0].Path)
	assert.Equal(t, "\n", written.Files[0].Content)
}

func TestBootstrapTemplateIsValid(t *testing.T) {
	tmpl, err := BootstrapTemplate()
	require.NoError(t, err)
	assert.Len(t, tmpl.Files, 2)
	assert.Nil(t, tmpl.Info)
}
