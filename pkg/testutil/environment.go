package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnvironment is an isolated directory layout for tests that touch the
// real filesystem: HOME, XDG directories and the working directory all point
// into a temp directory removed after the test.
type TestEnvironment struct {
	Root       string
	HomeDir    string
	WorkDir    string
	ConfigPath string
	// TemplatesDir is the templates directory beside ConfigPath
	TemplatesDir string
}

// NewTestEnvironment creates the layout, points the environment at it and
// changes into WorkDir. Tests using it must not run in parallel.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:         root,
		HomeDir:      filepath.Join(root, "home"),
		WorkDir:      filepath.Join(root, "work"),
		ConfigPath:   filepath.Join(root, "config", "spark", "config.toml"),
		TemplatesDir: filepath.Join(root, "config", "spark", "templates"),
	}

	for _, dir := range []string{env.HomeDir, env.WorkDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("SPARK_CONFIG_DIR", "")
	t.Setenv("SPARK_TEMPLATES_PATH", "")
	t.Setenv("NO_COLOR", "1")

	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(env.WorkDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })

	return env
}

// WriteFile writes content to a path relative to WorkDir, creating parents
func (e *TestEnvironment) WriteFile(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(e.WorkDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of a path relative to WorkDir
func (e *TestEnvironment) ReadFile(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.WorkDir, rel))
	if err != nil {
		t.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}
