package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/spark/pkg/errors"
)

// Environment variable names
const (
	// EnvSparkConfigDir overrides the XDG config directory for spark
	EnvSparkConfigDir = "SPARK_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// SparkDirName is the directory name for spark-specific files
	SparkDirName = "spark"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// TemplatesDir is the directory, beside the config file, holding templates
	TemplatesDir = "templates"

	// TemplateExt is the extension of template documents
	TemplateExt = ".toml"
)

// ConfigDir returns the spark configuration directory
func ConfigDir() string {
	if dir := os.Getenv(EnvSparkConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, SparkDirName)
}

// DefaultConfigPath returns the path of the user configuration file
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// TemplatesDirFor returns the templates directory that sits beside the
// given config file
func TemplatesDirFor(configPath string) string {
	dir := filepath.Dir(ExpandHome(configPath))
	return filepath.Join(dir, TemplatesDir)
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := GetHomeDirectory()
		if err != nil {
			return path
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}
