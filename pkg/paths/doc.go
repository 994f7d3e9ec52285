// Package paths provides centralized path handling for spark.
//
// It resolves the configuration locations with the XDG Base Directory
// conventions and expands the leading home-directory marker that template
// paths are allowed to use.
//
// # Environment Variables
//
//   - SPARK_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/spark)
//   - HOME: Used to expand ~ when the user home directory cannot be determined
//
// # Layout
//
//	$XDG_CONFIG_HOME/spark/
//	├── config.toml   # [Keywords] table and optional templates_path
//	└── templates/    # templates looked up by name
package paths
