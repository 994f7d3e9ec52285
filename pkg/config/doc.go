// Package config loads the spark user configuration.
//
// The configuration lives at $XDG_CONFIG_HOME/spark/config.toml unless a
// path is given. Values are layered with koanf, later layers winning:
//
//  1. computed defaults (templates directory beside the config file)
//  2. the config file
//  3. non-empty SPARK_* environment variables, e.g. SPARK_TEMPLATES_PATH
//
// The [Keywords] table seeds the keyword store: each name = value pair
// becomes the {{$name}} token. On first run Bootstrap writes an empty config
// and the "new" meta-template into the templates directory.
package config
