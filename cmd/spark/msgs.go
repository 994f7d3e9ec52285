package spark

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A fast and flexible project initializer using TOML-based templates"
	MsgInitShort       = "Create a template from the current directory"
	MsgVersionShort    = "Show version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgUsingTemplate    = "Using Template"
	MsgCreatingTemplate = "Creating Template"
	MsgTemplateCreated  = "Template written with %d file(s)"
	MsgVersionFormat    = "spark %s (commit %s, built %s)\n"

	// Error messages
	MsgErrNoTemplate = "no template specified, use --help"
	MsgErrWorkDir    = "failed to get working directory: %w"
	MsgErrGenerate   = "failed to create template: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagQuiet    = "Hide information of the template"
	MsgFlagConfig   = "Config path (default $XDG_CONFIG_HOME/spark/config.toml)"
	MsgFlagJSON     = "Read dotted placeholder values from a JSON or YAML file"
	MsgFlagGit      = "Initialize a git repo regardless of template options"
	MsgFlagNoLiquid = "Disable Liquid support"
	MsgFlagFrom     = "Key, value pairs to be replaced, skipping prompts (e.g. 'name=spark, author:read=me')"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
