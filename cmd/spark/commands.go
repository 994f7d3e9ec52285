package spark

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/spark/internal/version"
	"github.com/arthur-debert/spark/pkg/config"
	"github.com/arthur-debert/spark/pkg/filesystem"
	"github.com/arthur-debert/spark/pkg/jsonquery"
	"github.com/arthur-debert/spark/pkg/keywords"
	"github.com/arthur-debert/spark/pkg/logging"
	"github.com/arthur-debert/spark/pkg/paths"
	"github.com/arthur-debert/spark/pkg/prompt"
	"github.com/arthur-debert/spark/pkg/style"
	"github.com/arthur-debert/spark/pkg/template"
	"github.com/arthur-debert/spark/pkg/vcs"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// extractOptions holds the flags of the root command
type extractOptions struct {
	quiet      bool
	configPath string
	jsonPath   string
	git        bool
	noLiquid   bool
	from       string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		opts      extractOptions
	)

	rootCmd := &cobra.Command{
		Use:     "spark [template]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			style.Configure(style.FormatAuto)
			loadDotEnv()
			logging.LogCommand(log.Logger, cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return fmt.Errorf(MsgErrNoTemplate)
			}
			return runExtract(cmd, args[0], opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, MsgFlagQuiet)
	flags.StringVar(&opts.jsonPath, "json", "", MsgFlagJSON)
	flags.BoolVar(&opts.git, "git", false, MsgFlagGit)
	flags.BoolVar(&opts.noLiquid, "no-liquid", false, MsgFlagNoLiquid)
	flags.StringVar(&opts.from, "from", "", MsgFlagFrom)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadDotEnv loads .env from the working directory into the environment,
// before the keyword store is seeded from it
func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env")
	}
}

// newPrompter reads from the command's input, interactively when that is
// the process terminal
func newPrompter(cmd *cobra.Command) prompt.Prompter {
	return prompt.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
}

func newExtractor(cmd *cobra.Command, workDir string) *template.Extractor {
	git := vcs.NewGit()
	git.Out = cmd.OutOrStdout()

	ex := template.NewExtractor(newPrompter(cmd), git)
	ex.Out = cmd.OutOrStdout()
	ex.WorkDir = workDir
	return ex
}

func runExtract(cmd *cobra.Command, name string, opts extractOptions) error {
	logger := logging.GetLogger("cmd.extract")
	out := cmd.OutOrStdout()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf(MsgErrWorkDir, err)
	}

	ex := newExtractor(cmd, workDir)

	cfg, err := config.LoadOrBootstrap(opts.configPath, ex)
	if err != nil {
		return err
	}

	store := keywords.Init()
	store.Merge(cfg.Store())
	if opts.from != "" {
		pairs, err := keywords.ParsePairs(opts.from)
		if err != nil {
			return err
		}
		store.Merge(pairs)
	}

	path, err := template.Resolve(ex.FS, name, workDir, cfg.TemplatesPath)
	if err != nil {
		return err
	}

	tmpl, err := template.Load(ex.FS, path)
	if err != nil {
		return err
	}

	if !opts.quiet {
		fmt.Fprintf(out, "\n%s\n", style.Status(MsgUsingTemplate, path))
		template.ShowInfo(out, tmpl, out == io.Writer(os.Stdout) && stdoutIsTerminal())
	}

	options := tmpl.Options.Clone()
	if opts.jsonPath != "" {
		data, err := jsonquery.LoadFile(paths.ExpandHome(opts.jsonPath))
		if err != nil {
			return err
		}
		options.JSONData = data
	}
	if opts.git {
		options.Git = true
		options.ProjectRoot = keywords.ProjectName
	}
	if opts.noLiquid {
		options.UseLiquid = template.Bool(false)
	}
	tmpl.Options = options

	logger.Info().
		Str("template", path).
		Int("files", len(tmpl.Files)).
		Int("keywords", store.Len()).
		Msg("Extracting template")

	result, err := ex.Extract(store, tmpl)
	if err != nil {
		return err
	}

	logger.Info().Int("written", len(result.Written)).Str("project_root", result.Options.ProjectRoot).Msg("Extraction complete")
	return nil
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Long:  MsgInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf(MsgErrWorkDir, err)
			}

			dest := filepath.Base(workDir) + ".toml"
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.Status(MsgCreatingTemplate, dest))

			tmpl, err := template.Generate(filesystem.NewOS(), workDir, filepath.Join(workDir, dest))
			if err != nil {
				return fmt.Errorf(MsgErrGenerate, err)
			}

			fmt.Fprintln(out, style.Success(fmt.Sprintf(MsgTemplateCreated, len(tmpl.Files))))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
