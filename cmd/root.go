package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/fje/pkg/core"
	"github.com/oakwood-commons/fje/pkg/loader"
	"github.com/oakwood-commons/fje/pkg/logger"
	"github.com/oakwood-commons/fje/pkg/settings"
)

// errNoInput is returned when neither a path nor piped data was given.
var errNoInput = errors.New("no input provided: pass a file, use --file, or pipe a document on stdin")

var (
	inputFile   string
	styleName   string
	iconFamily  string
	inputFormat string
	configFile  string
	debug       bool
)

var rootCtx = context.Background()

// stdinIsPiped reports whether r carries data that was redirected into the
// process. Readers that are not files always count as piped.
var stdinIsPiped = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return true
	}
	if term.IsTerminal(int(f.Fd())) {
		return false
	}
	st, err := f.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeCharDevice == 0
}

var rootCmd = &cobra.Command{
	Use:   "fje [file]",
	Short: "Draw a JSON document as a tree diagram",
	Long: fmt.Sprintf(`fje draws JSON (or YAML/TOML) documents as text tree diagrams.

Styles: %s
Icons:  %s

Defaults come from $XDG_CONFIG_HOME/fje/config.yaml when present; see
'fje config get'.`, strings.Join(core.Styles(), ", "), strings.Join(core.Families(), ", ")),
	Example:       "\n  fje testdata/fruits.json\n  fje -f data.json -s rectangle -i circle\n  cat data.json | fje -i star\n  fje config.yaml --format yaml -s rectangle\n",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// debug => zap.DebugLevel (-1), else zap.InfoLevel (0)
		var level int8
		if debug {
			level = logger.DebugLevel
		}
		lgr := logger.Get(level)
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		rootCtx = logger.WithLogger(context.Background(), lgr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := resolveRun(cmd, args)
		if err != nil {
			return err
		}
		rootCtx = settings.IntoContext(rootCtx, run)
		return renderRun(rootCtx, cmd)
	},
}

// resolveRun merges config defaults, flags and the positional argument into
// the settings for this invocation. Style and icons are validated here so a
// bad identifier never reaches the input.
func resolveRun(cmd *cobra.Command, args []string) (*settings.Run, error) {
	cfg, err := loadMergedConfig(resolveConfigPath(configFile))
	if err != nil {
		return nil, err
	}

	run := settings.NewCliParams()
	run.ConfigFile = configFile
	if debug {
		run.MinLogLevel = logger.DebugLevel
	}
	run.Style = pick(cmd, "style", styleName, cfg.Defaults.Style, run.Style)
	run.Icons = pick(cmd, "icons", iconFamily, cfg.Defaults.Icons, run.Icons)
	run.Format = pick(cmd, "format", inputFormat, cfg.Defaults.Format, run.Format)

	if _, err := core.ParseSelection(run.Style, run.Icons); err != nil {
		return nil, err
	}
	if _, err := loader.ParseFormat(run.Format); err != nil {
		return nil, err
	}

	path := inputFile
	if len(args) == 1 {
		if path != "" && path != args[0] {
			return nil, fmt.Errorf("conflicting inputs %q and --file %q", args[0], path)
		}
		path = args[0]
	}
	switch {
	case path == settings.StdinPath:
		run.Input = settings.InputSettings{Path: path, FromStdin: true}
	case path != "":
		run.Input = settings.InputSettings{Path: path}
	case stdinIsPiped(cmd.InOrStdin()):
		run.Input = settings.InputSettings{FromStdin: true}
	default:
		return nil, errNoInput
	}
	return run, nil
}

// pick returns the flag value when it was set, else the first non-empty
// fallback.
func pick(cmd *cobra.Command, flag, value string, fallbacks ...string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	for _, f := range fallbacks {
		if f != "" {
			return f
		}
	}
	return value
}

func renderRun(ctx context.Context, cmd *cobra.Command) error {
	run, ok := settings.FromContext(ctx)
	if !ok {
		return fmt.Errorf("run settings missing from context")
	}
	lgr := logger.FromContext(ctx)
	lgr.V(1).Info("resolved run",
		logger.InputKey, run.InputName(),
		logger.StyleKey, run.Style,
		logger.IconsKey, run.Icons,
		"format", run.Format,
	)

	sel, err := core.ParseSelection(run.Style, run.Icons)
	if err != nil {
		return err
	}
	engine, err := core.New(core.WithLogger(*lgr), core.WithFormat(loader.Format(run.Format)))
	if err != nil {
		return err
	}

	var out string
	if run.Input.FromStdin {
		out, err = engine.RenderReader(cmd.InOrStdin(), sel)
	} else {
		out, err = engine.RenderFile(run.Input.Path, sel)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

// cliVersionString builds the version line for `fje version` and --version.
func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, go %s)",
		settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, strings.TrimPrefix(runtime.Version(), "go"))
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print fje version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
		return err
	},
}

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List icon families and their glyphs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadMergedConfig(resolveConfigPath(configFile))
		if err != nil {
			return err
		}
		return printIcons(cmd.OutOrStdout(), cfg.Defaults.Icons)
	},
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List diagram styles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadMergedConfig(resolveConfigPath(configFile))
		if err != nil {
			return err
		}
		return printStyles(cmd.OutOrStdout(), cfg.Defaults.Style)
	},
}

// configCmd groups configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage fje configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show merged configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadMergedConfig(resolveConfigPath(configFile))
		if err != nil {
			return err
		}
		return printConfig(cmd.OutOrStdout(), cfg)
	},
}

func init() { //nolint:gochecknoinits
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "path to the input document (\"-\" reads stdin)")
	// No static defaults so help doesn't misstate them; defaults come from config
	rootCmd.Flags().StringVarP(&styleName, "style", "s", "", "diagram style: "+strings.Join(core.Styles(), "|")+" (default from config)")
	rootCmd.Flags().StringVarP(&iconFamily, "icons", "i", "", "icon family (default from config; see 'fje icons')")
	rootCmd.Flags().StringVar(&inputFormat, "format", "", "input format: auto|json|yaml|toml (default from config)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to stderr")

	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(iconsCmd)
	rootCmd.AddCommand(stylesCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
