// Package cli implements the noticegen command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/noticegen/internal/config"
	"github.com/matzehuels/noticegen/pkg/buildinfo"
	"github.com/matzehuels/noticegen/pkg/observability"
	"github.com/matzehuels/noticegen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used in help and completion output.
	appName = "noticegen"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands. Rendered output goes to Out;
// logs and status lines go to Err.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer
	Err    io.Writer
}

// New creates a new CLI instance writing output to out and logs to errw.
func New(out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errw, level),
		Out:    out,
		Err:    errw,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. The root command itself
// renders notices; list, browse and convert share its input and filter flags.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.renderCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.SetErr(c.Err)
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		observability.SetPipelineHooks(logHooks{logger: c.Logger})
		return nil
	}

	root.AddCommand(c.listCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Shared Flags
// =============================================================================

// sharedFlags are the input and filter flags every command accepts.
type sharedFlags struct {
	opts       pipeline.Options
	configFile string
}

func (f *sharedFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.opts.InputFile, "input-file", "i", "", "an input source JSON file (cargo-license or license-checker output)")
	fs.StringVar(&f.opts.MatchName, "match-name", "", "a regex pattern filtering by name (default: match all)")
	fs.StringVar(&f.opts.MatchLicense, "match-license", "", "a regex pattern filtering by license (default: match all)")
	fs.BoolVar(&f.opts.MatchNameInvert, "match-name-invert", false, "invert the --match-name result")
	fs.BoolVar(&f.opts.MatchLicenseInvert, "match-license-invert", false, "invert the --match-license result")
	fs.StringVar(&f.configFile, "config", "", "a TOML or YAML file with default option values")
}

// resolve merges the config file (if any) under the flags the user set and
// applies defaults.
func (f *sharedFlags) resolve(cmd *cobra.Command) (pipeline.Options, error) {
	opts := f.opts
	if f.configFile != "" {
		file, err := config.Load(f.configFile)
		if err != nil {
			return opts, err
		}
		config.Apply(&opts, file, func(name string) bool { return cmd.Flags().Changed(name) })
	}
	opts.SetDefaults()
	return opts, nil
}
