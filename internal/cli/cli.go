// Package cli implements the pyvalid command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/pyvalid/internal/config"
	"github.com/matzehuels/pyvalid/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "pyvalid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Stdout io.Writer // valid package names
	Stderr io.Writer // logs and status lines
	Fs     afero.Fs  // list files and config file

	viper      *viper.Viper
	configFile string
}

// New creates a new CLI instance with a default logger on stderr and the OS
// filesystem.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	fs := afero.NewOsFs()
	return &CLI{
		Logger: newLogger(stderr, level),
		Stdout: stdout,
		Stderr: stderr,
		Fs:     fs,
		viper:  config.NewViper(fs),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetFs replaces the filesystem used for list and config files.
func (c *CLI) SetFs(fs afero.Fs) {
	c.Fs = fs
	c.viper.SetFs(fs)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without a subcommand validates the input list.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "pyvalid keeps the PyPI packages that have a release history",
		Long: `pyvalid reads a list of package names, looks each one up on PyPI and writes
out the names that resolve to a project with more than one published release.

Names are checked one at a time, in input order. Unknown packages are dropped.
Any other registry or network failure aborts the run before the output file
is written.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.configFile != "" {
				c.viper.SetConfigFile(c.configFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)
	c.bindConfigFlags(root)

	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// bindConfigFlags registers the settings flags and binds them to viper so
// flags take precedence over env vars and the config file.
func (c *CLI) bindConfigFlags(root *cobra.Command) {
	defaults := config.Default()
	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (default ./"+config.FileName+" if present)")
	flags.StringP(config.KeyInput, "i", defaults.Input, "file with one candidate package name per line")
	flags.StringP(config.KeyOutput, "o", defaults.Output, "file to write valid package names to (overwritten)")
	flags.String(config.KeyRegistry, defaults.Registry, "PyPI JSON API base URL")
	flags.Duration(config.KeyTimeout, defaults.Timeout, "timeout for each registry request")

	for _, key := range []string{config.KeyInput, config.KeyOutput, config.KeyRegistry, config.KeyTimeout} {
		// Lookup cannot fail for flags registered above.
		_ = c.viper.BindPFlag(key, flags.Lookup(key))
	}
}

// loadConfig resolves the effective configuration.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(c.viper)
}
