// Package cli implements the seqdiff command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for the root command and messages.
const appName = "seqdiff"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is reported by --version. Overridden at build time with -ldflags.
var version = "dev"

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag; empty means defaults only.
	configPath string

	// verbose is the --verbose flag; it lowers the log level to debug.
	verbose bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "seqdiff finds the longest common subsequence of two files",
		Long:         `seqdiff compares two files as sequences of lines, words or runes and reports the runs they have in common, with edit distance and similarity.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML file with default options")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log tokenizing and timing at debug level")

	root.AddCommand(c.runsCommand())
	root.AddCommand(c.statsCommand())

	return root
}
