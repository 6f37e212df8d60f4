// Package cli implements the lockexport command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lockexport/pkg/buildinfo"
)

// appName is the application name used for env prefixes and display.
const appName = "lockexport"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out    io.Writer // rendered exports
	status io.Writer // human-facing status lines
}

// New creates a new CLI writing exports to out and logs and status lines to
// errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		out:    out,
		status: errOut,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Export Poetry lock files to requirements.txt",
		Long:          `lockexport renders a poetry.lock snapshot into a plain requirements.txt that pip can install from, including VCS, local, and custom-index sources and integrity hashes.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.exportCommand())
	root.AddCommand(c.formatsCommand())
	root.AddCommand(c.completionCommand())

	return root
}
