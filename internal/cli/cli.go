// Package cli implements the ansifmt command-line interface.
//
// The CLI reads JSON lines records, renders each through an [ansifmt.Codec]
// and writes the colored lines to stdout. It is built on cobra and logs to
// stderr with charmbracelet/log; --verbose (-v) switches to debug level.
//
// # Commands
//
//   - render: render JSON lines from files or stdin
//   - check: compile a config file and report what it defines
//   - colors: print a sample of every color in the ANSI table
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "ansifmt"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	in  io.Reader
	out io.Writer
}

// New creates a CLI reading records from in, writing rendered lines to out
// and logging to errw.
func New(in io.Reader, out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errw, level),
		in:     in,
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "ansifmt renders structured records as colored terminal lines",
		Long:         `ansifmt reads JSON lines records, colors each line by configurable highlight rules and wraps it to the terminal width without ever splitting an escape sequence.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.colorsCommand())

	return root
}
