// Package cli implements the lvmatch command-line interface.
//
// # Commands
//
//   - match:   maximum-cardinality matching of a graph file
//   - reorder: pseudo-temperature level reordering between sinks and sources
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// enables the per-phase matcher log. The logger travels in the command
// context.
//
// # Configuration
//
// --config names a TOML file (see internal/config); flags given explicitly
// override its values.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/internal/config"
)

const appName = "lvmatch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     config.Config
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
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
		Short:        "lvmatch computes maximum matchings and level orderings of graphs",
		Long:         `lvmatch runs the Micali-Vazirani maximum-cardinality matching on general graphs and renumbers vertices by pseudo-temperature levels between sink and source sets.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.configPath != "" {
				cfg, err := config.Load(c.configPath)
				if err != nil {
					return err
				}
				c.config = cfg
				c.Logger.Debug("config loaded", "path", c.configPath)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML configuration file")

	root.AddCommand(c.matchCommand())
	root.AddCommand(c.reorderCommand())

	return root
}
