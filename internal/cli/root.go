package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/adventofcode/pkg/buildinfo"
	"github.com/matzehuels/adventofcode/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Its PersistentPreRunE tags the logger with a fresh run ID, attaches it to
// the command context and, at debug level, routes solve and cache events to
// the log.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "aoc solves Advent of Code 2022, days 1 to 6",
		Long:         `aoc reads puzzle inputs from disk, solves them and caches the answers. The crates command replays the day 5 stack yard and draws it.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.Logger = c.Logger.With("run", newRunID())
			if c.Logger.GetLevel() <= LogDebug {
				hooks := &logHooks{logger: c.Logger}
				observability.SetSolveHooks(hooks)
				observability.SetCacheHooks(hooks)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/aoc/aoc.toml)")

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.allCommand())
	root.AddCommand(c.cratesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
