package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adventofcode/pkg/cache"
	"github.com/matzehuels/adventofcode/pkg/config"
	errs "github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/pipeline"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the answer cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cacheForgetCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Cache.Backend == config.BackendNone {
				printWarning("Caching is disabled")
				return nil
			}

			store, err := newCache(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer store.Close()

			clearer, ok := store.(cache.Clearer)
			if !ok {
				return fmt.Errorf("%s cache cannot be cleared", cfg.Cache.Backend)
			}
			count, err := clearer.Clear(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Backend: %s", cfg.Cache.Backend)
			return nil
		},
	}
}

// cacheForgetCommand creates the "cache forget" subcommand.
func (c *CLI) cacheForgetCommand() *cobra.Command {
	var paths inputPaths

	cmd := &cobra.Command{
		Use:   "forget <day>",
		Short: "Remove the cached answer for one day's input",
		Long: `Remove the cached answer for one day's input.

The input is resolved like in "aoc solve", so the entry removed is the one
"aoc solve <day>" with the same flags would hit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := errs.ParseDay(args[0])
			if err != nil {
				return err
			}
			solver, err := puzzle.Default().Get(day)
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			in, err := loadInput(cfg, day, paths)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer runner.Close()

			if err := runner.Forget(cmd.Context(), solver, pipeline.Options{Input: in}); err != nil {
				return fmt.Errorf("forget day %d: %w", day, err)
			}
			printSuccess("Forgot cached answer for day %d", day)
			return nil
		},
	}

	cmd.Flags().StringVarP(&paths.input, "input", "i", "", "puzzle input file (- for stdin)")
	cmd.Flags().StringVar(&paths.layout, "layout", "", "stack layout file (day 5)")

	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			dir, err := fileCacheDir(cfg)
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			if cfg.Cache.Backend != config.BackendFile {
				printDetail("Configured backend is %s; this directory is unused", cfg.Cache.Backend)
			}
			return nil
		},
	}
}
