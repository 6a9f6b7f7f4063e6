package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/pipeline"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	paths   inputPaths
	noCache bool
	refresh bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solve one day and print both answers",
		Long: `Solve one day and print both answers.

The day may be given as "5", "05" or "day5". Input is read from
<input_dir>/day<N>.txt unless --input is set; day 5 also reads the stack
layout from <input_dir>/day5.layout.txt unless --layout is set.`,
		Example: `  aoc solve 1
  aoc solve day5 --input moves.txt --layout stacks.txt
  cat input.txt | aoc solve 6 --input -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := errs.ParseDay(args[0])
			if err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), day, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.paths.input, "input", "i", "", "puzzle input file (- for stdin)")
	cmd.Flags().StringVar(&opts.paths.layout, "layout", "", "stack layout file (day 5)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the answer cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute and overwrite the cached answer")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, day int, opts solveOpts) error {
	logger := loggerFromContext(ctx)

	solver, err := puzzle.Default().Get(day)
	if err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	in, err := loadInput(cfg, day, opts.paths)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving day %d...", day))
	spinner.Start()

	res, err := runner.Solve(ctx, solver, pipeline.Options{
		Input:   in,
		Refresh: opts.refresh,
		TTL:     cfg.Cache.TTL.Duration,
	})
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Day %d failed: %s", day, errs.UserMessage(err)))
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Solved day %d", day))

	printAnswer(solver.Title(), res)
	return nil
}

// printAnswer prints a solve result.
func printAnswer(title string, res *pipeline.Result) {
	printSuccess("Day %d: %s", res.Answer.Day, StyleTitle.Render(title))
	printKeyValue("Part 1", res.Answer.Part1)
	printKeyValue("Part 2", res.Answer.Part2)
	printStats(res.Duration, res.CacheHit)
}
