package cli

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/pipeline"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// allOpts holds the command-line flags for the all command.
type allOpts struct {
	noCache bool
	refresh bool
	jobs    int
	ttl     time.Duration // from [cache] ttl
}

// dayResult is the outcome of one day in the all command.
type dayResult struct {
	day   int
	title string
	res   *pipeline.Result
	err   error
}

// allCommand creates the all command.
func (c *CLI) allCommand() *cobra.Command {
	opts := allOpts{jobs: runtime.NumCPU()}

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every day and print a summary table",
		Long: `Solve every registered day concurrently and print a summary table.

Inputs are read from the configured input directory. A day whose input is
missing or malformed is reported in the table; the other days still run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAll(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the answer cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute and overwrite cached answers")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "number of days solved in parallel")

	return cmd
}

func (c *CLI) runAll(ctx context.Context, opts allOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()
	opts.ttl = cfg.Cache.TTL.Duration

	reg := puzzle.Default()
	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Solving all days...")
	spinner.Start()

	results, err := solveAll(ctx, runner, reg, opts, func(day int) (puzzle.Input, error) {
		return loadInput(cfg, day, inputPaths{})
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			logger.Debug("day failed", "day", r.day, "error", r.err)
		}
	}
	prog.done(fmt.Sprintf("Solved %d of %d days", len(results)-failed, len(results)))

	fmt.Println(renderResults(results))
	if failed > 0 {
		printWarning("%d day(s) failed", failed)
		printNextStep("Inspect a failure", "aoc solve <day> -v")
	}
	return nil
}

// solveAll solves every day in reg with at most opts.jobs days in flight.
// Per-day failures are recorded in the results; only cancellation aborts.
func solveAll(ctx context.Context, runner *pipeline.Runner, reg *puzzle.Registry, opts allOpts, load func(int) (puzzle.Input, error)) ([]dayResult, error) {
	days := reg.Days()
	results := make([]dayResult, len(days))

	g, ctx := errgroup.WithContext(ctx)
	if opts.jobs > 0 {
		g.SetLimit(opts.jobs)
	}

	for i, day := range days {
		g.Go(func() error {
			solver, err := reg.Get(day)
			if err != nil {
				return err
			}
			results[i] = dayResult{day: day, title: solver.Title()}

			in, err := load(day)
			if err != nil {
				results[i].err = err
				return nil
			}
			res, err := runner.Solve(ctx, solver, pipeline.Options{
				Input:   in,
				Refresh: opts.refresh,
				NoCache: opts.noCache,
				TTL:     opts.ttl,
			})
			if errors.Is(err, context.Canceled) {
				return err
			}
			results[i].res, results[i].err = res, err
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// renderResults formats results as a table.
func renderResults(results []dayResult) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(colorRed)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			rows = append(rows, []string{strconv.Itoa(r.day), r.title, errStyle.Render(failureLabel(r.err)), "", ""})
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(r.day),
			r.title,
			r.res.Answer.Part1,
			r.res.Answer.Part2,
			cacheStatus(r.res.CacheHit),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Day", "Puzzle", "Part 1", "Part 2", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}

// failureLabel is the short error label shown in the table.
func failureLabel(err error) string {
	if code := errs.RootCode(err); code != "" {
		return string(code)
	}
	return "error"
}
