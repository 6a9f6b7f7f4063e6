package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/adventofcode/pkg/crates"
	errs "github.com/matzehuels/adventofcode/pkg/errors"
	aocio "github.com/matzehuels/adventofcode/pkg/io"
	"github.com/matzehuels/adventofcode/pkg/render"
	"github.com/matzehuels/adventofcode/pkg/render/stacks"
)

// cratesOpts holds the command-line flags for the crates command.
type cratesOpts struct {
	layout  string // layout lines or a yard JSON file (.json)
	moves   string // instruction file
	policy  string // single or block; empty means the config default
	dot     string // write a diagram of the final yard (.svg, .pdf, .png)
	json    string // write the final yard as JSON
	replay  bool   // step through the instructions interactively
	initial bool   // draw/export the yard before any instruction
}

// cratesCommand creates the crates command.
func (c *CLI) cratesCommand() *cobra.Command {
	var opts cratesOpts

	cmd := &cobra.Command{
		Use:   "crates",
		Short: "Replay crate instructions on a stack yard",
		Long: `Replay crate instructions on a stack yard and print the top crates.

The layout lists one stack per line, bottom crate first (whitespace is
ignored). A layout ending in .json is read as a yard previously written with
--json. The policy selects how multi-crate moves behave:

  single  crates move one at a time, reversing their order
  block   crates move together, keeping their order`,
		Example: `  aoc crates --policy block
  aoc crates --layout stacks.txt --moves moves.txt --dot yard.svg
  aoc crates --replay`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCrates(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.layout, "layout", "", "stack layout file (.txt or .json)")
	cmd.Flags().StringVar(&opts.moves, "moves", "", "instruction file")
	cmd.Flags().StringVar(&opts.policy, "policy", "", "relocation policy: single, block")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "draw the resulting yard to this file (.svg, .pdf, .png)")
	cmd.Flags().StringVar(&opts.json, "json", "", "write the resulting yard as JSON")
	cmd.Flags().BoolVar(&opts.replay, "replay", false, "step through the instructions interactively")
	cmd.Flags().BoolVar(&opts.initial, "initial", false, "draw/export the yard before applying instructions")

	return cmd
}

func (c *CLI) runCrates(ctx context.Context, opts cratesOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	policyName := opts.policy
	if policyName == "" {
		policyName = cfg.Crates.Policy
	}
	policy, err := crates.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	paths := inputPaths{input: opts.moves, layout: opts.layout}.resolve(cfg, crateDay)
	yard, err := loadYard(paths.layout)
	if err != nil {
		return err
	}
	lines, err := readLines(paths.input)
	if err != nil {
		return err
	}
	moves, err := crates.ParseMoves(lines, policy)
	if err != nil {
		return err
	}
	logger.Debug("loaded yard", "stacks", yard.Count(), "crates", yard.Total(), "moves", len(moves), "policy", policy)

	if opts.replay {
		return runReplay(yard, moves, policy)
	}

	final := yard
	if !opts.initial {
		prog := newProgress(logger)
		final = yard.Clone()
		if err := final.ApplyAll(moves); err != nil {
			printError("%s", errs.UserMessage(err))
			return err
		}
		prog.done(fmt.Sprintf("Applied %d instructions", len(moves)))

		key, err := crates.Key(final)
		if err != nil {
			return err
		}
		printSuccess("Top crates: %s", StyleNumber.Render(key))
		printKeyValue("Policy", policy.String())
		printKeyValue("Stacks", fmt.Sprintf("%d", final.Count()))
		printKeyValue("Crates", fmt.Sprintf("%d", final.Total()))
	}

	if opts.json != "" {
		if err := aocio.ExportYardJSON(final, opts.json); err != nil {
			return fmt.Errorf("export yard: %w", err)
		}
		printFile(opts.json)
	}
	if opts.dot != "" {
		title := fmt.Sprintf("%s policy, %d instructions", policy, len(moves))
		if opts.initial {
			title = "initial yard"
		}
		if err := drawYard(ctx, final, title, opts.dot); err != nil {
			return err
		}
		printFile(opts.dot)
	}
	if opts.dot == "" && opts.json == "" {
		printNewline()
		printNextStep("Draw the yard", "aoc crates --dot yard.svg")
	}
	return nil
}

// loadYard reads a layout file, or a yard JSON file when path ends in .json.
func loadYard(path string) (*crates.Yard[rune], error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return aocio.ImportYardJSON(path)
	}
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	y := crates.ParseLayout(lines)
	if y.Count() == 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "layout %s has no stacks", path)
	}
	return y, nil
}

// drawYard renders y to path in the format given by its extension.
func drawYard(ctx context.Context, y *crates.Yard[rune], title, path string) error {
	format, err := render.FormatFromPath(path)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Rendering yard...")
	spinner.Start()
	svg, err := stacks.RenderSVG(ctx, stacks.ToDOT(y, stacks.Options{Title: title, HighlightTops: true}))
	if err == nil {
		svg, err = render.Convert(svg, format)
	}
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("render yard: %w", err)
	}

	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// runReplay opens the interactive replay viewer.
func runReplay(y *crates.Yard[rune], moves []crates.Move, policy crates.Policy) error {
	frames, failure := buildFrames(y, moves)
	title := fmt.Sprintf("Supply Stacks · %s policy", policy)

	p := tea.NewProgram(NewReplayModel(title, frames, failure))
	if _, err := p.Run(); err != nil {
		return err
	}
	if failure != nil {
		printError("%s", errs.UserMessage(failure))
		return failure
	}
	return nil
}
