package puzzle

import (
	"context"

	"github.com/matzehuels/adventofcode/pkg/calories"
	"github.com/matzehuels/adventofcode/pkg/cleanup"
	"github.com/matzehuels/adventofcode/pkg/crates"
	errs "github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/marker"
	"github.com/matzehuels/adventofcode/pkg/rps"
	"github.com/matzehuels/adventofcode/pkg/rucksack"
)

// Default returns a registry with every implemented day.
func Default() *Registry {
	r := NewRegistry()
	r.Register(linesSolver{1, "Calorie Counting", calories.Solve})
	r.Register(linesSolver{2, "Rock Paper Scissors", rps.Solve})
	r.Register(linesSolver{3, "Rucksack Reorganization", rucksack.Solve})
	r.Register(linesSolver{4, "Camp Cleanup", cleanup.Solve})
	r.Register(CrateMover{})
	r.Register(linesSolver{6, "Tuning Trouble", marker.Solve})
	return r
}

// CrateMover solves day 5. Part 1 replays the instructions one crate at a
// time, part 2 moves each instruction's crates as a block.
type CrateMover struct{}

func (CrateMover) Day() int      { return 5 }
func (CrateMover) Title() string { return "Supply Stacks" }

// Solve reads the yard from in.Layout and the instructions from in.Lines.
func (CrateMover) Solve(ctx context.Context, in Input) (Answer, error) {
	if len(in.Layout) == 0 {
		return Answer{}, errs.New(errs.ErrCodeInvalidInput, "day 5 needs a stack layout")
	}

	keys := make([]string, 2)
	for i, p := range []crates.Policy{crates.PolicySingle, crates.PolicyBlock} {
		if err := ctx.Err(); err != nil {
			return Answer{}, err
		}
		key, err := RunCrates(in, p)
		if err != nil {
			return Answer{}, err
		}
		keys[i] = key
	}
	return Answer{Day: 5, Part1: keys[0], Part2: keys[1]}, nil
}

// RunCrates builds a yard from in.Layout, replays in.Lines under p and
// returns the key.
func RunCrates(in Input, p crates.Policy) (string, error) {
	y, err := ReplayCrates(in, p)
	if err != nil {
		return "", err
	}
	return crates.Key(y)
}

// ReplayCrates builds a yard from in.Layout and replays in.Lines under p.
func ReplayCrates(in Input, p crates.Policy) (*crates.Yard[rune], error) {
	moves, err := crates.ParseMoves(in.Lines, p)
	if err != nil {
		return nil, err
	}
	y := crates.ParseLayout(in.Layout)
	if err := y.ApplyAll(moves); err != nil {
		return nil, err
	}
	return y, nil
}
