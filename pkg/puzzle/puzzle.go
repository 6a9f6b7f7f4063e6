// Package puzzle registers the daily solvers behind a common interface so the
// CLI and the pipeline can run any day without knowing its input format.
//
// # Usage
//
//	reg := puzzle.Default()
//	s, err := reg.Get(5)
//	if err != nil {
//	    return err
//	}
//	ans, err := s.Solve(ctx, puzzle.Input{Lines: moves, Layout: layout})
package puzzle

import (
	"context"
	"slices"
	"strconv"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

// Input is the parsed-to-lines input of one day.
type Input struct {
	// Lines is the main puzzle input, one entry per line.
	Lines []string `json:"lines"`

	// Layout is the initial stack layout, one stack per line. Only the crate
	// mover (day 5) reads it.
	Layout []string `json:"layout,omitempty"`
}

// Answer holds the two answers of one day.
type Answer struct {
	Day   int    `json:"day"`
	Part1 string `json:"part1"`
	Part2 string `json:"part2"`
}

// Solver solves one day.
type Solver interface {
	Day() int
	Title() string
	Solve(ctx context.Context, in Input) (Answer, error)
}

// linesSolver adapts a pure func over lines that returns two integers.
type linesSolver struct {
	day   int
	title string
	solve func([]string) (int, int, error)
}

func (s linesSolver) Day() int      { return s.day }
func (s linesSolver) Title() string { return s.title }

func (s linesSolver) Solve(ctx context.Context, in Input) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	p1, p2, err := s.solve(in.Lines)
	if err != nil {
		return Answer{}, err
	}
	return Answer{Day: s.day, Part1: strconv.Itoa(p1), Part2: strconv.Itoa(p2)}, nil
}

// Registry maps day numbers to solvers.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register adds s, replacing any solver already registered for its day.
func (r *Registry) Register(s Solver) {
	r.solvers[s.Day()] = s
}

// Get returns the solver for day.
func (r *Registry) Get(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, errs.New(errs.ErrCodeNotFound, "no solver registered for day %d", day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}
