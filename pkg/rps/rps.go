// Package rps solves day 2: a rock-paper-scissors strategy guide.
//
// Each line pairs the opponent's throw (A, B, C) with a column (X, Y, Z).
// Part 1 reads the column as my throw; part 2 reads it as the outcome the
// round has to end with.
package rps

import (
	"strings"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

// Shape is a throw. Its value is also its score.
type Shape int

const (
	Rock     Shape = 1
	Paper    Shape = 2
	Scissors Shape = 3
)

// Beats returns the shape that s defeats.
func (s Shape) Beats() Shape {
	switch s {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// LosesTo returns the shape that defeats s.
func (s Shape) LosesTo() Shape {
	return s.Beats().Beats()
}

// Outcome is the result of a round from my side. Its value is its score.
type Outcome int

const (
	Lose Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// Play returns the outcome of me throwing mine against theirs.
func Play(theirs, mine Shape) Outcome {
	switch {
	case mine == theirs:
		return Draw
	case mine.Beats() == theirs:
		return Win
	default:
		return Lose
	}
}

// Choose returns the throw that makes the round end with want.
func Choose(theirs Shape, want Outcome) Shape {
	switch want {
	case Win:
		return theirs.LosesTo()
	case Lose:
		return theirs.Beats()
	default:
		return theirs
	}
}

// Score is the score of one round: my shape plus the outcome.
func Score(theirs, mine Shape) int {
	return int(mine) + int(Play(theirs, mine))
}

// Round is one line of the strategy guide. Column holds 0, 1 or 2 for X, Y, Z.
type Round struct {
	Theirs Shape
	Column int
}

// AsShape reads the column as my throw.
func (r Round) AsShape() Shape {
	return Shape(r.Column + 1)
}

// AsOutcome reads the column as the required outcome.
func (r Round) AsOutcome() Outcome {
	return Outcome(r.Column * 3)
}

// ParseRound parses "A X" style lines.
func ParseRound(line string) (Round, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[0]) != 1 || len(fields[1]) != 1 {
		return Round{}, errs.New(errs.ErrCodeParse, "malformed round %q", line)
	}
	a, x := fields[0][0], fields[1][0]
	if a < 'A' || a > 'C' || x < 'X' || x > 'Z' {
		return Round{}, errs.New(errs.ErrCodeParse, "unknown throw in round %q", line)
	}
	return Round{Theirs: Shape(a-'A') + 1, Column: int(x - 'X')}, nil
}

// Solve returns the total score under both readings of the guide.
func Solve(lines []string) (int, int, error) {
	var p1, p2 int
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseRound(line)
		if err != nil {
			return 0, 0, errs.Wrap(errs.ErrCodeParse, err, "line %d", i+1)
		}
		p1 += Score(r.Theirs, r.AsShape())
		p2 += Score(r.Theirs, Choose(r.Theirs, r.AsOutcome()))
	}
	return p1, p2, nil
}
