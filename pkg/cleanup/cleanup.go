// Package cleanup solves day 4: pairs of elves assigned inclusive section
// ranges, some of which contain or overlap each other.
package cleanup

import (
	"strconv"
	"strings"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

// Range is an inclusive span of section IDs.
type Range struct {
	Lo, Hi int
}

// Contains reports whether r covers every section of other.
func (r Range) Contains(other Range) bool {
	return r.Lo <= other.Lo && r.Hi >= other.Hi
}

// Overlaps reports whether r and other share at least one section.
func (r Range) Overlaps(other Range) bool {
	return r.Lo <= other.Hi && other.Lo <= r.Hi
}

// Pair is one line of the assignment list.
type Pair struct {
	A, B Range
}

// FullyContained reports whether either range contains the other.
func (p Pair) FullyContained() bool {
	return p.A.Contains(p.B) || p.B.Contains(p.A)
}

// Overlapping reports whether the ranges overlap at all.
func (p Pair) Overlapping() bool {
	return p.A.Overlaps(p.B)
}

// ParseRange parses "2-4".
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, errs.New(errs.ErrCodeParse, "malformed range %q", s)
	}
	l, err := strconv.Atoi(lo)
	if err != nil {
		return Range{}, errs.Wrap(errs.ErrCodeParse, err, "range %q", s)
	}
	h, err := strconv.Atoi(hi)
	if err != nil {
		return Range{}, errs.Wrap(errs.ErrCodeParse, err, "range %q", s)
	}
	if l > h {
		return Range{}, errs.New(errs.ErrCodeParse, "range %q ends before it starts", s)
	}
	return Range{Lo: l, Hi: h}, nil
}

// ParsePair parses "2-4,6-8".
func ParsePair(line string) (Pair, error) {
	a, b, ok := strings.Cut(line, ",")
	if !ok {
		return Pair{}, errs.New(errs.ErrCodeParse, "malformed pair %q", line)
	}
	ra, err := ParseRange(a)
	if err != nil {
		return Pair{}, err
	}
	rb, err := ParseRange(b)
	if err != nil {
		return Pair{}, err
	}
	return Pair{A: ra, B: rb}, nil
}

// Solve counts fully contained pairs and overlapping pairs.
func Solve(lines []string) (int, int, error) {
	var contained, overlapping int
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := ParsePair(line)
		if err != nil {
			return 0, 0, errs.Wrap(errs.ErrCodeParse, err, "line %d", i+1)
		}
		if p.FullyContained() {
			contained++
		}
		if p.Overlapping() {
			overlapping++
		}
	}
	return contained, overlapping, nil
}
