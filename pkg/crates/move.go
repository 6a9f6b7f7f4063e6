package crates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

// Policy selects how a multi-item move treats the order of the items it carries.
type Policy int

const (
	// PolicySingle moves items one at a time; they arrive at the destination
	// in reversed relative order.
	PolicySingle Policy = iota

	// PolicyBlock moves items as one block; their relative order is preserved.
	PolicyBlock
)

// String returns the policy name used on the command line and in config files.
func (p Policy) String() string {
	switch p {
	case PolicySingle:
		return "single"
	case PolicyBlock:
		return "block"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name into a Policy.
// Accepted names are "single" (alias "9000") and "block" (alias "9001").
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "9000":
		return PolicySingle, nil
	case "block", "9001":
		return PolicyBlock, nil
	default:
		return 0, errs.New(errs.ErrCodeInvalidInput, "unknown relocation policy %q (want single or block)", s)
	}
}

// Move is a single relocation instruction.
type Move struct {
	Count  int    // items to relocate
	From   int    // 1-based source stack
	To     int    // 1-based destination stack
	Policy Policy // relocation semantics
}

// String formats the move in its instruction form.
func (m Move) String() string {
	return fmt.Sprintf("move %d from %d to %d", m.Count, m.From, m.To)
}

// WithPolicy returns a copy of m that relocates under p.
func (m Move) WithPolicy(p Policy) Move {
	m.Policy = p
	return m
}

var moveRegex = regexp.MustCompile(`^\s*move\s+(\d+)\s+from\s+(\d+)\s+to\s+(\d+)\s*$`)

// ParseMove parses a line of the form "move <count> from <src> to <dst>".
// The returned move uses PolicySingle; see [Move.WithPolicy].
//
// Anything that does not match the template, or a number that does not fit
// in an int, yields an errors.ErrCodeParse error.
func ParseMove(line string) (Move, error) {
	m := moveRegex.FindStringSubmatch(line)
	if m == nil {
		return Move{}, errs.New(errs.ErrCodeParse, "malformed instruction %q", line)
	}

	var nums [3]int
	for i, s := range m[1:] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Move{}, errs.Wrap(errs.ErrCodeParse, err, "instruction %q", line)
		}
		nums[i] = n
	}

	return Move{Count: nums[0], From: nums[1], To: nums[2]}, nil
}

// ParseMoves parses one instruction per line under the given policy.
// Blank lines are skipped. The error of the first malformed line carries its
// 1-based line number.
func ParseMoves(lines []string, p Policy) ([]Move, error) {
	moves := make([]Move, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := ParseMove(line)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeParse, err, "line %d", i+1)
		}
		moves = append(moves, m.WithPolicy(p))
	}
	return moves, nil
}
