// Package calories solves day 1: elves carry snacks, one calorie count per
// line, with a blank line between elves.
package calories

import (
	"slices"
	"strconv"
	"strings"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

// Parse groups calorie counts per elf. Blank lines separate elves; runs of
// blank lines do not create empty elves.
func Parse(lines []string) ([][]int, error) {
	var (
		groups  [][]int
		current []int
	)
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeParse, err, "line %d: not a calorie count", i+1)
		}
		current = append(current, n)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups, nil
}

// Totals returns the calorie total of every elf, in input order.
func Totals(groups [][]int) []int {
	totals := make([]int, len(groups))
	for i, g := range groups {
		for _, n := range g {
			totals[i] += n
		}
	}
	return totals
}

// TopSum returns the sum of the n largest totals. With fewer than n totals
// all of them are summed.
func TopSum(totals []int, n int) int {
	sorted := slices.Clone(totals)
	slices.Sort(sorted)
	slices.Reverse(sorted)
	sum := 0
	for _, t := range sorted[:min(n, len(sorted))] {
		sum += t
	}
	return sum
}

// Solve returns the largest elf total and the sum of the three largest.
func Solve(lines []string) (int, int, error) {
	groups, err := Parse(lines)
	if err != nil {
		return 0, 0, err
	}
	if len(groups) == 0 {
		return 0, 0, errs.New(errs.ErrCodeNotFound, "no elves in input")
	}
	totals := Totals(groups)
	return slices.Max(totals), TopSum(totals, 3), nil
}
