// Package rucksack solves day 3: find the item type packed in both
// compartments of a rucksack, and the badge shared by each group of three.
package rucksack

import (
	"strings"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

// GroupSize is the number of elves that share a badge.
const GroupSize = 3

// Priority maps a-z to 1-26 and A-Z to 27-52.
func Priority(item byte) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	default:
		return 0, errs.New(errs.ErrCodeInvalidInput, "item %q has no priority", item)
	}
}

// SplitHalf splits a rucksack into its two compartments.
func SplitHalf(s string) (string, string) {
	half := len(s) / 2
	return s[:half], s[half:]
}

// Common returns the first item of the first set that appears in every other set.
func Common(first string, rest ...string) (byte, error) {
	for i := 0; i < len(first); i++ {
		c := first[i]
		found := true
		for _, r := range rest {
			if strings.IndexByte(r, c) < 0 {
				found = false
				break
			}
		}
		if found {
			return c, nil
		}
	}
	return 0, errs.New(errs.ErrCodeNotFound, "no common item in %q", append([]string{first}, rest...))
}

// Duplicate returns the item packed in both compartments.
func Duplicate(rucksack string) (byte, error) {
	a, b := SplitHalf(rucksack)
	return Common(a, b)
}

// Chunk splits items into consecutive groups of size; the last group may be shorter.
func Chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for i := 0; i < len(items); i += size {
		out = append(out, items[i:min(i+size, len(items))])
	}
	return out
}

// Solve returns the priority sums of the compartment duplicates and of the badges.
func Solve(lines []string) (int, int, error) {
	var sacks []string
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			sacks = append(sacks, line)
		}
	}

	var p1 int
	for i, s := range sacks {
		item, err := Duplicate(s)
		if err != nil {
			return 0, 0, errs.Wrap(errs.GetCode(err), err, "rucksack %d", i+1)
		}
		p, err := Priority(item)
		if err != nil {
			return 0, 0, err
		}
		p1 += p
	}

	if len(sacks)%GroupSize != 0 {
		return 0, 0, errs.New(errs.ErrCodeInvalidInput, "%d rucksacks do not split into groups of %d", len(sacks), GroupSize)
	}

	var p2 int
	for i, g := range Chunk(sacks, GroupSize) {
		badge, err := Common(g[0], g[1:]...)
		if err != nil {
			return 0, 0, errs.Wrap(errs.GetCode(err), err, "group %d", i+1)
		}
		p, err := Priority(badge)
		if err != nil {
			return 0, 0, err
		}
		p2 += p
	}
	return p1, p2, nil
}
