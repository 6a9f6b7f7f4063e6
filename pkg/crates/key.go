package crates

import (
	"strings"
	"unicode"
)

// Key reads the top crate of every stack, in stack order, as a string.
func Key(y *Yard[rune]) (string, error) {
	tops, err := y.Tops()
	if err != nil {
		return "", err
	}
	return string(tops), nil
}

// ParseLayout builds a yard from one line per stack, each listing its crates
// bottom-to-top. Whitespace between crates is ignored, so "ZN" and "Z N" are
// the same stack. Blank lines are skipped and do not count as stacks.
func ParseLayout(lines []string) *Yard[rune] {
	var stacks [][]rune
	for _, line := range lines {
		items := []rune(strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, line))
		if len(items) == 0 {
			continue
		}
		stacks = append(stacks, items)
	}

	y := New[rune](len(stacks))
	for i, items := range stacks {
		_ = y.Init(i+1, items) // index is in range by construction
	}
	return y
}
