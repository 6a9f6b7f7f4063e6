// Package marker solves day 6: locate the first run of distinct characters in
// a device's datastream.
package marker

import (
	"strings"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

const (
	// PacketWidth is the length of a start-of-packet marker.
	PacketWidth = 4

	// MessageWidth is the length of a start-of-message marker.
	MessageWidth = 14
)

// Find returns the number of characters processed when the first window of
// width distinct characters is complete, i.e. the 1-based index of its last
// character.
func Find(stream string, width int) (int, error) {
	if width < 1 {
		return 0, errs.New(errs.ErrCodeInvalidInput, "marker width %d must be positive", width)
	}
	data := []rune(stream)

	// last[r] is the latest position of rune r; start is the first index of
	// the current duplicate-free window.
	last := make(map[rune]int)
	start := 0
	for i, r := range data {
		if j, ok := last[r]; ok && j >= start {
			start = j + 1
		}
		last[r] = i
		if i-start+1 == width {
			return i + 1, nil
		}
	}
	return 0, errs.New(errs.ErrCodeNotFound, "no window of %d distinct characters", width)
}

// Solve returns the start-of-packet and start-of-message positions.
// The datastream may be split over several lines; they are joined.
func Solve(lines []string) (int, int, error) {
	stream := strings.Join(strings.Fields(strings.Join(lines, "")), "")
	p1, err := Find(stream, PacketWidth)
	if err != nil {
		return 0, 0, err
	}
	p2, err := Find(stream, MessageWidth)
	if err != nil {
		return 0, 0, err
	}
	return p1, p2, nil
}
