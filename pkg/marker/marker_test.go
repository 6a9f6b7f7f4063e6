package marker

import (
	"testing"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

func TestFind(t *testing.T) {
	tests := []struct {
		stream          string
		packet, message int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tt := range tests {
		if got, err := Find(tt.stream, PacketWidth); err != nil || got != tt.packet {
			t.Errorf("Find(%q, 4) = %d, %v, want %d", tt.stream, got, err, tt.packet)
		}
		if got, err := Find(tt.stream, MessageWidth); err != nil || got != tt.message {
			t.Errorf("Find(%q, 14) = %d, %v, want %d", tt.stream, got, err, tt.message)
		}
	}
}

func TestFindLastWindow(t *testing.T) {
	if got, err := Find("aabcd", 4); err != nil || got != 5 {
		t.Errorf("Find() = %d, %v, want 5", got, err)
	}
}

func TestFindErrors(t *testing.T) {
	if _, err := Find("aaaa", 2); !errs.Is(err, errs.ErrCodeNotFound) {
		t.Errorf("Find() error = %v, want NOT_FOUND", err)
	}
	if _, err := Find("abc", 0); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("Find() error = %v, want INVALID_INPUT", err)
	}
}

func TestSolve(t *testing.T) {
	p1, p2, err := Solve([]string{"mjqjpqmgbljsph", "dztnvjfqwrcgsmlb\n"})
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if p1 != 7 || p2 != 19 {
		t.Errorf("Solve() = %d, %d, want 7, 19", p1, p2)
	}
}
