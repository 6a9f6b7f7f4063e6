package errors

import (
	"testing"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"plain", "5", 5, false},
		{"zero padded", "05", 5, false},
		{"prefixed", "day5", 5, false},
		{"prefixed padded", "day06", 6, false},
		{"upper prefix", "Day1", 1, false},
		{"last day", "25", 25, false},
		{"whitespace", " 3 ", 3, false},

		{"empty", "", 0, true},
		{"zero", "0", 0, true},
		{"too large", "26", 0, true},
		{"three digits", "100", 0, true},
		{"negative", "-1", 0, true},
		{"word", "five", 0, true},
		{"suffix", "5a", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !Is(err, ErrCodeInvalidDay) {
					t.Errorf("ParseDay(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidDay)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseDay(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "inputs/day5.txt", false},
		{"absolute", "/tmp/input.txt", false},
		{"parent", "../input.txt", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
