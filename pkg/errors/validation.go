package errors

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// dayRegex accepts "5", "05", "day5" and "day05".
var dayRegex = regexp.MustCompile(`^(?i:day)?0*([0-9]{1,2})$`)

// ParseDay validates a puzzle day argument and returns its number.
// Advent calendars run from day 1 to day 25; anything else is rejected.
func ParseDay(s string) (int, error) {
	m := dayRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, New(ErrCodeInvalidDay, "invalid day %q (want 1-25 or day1-day25)", s)
	}
	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 25 {
		return 0, New(ErrCodeInvalidDay, "day %q out of range (1-25)", s)
	}
	return day, nil
}

// ValidatePath validates an input file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
