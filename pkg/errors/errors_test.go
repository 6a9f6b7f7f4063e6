package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnderflow, "stack %d holds %d items", 2, 1)

	if err.Code != ErrCodeUnderflow {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnderflow)
	}

	if err.Message != "stack 2 holds 1 items" {
		t.Errorf("Message = %v, want %v", err.Message, "stack 2 holds 1 items")
	}

	expected := "UNDERFLOW: stack 2 holds 1 items"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeParse, cause, "line 3")

	if err.Code != ErrCodeParse {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeParse)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeNotFound, "test"),
			code:     ErrCodeNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeNotFound, "test"),
			code:     ErrCodeEmpty,
			expected: false,
		},
		{
			name:     "outer code of wrapped error",
			err:      Wrap(ErrCodeInvalidInput, New(ErrCodeUnderflow, "inner"), "outer"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "inner code of wrapped error",
			err:      Wrap(ErrCodeInvalidInput, New(ErrCodeUnderflow, "inner"), "outer"),
			code:     ErrCodeUnderflow,
			expected: true,
		},
		{
			name:     "behind fmt.Errorf",
			err:      fmt.Errorf("solve day 5: %w", New(ErrCodeIndexOutOfRange, "inner")),
			code:     ErrCodeIndexOutOfRange,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeEmpty, "test"),
			expected: ErrCodeEmpty,
		},
		{
			name:     "outermost wins",
			err:      Wrap(ErrCodeInvalidInput, New(ErrCodeEmpty, "inner"), "outer"),
			expected: ErrCodeInvalidInput,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRootCode(t *testing.T) {
	err := Wrap(ErrCodeInvalidInput, Wrap(ErrCodeParse, New(ErrCodeUnderflow, "deep"), "mid"), "outer")
	if got := RootCode(err); got != ErrCodeUnderflow {
		t.Errorf("RootCode() = %v, want %v", got, ErrCodeUnderflow)
	}
	if got := RootCode(errors.New("plain")); got != "" {
		t.Errorf("RootCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "wrapped Error",
			err:      Wrap(ErrCodeParse, New(ErrCodeNotFound, "no such stack"), "instruction 4"),
			expected: "instruction 4: no such stack",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
