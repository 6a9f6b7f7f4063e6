package cli

import (
	"io"
	"testing"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

func TestSolveCommandCaches(t *testing.T) {
	env := newTestEnv(t, sampleFiles)

	if _, err := env.execute(t, "solve", "1"); err != nil {
		t.Fatalf("solve 1: %v", err)
	}
	if n := env.cacheEntries(t); n != 1 {
		t.Fatalf("cache holds %d entries after first solve, want 1", n)
	}

	if _, err := env.execute(t, "solve", "day01"); err != nil {
		t.Fatalf("solve day01: %v", err)
	}
	if n := env.cacheEntries(t); n != 1 {
		t.Errorf("cache holds %d entries after repeat solve, want 1", n)
	}
}

func TestSolveCommandNoCache(t *testing.T) {
	env := newTestEnv(t, sampleFiles)

	if _, err := env.execute(t, "solve", "5", "--no-cache"); err != nil {
		t.Fatalf("solve 5: %v", err)
	}
	if n := env.cacheEntries(t); n != 0 {
		t.Errorf("--no-cache stored %d entries", n)
	}
}

func TestSolveCommandErrors(t *testing.T) {
	env := newTestEnv(t, sampleFiles)

	tests := []struct {
		name string
		args []string
		code errs.Code
	}{
		{"bad day", []string{"solve", "day"}, errs.ErrCodeInvalidDay},
		{"out of range", []string{"solve", "26"}, errs.ErrCodeInvalidDay},
		{"unregistered", []string{"solve", "12"}, errs.ErrCodeNotFound},
		{"missing input", []string{"solve", "3"}, errs.ErrCodeFileNotFound},
		{"missing layout", []string{"solve", "5", "--layout", "nope.txt"}, errs.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.execute(t, tt.args...)
			if !errs.Is(err, tt.code) {
				t.Errorf("%v error = %v, want %s", tt.args, err, tt.code)
			}
		})
	}
}

func TestSolveCommandParseError(t *testing.T) {
	files := map[string]string{"day4.txt": "2-4,6-8\nnonsense\n"}
	env := newTestEnv(t, files)

	_, err := env.execute(t, "solve", "4")
	if !errs.Is(err, errs.ErrCodeParse) {
		t.Errorf("solve 4 error = %v, want PARSE_ERROR", err)
	}
	if n := env.cacheEntries(t); n != 0 {
		t.Errorf("failed solve stored %d entries", n)
	}
}

func TestLoadInputCrateDay(t *testing.T) {
	env := newTestEnv(t, sampleFiles)
	c := New(io.Discard, LogInfo)
	c.ConfigPath = env.config
	cfg, err := c.loadConfig()
	if err != nil {
		t.Fatal(err)
	}

	in, err := loadInput(cfg, crateDay, inputPaths{})
	if err != nil {
		t.Fatal(err)
	}
	if len(in.Lines) != 4 || len(in.Layout) != 3 {
		t.Errorf("loadInput(5) = %d lines, %d layout lines; want 4, 3", len(in.Lines), len(in.Layout))
	}

	in, err = loadInput(cfg, 2, inputPaths{})
	if err != nil {
		t.Fatal(err)
	}
	if in.Layout != nil {
		t.Errorf("loadInput(2) read a layout: %v", in.Layout)
	}
}
