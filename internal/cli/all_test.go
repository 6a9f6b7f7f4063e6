package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/pipeline"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

func TestSolveAll(t *testing.T) {
	env := newTestEnv(t, sampleFiles)
	c := New(io.Discard, LogInfo)
	c.ConfigPath = env.config
	cfg, err := c.loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	runner := pipeline.NewRunner(nil, nil, c.Logger)

	results, err := solveAll(context.Background(), runner, puzzle.Default(), allOpts{jobs: 2}, func(day int) (puzzle.Input, error) {
		return loadInput(cfg, day, inputPaths{})
	})
	if err != nil {
		t.Fatalf("solveAll: %v", err)
	}

	want := map[int][2]string{
		1: {"24000", "45000"},
		2: {"15", "12"},
		4: {"2", "4"},
		5: {"CMZ", "MCD"},
		6: {"7", "19"},
	}
	if len(results) != 6 {
		t.Fatalf("got %d results, want 6", len(results))
	}
	for i, r := range results {
		if r.day != i+1 {
			t.Errorf("results[%d].day = %d, want %d", i, r.day, i+1)
		}
		if r.day == 3 {
			if !errs.Is(r.err, errs.ErrCodeFileNotFound) {
				t.Errorf("day 3 error = %v, want FILE_NOT_FOUND", r.err)
			}
			continue
		}
		if r.err != nil {
			t.Errorf("day %d: %v", r.day, r.err)
			continue
		}
		got := [2]string{r.res.Answer.Part1, r.res.Answer.Part2}
		if got != want[r.day] {
			t.Errorf("day %d = %v, want %v", r.day, got, want[r.day])
		}
	}

	table := renderResults(results)
	for _, s := range []string{"Calorie Counting", "Supply Stacks", "CMZ", "FILE_NOT_FOUND"} {
		if !strings.Contains(table, s) {
			t.Errorf("table missing %q:\n%s", s, table)
		}
	}
}

func TestSolveAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := pipeline.NewRunner(nil, nil, nil)
	_, err := solveAll(ctx, runner, puzzle.Default(), allOpts{}, func(int) (puzzle.Input, error) {
		return puzzle.Input{Lines: []string{"1"}, Layout: []string{"A"}}, nil
	})
	if err == nil {
		t.Error("solveAll on a cancelled context should fail")
	}
}

func TestAllCommand(t *testing.T) {
	env := newTestEnv(t, sampleFiles)
	if _, err := env.execute(t, "all"); err != nil {
		t.Fatalf("all: %v", err)
	}
	// Five days have input; day 3 is reported but not cached.
	if n := env.cacheEntries(t); n != 5 {
		t.Errorf("cache holds %d entries, want 5", n)
	}
}

func TestCommandsUseConfiguredTTL(t *testing.T) {
	for _, args := range [][]string{{"all"}, {"solve", "1"}} {
		t.Run(args[0], func(t *testing.T) {
			env := newTestEnv(t, sampleFiles)
			f, err := os.OpenFile(env.config, os.O_APPEND|os.O_WRONLY, 0)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := f.WriteString("ttl = \"1h\"\n"); err != nil {
				t.Fatal(err)
			}
			f.Close()

			start := time.Now()
			if _, err := env.execute(t, args...); err != nil {
				t.Fatalf("%v: %v", args, err)
			}

			expiries := env.cacheExpiries(t)
			if len(expiries) == 0 {
				t.Fatal("nothing was cached")
			}
			for _, exp := range expiries {
				if exp.Before(start.Add(time.Hour)) || exp.After(time.Now().Add(time.Hour)) {
					t.Errorf("entry expires at %v, want about one hour after %v", exp, start)
				}
			}
		})
	}
}

func TestFailureLabel(t *testing.T) {
	if got := failureLabel(errs.New(errs.ErrCodeUnderflow, "x")); got != "UNDERFLOW" {
		t.Errorf("failureLabel(UNDERFLOW) = %q", got)
	}
	if got := failureLabel(context.Canceled); got != "error" {
		t.Errorf("failureLabel(plain) = %q", got)
	}
}
