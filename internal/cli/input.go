package cli

import (
	"os"

	"github.com/matzehuels/adventofcode/pkg/config"
	aocio "github.com/matzehuels/adventofcode/pkg/io"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// stdinPath selects standard input in --input.
const stdinPath = "-"

// inputPaths holds the --input and --layout flags. Empty fields fall back to
// the config's input directory.
type inputPaths struct {
	input  string
	layout string
}

// resolve fills empty paths from cfg.
func (p inputPaths) resolve(cfg config.Config, day int) inputPaths {
	if p.input == "" {
		p.input = cfg.InputPath(day)
	}
	if p.layout == "" && day == crateDay {
		p.layout = cfg.LayoutPath(day)
	}
	return p
}

// loadInput reads the puzzle input for day. The layout is only read for the
// crate day.
func loadInput(cfg config.Config, day int, paths inputPaths) (puzzle.Input, error) {
	paths = paths.resolve(cfg, day)

	lines, err := readLines(paths.input)
	if err != nil {
		return puzzle.Input{}, err
	}
	in := puzzle.Input{Lines: lines}

	if day == crateDay {
		layout, err := readLines(paths.layout)
		if err != nil {
			return puzzle.Input{}, err
		}
		in.Layout = layout
	}
	return in, nil
}

func readLines(path string) ([]string, error) {
	if path == stdinPath {
		return aocio.ReadLines(os.Stdin)
	}
	return aocio.ImportLines(path)
}
