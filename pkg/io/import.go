package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/crates"
	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

// maxLineSize bounds a single input line; day 6 streams are one long line.
const maxLineSize = 1 << 20

// ReadLines reads r to EOF and returns its lines without line terminators.
// A final line without a trailing newline is included; a final empty line is not.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// ImportLines reads the file at path and returns its lines.
func ImportLines(path string) ([]string, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "input %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLines(f)
}

// ReadYardJSON decodes a yard written by [WriteYardJSON].
func ReadYardJSON(r io.Reader) (*crates.Yard[rune], error) {
	var data yard
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errs.Wrap(errs.ErrCodeParse, err, "decode yard")
	}

	y := crates.New[rune](len(data.Stacks))
	for i, s := range data.Stacks {
		if err := y.Init(i+1, []rune(s)); err != nil {
			return nil, err
		}
	}
	return y, nil
}

// ImportYardJSON reads a yard JSON file at path.
func ImportYardJSON(path string) (*crates.Yard[rune], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadYardJSON(f)
}
