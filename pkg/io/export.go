package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/adventofcode/pkg/crates"
)

type yard struct {
	Stacks []string `json:"stacks"`
}

// WriteYardJSON encodes the yard as JSON and writes it to w.
// The output can be re-imported with [ReadYardJSON].
func WriteYardJSON(y *crates.Yard[rune], w io.Writer) error {
	snap := y.Snapshot()
	out := yard{Stacks: make([]string, len(snap))}
	for i, s := range snap {
		out.Stacks[i] = string(s)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportYardJSON writes the yard to a JSON file at path.
// This is a convenience wrapper around [WriteYardJSON] for file-based output.
func ExportYardJSON(y *crates.Yard[rune], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteYardJSON(y, f)
}
