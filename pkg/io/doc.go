// Package io reads puzzle input files and imports/exports stack yards as JSON.
//
// # Line Input
//
// Every puzzle input is consumed as a slice of lines. [ReadLines] splits a
// reader on newlines (a trailing "\r" is stripped), and [ImportLines] does the
// same for a file path. Missing files are reported with the
// errors.ErrCodeFileNotFound code so the CLI can tell the user where it looked.
//
// # Yard JSON Format
//
// A yard is serialized as its stacks, each written bottom-to-top as a string
// of single-character crates:
//
//	{
//	  "stacks": ["ZN", "MCD", "P"]
//	}
//
// The first entry is stack 1. Empty stacks are written as "" and keep their
// position, so the stack numbering survives a round trip.
//
// # Usage
//
//	lines, err := io.ImportLines("inputs/day5.txt")
//	if err != nil {
//	    return err
//	}
//
//	// Save the final yard for inspection
//	if err := io.ExportYardJSON(y, "yard.json"); err != nil {
//	    return err
//	}
package io
