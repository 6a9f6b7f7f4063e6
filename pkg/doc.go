// Package pkg provides the libraries behind the aoc command, a solver for
// Advent of Code 2022, days 1 to 6.
//
// # Overview
//
// Every day is a small package of pure functions with a Solve entry point
// that takes the input lines and returns both answers. The packages are
// organized into three areas:
//
//  1. Puzzles - one package per day, plus [puzzle] which registers them
//  2. Infrastructure - [cache], [config], [pipeline], [observability], [io]
//  3. Presentation - [render] and [render/stacks]
//
// # Architecture
//
// The typical data flow through aoc:
//
//	input file(s)
//	     ↓
//	[io] package (read lines, or a yard from JSON)
//	     ↓
//	[pipeline] package (answer cache lookup)
//	     ↓
//	[puzzle] registry → day package (parse + solve)
//	     ↓
//	answers, cached by [cache]
//
// # Puzzles
//
// [calories] - Day 1: sum calorie groups separated by blank lines.
//
// [rps] - Day 2: score rock paper scissors strategy guides.
//
// [rucksack] - Day 3: find shared items by priority.
//
// [cleanup] - Day 4: count containing and overlapping section ranges.
//
// [crates] - Day 5: the stack yard. A generic [crates.Yard] holds numbered
// stacks and applies relocation instructions one item at a time or as a
// block. Failed instructions leave the yard unchanged.
//
// [marker] - Day 6: find the first window of distinct characters.
//
// # Quick Start
//
// Replay the day 5 example:
//
//	y := crates.ParseLayout([]string{"ZN", "MCD", "P"})
//	moves, _ := crates.ParseMoves(lines, crates.PolicyBlock)
//	if err := y.ApplyAll(moves); err != nil {
//	    return err
//	}
//	key, _ := crates.Key(y) // "MCD"
//
// Solve any day through the cache:
//
//	runner := pipeline.NewRunner(fileCache, nil, logger)
//	solver, _ := puzzle.Default().Get(5)
//	res, err := runner.Solve(ctx, solver, pipeline.Options{Input: in})
//
// Draw a yard:
//
//	svg, err := stacks.RenderSVG(ctx, stacks.ToDOT(y, stacks.Options{}))
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/crates/...             # Specific package
//	go test -run Example                 # Examples only
//
// [calories]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/calories
// [rps]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/rps
// [rucksack]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/rucksack
// [cleanup]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/cleanup
// [crates]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/crates
// [crates.Yard]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/crates#Yard
// [marker]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/marker
// [puzzle]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/puzzle
// [cache]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/config
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/observability
// [io]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/render
// [render/stacks]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/render/stacks
package pkg
