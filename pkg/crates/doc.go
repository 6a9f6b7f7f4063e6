// Package crates implements the ordered-stack relocation engine behind the
// day 5 puzzle: a yard of numbered stacks and a stream of "move N from A to B"
// instructions replayed against it.
//
// # Overview
//
// A [Yard] holds a fixed number of stacks, numbered from 1. Each stack is
// initialized bottom-to-top with [Yard.Init] and then mutated by [Yard.Apply].
// The answer to the puzzle is the [Key]: the top item of every stack, read in
// stack order.
//
// # Relocation Policies
//
// A [Move] carries the [Policy] that governs how a multi-item relocation
// treats the order of the items it carries:
//
//   - [PolicySingle]: items are moved one at a time, so they arrive reversed.
//   - [PolicyBlock]: items are moved as a block and keep their relative order.
//
// Both policies are built from the same pop/push primitive that backs
// [Yard.MoveOne], so no item is ever copied or dropped. The block policy stages
// items through a scratch sequence that is local to the call.
//
// # Errors
//
// Precondition violations are returned, never panicked:
//
//   - errors.ErrCodeParse: the instruction text does not match the template
//   - errors.ErrCodeIndexOutOfRange: a stack index outside 1..Count
//   - errors.ErrCodeUnderflow: Count exceeds the depth of the source stack
//   - errors.ErrCodeNotFound: a peek or key read on an empty stack
//   - errors.ErrCodeEmpty: MoveOne off an empty stack
//
// Apply validates before it mutates, so a failed move leaves the yard untouched.
//
// # Example
//
//	y := crates.New[rune](3)
//	y.Init(1, []rune("ZN"))
//	y.Init(2, []rune("MCD"))
//	y.Init(3, []rune("P"))
//
//	moves, _ := crates.ParseMoves(lines, crates.PolicySingle)
//	if err := y.ApplyAll(moves); err != nil {
//	    return err
//	}
//	key, _ := crates.Key(y) // "CMZ"
package crates
