package crates

import (
	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

// Yard is a fixed set of ordered stacks, numbered 1..Count.
// Each stack is stored bottom-to-top: the last element is the top.
//
// A Yard is not safe for concurrent use.
type Yard[T any] struct {
	stacks [][]T
}

// New creates a yard with count empty stacks.
// A negative count is treated as zero.
func New[T any](count int) *Yard[T] {
	if count < 0 {
		count = 0
	}
	return &Yard[T]{stacks: make([][]T, count)}
}

// Count returns the number of stacks in the yard.
func (y *Yard[T]) Count() int {
	return len(y.stacks)
}

// Init pushes items onto stack index in the given order; the first item ends
// up bottommost of what is pushed.
//
// Init is meant to be called once per stack before any move is applied.
// Calling it after moves have run is a misuse: it is not rejected, but the
// resulting key no longer describes the puzzle input.
func (y *Yard[T]) Init(index int, items []T) error {
	if err := y.check(index); err != nil {
		return err
	}
	y.stacks[index-1] = append(y.stacks[index-1], items...)
	return nil
}

// Len returns the number of items on stack index.
func (y *Yard[T]) Len(index int) (int, error) {
	if err := y.check(index); err != nil {
		return 0, err
	}
	return len(y.stacks[index-1]), nil
}

// Total returns the number of items across all stacks.
func (y *Yard[T]) Total() int {
	n := 0
	for _, s := range y.stacks {
		n += len(s)
	}
	return n
}

// Peek returns the top item of stack index without removing it.
func (y *Yard[T]) Peek(index int) (T, error) {
	var zero T
	if err := y.check(index); err != nil {
		return zero, err
	}
	s := y.stacks[index-1]
	if len(s) == 0 {
		return zero, errs.New(errs.ErrCodeNotFound, "stack %d is empty", index)
	}
	return s[len(s)-1], nil
}

// Stack returns a bottom-to-top copy of stack index.
func (y *Yard[T]) Stack(index int) ([]T, error) {
	if err := y.check(index); err != nil {
		return nil, err
	}
	return append([]T(nil), y.stacks[index-1]...), nil
}

// Snapshot returns a bottom-to-top copy of every stack, in stack order.
func (y *Yard[T]) Snapshot() [][]T {
	out := make([][]T, len(y.stacks))
	for i, s := range y.stacks {
		out[i] = append([]T(nil), s...)
	}
	return out
}

// Clone returns an independent copy of the yard.
func (y *Yard[T]) Clone() *Yard[T] {
	return &Yard[T]{stacks: y.Snapshot()}
}

// MoveOne pops the top item off stack from and pushes it onto stack to.
func (y *Yard[T]) MoveOne(from, to int) error {
	if err := y.check(from); err != nil {
		return err
	}
	if err := y.check(to); err != nil {
		return err
	}
	src := &y.stacks[from-1]
	if len(*src) == 0 {
		return errs.New(errs.ErrCodeEmpty, "stack %d is empty", from)
	}
	transfer(src, &y.stacks[to-1], 1)
	return nil
}

// Apply executes m under m.Policy.
//
// Indices and source depth are validated first; on error the yard is left
// exactly as it was.
func (y *Yard[T]) Apply(m Move) error {
	if err := y.check(m.From); err != nil {
		return err
	}
	if err := y.check(m.To); err != nil {
		return err
	}
	if m.Count < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "negative count %d", m.Count)
	}
	src := &y.stacks[m.From-1]
	if m.Count > len(*src) {
		return errs.New(errs.ErrCodeUnderflow, "%s: stack %d holds %d items", m, m.From, len(*src))
	}

	dst := &y.stacks[m.To-1]
	switch m.Policy {
	case PolicySingle:
		transfer(src, dst, m.Count)
	case PolicyBlock:
		scratch := make([]T, 0, m.Count)
		transfer(src, &scratch, m.Count)
		transfer(&scratch, dst, m.Count)
	default:
		return errs.New(errs.ErrCodeUnsupported, "unknown relocation policy %d", int(m.Policy))
	}
	return nil
}

// ApplyAll applies moves in order and stops at the first failure.
// The error carries the 1-based number of the failing instruction; moves
// before it stay applied.
func (y *Yard[T]) ApplyAll(moves []Move) error {
	for i, m := range moves {
		if err := y.Apply(m); err != nil {
			return errs.Wrap(errs.GetCode(err), err, "instruction %d", i+1)
		}
	}
	return nil
}

// Tops returns the top item of every stack in stack order.
// An empty stack is an errors.ErrCodeNotFound error, not a gap.
func (y *Yard[T]) Tops() ([]T, error) {
	tops := make([]T, 0, len(y.stacks))
	for i := range y.stacks {
		top, err := y.Peek(i + 1)
		if err != nil {
			return nil, err
		}
		tops = append(tops, top)
	}
	return tops, nil
}

func (y *Yard[T]) check(index int) error {
	if index < 1 || index > len(y.stacks) {
		return errs.New(errs.ErrCodeIndexOutOfRange, "stack %d out of range 1..%d", index, len(y.stacks))
	}
	return nil
}

// transfer pops n items off src one at a time and pushes each onto dst.
// Callers guarantee len(*src) >= n.
func transfer[T any](src, dst *[]T, n int) {
	for range n {
		s := *src
		top := s[len(s)-1]
		var zero T
		s[len(s)-1] = zero
		*src = s[:len(s)-1]
		*dst = append(*dst, top)
	}
}
