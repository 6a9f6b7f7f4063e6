package crates_test

import (
	"fmt"

	"github.com/matzehuels/adventofcode/pkg/crates"
	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

func ExampleYard_Apply() {
	y := crates.New[rune](2)
	_ = y.Init(1, []rune("ABC"))

	_ = y.Apply(crates.Move{Count: 2, From: 1, To: 2, Policy: crates.PolicySingle})
	single, _ := y.Stack(2)

	y = crates.New[rune](2)
	_ = y.Init(1, []rune("ABC"))

	_ = y.Apply(crates.Move{Count: 2, From: 1, To: 2, Policy: crates.PolicyBlock})
	block, _ := y.Stack(2)

	fmt.Println("single:", string(single))
	fmt.Println("block:", string(block))
	// Output:
	// single: CB
	// block: BC
}

func ExampleKey() {
	y := crates.ParseLayout([]string{"ZN", "MCD", "P"})
	moves, _ := crates.ParseMoves([]string{
		"move 1 from 2 to 1",
		"move 3 from 1 to 3",
		"move 2 from 2 to 1",
		"move 1 from 1 to 2",
	}, crates.PolicySingle)

	if err := y.ApplyAll(moves); err != nil {
		fmt.Println(err)
		return
	}
	key, _ := crates.Key(y)
	fmt.Println(key)
	// Output: CMZ
}

func ExampleYard_Apply_underflow() {
	y := crates.ParseLayout([]string{"ZN", "MCD", "P"})
	err := y.Apply(crates.Move{Count: 5, From: 3, To: 1})

	fmt.Println(errs.Is(err, errs.ErrCodeUnderflow))
	fmt.Println(y.Total())
	// Output:
	// true
	// 6
}
