package split_test

import (
	"fmt"

	"github.com/moiety-dev/moiety/split"
)

func ExampleOfPair() {
	left, right := split.OfPair("hello", "!")
	defer right.Drop()
	defer left.Drop()

	*left.Get() += ", world"

	fmt.Printf("%s%s\n", left, right)
	// Output: hello, world!
}

func ExampleWith() {
	type scoreboard struct {
		home int
		away int
	}

	home, away := split.With(scoreboard{}, func(board *scoreboard) (*int, *int) {
		return &board.home, &board.away
	})
	defer away.Drop()
	defer home.Drop()

	*home.Get() += 3
	*away.Get() += 1

	fmt.Println(*home.Get(), "-", *away.Get())
	// Output: 3 - 1
}
