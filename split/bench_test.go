package split

import (
	"testing"
)

func BenchmarkSplitAndDrop(b *testing.B) {
	for i := 0; i < b.N; i++ {
		left, right := OfPair(i, i)
		left.Drop()
		right.Drop()
	}
}

func BenchmarkGet(b *testing.B) {
	left, right := OfPair(0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		*left.Get()++
	}
	b.StopTimer()

	left.Drop()
	right.Drop()
}

func BenchmarkConcurrentDrop(b *testing.B) {
	lefts := make([]*Part[int, Pair[int, int]], b.N)
	rights := make([]*Part[int, Pair[int, int]], b.N)
	for i := 0; i < b.N; i++ {
		lefts[i], rights[i] = OfPair(i, i)
	}

	done := make(chan struct{})
	b.ResetTimer()
	go func() {
		for _, right := range rights {
			right.Drop()
		}
		close(done)
	}()
	for _, left := range lefts {
		left.Drop()
	}
	<-done
}
