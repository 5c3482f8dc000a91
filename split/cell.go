package split

import (
	"context"
	"io"
	"sync/atomic"

	"golang.org/x/exp/slog"
)

// Dropper is implemented by whole values that need teardown to run when the last
// part referencing them is dropped. When the sub-object behind a part is itself
// a whole that was split further, its teardown is the Drop method of the consumed
// part, which is how nested splits release their parent cell.
//
// Dropper takes priority over io.Closer when a whole value implements both.
type Dropper interface {
	Drop()
}

// wholeCell is the single shared allocation behind one split: the whole value plus
// a one-shot finalization flag. Exactly one wholeCell is allocated per call to an
// entry point, and it never moves afterward, so the part pointers produced by the
// splitting capability at split time stay valid until the cell is finalized.
type wholeCell[W any] struct {
	finalized atomic.Bool
	id        uint64
	value     W
}

// releaseRef is one part's half of the finalization protocol. The first part to
// arrive flips the flag and leaves the cell alone, since the sibling's sub-pointer
// still aims into it. The second part observes the flag already set, runs the whole
// value's teardown and retires the cell.
//
// Swap is sequentially consistent, which subsumes the release/acquire pairing this
// protocol needs: the first part's swap happens-before the swap that returns true,
// so every write made through the sibling's sub-pointer is visible to the teardown
// below. This holds only because a cell has exactly two parts; a third participant
// would require a real reference count.
func (c *wholeCell[W]) releaseRef() {
	if !c.finalized.Swap(true) {
		return
	}

	runTeardown(any(&c.value))
	finalizedCells.Add(1)
	untrackCell(c.id)
}

// runTeardown runs the whole value's own teardown, if it declares one. Plain data
// declares none and is simply left to the garbage collector.
func runTeardown(whole any) {
	switch w := whole.(type) {
	case Dropper:
		w.Drop()
	case io.Closer:
		err := w.Close()
		if err != nil {
			Logger().LogAttrs(context.Background(), slog.LevelError,
				"[SPLIT TEARDOWN] whole value returned an error from Close",
				slog.Any("error", err))
		}
	}
}
