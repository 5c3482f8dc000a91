// Package split divides one owned value into two independently owned, independently
// droppable parts, each granting direct mutable access to a disjoint region of the
// original value.
//
// The two parts may be moved to different owners, including different goroutines,
// with no mutex and no reference count: the backing storage is shared through a
// single heap cell guarded by a one-shot atomic flag, and the whole value's teardown
// runs exactly once, when the second of the two parts is dropped.
package split

// Halves is the splitting capability: it divides a value into two mutable
// references aiming at disjoint regions of it.
//
// Implementations must guarantee that the two returned pointers never overlap in
// memory. The split package cannot check this at runtime; a splitting capability
// that returns aliasing pointers hands both parts unsynchronized access to the same
// memory, and any concurrent use after that is a data race.
type Halves[L, R any] interface {
	SplitMut() (*L, *R)
}

// With splits value into two owned parts using the provided splitting capability.
//
// splitMut receives exclusive access to the whole value in its final storage and is
// called exactly once; the two pointers it returns must aim at disjoint regions of
// the whole (see Halves for the contract). This is the only point at which the
// package allocates: the returned parts perform no allocation on access or on Drop.
//
// Each returned part must eventually be dropped. Leaking a part keeps the whole
// value live and its teardown unrun; that is a resource leak, never a safety
// violation, and is visible through CurrentStats and ReportLeaks.
func With[W, L, R any](value W, splitMut func(*W) (*L, *R)) (*Part[L, W], *Part[R, W]) {
	cell := &wholeCell[W]{
		id:    nextCellID.Add(1),
		value: value,
	}
	splitCount.Add(1)
	trackCell(cell.id, any(&cell.value))

	left, right := splitMut(&cell.value)

	leftPart := &Part[L, W]{
		whole: cell,
		ptr:   left,
	}
	rightPart := &Part[R, W]{
		whole: cell,
		ptr:   right,
	}
	return leftPart, rightPart
}

// Of splits a value whose pointer type implements Halves.
//
// Go cannot infer L and R from a method set, so Of requires explicit instantiation:
//
//	left, right := split.Of[Whole, Left, Right](value)
//
// When that is too noisy, use With with a splitting func, which infers everything.
func Of[W, L, R any, PW interface {
	*W
	Halves[L, R]
}](value W) (*Part[L, W], *Part[R, W]) {
	return With(value, func(whole *W) (*L, *R) {
		return PW(whole).SplitMut()
	})
}

// Resplit divides a part whose sub-object is itself splittable, consuming the part.
//
// The part is moved into a fresh cell and must not be used again by the caller; the
// new cell's teardown drops the consumed part, which keeps the original cell alive
// until both of the new parts are gone. The splitMut contract is the same as for
// With, applied to the sub-object.
func Resplit[T, W, L, R any](p *Part[T, W], splitMut func(*T) (*L, *R)) (*Part[L, Part[T, W]], *Part[R, Part[T, W]]) {
	if debugChecksEnabled && p.ptr == nil {
		panic("split: Resplit on a dropped or already-consumed part")
	}

	moved := *p
	p.whole = nil
	p.ptr = nil

	return With(moved, func(inner *Part[T, W]) (*L, *R) {
		return splitMut(inner.ptr)
	})
}

// Pair is a ready-made whole value holding two independent fields, splittable into
// one part per field.
type Pair[A, B any] struct {
	First  A
	Second B
}

// SplitMut divides the pair into pointers to its two fields, which occupy disjoint
// memory by construction.
func (p *Pair[A, B]) SplitMut() (*A, *B) {
	return &p.First, &p.Second
}

// Drop cascades teardown to both fields, so a pair of values that each declare
// teardown behaves like the composite it replaces.
func (p *Pair[A, B]) Drop() {
	runTeardown(any(&p.First))
	runTeardown(any(&p.Second))
}

// OfPair bundles two values into a Pair and splits it, returning one part per
// value. It is the inference-friendly entry point for the common two-field case.
func OfPair[A, B any](first A, second B) (*Part[A, Pair[A, B]], *Part[B, Pair[A, B]]) {
	return Of[Pair[A, B], A, B](Pair[A, B]{
		First:  first,
		Second: second,
	})
}
