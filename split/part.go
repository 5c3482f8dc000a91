package split

import (
	"fmt"
	"io"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/moiety-dev/moiety/splitutils"
)

const debugChecksEnabled = splitutils.DebugChecksEnabled

// Part is one of the two owned halves of a split value. It dereferences to its own
// sub-object only, never to the whole or to the sibling's sub-object.
//
// A Part is produced only by the entry points in this package and is used through
// the pointer they return; it must not be copied. Parts may be handed to other
// goroutines: accessing a part's sub-object needs no coordination with the sibling,
// because the two sub-objects are disjoint by the splitting contract. The whole
// value's teardown runs on whichever goroutine drops the second part, so the whole
// must tolerate teardown away from its creating goroutine.
//
// There is no special forwarding for iteration or hashing: callers hold a real
// pointer to the sub-object through Get and use it directly.
type Part[T, W any] struct {
	whole *wholeCell[W]
	ptr   *T
}

// Validate performs internal consistency checks on the part. A part is either
// live, holding both its cell reference and its sub-pointer, or dropped, holding
// neither; any other state means the part was copied or constructed outside this
// package.
func (p *Part[T, W]) Validate() error {
	if (p.whole == nil) != (p.ptr == nil) {
		return errors.New("part holds a cell reference without a sub-pointer or vice versa- it was copied or built outside the split package")
	}
	return nil
}

// Get returns the part's sub-object for reading and writing. The pointer stays
// valid until the part is dropped; it performs no synchronization and no
// allocation.
func (p *Part[T, W]) Get() *T {
	splitutils.DebugValidate(p)
	if debugChecksEnabled && p.ptr == nil {
		panic("split: part dereferenced after Drop")
	}
	return p.ptr
}

// Set overwrites the part's sub-object.
func (p *Part[T, W]) Set(value T) {
	*p.Get() = value
}

// Drop releases the part. The first of a cell's two parts to be dropped leaves the
// whole value in place for its sibling; the second runs the whole value's teardown.
// Drop on an already-dropped part is a no-op. After Drop the part must not be
// dereferenced.
func (p *Part[T, W]) Drop() {
	splitutils.DebugValidate(p)

	whole := p.whole
	if whole == nil {
		return
	}
	p.whole = nil
	p.ptr = nil

	whole.releaseRef()
}

// Close releases the part, satisfying io.Closer. It always returns nil.
func (p *Part[T, W]) Close() error {
	p.Drop()
	return nil
}

// String formats the sub-object, delegating to its own Stringer when it has one.
func (p *Part[T, W]) String() string {
	if s, ok := any(p.Get()).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", *p.Get())
}

// Format forwards formatting verbs to the sub-object.
func (p *Part[T, W]) Format(state fmt.State, verb rune) {
	if f, ok := any(p.Get()).(fmt.Formatter); ok {
		f.Format(state, verb)
		return
	}
	fmt.Fprintf(state, fmt.FormatString(state, verb), *p.Get())
}

// Read forwards to the sub-object's io.Reader. It returns an error wrapping
// splitutils.ErrNotForwardable if the sub-object is not a reader.
func (p *Part[T, W]) Read(buf []byte) (int, error) {
	if r, ok := any(p.Get()).(io.Reader); ok {
		return r.Read(buf)
	}
	return 0, errors.Wrapf(splitutils.ErrNotForwardable, "%T does not implement io.Reader", p.ptr)
}

// Write forwards to the sub-object's io.Writer. It returns an error wrapping
// splitutils.ErrNotForwardable if the sub-object is not a writer.
func (p *Part[T, W]) Write(buf []byte) (int, error) {
	if w, ok := any(p.Get()).(io.Writer); ok {
		return w.Write(buf)
	}
	return 0, errors.Wrapf(splitutils.ErrNotForwardable, "%T does not implement io.Writer", p.ptr)
}

// Equal compares the part's sub-object with other. It delegates to the sub-object's
// own Equal method when it has one; otherwise it unwraps other if it is a part of
// the same type and falls back to deep equality on the values.
func (p *Part[T, W]) Equal(other any) bool {
	if eq, ok := any(p.Get()).(interface{ Equal(other any) bool }); ok {
		return eq.Equal(other)
	}
	if otherPart, ok := other.(*Part[T, W]); ok {
		return reflect.DeepEqual(*p.Get(), *otherPart.Get())
	}
	return reflect.DeepEqual(*p.Get(), other)
}
