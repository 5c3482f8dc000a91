package split

import (
	"bytes"
	"os"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type countedHalves struct {
	left  int
	right int
	drops *atomic.Int32
}

func (h *countedHalves) SplitMut() (*int, *int) {
	return &h.left, &h.right
}

func (h *countedHalves) Drop() {
	h.drops.Add(1)
}

type closingHalves struct {
	left   int
	right  int
	closes *atomic.Int32
	err    error
}

func (h *closingHalves) SplitMut() (*int, *int) {
	return &h.left, &h.right
}

func (h *closingHalves) Close() error {
	h.closes.Add(1)
	return h.err
}

func TestTeardownRunsOnceLeftFirst(t *testing.T) {
	var drops atomic.Int32
	left, right := Of[countedHalves, int, int](countedHalves{drops: &drops})

	left.Drop()
	require.EqualValues(t, 0, drops.Load())

	right.Drop()
	require.EqualValues(t, 1, drops.Load())
}

func TestTeardownRunsOnceRightFirst(t *testing.T) {
	var drops atomic.Int32
	left, right := Of[countedHalves, int, int](countedHalves{drops: &drops})

	right.Drop()
	require.EqualValues(t, 0, drops.Load())

	left.Drop()
	require.EqualValues(t, 1, drops.Load())
}

func TestTeardownWaitsForBothParts(t *testing.T) {
	var drops atomic.Int32
	left, right := Of[countedHalves, int, int](countedHalves{drops: &drops})

	*left.Get() = 99
	left.Drop()

	// The sibling's sub-object must remain usable while the cell survives.
	*right.Get() = 100
	require.Equal(t, 100, *right.Get())
	require.EqualValues(t, 0, drops.Load())

	right.Drop()
	require.EqualValues(t, 1, drops.Load())
}

func TestDropIsIdempotentPerPart(t *testing.T) {
	var drops atomic.Int32
	left, right := Of[countedHalves, int, int](countedHalves{drops: &drops})

	left.Drop()
	left.Drop()
	left.Drop()
	require.EqualValues(t, 0, drops.Load())

	right.Drop()
	right.Drop()
	require.EqualValues(t, 1, drops.Load())
}

func TestCloserTeardown(t *testing.T) {
	var closes atomic.Int32
	left, right := Of[closingHalves, int, int](closingHalves{closes: &closes})

	left.Drop()
	right.Drop()

	require.EqualValues(t, 1, closes.Load())
}

func TestCloserTeardownErrorIsLogged(t *testing.T) {
	var logOutput bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logOutput)))
	defer SetLogger(nil)

	var closes atomic.Int32
	left, right := Of[closingHalves, int, int](closingHalves{
		closes: &closes,
		err:    errors.New("flush failed"),
	})

	left.Drop()
	right.Drop()

	require.EqualValues(t, 1, closes.Load())
	require.Contains(t, logOutput.String(), "SPLIT TEARDOWN")
	require.Contains(t, logOutput.String(), "flush failed")
}

type closeCounter struct {
	closes *atomic.Int32
}

func (c *closeCounter) Close() error {
	c.closes.Add(1)
	return nil
}

func TestPairTeardownCascadesToFields(t *testing.T) {
	var closes atomic.Int32
	left, right := OfPair(closeCounter{closes: &closes}, closeCounter{closes: &closes})

	left.Drop()
	require.EqualValues(t, 0, closes.Load())

	right.Drop()
	require.EqualValues(t, 2, closes.Load())
}

func TestPartCloseReleasesLikeDrop(t *testing.T) {
	var drops atomic.Int32
	left, right := Of[countedHalves, int, int](countedHalves{drops: &drops})

	require.NoError(t, left.Close())
	require.NoError(t, right.Close())
	require.EqualValues(t, 1, drops.Load())
}

func TestSetLoggerRoundTrip(t *testing.T) {
	replacement := slog.New(slog.NewTextHandler(os.Stdout))

	SetLogger(replacement)
	require.Same(t, replacement, Logger())

	SetLogger(nil)
	require.Same(t, slog.Default(), Logger())
}
