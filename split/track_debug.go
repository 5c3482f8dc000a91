//go:build debug_split

package split

import (
	"context"
	"fmt"
	"sync"

	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/moiety-dev/moiety/splitutils"
	"golang.org/x/exp/slog"
)

// cellTracker records every live cell so that leaked parts can be attributed to the
// whole value that was split. It exists only in debug_split builds; production
// builds keep aggregate counters alone.
type cellTracker struct {
	noCopy splitutils.NoCopy

	mutex sync.Mutex
	cells *swiss.Map[uint64, trackedCell]
}

type trackedCell struct {
	wholeType string
}

var tracker = cellTracker{
	cells: swiss.NewMap[uint64, trackedCell](42),
}

func trackCell(id uint64, whole any) {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	tracker.cells.Put(id, trackedCell{
		wholeType: fmt.Sprintf("%T", whole),
	})
}

func untrackCell(id uint64) {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	tracker.cells.Delete(id)
}

func printLiveCells(json *jwriter.ObjectState) {
	arrayState := json.Name("LiveCells").Array()
	defer arrayState.End()

	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	tracker.cells.Iter(func(id uint64, cell trackedCell) bool {
		obj := arrayState.Object()
		obj.Name("Id").Int(int(id))
		obj.Name("WholeType").String(cell.wholeType)
		obj.End()

		return false
	})
}

// ReportLeaks logs every cell that still has an undropped part and returns how many
// there are. Per-cell detail is collected only when the debug_split build tag is
// present.
func ReportLeaks(logger *slog.Logger) int {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	count := 0
	tracker.cells.Iter(func(id uint64, cell trackedCell) bool {
		logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED CELL] undropped part",
			slog.Uint64("id", id),
			slog.String("wholeType", cell.wholeType),
		)
		count++

		return false
	})

	return count
}
