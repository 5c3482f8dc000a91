//go:build !debug_split

package split

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
)

func trackCell(id uint64, whole any) {
}

func untrackCell(id uint64) {
}

func printLiveCells(json *jwriter.ObjectState) {
}

// ReportLeaks logs every cell that still has an undropped part and returns how many
// there are. Per-cell detail is collected only when the debug_split build tag is
// present; without it this logs nothing and reports the aggregate count.
func ReportLeaks(logger *slog.Logger) int {
	return CurrentStats().ActiveCells
}
