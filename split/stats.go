package split

import (
	"sync/atomic"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/moiety-dev/moiety/splitutils"
)

var (
	nextCellID     atomic.Uint64
	splitCount     atomic.Int64
	finalizedCells atomic.Int64
)

// CurrentStats reports how many splits this process has performed and how many
// cells are still waiting on at least one part. The counters are sampled
// individually, so a snapshot taken while other goroutines split and drop may be
// off by in-flight operations; it is exact once the process has quiesced.
func CurrentStats() splitutils.Statistics {
	splits := int(splitCount.Load())
	finalized := int(finalizedCells.Load())

	return splitutils.Statistics{
		SplitCount:     splits,
		ActiveCells:    splits - finalized,
		FinalizedCells: finalized,
	}
}

// PrintStatsJSON streams the package counters into the provided writer as a JSON
// object. Builds carrying the debug_split tag additionally emit one entry per
// still-live cell.
func PrintStatsJSON(writer *jwriter.Writer) {
	objState := writer.Object()
	defer objState.End()

	stats := CurrentStats()
	objState.Name("SplitCount").Int(stats.SplitCount)
	objState.Name("ActiveCells").Int(stats.ActiveCells)
	objState.Name("FinalizedCells").Int(stats.FinalizedCells)

	printLiveCells(&objState)
}

// BuildStatsString renders PrintStatsJSON output as a string.
func BuildStatsString() string {
	writer := jwriter.NewWriter()
	PrintStatsJSON(&writer)

	return string(writer.Bytes())
}
