// internal/metrics/stats.go
// Per-frame statistics for the camera tick loop
package metrics

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

// DefaultWindow is the number of recent frame durations kept
const DefaultWindow = 100

// Snapshot is a point-in-time view of FrameStats
type Snapshot struct {
	Processed uint64
	Skipped   uint64
	Mean      time.Duration // over the window
	StdDev    time.Duration
}

func (s Snapshot) String() string {
	return fmt.Sprintf("frames %d  skipped %d  %.1f±%.1f ms",
		s.Processed, s.Skipped,
		float64(s.Mean)/float64(time.Millisecond),
		float64(s.StdDev)/float64(time.Millisecond))
}

// FrameStats counts processed and skipped ticks and keeps a ring of the most
// recent processing durations. Not safe for concurrent use.
type FrameStats struct {
	processed uint64
	skipped   uint64
	window    []float64
	next      int
	filled    bool
}

// NewFrameStats keeps the last window durations; window <= 0 uses DefaultWindow
func NewFrameStats(window int) *FrameStats {
	if window <= 0 {
		window = DefaultWindow
	}
	return &FrameStats{window: make([]float64, window)}
}

// Record counts a processed frame that took d
func (fs *FrameStats) Record(d time.Duration) {
	fs.processed++
	fs.window[fs.next] = float64(d)
	fs.next++
	if fs.next == len(fs.window) {
		fs.next = 0
		fs.filled = true
	}
}

// Skip counts a tick that produced no frame
func (fs *FrameStats) Skip() { fs.skipped++ }

// Processed returns the number of recorded frames
func (fs *FrameStats) Processed() uint64 { return fs.processed }

func (fs *FrameStats) Snapshot() Snapshot {
	snap := Snapshot{Processed: fs.processed, Skipped: fs.skipped}

	samples := fs.window[:fs.next]
	if fs.filled {
		samples = fs.window
	}
	switch len(samples) {
	case 0:
	case 1:
		snap.Mean = time.Duration(samples[0])
	default:
		mean, std := stat.MeanStdDev(samples, nil)
		snap.Mean = time.Duration(mean)
		snap.StdDev = time.Duration(std)
	}
	return snap
}
