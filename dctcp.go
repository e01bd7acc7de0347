package rtt

import (
	"github.com/rtt-go/rtt-go/internal/protocol"
)

// markingTracker smooths the fraction of acknowledged segments that arrived
// with a congestion mark, as used by data-center congestion control.
// Segments are counted into an observation window spanning roughly one
// round-trip in sequence space. When an acknowledgment reaches the window
// boundary, the window's marking fraction is folded into alpha with weight g
// and the window rolls over.
type markingTracker struct {
	g     float64
	alpha float64

	marked    uint64
	nonMarked uint64
	windowEnd protocol.SequenceNumber

	totalMarked    uint64
	totalNonMarked uint64

	fraction float64
}

// RecordSegment counts one acknowledged segment into the current window and
// the lifetime totals.
func (t *markingTracker) RecordSegment(marked bool) {
	if marked {
		t.marked++
		t.totalMarked++
	} else {
		t.nonMarked++
		t.totalNonMarked++
	}
}

// OnAck rolls the observation window if ackSeq reached its boundary.
// nextSent is the highest sequence sent so far and becomes the next boundary.
// It reports whether alpha was updated.
func (t *markingTracker) OnAck(ackSeq, nextSent protocol.SequenceNumber) bool {
	if ackSeq.LessThan(t.windowEnd) {
		return false
	}
	total := t.marked + t.nonMarked
	if total == 0 {
		t.windowEnd = nextSent
		return false
	}
	t.fraction = float64(t.marked) / float64(total)
	t.alpha = (1-t.g)*t.alpha + t.g*t.fraction
	t.marked = 0
	t.nonMarked = 0
	t.windowEnd = nextSent
	return true
}

// Reset clears the window counters, the lifetime totals and the last
// fraction sample. The weight g and the smoothed alpha survive a reset.
func (t *markingTracker) Reset(windowEnd protocol.SequenceNumber) {
	t.marked = 0
	t.nonMarked = 0
	t.totalMarked = 0
	t.totalNonMarked = 0
	t.fraction = 0
	t.windowEnd = windowEnd
}
