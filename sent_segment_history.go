package rtt

import (
	"time"

	"github.com/rtt-go/rtt-go/internal/protocol"
)

// A sentSegment is one transmitted byte range awaiting acknowledgment.
type sentSegment struct {
	Sequence protocol.SequenceNumber
	Length   protocol.ByteCount
	SendTime time.Time

	retransmitted bool
}

// endSequence returns the sequence number following this segment's byte range.
func (s *sentSegment) endSequence() protocol.SequenceNumber {
	return s.Sequence.Add(s.Length)
}

// sentSegmentHistory keeps track of transmitted byte ranges, in send order.
// Ranges don't overlap. Acknowledgments remove segments from the front only.
type sentSegmentHistory struct {
	segments []*sentSegment
}

func newSentSegmentHistory() *sentSegmentHistory {
	return &sentSegmentHistory{segments: make([]*sentSegment, 0, 32)}
}

func (h *sentSegmentHistory) Append(s *sentSegment) {
	if len(h.segments) > 0 {
		if last := h.segments[len(h.segments)-1]; s.Sequence.LessThan(last.endSequence()) {
			panic("non-sequential segment appended to sent segment history")
		}
	}
	h.segments = append(h.segments, s)
}

// MarkRetransmitted marks the segment whose byte range contains seq.
// It returns the segment, or nil if nothing pending contains seq
// (already acknowledged, or never tracked).
func (h *sentSegmentHistory) MarkRetransmitted(seq protocol.SequenceNumber) *sentSegment {
	for _, s := range h.segments {
		if seq.InRange(s.Sequence, s.endSequence()) {
			s.retransmitted = true
			return s
		}
	}
	return nil
}

// PopAcked removes every segment fully covered by ackSeq, front to back,
// calling cb for each removed segment in send order. It stops at the first
// segment that is not fully covered; partial coverage doesn't remove.
// It returns the number of removed segments.
func (h *sentSegmentHistory) PopAcked(ackSeq protocol.SequenceNumber, cb func(*sentSegment)) int {
	var n int
	for _, s := range h.segments {
		if s.endSequence().GreaterThan(ackSeq) {
			break
		}
		cb(s)
		n++
	}
	for i := 0; i < n; i++ {
		h.segments[i] = nil
	}
	h.segments = h.segments[n:]
	return n
}

func (h *sentSegmentHistory) Clear() {
	for i := range h.segments {
		h.segments[i] = nil
	}
	h.segments = h.segments[:0]
}

func (h *sentSegmentHistory) Len() int {
	return len(h.segments)
}
