package rtt

import (
	"fmt"
	"time"

	"github.com/rtt-go/rtt-go/internal/protocol"
	"github.com/rtt-go/rtt-go/internal/utils"
	"github.com/rtt-go/rtt-go/logging"
)

// filter is the statistical half of an estimator: it turns validated RTT
// samples into a smoothed estimate and a timeout. The protocol half feeds it
// through measurement and reads back the values it logs and traces.
type filter interface {
	measurement(time.Duration)
	MeanDeviation() time.Duration
	RetransmissionTimeout() time.Duration
}

// estimator implements the send/acknowledge protocol shared by every filter:
// the ledger of outstanding segments, the retransmission-ambiguity rule, the
// timeout backoff and the marking statistics. The filter itself is supplied
// by the embedding type.
type estimator struct {
	clock   Clock
	history *sentSegmentHistory
	filter  filter

	next protocol.SequenceNumber

	initialRTT  time.Duration
	smoothedRTT time.Duration
	latestRTT   time.Duration
	minRTO      time.Duration

	multiplier    uint32
	maxMultiplier uint32
	sampleCount   uint64

	marking markingTracker

	tracer *logging.ConnectionTracer
	logger utils.Logger
}

// RecordSent notes the transmission of size bytes starting at seq.
// A send at the next expected sequence starts a new ledger record. A send
// below it retransmits already-tracked data: the covering record is marked,
// making its RTT sample unusable once acknowledged (Karn's algorithm). The
// next expected sequence never moves backward.
func (e *estimator) RecordSent(seq protocol.SequenceNumber, size protocol.ByteCount) {
	retransmission := seq != e.next
	if !retransmission {
		e.history.Append(&sentSegment{
			Sequence: seq,
			Length:   size,
			SendTime: e.clock.Now(),
		})
		e.next = seq.Add(size)
	} else if seg := e.history.MarkRetransmitted(seq); seg != nil {
		// A retransmission can carry bytes beyond everything sent so far.
		// The covering record and the next expected sequence grow with it.
		if end := seq.Add(size); end.GreaterThan(e.next) {
			seg.Length = seg.Sequence.Size(end)
			e.next = end
		}
	}
	if e.tracer != nil && e.tracer.SentSegment != nil {
		e.tracer.SentSegment(seq, size, retransmission)
	}
}

// RecordAcked processes an acknowledgment of everything before ackSeq.
// Ledger records fully covered by ackSeq are removed in send order; each one
// that was never retransmitted yields an RTT sample for the filter. marked
// says if the acknowledged data carried a congestion mark; the marking
// statistics count every removed record, retransmitted ones included.
// It returns the last RTT sample measured during this call, and false if the
// acknowledgment produced no usable sample.
func (e *estimator) RecordAcked(ackSeq protocol.SequenceNumber, marked bool) (time.Duration, bool) {
	now := e.clock.Now()
	var (
		rtt   time.Duration
		valid bool
	)
	n := e.history.PopAcked(ackSeq, func(s *sentSegment) {
		e.marking.RecordSegment(marked)
		if !s.retransmitted {
			rtt = now.Sub(s.SendTime)
			valid = true
			e.filter.measurement(rtt)
		}
		if e.tracer != nil && e.tracer.AcknowledgedSegment != nil {
			e.tracer.AcknowledgedSegment(s.Sequence)
		}
	})
	if n == 0 {
		return 0, false
	}
	if e.logger.Debug() {
		e.logger.Debugf("\tnewly acked segments (%d), ack %d", n, ackSeq)
	}
	if valid {
		if e.logger.Debug() {
			e.logger.Debugf("\tupdated RTT: %s (σ: %s)", e.smoothedRTT, e.filter.MeanDeviation())
		}
		if e.tracer != nil && e.tracer.UpdatedMetrics != nil {
			e.tracer.UpdatedMetrics(e.smoothedRTT, e.latestRTT, e.filter.MeanDeviation(), e.filter.RetransmissionTimeout())
		}
	}
	if e.marking.OnAck(ackSeq, e.next) {
		if e.logger.Debug() {
			e.logger.Debugf("\tupdated marking fraction: α: %.4f (sample: %.4f)", e.marking.alpha, e.marking.fraction)
		}
		if e.tracer != nil && e.tracer.UpdatedMarkingFraction != nil {
			e.tracer.UpdatedMarkingFraction(e.marking.alpha, e.marking.fraction)
		}
	}
	return rtt, valid
}

// ClearSent drops every outstanding ledger record without touching the
// statistics, abandoning the pending measurement context.
func (e *estimator) ClearSent() {
	e.history.Clear()
}

// IncreaseMultiplier doubles the timeout backoff, up to the configured
// maximum. At the maximum, further calls have no effect.
func (e *estimator) IncreaseMultiplier() {
	m := uint32(min(uint64(e.multiplier)*2, uint64(e.maxMultiplier)))
	if m == e.multiplier {
		return
	}
	e.multiplier = m
	e.logger.Debugf("Increased RTO backoff multiplier to %d", m)
	if e.tracer != nil && e.tracer.UpdatedBackoff != nil {
		e.tracer.UpdatedBackoff(m)
	}
}

// ResetMultiplier returns the timeout backoff to 1.
func (e *estimator) ResetMultiplier() {
	if e.multiplier == 1 {
		return
	}
	e.multiplier = 1
	if e.tracer != nil && e.tracer.UpdatedBackoff != nil {
		e.tracer.UpdatedBackoff(1)
	}
}

// scaleTimeout applies the minimum, the backoff multiplier and the upper
// bound to a filter-computed timeout.
func (e *estimator) scaleTimeout(rto time.Duration) time.Duration {
	rto = max(rto, e.minRTO)
	rto *= time.Duration(e.multiplier)
	return max(min(rto, protocol.MaxRTO), e.minRTO)
}

// reset returns the shared state to its initial values: the initial
// estimate, no samples, no backoff, an empty ledger. The marking weights
// survive, the window and the segment counts are dropped.
func (e *estimator) reset() {
	e.smoothedRTT = e.initialRTT
	e.latestRTT = 0
	e.sampleCount = 0
	e.multiplier = 1
	e.history.Clear()
	e.marking.Reset(e.next)
	if e.tracer != nil && e.tracer.EstimatorReset != nil {
		e.tracer.EstimatorReset()
	}
}

// Init establishes the sequence space, setting the next expected sequence
// without touching the statistics. The marking window is re-keyed to the new
// space.
func (e *estimator) Init(seq protocol.SequenceNumber) {
	e.next = seq
	e.marking.windowEnd = seq
}

// SmoothedRTT returns the current smoothed RTT estimate.
func (e *estimator) SmoothedRTT() time.Duration { return e.smoothedRTT }

// SetSmoothedRTT overrides the estimate directly, bypassing the filter.
// Useful during connection setup or after path migration.
func (e *estimator) SetSmoothedRTT(rtt time.Duration) error {
	if rtt <= 0 {
		return fmt.Errorf("smoothed RTT must be positive, got %s", rtt)
	}
	e.smoothedRTT = rtt
	return nil
}

// LatestRTT returns the most recent RTT sample.
func (e *estimator) LatestRTT() time.Duration { return e.latestRTT }

// SampleCount returns the number of RTT samples incorporated so far.
func (e *estimator) SampleCount() uint64 { return e.sampleCount }

// Multiplier returns the current backoff multiplier.
func (e *estimator) Multiplier() uint32 { return e.multiplier }

// MinRTO returns the lower bound for the retransmission timeout.
func (e *estimator) MinRTO() time.Duration { return e.minRTO }

// SetMinRTO sets the lower bound for the retransmission timeout.
func (e *estimator) SetMinRTO(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("minimum RTO must be positive, got %s", d)
	}
	e.minRTO = d
	return nil
}

// Alpha returns the smoothed fraction of acknowledged segments that carried
// a congestion mark.
func (e *estimator) Alpha() float64 { return e.marking.alpha }

// MarkedFraction returns the marking fraction of the last completed window.
func (e *estimator) MarkedFraction() float64 { return e.marking.fraction }

// MarkedSegments returns the total number of acknowledged segments that
// carried a congestion mark.
func (e *estimator) MarkedSegments() uint64 { return e.marking.totalMarked }

// NonMarkedSegments returns the total number of acknowledged segments that
// didn't carry a congestion mark.
func (e *estimator) NonMarkedSegments() uint64 { return e.marking.totalNonMarked }

// G returns the weight of a marking fraction sample.
func (e *estimator) G() float64 { return e.marking.g }

// SetG sets the weight of a marking fraction sample. It must be in (0, 1).
func (e *estimator) SetG(g float64) error {
	if g <= 0 || g >= 1 {
		return fmt.Errorf("g must be in (0, 1), got %g", g)
	}
	e.marking.g = g
	return nil
}
