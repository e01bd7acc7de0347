package logging

import "time"

// A ConnectionTracer records events of a single estimator.
// Callbacks that are nil are skipped.
type ConnectionTracer struct {
	// SentSegment is called for every RecordSent.
	// retransmission says if the sequence was already tracked in the ledger.
	SentSegment func(seq SequenceNumber, size ByteCount, retransmission bool)
	// AcknowledgedSegment is called for every ledger record removed by an acknowledgment.
	AcknowledgedSegment func(seq SequenceNumber)
	// UpdatedMetrics is called after a valid RTT sample was incorporated.
	UpdatedMetrics func(smoothedRTT, latestRTT, meanDeviation, rto time.Duration)
	// UpdatedMarkingFraction is called when a marking window completes and alpha is re-smoothed.
	UpdatedMarkingFraction func(alpha, fraction float64)
	// UpdatedBackoff is called when the timeout multiplier grows or is reset.
	UpdatedBackoff func(multiplier uint32)
	// EstimatorReset is called when the estimator returns to its initial statistical state.
	EstimatorReset func()
	Close          func()
}

// NewMultiplexedConnectionTracer creates a new connection tracer that
// multiplexes events to a number of tracers.
func NewMultiplexedConnectionTracer(tracers ...*ConnectionTracer) *ConnectionTracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &ConnectionTracer{
		SentSegment: func(seq SequenceNumber, size ByteCount, retransmission bool) {
			for _, t := range tracers {
				if t.SentSegment != nil {
					t.SentSegment(seq, size, retransmission)
				}
			}
		},
		AcknowledgedSegment: func(seq SequenceNumber) {
			for _, t := range tracers {
				if t.AcknowledgedSegment != nil {
					t.AcknowledgedSegment(seq)
				}
			}
		},
		UpdatedMetrics: func(smoothedRTT, latestRTT, meanDeviation, rto time.Duration) {
			for _, t := range tracers {
				if t.UpdatedMetrics != nil {
					t.UpdatedMetrics(smoothedRTT, latestRTT, meanDeviation, rto)
				}
			}
		},
		UpdatedMarkingFraction: func(alpha, fraction float64) {
			for _, t := range tracers {
				if t.UpdatedMarkingFraction != nil {
					t.UpdatedMarkingFraction(alpha, fraction)
				}
			}
		},
		UpdatedBackoff: func(multiplier uint32) {
			for _, t := range tracers {
				if t.UpdatedBackoff != nil {
					t.UpdatedBackoff(multiplier)
				}
			}
		},
		EstimatorReset: func() {
			for _, t := range tracers {
				if t.EstimatorReset != nil {
					t.EstimatorReset()
				}
			}
		},
		Close: func() {
			for _, t := range tracers {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}
