// Package rtt estimates a transport connection's round-trip time and derives
// its retransmission timeout from a stream of send and acknowledgment
// events. It implements Karn's retransmission-ambiguity rule, the
// Jacobson/Karels mean-deviation filter, exponential timeout backoff, and
// DCTCP-style smoothing of the congestion-marking fraction.
package rtt

import (
	"time"

	"github.com/rtt-go/rtt-go/internal/protocol"
)

type (
	// A SequenceNumber in the transport's sequence space.
	SequenceNumber = protocol.SequenceNumber
	// A ByteCount is used to count bytes.
	ByteCount = protocol.ByteCount
)

// An Estimator turns send and acknowledgment events into an RTT estimate,
// a retransmission timeout and a congestion-marking fraction.
// It is driven synchronously by the owning connection's event handlers and
// is not safe for concurrent use. Each connection owns one estimator; Copy
// forks an independent instance for a new connection.
type Estimator interface {
	// RecordSent notes the transmission of size bytes starting at seq.
	// Sends below the next expected sequence count as retransmissions.
	RecordSent(seq SequenceNumber, size ByteCount)
	// RecordAcked processes an acknowledgment of everything before ackSeq
	// and returns the RTT sample it produced, if any. marked says if the
	// acknowledged data carried a congestion mark.
	RecordAcked(ackSeq SequenceNumber, marked bool) (time.Duration, bool)
	// ClearSent abandons all outstanding measurement context.
	ClearSent()
	// RetransmissionTimeout returns the duration after which an
	// unacknowledged segment is presumed lost. It is never below MinRTO.
	RetransmissionTimeout() time.Duration
	// IncreaseMultiplier doubles the timeout backoff, up to a maximum.
	IncreaseMultiplier()
	// ResetMultiplier returns the timeout backoff to 1.
	ResetMultiplier()
	// Reset returns the estimator to its initial statistical state and
	// clears the ledger.
	Reset()
	// Copy returns an independent estimator with the same statistics and an
	// empty ledger.
	Copy() Estimator
	// Init establishes the sequence space without touching the statistics.
	Init(seq SequenceNumber)

	SmoothedRTT() time.Duration
	// SetSmoothedRTT overrides the estimate directly, bypassing the filter.
	SetSmoothedRTT(time.Duration) error
	// LatestRTT returns the most recent RTT sample.
	LatestRTT() time.Duration
	// SampleCount returns the number of RTT samples incorporated so far.
	SampleCount() uint64
	// Multiplier returns the current backoff multiplier.
	Multiplier() uint32
	MinRTO() time.Duration
	SetMinRTO(time.Duration) error
	// Alpha returns the smoothed fraction of acknowledged segments that
	// carried a congestion mark.
	Alpha() float64
	// MarkedFraction returns the marking fraction of the last completed
	// observation window.
	MarkedFraction() float64
	// MarkedSegments and NonMarkedSegments return the total number of
	// acknowledged segments with and without a congestion mark.
	MarkedSegments() uint64
	NonMarkedSegments() uint64
	// G returns the weight of a marking fraction sample.
	G() float64
	// SetG sets the weight of a marking fraction sample, in (0, 1).
	SetG(float64) error
}
