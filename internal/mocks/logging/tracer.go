//go:build !gomock && !generate

package mocklogging

import (
	"time"

	"github.com/rtt-go/rtt-go/internal/mocks/logging/internal"
	"github.com/rtt-go/rtt-go/logging"

	"go.uber.org/mock/gomock"
)

type MockConnectionTracer = internal.MockConnectionTracer

func NewMockConnectionTracer(ctrl *gomock.Controller) (*logging.ConnectionTracer, *MockConnectionTracer) {
	t := internal.NewMockConnectionTracer(ctrl)
	return &logging.ConnectionTracer{
		SentSegment: func(seq logging.SequenceNumber, size logging.ByteCount, retransmission bool) {
			t.SentSegment(seq, size, retransmission)
		},
		AcknowledgedSegment: func(seq logging.SequenceNumber) {
			t.AcknowledgedSegment(seq)
		},
		UpdatedMetrics: func(smoothedRTT, latestRTT, meanDeviation, rto time.Duration) {
			t.UpdatedMetrics(smoothedRTT, latestRTT, meanDeviation, rto)
		},
		UpdatedMarkingFraction: func(alpha, fraction float64) {
			t.UpdatedMarkingFraction(alpha, fraction)
		},
		UpdatedBackoff: func(multiplier uint32) {
			t.UpdatedBackoff(multiplier)
		},
		EstimatorReset: func() {
			t.EstimatorReset()
		},
		Close: func() {
			t.Close()
		},
	}, t
}
