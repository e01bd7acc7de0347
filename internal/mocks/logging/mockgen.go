//go:build gomock || generate

package mocklogging

import (
	"time"

	"github.com/rtt-go/rtt-go/logging"
)

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package internal -destination internal/tracer.go github.com/rtt-go/rtt-go/internal/mocks/logging ConnectionTracer"
type ConnectionTracer interface {
	SentSegment(seq logging.SequenceNumber, size logging.ByteCount, retransmission bool)
	AcknowledgedSegment(seq logging.SequenceNumber)
	UpdatedMetrics(smoothedRTT, latestRTT, meanDeviation, rto time.Duration)
	UpdatedMarkingFraction(alpha, fraction float64)
	UpdatedBackoff(multiplier uint32)
	EstimatorReset()
	Close()
}
