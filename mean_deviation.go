package rtt

import (
	"fmt"
	"time"

	"github.com/rtt-go/rtt-go/internal/utils"
)

// MeanDeviationEstimator estimates the RTT with the exponentially-weighted
// mean and mean deviation filter (Jacobson/Karels) and derives the
// retransmission timeout as the mean plus four deviations.
type MeanDeviationEstimator struct {
	estimator

	gain          float64
	meanDeviation time.Duration
}

var _ Estimator = &MeanDeviationEstimator{}

// NewEstimator creates an estimator for one connection.
// A nil config uses the defaults.
func NewEstimator(config *Config) (Estimator, error) {
	return NewMeanDeviationEstimator(config)
}

// NewMeanDeviationEstimator creates a mean-deviation estimator for one
// connection. A nil config uses the defaults.
func NewMeanDeviationEstimator(config *Config) (*MeanDeviationEstimator, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	config = populateConfig(config)
	m := &MeanDeviationEstimator{
		estimator: estimator{
			clock:         config.Clock,
			history:       newSentSegmentHistory(),
			initialRTT:    config.InitialRTT,
			smoothedRTT:   config.InitialRTT,
			minRTO:        config.MinRTO,
			multiplier:    1,
			maxMultiplier: config.MaxMultiplier,
			marking:       markingTracker{g: config.G},
			tracer:        config.Tracer,
			logger:        utils.DefaultLogger,
		},
		gain: config.Gain,
	}
	m.filter = m
	return m, nil
}

// measurement incorporates one validated RTT sample: the estimate moves
// toward the sample by gain, the mean deviation toward the absolute error by
// the same gain.
func (m *MeanDeviationEstimator) measurement(rtt time.Duration) {
	err := rtt - m.smoothedRTT
	m.smoothedRTT += time.Duration(m.gain * float64(err))
	m.meanDeviation += time.Duration(m.gain * float64(err.Abs()-m.meanDeviation))
	m.sampleCount++
	m.latestRTT = rtt
}

// RetransmissionTimeout returns the duration after which an unacknowledged
// segment is presumed lost: the smoothed RTT plus four mean deviations,
// never below the minimum RTO, scaled by the backoff multiplier.
func (m *MeanDeviationEstimator) RetransmissionTimeout() time.Duration {
	return m.scaleTimeout(m.smoothedRTT + 4*m.meanDeviation)
}

// MeanDeviation returns the smoothed mean deviation of the RTT samples.
func (m *MeanDeviationEstimator) MeanDeviation() time.Duration { return m.meanDeviation }

// Gain returns the weight of a new sample in the filter.
func (m *MeanDeviationEstimator) Gain() float64 { return m.gain }

// SetGain sets the weight of a new sample. It must be in (0, 1).
func (m *MeanDeviationEstimator) SetGain(g float64) error {
	if g <= 0 || g >= 1 {
		return fmt.Errorf("gain must be in (0, 1), got %g", g)
	}
	m.gain = g
	return nil
}

// Reset returns the estimator to its initial statistical state.
func (m *MeanDeviationEstimator) Reset() {
	m.meanDeviation = 0
	m.estimator.reset()
}

// Copy returns an estimator with the same statistics and configuration but
// an empty ledger, for handing to a newly forked connection. The copy shares
// no mutable state with the original and starts without a tracer.
func (m *MeanDeviationEstimator) Copy() Estimator {
	c := &MeanDeviationEstimator{
		estimator: estimator{
			clock:         m.clock,
			history:       newSentSegmentHistory(),
			next:          m.next,
			initialRTT:    m.initialRTT,
			smoothedRTT:   m.smoothedRTT,
			latestRTT:     m.latestRTT,
			minRTO:        m.minRTO,
			multiplier:    m.multiplier,
			maxMultiplier: m.maxMultiplier,
			sampleCount:   m.sampleCount,
			marking:       m.marking,
			logger:        m.logger,
		},
		gain:          m.gain,
		meanDeviation: m.meanDeviation,
	}
	c.filter = c
	return c
}
