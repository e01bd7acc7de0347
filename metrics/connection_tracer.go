// Package metrics provides a Prometheus tracer for RTT estimators.
package metrics

import (
	"errors"
	"time"

	"github.com/rtt-go/rtt-go/logging"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "rttgo"

var (
	rttSmoothed = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "rtt_smoothed_seconds",
			Help:      "Smoothed RTT estimate",
			Buckets:   prometheus.ExponentialBuckets(0.001, 1.3, 35),
		},
		[]string{"conn"},
	)
	rttLatest = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "rtt_latest_seconds",
			Help:      "Latest RTT sample",
			Buckets:   prometheus.ExponentialBuckets(0.001, 1.3, 35),
		},
		[]string{"conn"},
	)
	markingAlpha = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "marking_alpha",
			Help:      "Smoothed congestion marking fraction",
		},
		[]string{"conn"},
	)
	backoffEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "backoff_events_total",
			Help:      "Timeout Backoff Events",
		},
		[]string{"conn", "type"},
	)
	segments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "segments_total",
			Help:      "Segments Tracked",
		},
		[]string{"conn", "type"},
	)
)

// NewConnectionTracer creates a connection tracer feeding the default
// Prometheus registerer. conn labels the time series of this connection.
// It can be set on the Tracer field of the estimator Config.
func NewConnectionTracer(conn string) *logging.ConnectionTracer {
	return NewConnectionTracerWithRegisterer(prometheus.DefaultRegisterer, conn)
}

// NewConnectionTracerWithRegisterer creates a connection tracer using a given
// Prometheus registerer.
func NewConnectionTracerWithRegisterer(registerer prometheus.Registerer, conn string) *logging.ConnectionTracer {
	for _, c := range [...]prometheus.Collector{
		rttSmoothed,
		rttLatest,
		markingAlpha,
		backoffEvents,
		segments,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	return &logging.ConnectionTracer{
		SentSegment: func(_ logging.SequenceNumber, _ logging.ByteCount, retransmission bool) {
			tags := getLabels()
			defer putLabels(tags)

			typ := "sent"
			if retransmission {
				typ = "retransmitted"
			}
			*tags = append(*tags, conn)
			*tags = append(*tags, typ)
			segments.WithLabelValues(*tags...).Inc()
		},
		AcknowledgedSegment: func(_ logging.SequenceNumber) {
			tags := getLabels()
			defer putLabels(tags)

			*tags = append(*tags, conn)
			*tags = append(*tags, "acked")
			segments.WithLabelValues(*tags...).Inc()
		},
		UpdatedMetrics: func(smoothedRTT, latestRTT, _, _ time.Duration) {
			tags := getLabels()
			defer putLabels(tags)

			*tags = append(*tags, conn)
			rttSmoothed.WithLabelValues(*tags...).Observe(smoothedRTT.Seconds())
			rttLatest.WithLabelValues(*tags...).Observe(latestRTT.Seconds())
		},
		UpdatedMarkingFraction: func(alpha, _ float64) {
			tags := getLabels()
			defer putLabels(tags)

			*tags = append(*tags, conn)
			markingAlpha.WithLabelValues(*tags...).Set(alpha)
		},
		UpdatedBackoff: func(multiplier uint32) {
			tags := getLabels()
			defer putLabels(tags)

			typ := "grow"
			if multiplier == 1 {
				typ = "reset"
			}
			*tags = append(*tags, conn)
			*tags = append(*tags, typ)
			backoffEvents.WithLabelValues(*tags...).Inc()
		},
	}
}
