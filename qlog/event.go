package qlog

import (
	"time"

	"github.com/rtt-go/rtt-go/logging"

	"github.com/francoispqt/gojay"
)

var eventFields = [4]string{"time", "category", "event", "data"}

type events []event

var _ gojay.MarshalerJSONArray = events{}

func (e events) IsNil() bool { return e == nil }
func (e events) MarshalJSONArray(enc *gojay.Encoder) {
	for _, ev := range e {
		enc.Array(ev)
	}
}

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONArray = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONArray(enc *gojay.Encoder) {
	enc.Float64(milliseconds(e.RelativeTime))
	enc.String(e.Category().String())
	enc.String(e.Name())
	enc.Object(e.eventDetails)
}

func milliseconds(dur time.Duration) float64 { return float64(dur.Nanoseconds()) / 1e6 }

type eventSegmentSent struct {
	Sequence       logging.SequenceNumber
	Length         logging.ByteCount
	Retransmission bool
}

var _ eventDetails = eventSegmentSent{}

func (e eventSegmentSent) Category() category { return categoryTransport }
func (e eventSegmentSent) Name() string       { return "segment_sent" }
func (e eventSegmentSent) IsNil() bool        { return false }

func (e eventSegmentSent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint32Key("sequence_number", uint32(e.Sequence))
	enc.Uint64Key("length", uint64(e.Length))
	enc.BoolKeyOmitEmpty("retransmission", e.Retransmission)
}

type eventSegmentAcknowledged struct {
	Sequence logging.SequenceNumber
}

var _ eventDetails = eventSegmentAcknowledged{}

func (e eventSegmentAcknowledged) Category() category { return categoryTransport }
func (e eventSegmentAcknowledged) Name() string       { return "segment_acknowledged" }
func (e eventSegmentAcknowledged) IsNil() bool        { return false }

func (e eventSegmentAcknowledged) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint32Key("sequence_number", uint32(e.Sequence))
}

type metrics struct {
	SmoothedRTT   time.Duration
	LatestRTT     time.Duration
	MeanDeviation time.Duration
	RTO           time.Duration
}

type eventMetricsUpdated struct {
	Last    *metrics
	Current *metrics
}

var _ eventDetails = eventMetricsUpdated{}

func (e eventMetricsUpdated) Category() category { return categoryRecovery }
func (e eventMetricsUpdated) Name() string       { return "metrics_updated" }
func (e eventMetricsUpdated) IsNil() bool        { return false }

func (e eventMetricsUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	if e.Last == nil || e.Last.SmoothedRTT != e.Current.SmoothedRTT {
		enc.FloatKey("smoothed_rtt", milliseconds(e.Current.SmoothedRTT))
	}
	if e.Last == nil || e.Last.LatestRTT != e.Current.LatestRTT {
		enc.FloatKey("latest_rtt", milliseconds(e.Current.LatestRTT))
	}
	if e.Last == nil || e.Last.MeanDeviation != e.Current.MeanDeviation {
		enc.FloatKey("rtt_variance", milliseconds(e.Current.MeanDeviation))
	}
	if e.Last == nil || e.Last.RTO != e.Current.RTO {
		enc.FloatKey("rto", milliseconds(e.Current.RTO))
	}
}

type eventBackoffUpdated struct {
	Multiplier uint32
}

var _ eventDetails = eventBackoffUpdated{}

func (e eventBackoffUpdated) Category() category { return categoryRecovery }
func (e eventBackoffUpdated) Name() string       { return "backoff_updated" }
func (e eventBackoffUpdated) IsNil() bool        { return false }

func (e eventBackoffUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint32Key("multiplier", e.Multiplier)
}

type eventMarkingFractionUpdated struct {
	Alpha    float64
	Fraction float64
}

var _ eventDetails = eventMarkingFractionUpdated{}

func (e eventMarkingFractionUpdated) Category() category { return categoryRecovery }
func (e eventMarkingFractionUpdated) Name() string       { return "marking_fraction_updated" }
func (e eventMarkingFractionUpdated) IsNil() bool        { return false }

func (e eventMarkingFractionUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.FloatKey("alpha", e.Alpha)
	enc.FloatKey("fraction", e.Fraction)
}

type eventEstimatorReset struct{}

var _ eventDetails = eventEstimatorReset{}

func (e eventEstimatorReset) Category() category { return categoryRecovery }
func (e eventEstimatorReset) Name() string       { return "estimator_reset" }
func (e eventEstimatorReset) IsNil() bool        { return false }

func (e eventEstimatorReset) MarshalJSONObject(*gojay.Encoder) {}
