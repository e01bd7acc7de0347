// Package qlog records estimator events in a structured JSON log, one trace
// per connection.
package qlog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/rtt-go/rtt-go/logging"

	"github.com/francoispqt/gojay"
)

const eventChanSize = 50

type connectionTracer struct {
	mutex sync.Mutex

	w             io.WriteCloser
	connectionID  string
	referenceTime time.Time

	suffix     []byte
	events     chan event
	encodeErr  error
	runStopped chan struct{}

	lastMetrics *metrics
}

// NewConnectionTracer creates a tracer recording the events of one connection
// to w. The log is only complete once the tracer is closed.
func NewConnectionTracer(w io.WriteCloser, connectionID string) *logging.ConnectionTracer {
	t := newConnectionTracer(w, connectionID)
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
		Close: func() { t.Close() },
	}
}

func newConnectionTracer(w io.WriteCloser, connectionID string) *connectionTracer {
	t := &connectionTracer{
		w:             w,
		connectionID:  connectionID,
		runStopped:    make(chan struct{}),
		events:        make(chan event, eventChanSize),
		referenceTime: time.Now(),
	}
	go t.run()
	return t
}

func (t *connectionTracer) run() {
	defer close(t.runStopped)
	buf := &bytes.Buffer{}
	enc := gojay.NewEncoder(buf)
	tl := &topLevel{
		traces: traces{
			{
				VantagePoint: vantagePoint{Type: "sender"},
				CommonFields: commonFields{
					ConnectionID:  t.connectionID,
					ReferenceTime: t.referenceTime,
				},
				EventFields: eventFields[:],
			},
		}}
	if err := enc.Encode(tl); err != nil {
		panic(fmt.Sprintf("qlog encoding into a bytes.Buffer failed: %s", err))
	}
	data := buf.Bytes()
	t.suffix = data[buf.Len()-4:]
	if _, err := t.w.Write(data[:buf.Len()-4]); err != nil {
		t.encodeErr = err
	}
	enc = gojay.NewEncoder(t.w)
	isFirst := true
	for ev := range t.events {
		if t.encodeErr != nil { // if encoding failed, just continue draining the event channel
			continue
		}
		if !isFirst {
			t.w.Write([]byte(","))
		}
		if err := enc.Encode(ev); err != nil {
			t.encodeErr = err
		}
		isFirst = false
	}
}

func (t *connectionTracer) Close() {
	if err := t.export(); err != nil {
		log.Printf("exporting qlog failed: %s\n", err)
	}
}

// export writes a qlog.
func (t *connectionTracer) export() error {
	close(t.events)
	<-t.runStopped
	if t.encodeErr != nil {
		return t.encodeErr
	}
	if _, err := t.w.Write(t.suffix); err != nil {
		return err
	}
	return t.w.Close()
}

func (t *connectionTracer) recordEvent(eventTime time.Time, details eventDetails) {
	t.events <- event{
		RelativeTime: eventTime.Sub(t.referenceTime),
		eventDetails: details,
	}
}

func (t *connectionTracer) SentSegment(seq logging.SequenceNumber, size logging.ByteCount, retransmission bool) {
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventSegmentSent{
		Sequence:       seq,
		Length:         size,
		Retransmission: retransmission,
	})
	t.mutex.Unlock()
}

func (t *connectionTracer) AcknowledgedSegment(seq logging.SequenceNumber) {
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventSegmentAcknowledged{Sequence: seq})
	t.mutex.Unlock()
}

func (t *connectionTracer) UpdatedMetrics(smoothedRTT, latestRTT, meanDeviation, rto time.Duration) {
	m := &metrics{
		SmoothedRTT:   smoothedRTT,
		LatestRTT:     latestRTT,
		MeanDeviation: meanDeviation,
		RTO:           rto,
	}
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventMetricsUpdated{
		Last:    t.lastMetrics,
		Current: m,
	})
	t.lastMetrics = m
	t.mutex.Unlock()
}

func (t *connectionTracer) UpdatedMarkingFraction(alpha, fraction float64) {
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventMarkingFractionUpdated{
		Alpha:    alpha,
		Fraction: fraction,
	})
	t.mutex.Unlock()
}

func (t *connectionTracer) UpdatedBackoff(multiplier uint32) {
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventBackoffUpdated{Multiplier: multiplier})
	t.mutex.Unlock()
}

func (t *connectionTracer) EstimatorReset() {
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventEstimatorReset{})
	t.mutex.Unlock()
}
