package qlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"time"

	"github.com/rtt-go/rtt-go/logging"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type nopWriteCloserImpl struct{ io.Writer }

func (nopWriteCloserImpl) Close() error { return nil }

func nopWriteCloser(w io.Writer) io.WriteCloser {
	return &nopWriteCloserImpl{Writer: w}
}

type limitedWriter struct {
	io.WriteCloser
	N       int
	written int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.N {
		return 0, errors.New("writer full")
	}
	n, err := w.WriteCloser.Write(p)
	w.written += n
	return n, err
}

type entry struct {
	Time     time.Time
	Category string
	Name     string
	Event    map[string]interface{}
}

var _ = Describe("Tracing", func() {
	var (
		tracer *logging.ConnectionTracer
		buf    *bytes.Buffer
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		tracer = NewConnectionTracer(nopWriteCloser(buf), "deadbeef")
	})

	It("exports a trace that has the right metadata", func() {
		tracer.Close()

		m := make(map[string]interface{})
		Expect(json.Unmarshal(buf.Bytes(), &m)).To(Succeed())
		Expect(m).To(HaveKeyWithValue("qlog_version", "draft-02"))
		Expect(m).To(HaveKey("title"))
		Expect(m).To(HaveKey("traces"))
		traces := m["traces"].([]interface{})
		Expect(traces).To(HaveLen(1))
		trace := traces[0].(map[string]interface{})
		Expect(trace).To(HaveKey("common_fields"))
		commonFields := trace["common_fields"].(map[string]interface{})
		Expect(commonFields).To(HaveKeyWithValue("ODCID", "deadbeef"))
		Expect(commonFields).To(HaveKeyWithValue("group_id", "deadbeef"))
		Expect(commonFields).To(HaveKey("reference_time"))
		referenceTime := time.Unix(0, int64(commonFields["reference_time"].(float64)*1e6))
		Expect(referenceTime).To(BeTemporally("~", time.Now(), scaleDuration(10*time.Millisecond)))
		Expect(commonFields).To(HaveKeyWithValue("time_format", "relative"))
		Expect(trace).To(HaveKey("event_fields"))
		for i, ef := range trace["event_fields"].([]interface{}) {
			Expect(ef.(string)).To(Equal(eventFields[i]))
		}
		Expect(trace).To(HaveKey("vantage_point"))
		vantagePoint := trace["vantage_point"].(map[string]interface{})
		Expect(vantagePoint).To(HaveKeyWithValue("type", "sender"))
	})

	It("stops writing when encountering an error", func() {
		tracer = NewConnectionTracer(
			&limitedWriter{WriteCloser: nopWriteCloser(buf), N: 250},
			"deadbeef",
		)
		for i := uint32(2); i < 1000; i *= 2 {
			tracer.UpdatedBackoff(i)
		}

		logBuf := &bytes.Buffer{}
		log.SetOutput(logBuf)
		defer log.SetOutput(os.Stdout)
		tracer.Close()
		Expect(logBuf.String()).To(ContainSubstring("writer full"))
	})

	Context("events", func() {
		exportAndParse := func() []entry {
			tracer.Close()

			m := make(map[string]interface{})
			Expect(json.Unmarshal(buf.Bytes(), &m)).To(Succeed())
			Expect(m).To(HaveKey("traces"))
			var entries []entry
			traces := m["traces"].([]interface{})
			Expect(traces).To(HaveLen(1))
			trace := traces[0].(map[string]interface{})
			Expect(trace).To(HaveKey("common_fields"))
			commonFields := trace["common_fields"].(map[string]interface{})
			Expect(commonFields).To(HaveKey("reference_time"))
			referenceTime := time.Unix(0, int64(commonFields["reference_time"].(float64)*1e6))
			Expect(trace).To(HaveKey("events"))
			for _, e := range trace["events"].([]interface{}) {
				ev := e.([]interface{})
				Expect(ev).To(HaveLen(4))
				entries = append(entries, entry{
					Time:     referenceTime.Add(time.Duration(ev[0].(float64)*1e6) * time.Nanosecond),
					Category: ev[1].(string),
					Name:     ev[2].(string),
					Event:    ev[3].(map[string]interface{}),
				})
			}
			return entries
		}

		exportAndParseSingle := func() entry {
			entries := exportAndParse()
			Expect(entries).To(HaveLen(1))
			return entries[0]
		}

		It("records segment sends", func() {
			tracer.SentSegment(1337, 1280, false)
			entry := exportAndParseSingle()
			Expect(entry.Time).To(BeTemporally("~", time.Now(), scaleDuration(10*time.Millisecond)))
			Expect(entry.Category).To(Equal("transport"))
			Expect(entry.Name).To(Equal("segment_sent"))
			ev := entry.Event
			Expect(ev).To(HaveKeyWithValue("sequence_number", float64(1337)))
			Expect(ev).To(HaveKeyWithValue("length", float64(1280)))
			Expect(ev).ToNot(HaveKey("retransmission"))
		})

		It("records retransmissions", func() {
			tracer.SentSegment(1337, 1280, true)
			entry := exportAndParseSingle()
			Expect(entry.Name).To(Equal("segment_sent"))
			Expect(entry.Event).To(HaveKeyWithValue("retransmission", true))
		})

		It("records segment acknowledgments", func() {
			tracer.AcknowledgedSegment(2617)
			entry := exportAndParseSingle()
			Expect(entry.Category).To(Equal("transport"))
			Expect(entry.Name).To(Equal("segment_acknowledged"))
			Expect(entry.Event).To(HaveKeyWithValue("sequence_number", float64(2617)))
		})

		It("records metrics updates", func() {
			tracer.UpdatedMetrics(910*time.Millisecond, 100*time.Millisecond, 90*time.Millisecond, 1270*time.Millisecond)
			entry := exportAndParseSingle()
			Expect(entry.Time).To(BeTemporally("~", time.Now(), scaleDuration(10*time.Millisecond)))
			Expect(entry.Category).To(Equal("recovery"))
			Expect(entry.Name).To(Equal("metrics_updated"))
			ev := entry.Event
			Expect(ev).To(HaveKeyWithValue("smoothed_rtt", float64(910)))
			Expect(ev).To(HaveKeyWithValue("latest_rtt", float64(100)))
			Expect(ev).To(HaveKeyWithValue("rtt_variance", float64(90)))
			Expect(ev).To(HaveKeyWithValue("rto", float64(1270)))
		})

		It("only logs the diff between two metrics updates", func() {
			tracer.UpdatedMetrics(910*time.Millisecond, 100*time.Millisecond, 90*time.Millisecond, 1270*time.Millisecond)
			tracer.UpdatedMetrics(910*time.Millisecond, 150*time.Millisecond, 90*time.Millisecond, 1270*time.Millisecond)
			entries := exportAndParse()
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Event).To(HaveLen(4))
			Expect(entries[1].Event).To(HaveLen(1))
			Expect(entries[1].Event).To(HaveKeyWithValue("latest_rtt", float64(150)))
		})

		It("records backoff updates", func() {
			tracer.UpdatedBackoff(4)
			entry := exportAndParseSingle()
			Expect(entry.Category).To(Equal("recovery"))
			Expect(entry.Name).To(Equal("backoff_updated"))
			Expect(entry.Event).To(HaveKeyWithValue("multiplier", float64(4)))
		})

		It("records marking fraction updates", func() {
			tracer.UpdatedMarkingFraction(0.0625, 1)
			entry := exportAndParseSingle()
			Expect(entry.Category).To(Equal("recovery"))
			Expect(entry.Name).To(Equal("marking_fraction_updated"))
			ev := entry.Event
			Expect(ev).To(HaveKeyWithValue("alpha", 0.0625))
			Expect(ev).To(HaveKeyWithValue("fraction", float64(1)))
		})

		It("records estimator resets", func() {
			tracer.EstimatorReset()
			entry := exportAndParseSingle()
			Expect(entry.Category).To(Equal("recovery"))
			Expect(entry.Name).To(Equal("estimator_reset"))
			Expect(entry.Event).To(BeEmpty())
		})

		It("records multiple events in order", func() {
			tracer.SentSegment(0, 1000, false)
			tracer.SentSegment(1000, 1000, false)
			tracer.AcknowledgedSegment(0)
			entries := exportAndParse()
			Expect(entries).To(HaveLen(3))
			Expect(entries[0].Name).To(Equal("segment_sent"))
			Expect(entries[1].Name).To(Equal("segment_sent"))
			Expect(entries[2].Name).To(Equal("segment_acknowledged"))
		})
	})
})
