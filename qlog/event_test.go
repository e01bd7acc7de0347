package qlog

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/francoispqt/gojay"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type mevent struct{}

var _ eventDetails = mevent{}

func (mevent) Category() category                   { return categoryRecovery }
func (mevent) Name() string                         { return "mevent" }
func (mevent) IsNil() bool                          { return false }
func (mevent) MarshalJSONObject(enc *gojay.Encoder) { enc.StringKey("event", "details") }

var _ = Describe("Events", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	It("marshals the fields before the event details", func() {
		enc := gojay.NewEncoder(buf)
		Expect(enc.Encode(event{
			RelativeTime: 1337 * time.Microsecond,
			eventDetails: mevent{},
		})).To(Succeed())

		var decoded []interface{}
		Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
		Expect(decoded).To(HaveLen(4))
		Expect(decoded[0].(float64)).To(BeNumerically("~", 1.337, 0.001))
		Expect(decoded[1]).To(Equal("recovery"))
		Expect(decoded[2]).To(Equal("mevent"))
		Expect(decoded[3].(map[string]interface{})).To(HaveKeyWithValue("event", "details"))
	})

	It("encodes segment_sent data", func() {
		enc := gojay.NewEncoder(buf)
		Expect(enc.EncodeObject(eventSegmentSent{
			Sequence:       10000,
			Length:         1280,
			Retransmission: true,
		})).To(Succeed())
		checkEncoding(buf.Bytes(), map[string]interface{}{
			"sequence_number": 10000,
			"length":          1280,
			"retransmission":  true,
		})
	})

	It("omits the retransmission flag for first transmissions", func() {
		enc := gojay.NewEncoder(buf)
		Expect(enc.EncodeObject(eventSegmentSent{
			Sequence: 10000,
			Length:   1280,
		})).To(Succeed())
		checkEncoding(buf.Bytes(), map[string]interface{}{
			"sequence_number": 10000,
			"length":          1280,
		})
	})

	It("encodes segment_acknowledged data", func() {
		enc := gojay.NewEncoder(buf)
		Expect(enc.EncodeObject(eventSegmentAcknowledged{Sequence: 11280})).To(Succeed())
		checkEncoding(buf.Bytes(), map[string]interface{}{
			"sequence_number": 11280,
		})
	})

	It("encodes metrics_updated data", func() {
		enc := gojay.NewEncoder(buf)
		Expect(enc.EncodeObject(eventMetricsUpdated{
			Current: &metrics{
				SmoothedRTT:   910 * time.Millisecond,
				LatestRTT:     100 * time.Millisecond,
				MeanDeviation: 90 * time.Millisecond,
				RTO:           1270 * time.Millisecond,
			},
		})).To(Succeed())
		checkEncoding(buf.Bytes(), map[string]interface{}{
			"smoothed_rtt": 910,
			"latest_rtt":   100,
			"rtt_variance": 90,
			"rto":          1270,
		})
	})

	It("only encodes the changed metrics", func() {
		enc := gojay.NewEncoder(buf)
		Expect(enc.EncodeObject(eventMetricsUpdated{
			Last: &metrics{
				SmoothedRTT:   910 * time.Millisecond,
				LatestRTT:     100 * time.Millisecond,
				MeanDeviation: 90 * time.Millisecond,
				RTO:           1270 * time.Millisecond,
			},
			Current: &metrics{
				SmoothedRTT:   910 * time.Millisecond,
				LatestRTT:     150 * time.Millisecond,
				MeanDeviation: 90 * time.Millisecond,
				RTO:           1270 * time.Millisecond,
			},
		})).To(Succeed())
		checkEncoding(buf.Bytes(), map[string]interface{}{
			"latest_rtt": 150,
		})
	})

	It("encodes backoff_updated data", func() {
		enc := gojay.NewEncoder(buf)
		Expect(enc.EncodeObject(eventBackoffUpdated{Multiplier: 16})).To(Succeed())
		checkEncoding(buf.Bytes(), map[string]interface{}{
			"multiplier": 16,
		})
	})

	It("encodes marking_fraction_updated data", func() {
		enc := gojay.NewEncoder(buf)
		Expect(enc.EncodeObject(eventMarkingFractionUpdated{
			Alpha:    0.0625,
			Fraction: 0.5,
		})).To(Succeed())
		checkEncoding(buf.Bytes(), map[string]interface{}{
			"alpha":    0.0625,
			"fraction": 0.5,
		})
	})

	It("encodes estimator_reset data", func() {
		enc := gojay.NewEncoder(buf)
		Expect(enc.EncodeObject(eventEstimatorReset{})).To(Succeed())
		checkEncoding(buf.Bytes(), map[string]interface{}{})
	})
})
