package qlog

import (
	"runtime/debug"
	"time"

	"github.com/francoispqt/gojay"
)

// Setting of this only works when rtt-go is used as a library.
// When building a binary from this repository, the version can be set using the following go build flag:
// -ldflags="-X github.com/rtt-go/rtt-go/qlog.rttGoVersion=foobar"
var rttGoVersion = "(devel)"

func init() {
	if rttGoVersion != "(devel)" { // variable set by ldflags
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok { // no build info available. This happens when rtt-go is not used as a library.
		return
	}
	for _, d := range info.Deps {
		if d.Path == "github.com/rtt-go/rtt-go" {
			rttGoVersion = d.Version
			if d.Replace != nil {
				if len(d.Replace.Version) > 0 {
					rttGoVersion = d.Version
				} else {
					rttGoVersion += " (replaced)"
				}
			}
			break
		}
	}
}

type topLevel struct {
	traces traces
}

var _ gojay.MarshalerJSONObject = topLevel{}

func (l topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("qlog_version", "draft-02")
	enc.StringKeyOmitEmpty("title", "rtt-go qlog")
	enc.StringKeyOmitEmpty("code_version", rttGoVersion)
	enc.ArrayKey("traces", l.traces)
}

type traces []trace

var _ gojay.MarshalerJSONArray = traces{}

func (t traces) IsNil() bool { return t == nil }
func (t traces) MarshalJSONArray(enc *gojay.Encoder) {
	for _, tr := range t {
		enc.Object(tr)
	}
}

type vantagePoint struct {
	Name string
	Type string
}

var _ gojay.MarshalerJSONObject = vantagePoint{}

func (p vantagePoint) IsNil() bool { return false }
func (p vantagePoint) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("name", p.Name)
	enc.StringKeyOmitEmpty("type", p.Type)
}

type commonFields struct {
	ConnectionID  string
	ReferenceTime time.Time
}

var _ gojay.MarshalerJSONObject = commonFields{}

func (f commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("ODCID", f.ConnectionID)
	enc.StringKey("group_id", f.ConnectionID)
	enc.Float64Key("reference_time", float64(f.ReferenceTime.UnixNano())/1e6)
	enc.StringKey("time_format", "relative")
}

type trace struct {
	VantagePoint vantagePoint
	CommonFields commonFields
	EventFields  []string
	Events       events
}

var _ gojay.MarshalerJSONObject = trace{}

func (t trace) IsNil() bool { return false }
func (t trace) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("vantage_point", t.VantagePoint)
	enc.ObjectKey("common_fields", t.CommonFields)
	enc.SliceStringKey("event_fields", t.EventFields)
	enc.ArrayKey("events", t.Events)
}
