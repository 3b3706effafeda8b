package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNoBriefing is returned by briefing lookups when a station has no
// archived briefing.
var ErrNoBriefing = errors.New("no briefing for station")

// CloudLayer describes one cloud group from the report.
type CloudLayer struct {
	Type     string `json:"type"`               // coverage code: FEW, SCT, BKN, OVC, VV, CLR, SKC
	Height   string `json:"height,omitempty"`   // hundreds of feet AGL, e.g. "015"
	Modifier string `json:"modifier,omitempty"` // e.g. "CB", "TCU"
}

// Observation holds the decoded fields of one METAR report, each still in
// its report-token encoding (see the package documentation).
type Observation struct {
	WindDirection         string       `json:"wind_direction,omitempty"`
	WindSpeed             string       `json:"wind_speed,omitempty"`
	WindGust              string       `json:"wind_gust,omitempty"`
	WindVariableDirection []string     `json:"wind_variable_direction,omitempty"`
	Visibility            string       `json:"visibility,omitempty"`
	Temperature           string       `json:"temperature,omitempty"`
	Dewpoint              string       `json:"dewpoint,omitempty"`
	Altimeter             string       `json:"altimeter,omitempty"`
	WxCodes               []string     `json:"wx_codes,omitempty"`
	Clouds                []CloudLayer `json:"clouds,omitempty"`
}

// Clone returns a deep copy of the observation. Slices are copied so the
// clone shares no backing storage with the original.
func (o Observation) Clone() Observation {
	c := o
	if o.WindVariableDirection != nil {
		c.WindVariableDirection = make([]string, len(o.WindVariableDirection))
		copy(c.WindVariableDirection, o.WindVariableDirection)
	}
	if o.WxCodes != nil {
		c.WxCodes = make([]string, len(o.WxCodes))
		copy(c.WxCodes, o.WxCodes)
	}
	if o.Clouds != nil {
		c.Clouds = make([]CloudLayer, len(o.Clouds))
		copy(c.Clouds, o.Clouds)
	}
	return c
}

// Units carries one unit tag per measurable quantity.
type Units struct {
	WindSpeed   string `json:"wind_speed"`  // kt, m/s
	Visibility  string `json:"visibility"`  // sm, m
	Temperature string `json:"temperature"` // C, F
	Altitude    string `json:"altitude"`    // ft, m
	Altimeter   string `json:"altimeter"`   // inHg, hPa
}

// Report is one decoded METAR message as delivered on the source topic.
type Report struct {
	Station    string      `json:"station"`
	ObservedAt time.Time   `json:"observed_at"`
	RawReport  string      `json:"raw_report,omitempty"`
	Data       Observation `json:"data"`
	Units      Units       `json:"units"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Briefing is the rendered spoken output for one observation.
type Briefing struct {
	Station     string    `json:"station"`
	Speech      string    `json:"speech"`
	RawReport   string    `json:"raw_report,omitempty"`
	ObservedAt  time.Time `json:"observed_at"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ParseRawEvent deserializes a RawEvent's value into a Report.
func ParseRawEvent(raw RawEvent) (Report, error) {
	var rep Report
	if err := json.Unmarshal(raw.Value, &rep); err != nil {
		return Report{}, fmt.Errorf("parse raw event: %w", err)
	}
	if rep.ObservedAt.IsZero() {
		rep.ObservedAt = raw.Timestamp
	}
	return rep, nil
}

// NewBriefing pairs a report with its spoken rendering, stamping the
// generation time from the package clock.
func NewBriefing(rep Report, speech string) Briefing {
	return Briefing{
		Station:     rep.Station,
		Speech:      speech,
		RawReport:   rep.RawReport,
		ObservedAt:  rep.ObservedAt,
		GeneratedAt: clock.Now(),
	}
}
