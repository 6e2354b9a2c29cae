package model

import (
	"bytes"

	"github.com/bytedance/sonic"
)

// Payload is the document consumed by the dashboard.
type Payload struct {
	GeneratedAtUTC string       `json:"generated_at_utc"`
	SourceFiles    []string     `json:"source_files"`
	RadarMetrics   []MetricSpec `json:"radar_metrics"`
	MetricPresets  Presets      `json:"metric_presets"`
	Positions      []string     `json:"positions"`
	Clubs          []string     `json:"clubs"`
	Players        []Player     `json:"players"`
}

// MetricSpec describes one radar metric for the dashboard legend.
type MetricSpec struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Source      string `json:"source"`
	Description string `json:"description"`
}

// Preset is a named ordered selection of radar metric ids.
type Preset struct {
	Name    string
	Metrics []string
}

// Presets encodes as a JSON object keyed by preset name, in slice order.
type Presets []Preset

// MarshalJSON implements json.Marshaler.
func (p Presets) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, preset := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := sonic.Marshal(preset.Name)
		if err != nil {
			return nil, err
		}
		metrics := preset.Metrics
		if metrics == nil {
			metrics = []string{}
		}
		val, err := sonic.Marshal(metrics)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
