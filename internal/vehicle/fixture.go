package vehicle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// historicalFixture is the sensor history rendered by the chart panel.
var historicalFixture = []HistoricalSample{
	{Date: "Jan", Temperature: 85, Vibration: 12, RPM: 2100},
	{Date: "Feb", Temperature: 88, Vibration: 14, RPM: 2150},
	{Date: "Mar", Temperature: 86, Vibration: 15, RPM: 2200},
	{Date: "Apr", Temperature: 92, Vibration: 18, RPM: 2250, Anomaly: true},
	{Date: "May", Temperature: 90, Vibration: 16, RPM: 2180},
	{Date: "Jun", Temperature: 89, Vibration: 15, RPM: 2160},
}

// HistoricalFixture returns a copy of the static sensor history.
func HistoricalFixture() []HistoricalSample {
	out := make([]HistoricalSample, len(historicalFixture))
	copy(out, historicalFixture)
	return out
}

// Anomalies returns the samples flagged as anomalous, in order.
func Anomalies(samples []HistoricalSample) []HistoricalSample {
	var out []HistoricalSample
	for _, s := range samples {
		if s.Anomaly {
			out = append(out, s)
		}
	}
	return out
}

// FixtureFormat selects the encoding for fixture serialization.
type FixtureFormat string

const (
	FormatJSON FixtureFormat = "json"
	FormatYAML FixtureFormat = "yaml"
)

// ParseFixtureFormat normalizes a user-supplied format name.
func ParseFixtureFormat(s string) (FixtureFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown fixture format %q", s)
	}
}

// EncodeSamples serializes samples in the given format.
func EncodeSamples(samples []HistoricalSample, format FixtureFormat) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(samples); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(samples)
	default:
		return nil, fmt.Errorf("unknown fixture format %q", format)
	}
}

// DecodeSamples parses samples previously produced by EncodeSamples.
func DecodeSamples(data []byte, format FixtureFormat) ([]HistoricalSample, error) {
	var samples []HistoricalSample
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &samples); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &samples); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown fixture format %q", format)
	}
	return samples, nil
}
