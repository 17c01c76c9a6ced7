package dashboard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/vitals/internal/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartSeries(t *testing.T) {
	series := ChartSeries(vehicle.HistoricalFixture())
	require.Len(t, series, 3)

	assert.Equal(t, "Temperature", series[0].Name)
	assert.Equal(t, ColorTemperature, series[0].Color)
	assert.Equal(t, []float64{85, 88, 86, 92, 90, 89}, series[0].Values)

	assert.Equal(t, "Vibration", series[1].Name)
	assert.Equal(t, ColorVibration, series[1].Color)
	assert.Equal(t, []float64{12, 14, 15, 18, 16, 15}, series[1].Values)

	assert.Equal(t, "RPM", series[2].Name)
	assert.Equal(t, ColorRPM, series[2].Color)
	assert.Equal(t, []float64{2100, 2150, 2200, 2250, 2180, 2160}, series[2].Values)
}

func TestSeries_Summarize(t *testing.T) {
	series := ChartSeries(vehicle.HistoricalFixture())

	temp := series[0].Summarize()
	assert.Equal(t, 85.0, temp.Min)
	assert.Equal(t, 92.0, temp.Max)
	assert.InDelta(t, 88.333, temp.Mean, 0.001)

	rpm := series[2].Summarize()
	assert.Equal(t, 2100.0, rpm.Min)
	assert.Equal(t, 2250.0, rpm.Max)

	assert.Equal(t, SeriesSummary{}, Series{}.Summarize())
}

func TestRenderChart(t *testing.T) {
	out := RenderChart(vehicle.HistoricalFixture(), 80)

	for _, want := range []string{"Temperature", "Vibration", "RPM", "Jan", "Jun", "Apr▲", "avg 88.3°C", "max 2250"} {
		assert.Contains(t, out, want)
	}
	// Only April is flagged.
	assert.Equal(t, 1, strings.Count(out, "▲"))

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 80, "line too wide: %q", line)
	}
}

func TestRenderChart_Empty(t *testing.T) {
	assert.Equal(t, "No sensor history", RenderChart(nil, 80))
}

func TestRenderChart_FlatSeries(t *testing.T) {
	samples := []vehicle.HistoricalSample{
		{Date: "A", Temperature: 50, Vibration: 5, RPM: 1000},
		{Date: "B", Temperature: 50, Vibration: 5, RPM: 1000},
	}
	assert.NotPanics(t, func() {
		out := RenderChart(samples, 40)
		assert.Contains(t, out, "A")
		assert.NotContains(t, out, "▲")
	})
}
