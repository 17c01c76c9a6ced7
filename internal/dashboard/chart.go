package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/vitals/internal/vehicle"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series is one line of the sensor chart.
type Series struct {
	Name   string
	Unit   string
	Color  lipgloss.Color
	Values []float64
}

// SeriesSummary holds the range and mean of a series.
type SeriesSummary struct {
	Min  float64
	Max  float64
	Mean float64
}

// chartGraphHeight is the braille rows per series.
const chartGraphHeight = 2

// chartLabelWidth is the left gutter holding series names.
const chartLabelWidth = 12

// ChartSeries splits the samples into the three plotted series.
func ChartSeries(samples []vehicle.HistoricalSample) []Series {
	temp := make([]float64, len(samples))
	vib := make([]float64, len(samples))
	rpm := make([]float64, len(samples))
	for i, s := range samples {
		temp[i] = s.Temperature
		vib[i] = s.Vibration
		rpm[i] = s.RPM
	}
	return []Series{
		{Name: "Temperature", Unit: "°C", Color: ColorTemperature, Values: temp},
		{Name: "Vibration", Unit: "Hz", Color: ColorVibration, Values: vib},
		{Name: "RPM", Unit: "", Color: ColorRPM, Values: rpm},
	}
}

// Summarize returns min, max and mean of the series values.
// An empty series summarizes to zeros.
func (s Series) Summarize() SeriesSummary {
	if len(s.Values) == 0 {
		return SeriesSummary{}
	}
	return SeriesSummary{
		Min:  floats.Min(s.Values),
		Max:  floats.Max(s.Values),
		Mean: stat.Mean(s.Values, nil),
	}
}

// RenderChart draws the sensor analytics chart: one braille line per series,
// each scaled to its own range, above a shared axis of sample dates.
// Anomalous samples are flagged on the axis.
func RenderChart(samples []vehicle.HistoricalSample, width int) string {
	if len(samples) == 0 {
		return MutedStyle.Render("No sensor history")
	}

	plotWidth := width - chartLabelWidth
	if plotWidth < len(samples)*4 {
		plotWidth = len(samples) * 4
	}

	var lines []string
	legend := make([]string, 0, 3)
	for _, s := range ChartSeries(samples) {
		legend = append(legend, lipgloss.NewStyle().Foreground(s.Color).Render("━ "+s.Name))

		sum := s.Summarize()
		// Pad the range slightly so flat series sit mid-chart.
		lo, hi := sum.Min, sum.Max
		if hi == lo {
			lo, hi = lo-1, hi+1
		}
		graph := strings.Split(RenderBrailleLine(s.Values, plotWidth, chartGraphHeight, lo, hi, s.Color), "\n")

		name := lipgloss.NewStyle().Foreground(s.Color).Width(chartLabelWidth).Render(s.Name)
		stats := MutedStyle.Render(fmt.Sprintf("%s min %s  max %s  avg %s",
			strings.Repeat(" ", chartLabelWidth-1),
			formatNumber(sum.Min)+s.Unit,
			formatNumber(sum.Max)+s.Unit,
			formatNumber(sum.Mean)+s.Unit))

		for i, row := range graph {
			gutter := strings.Repeat(" ", chartLabelWidth)
			if i == 0 {
				gutter = name
			}
			lines = append(lines, gutter+row)
		}
		lines = append(lines, stats)
	}

	lines = append(lines, strings.Repeat(" ", chartLabelWidth)+renderAxis(samples, plotWidth))
	lines = append(lines, strings.Join(legend, "   "))
	return strings.Join(lines, "\n")
}

// renderAxis lays the sample dates out under the plot columns each sample
// maps to. Anomalies are drawn in rose with a marker.
func renderAxis(samples []vehicle.HistoricalSample, plotWidth int) string {
	anomaly := lipgloss.NewStyle().Foreground(ColorRose).Bold(true)

	var b strings.Builder
	col := 0
	xDots := plotWidth * 2
	for i, s := range samples {
		target := 0
		if len(samples) > 1 {
			target = i * (xDots - 1) / (len(samples) - 1) / 2
		}
		label := s.Date
		if s.Anomaly {
			label += "▲"
		}
		labelWidth := lipgloss.Width(label)
		// Keep the last label inside the plot.
		if target+labelWidth > plotWidth {
			target = plotWidth - labelWidth
		}
		if target < col {
			target = col
		}
		b.WriteString(strings.Repeat(" ", target-col))
		if s.Anomaly {
			b.WriteString(anomaly.Render(label))
		} else {
			b.WriteString(MutedStyle.Render(label))
		}
		col = target + labelWidth + 1
		if i < len(samples)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
