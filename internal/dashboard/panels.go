package dashboard

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/vitals/internal/vehicle"
)

// Panel layout constants
const (
	panelMinWidth   = 30
	trendWidth      = 12
	panelBarPadding = 1
)

// formatNumber rounds to one decimal and drops a trailing ".0".
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

// formatPercent renders a health value as "72%" or "70.3%".
func formatPercent(v float64) string {
	return formatNumber(v) + "%"
}

// formatKm renders a distance with thousands separators.
func formatKm(km int) string {
	return humanize.Comma(int64(km)) + " km"
}

// renderPanelLine pads content to width so cards joined side by side line up.
func renderPanelLine(content string, width int) string {
	contentWidth := lipgloss.Width(content)
	if width > contentWidth {
		return content + strings.Repeat(" ", width-contentWidth)
	}
	return content
}

// spread places left and right at opposite edges of width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderCard wraps lines in the card border at the given outer width.
func renderCard(title string, lines []string, width int) string {
	if width < panelMinWidth {
		width = panelMinWidth
	}
	inner := width - 4

	body := make([]string, 0, len(lines)+2)
	body = append(body, renderPanelLine(CardTitleStyle.Render(title), inner), "")
	for _, l := range lines {
		body = append(body, renderPanelLine(l, inner))
	}
	return CardStyle.Width(width - 2).Render(strings.Join(body, "\n"))
}

// healthBar renders a labeled gradient bar for a 0-100 value with an
// optional trend sparkline on the right.
func healthBar(label string, value, barPercent float64, trend []float64, inner int) []string {
	header := spread(LabelStyle.Render(label), HealthStyle(value).Bold(true).Render(formatPercent(value)), inner)

	barWidth := inner
	var spark string
	if len(trend) > 1 && inner-trendWidth-panelBarPadding >= 10 {
		barWidth = inner - trendWidth - panelBarPadding
		spark = strings.Repeat(" ", panelBarPadding) + RenderTrendSparkline(trend, trendWidth)
	}
	bar := GradientBar(barWidth, barPercent, vehicle.HealthGradient(value)) + spark
	return []string{header, bar}
}

// tile renders a small label/value pair.
func tile(label, value string, style lipgloss.Style) string {
	return LabelStyle.Render(label) + " " + style.Bold(true).Render(value)
}

func trend(h *History, c Component) []float64 {
	if h == nil {
		return nil
	}
	return h.Get(c, trendWidth)
}

// renderBrakePanel shows brake pad life, remaining distance and the anomaly flag.
func renderBrakePanel(health vehicle.ComponentHealth, h *History, width int) string {
	inner := width - 4
	lines := healthBar("Brake Pad Life", health.BrakePadLife, health.BrakePadLife, trend(h, ComponentBrake), inner)

	remaining := MutedStyle.Render("Estimated " + formatKm(health.BrakeDistanceLeft) + " remaining")
	if vehicle.BrakeAnomaly(health) {
		flag := lipgloss.NewStyle().Foreground(ColorAmber).Render("⚠ Anomalies detected")
		remaining = spread(remaining, flag, inner)
	}
	lines = append(lines, "", remaining)
	return renderCard("● Brake System", lines, width)
}

// renderTirePanel shows tread depth with the static pressure and balance readouts.
func renderTirePanel(health vehicle.ComponentHealth, h *History, width int) string {
	inner := width - 4
	treadHealth := vehicle.TreadHealth(health.TreadDepth)

	depth := HealthStyle(treadHealth).Bold(true).Render(strconv.FormatFloat(health.TreadDepth, 'f', 1, 64) + " mm")
	good := lipgloss.NewStyle().Foreground(ColorEmerald)
	row := LabelStyle.Render("Tread Depth ") + depth + "   " +
		tile(vehicle.TirePressure.Label, vehicle.TirePressure.Value, good) + "   " +
		tile(vehicle.TireBalance.Label, vehicle.TireBalance.Value, good)

	barWidth := inner
	var spark string
	t := trend(h, ComponentTread)
	if len(t) > 1 && inner-trendWidth-panelBarPadding >= 10 {
		barWidth = inner - trendWidth - panelBarPadding
		spark = strings.Repeat(" ", panelBarPadding) + RenderTrendSparkline(t, trendWidth)
	}
	bar := GradientBar(barWidth, vehicle.TreadPercent(health.TreadDepth), vehicle.HealthGradient(treadHealth)) + spark

	return renderCard("● Tire Health", []string{row, bar}, width)
}

// renderBatteryPanel shows battery health, charge cycles and failure risk.
func renderBatteryPanel(health vehicle.ComponentHealth, h *History, width int) string {
	inner := width - 4
	lines := healthBar("Health Status", health.BatteryHealth, health.BatteryHealth, trend(h, ComponentBattery), inner)

	risk := strconv.Itoa(health.BatteryFailureLikelihood) + "%"
	tiles := tile(vehicle.ChargeCycles.Label, vehicle.ChargeCycles.Value, ValueStyle) + "   " +
		tile("Failure Risk", risk, FlagStyle(!vehicle.BatteryRiskElevated(health)))
	lines = append(lines, "", tiles)
	return renderCard("● Battery Systems", lines, width)
}

// renderEnginePanel shows oil quality with the vibration and transmission verdicts.
func renderEnginePanel(health vehicle.ComponentHealth, h *History, width int) string {
	inner := width - 4
	lines := healthBar("Oil Quality", health.OilQuality, health.OilQuality, trend(h, ComponentOil), inner)

	abnormal := vehicle.EngineVibrationAbnormal(health)
	vibration := "Normal"
	if abnormal {
		vibration = "Abnormal"
	}
	tiles := tile("Engine Vibration", vibration, FlagStyle(!abnormal)) + "   " +
		tile(vehicle.Transmission.Label, vehicle.Transmission.Value, FlagStyle(true))
	lines = append(lines, "", tiles)
	return renderCard("● Engine & Transmission", lines, width)
}

// renderSummaryCards renders the vehicle health, next maintenance and driving
// score cards.
func renderSummaryCards(snap vehicle.Snapshot, width int) []string {
	statusStyle := StatusStyle(snap.Status).Bold(true)
	health := renderCard("Vehicle Health", []string{
		statusStyle.Render(snap.Status.Icon() + " " + titleCase(snap.Status.String())),
		MutedStyle.Render(snap.Status.Description()),
	}, width)

	maintenance := renderCard("Next Maintenance", []string{
		ValueStyle.Render(snap.NextMaintenance),
		MutedStyle.Render("Regular service check"),
	}, width)

	score := renderCard("Driving Score", []string{
		ValueStyle.Render(strconv.Itoa(snap.DrivingScore) + "/100"),
		MutedStyle.Render("Above average efficiency"),
	}, width)

	return []string{health, maintenance, score}
}

// renderReadouts renders the fixed sensor readouts under the chart.
func renderReadouts(width int) []string {
	readings := vehicle.SensorReadings()
	cards := make([]string, len(readings))
	for i, r := range readings {
		cards[i] = renderCard(r.Label, []string{
			ValueStyle.Render(r.Value) + " " + FlagStyle(true).Render(r.Verdict),
		}, width)
	}
	return cards
}

// renderBanner renders the anomaly notice.
func renderBanner(width int) string {
	amber := lipgloss.NewStyle().Foreground(ColorAmber)
	b := vehicle.AnomalyBanner
	body := strings.Join([]string{
		amber.Bold(true).Render("⚠ " + b.Title),
		"",
		amber.Render(b.Finding),
		LabelStyle.Render(b.Recommendation),
	}, "\n")
	return BannerStyle.Width(width - 2).Render(body)
}

// titleCase upper-cases the first letter of s.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
