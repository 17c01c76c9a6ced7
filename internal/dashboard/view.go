package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/vitals/internal/vehicle"
)

// LayoutMode is the responsive layout picked from the terminal width.
type LayoutMode int

const (
	// LayoutSingle stacks every card in one column.
	LayoutSingle LayoutMode = iota
	// LayoutWide shows the summary and readouts as rows of three and the component panels two per row.
	LayoutWide
)

// Width breakpoints for layout modes
const (
	BreakpointWide = 120
	DefaultWidth   = 120
	MinWidth       = 40
)

// Layout returns the layout mode for a terminal width.
func Layout(width int) LayoutMode {
	if width >= BreakpointWide {
		return LayoutWide
	}
	return LayoutSingle
}

// Frame is everything a render pass reads.
type Frame struct {
	State   vehicle.State
	Samples []vehicle.HistoricalSample
	// History feeds the trend sparklines. Nil renders bars only.
	History *History
	Width   int
	Paused  bool
}

func (f Frame) width() int {
	switch {
	case f.Width <= 0:
		return DefaultWidth
	case f.Width < MinWidth:
		return MinWidth
	default:
		return f.Width
	}
}

// Render draws a complete frame: header followed by the body. It reads only
// its argument, so equal frames render identical output.
func Render(f Frame) string {
	return renderHeader(f) + "\n\n" + renderBody(f)
}

// renderHeader renders the model name, mileage, status and the action buttons.
func renderHeader(f Frame) string {
	width := f.width()
	snap := f.State.Vehicle

	title := lipgloss.NewStyle().Foreground(ColorTextPrimary).Bold(true).Render(snap.Model)
	status := StatusStyle(snap.Status)
	meta := LabelStyle.Render(humanize.Comma(int64(snap.Mileage))+" km") + "  " +
		status.Render(StatusDot+" "+snap.Status.String())
	if f.Paused {
		meta += "  " + PausedStyle.Render("paused")
	}

	left := title + "  " + meta
	buttons := ButtonPrimaryStyle.Render("Schedule Service") + " " + ButtonSecondaryStyle.Render("Settings")

	if lipgloss.Width(left)+lipgloss.Width(buttons)+4 > width {
		return HeaderStyle.Render(left + "\n" + buttons)
	}
	return HeaderStyle.Render(spread(left, buttons, width-2))
}

// renderBody renders summary cards, component panels, the sensor chart,
// readouts and the anomaly banner.
func renderBody(f Frame) string {
	width := f.width()
	health := f.State.Health
	var sections []string

	if Layout(width) == LayoutWide {
		third := (width - 2) / 3
		sections = append(sections, joinRow(renderSummaryCards(f.State.Vehicle, third)))
	} else {
		sections = append(sections, renderSummaryCards(f.State.Vehicle, width)...)
	}

	sections = append(sections, SectionTitleStyle.Render("Predictive Component Analysis"))

	panelWidth := width
	if Layout(width) == LayoutWide {
		panelWidth = (width - 1) / 2
	}
	panels := []string{
		renderBrakePanel(health, f.History, panelWidth),
		renderTirePanel(health, f.History, panelWidth),
		renderBatteryPanel(health, f.History, panelWidth),
		renderEnginePanel(health, f.History, panelWidth),
	}
	if Layout(width) == LayoutWide {
		sections = append(sections, joinRow(panels[:2]), joinRow(panels[2:]))
	} else {
		sections = append(sections, panels...)
	}

	sections = append(sections, SectionTitleStyle.Render("Real-Time Sensor Analytics"))
	sections = append(sections, CardStyle.Width(width-2).Render(RenderChart(f.Samples, width-4)))

	if Layout(width) == LayoutWide {
		third := (width - 2) / 3
		sections = append(sections, joinRow(renderReadouts(third)))
	} else {
		sections = append(sections, renderReadouts(width)...)
	}

	sections = append(sections, renderBanner(width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// joinRow places cards side by side with a one column gutter.
func joinRow(cards []string) string {
	spaced := make([]string, 0, len(cards)*2-1)
	for i, c := range cards {
		if i > 0 {
			spaced = append(spaced, " ")
		}
		spaced = append(spaced, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	pause := "p pause"
	if m.paused {
		pause = "p resume"
	}
	hints := []string{
		"q quit",
		pause,
		"r round",
		"↑↓ scroll",
		"? help",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// frame snapshots the model for a render pass.
func (m Model) frame() Frame {
	return Frame{
		State:   m.state,
		Samples: m.samples,
		History: m.history,
		Width:   m.width,
		Paused:  m.paused,
	}
}

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	f := m.frame()
	if !m.viewportReady {
		return Render(f) + "\n" + m.renderFooter()
	}

	var b strings.Builder
	b.WriteString(renderHeader(f))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}
