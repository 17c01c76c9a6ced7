package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/vitals/internal/vehicle"
)

// Dashboard color palette, named after the tier tokens it renders.
const (
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	ColorEmerald = lipgloss.Color("#10B981")
	ColorAmber   = lipgloss.Color("#F59E0B")
	ColorRose    = lipgloss.Color("#F43F5E")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent = lipgloss.Color("#2563EB")
)

// Sensor chart series colors.
const (
	ColorTemperature = lipgloss.Color("#F43F5E")
	ColorVibration   = lipgloss.Color("#8B5CF6")
	ColorRPM         = lipgloss.Color("#0EA5E9")
)

// gradientStops holds the from/to pair for each gradient token.
var gradientStops = map[vehicle.GradientToken][2]string{
	vehicle.GradientEmerald: {"#34D399", "#059669"},
	vehicle.GradientAmber:   {"#FBBF24", "#D97706"},
	vehicle.GradientRose:    {"#F43F5E", "#BE123C"},
}

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Bold(true)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	ButtonPrimaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Background(ColorAccent).
				Padding(0, 1)

	ButtonSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Background(ColorBorder).
				Padding(0, 1)

	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAmber).
			Padding(0, 1)

	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)
)

// Status dot glyph used in the header.
const StatusDot = "●"

// TokenColor maps a color token onto the palette.
func TokenColor(token vehicle.ColorToken) lipgloss.Color {
	switch token {
	case vehicle.ColorEmerald:
		return ColorEmerald
	case vehicle.ColorAmber:
		return ColorAmber
	default:
		return ColorRose
	}
}

// HealthStyle returns a foreground style colored by the value's tier.
func HealthStyle(value float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TokenColor(vehicle.HealthColor(value)))
}

// StatusStyle colors the status label by the status tier.
func StatusStyle(s vehicle.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TokenColor(s.Tier().Color()))
}

// FlagStyle is emerald when ok and rose otherwise.
func FlagStyle(ok bool) lipgloss.Style {
	if ok {
		return lipgloss.NewStyle().Foreground(ColorEmerald)
	}
	return lipgloss.NewStyle().Foreground(ColorRose)
}

// GradientBar renders a bar of the given width filled to percent, with the
// filled cells blended across the gradient's two stops.
func GradientBar(width int, percent float64, gradient vehicle.GradientToken) string {
	if width < 1 {
		width = 1
	}
	percent = vehicle.ClampPercent(percent)

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	stops, ok := gradientStops[gradient]
	if !ok {
		stops = gradientStops[vehicle.GradientRose]
	}
	from, _ := colorful.Hex(stops[0])
	to, _ := colorful.Hex(stops[1])

	var b strings.Builder
	for i := 0; i < filled; i++ {
		t := 0.0
		if filled > 1 {
			t = float64(i) / float64(filled-1)
		}
		c := from.BlendLab(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("▰"))
	}
	if filled < width {
		b.WriteString(MutedStyle.Render(strings.Repeat("▱", width-filled)))
	}
	return b.String()
}
