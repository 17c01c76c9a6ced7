package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/vitals/internal/vehicle"
)

// StatusSymbol returns the colored symbol for a vehicle status.
func StatusSymbol(s vehicle.Status) string {
	switch s {
	case vehicle.StatusGood:
		return SuccessStyle().Render(SymbolSuccess)
	case vehicle.StatusWarning:
		return WarningStyle().Render(SymbolWarning)
	default:
		return ErrorStyle().Render(SymbolFail)
	}
}

// RenderRoundLine formats one committed mutation round for line-oriented
// output, e.g.
//
//	● round 3  brake 68.4%  tread 6.4mm  battery 91.2%  oil 63.1%  34,571 km  ✓ good
func RenderRoundLine(round int, s vehicle.State) string {
	h := s.Health
	fields := []string{
		fmt.Sprintf("%s round %d", SymbolRound, round),
		fmt.Sprintf("brake %.1f%%", h.BrakePadLife),
		fmt.Sprintf("tread %.1fmm", h.TreadDepth),
		fmt.Sprintf("battery %.1f%%", h.BatteryHealth),
		fmt.Sprintf("oil %.1f%%", h.OilQuality),
		humanize.Comma(int64(s.Vehicle.Mileage)) + " km",
		StatusSymbol(s.Vehicle.Status) + " " + s.Vehicle.Status.String(),
	}
	return strings.Join(fields, "  ")
}

// RenderSimulationSummary formats the closing line of a headless run.
func RenderSimulationSummary(ticks, rounds int, s vehicle.State) string {
	return MutedStyle().Render(fmt.Sprintf("%d ticks, %d rounds", ticks, rounds)) +
		"  final status " + StatusSymbol(s.Vehicle.Status) + " " + s.Vehicle.Status.String()
}
