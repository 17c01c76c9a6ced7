// Package ui provides the styled, line-oriented output used by the headless
// vitals commands.
//
// The interactive dashboard has its own palette in package dashboard; this
// package covers everything printed to a plain stream:
//
//	RenderRoundLine         - one line per mutation round (simulate)
//	RenderSimulationSummary - closing line of a headless run
//	RenderFixtureTable      - historical samples as a table (fixture)
//
// # Color Scheme
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess (green)  - good status
//	ColorWarning (yellow) - warning status, anomalies
//	ColorError   (red)    - critical status, failures
//	ColorMuted   (gray)   - secondary text
//
// ApplyColorMode switches the global lipgloss profile for --no-color and the
// output.color config key.
package ui
