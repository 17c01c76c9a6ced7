// Package dashboard renders the vehicle health dashboard as a Bubble Tea
// program.
//
// The model owns a sim.Engine and drives it with tea.Tick. Every tick asks the
// engine for a probabilistic step; a committed round replaces the rendered
// state and pushes the new health values into History, which feeds the trend
// sparklines next to each gradient bar.
//
// Rendering is split from the model: Render takes a Frame and returns the full
// dashboard string, so one-shot output (snapshot, non-TTY stdout) and the
// interactive view share one code path.
//
// # Layout
//
//	header        model, mileage, status dot, action buttons
//	summary       vehicle health, next maintenance, driving score
//	components    brake, tire, battery, engine panels
//	sensors       braille chart of the historical fixture
//	readouts      fixed temperature, vibration, voltage values
//	banner        anomaly notice
//
// Terminals at least BreakpointWide columns wide get the multi-column layout.
//
// # Keyboard Shortcuts
//
//	q/Ctrl+C  Quit
//	p         Pause or resume the simulation
//	r         Run a mutation round now
//	?         Toggle help overlay
//	arrows    Scroll
package dashboard
