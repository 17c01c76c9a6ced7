package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Healthy / done
	SymbolFail    = "✗" // Critical / failed
	SymbolWarning = "⚠" // Needs attention
	SymbolPending = "○" // Tick skipped
	SymbolRound   = "●" // Mutation round applied
)
