package vehicle

// DefaultSnapshot returns the vehicle state shown on first mount.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Status:          StatusGood,
		NextMaintenance: "May 15, 2025",
		DrivingScore:    87,
		Model:           "Tesla Model S",
		Mileage:         34567,
	}
}

// DefaultHealth returns the component health shown on first mount.
func DefaultHealth() ComponentHealth {
	return ComponentHealth{
		BrakePadLife:             72,
		BrakeDistanceLeft:        18500,
		TreadDepth:               6.5,
		BatteryHealth:            92,
		BatteryFailureLikelihood: 8,
		OilQuality:               65,
	}
}

// DefaultState returns the full initial dashboard state.
func DefaultState() State {
	return State{
		Vehicle: DefaultSnapshot(),
		Health:  DefaultHealth(),
	}
}

// Reading is a fixed sensor readout with its verdict.
type Reading struct {
	Label   string
	Value   string
	Verdict string
}

// Fixed readouts. These are display constants with no derivation rule.
var (
	TirePressure      = Reading{Label: "Pressure", Value: "32 PSI", Verdict: "Good"}
	TireBalance       = Reading{Label: "Balance", Value: "Good", Verdict: "Good"}
	Transmission      = Reading{Label: "Transmission", Value: "Normal", Verdict: "Normal"}
	ChargeCycles      = Reading{Label: "Charge Cycles", Value: "248"}
	EngineTemperature = Reading{Label: "Engine Temperature", Value: "90°C", Verdict: "Normal"}
	VibrationLevel    = Reading{Label: "Vibration Level", Value: "16 Hz", Verdict: "Normal"}
	BatteryVoltage    = Reading{Label: "Battery Voltage", Value: "12.7V", Verdict: "Good"}
)

// SensorReadings returns the fixed readouts shown under the sensor chart.
func SensorReadings() []Reading {
	return []Reading{EngineTemperature, VibrationLevel, BatteryVoltage}
}

// AnomalyBanner is the fixed anomaly notice under the sensor panel.
var AnomalyBanner = struct {
	Title          string
	Finding        string
	Recommendation string
}{
	Title:          "AI Detected Anomalies",
	Finding:        "Unusual temperature spike detected in April",
	Recommendation: "Recommendation: Monitor engine cooling system for potential fan or thermostat issues",
}
