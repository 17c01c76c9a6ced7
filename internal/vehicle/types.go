package vehicle

// Status is the overall vehicle classification.
type Status string

const (
	StatusGood     Status = "good"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// String returns the status name.
func (s Status) String() string {
	return string(s)
}

// Description returns the one-line summary shown under the status headline.
func (s Status) Description() string {
	switch s {
	case StatusGood:
		return "All systems functioning properly"
	case StatusWarning:
		return "Maintenance recommended soon"
	default:
		return "Immediate attention required"
	}
}

// Tier maps the status onto the health tier scale so the status label can be
// colored by the same rules as component values.
func (s Status) Tier() Tier {
	switch s {
	case StatusGood:
		return HealthTier(100)
	case StatusWarning:
		return HealthTier(50)
	default:
		return HealthTier(20)
	}
}

// Icon returns the glyph drawn next to the status label.
func (s Status) Icon() string {
	switch s {
	case StatusGood:
		return "✓"
	case StatusWarning:
		return "⚠"
	default:
		return "✗"
	}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusGood, StatusWarning, StatusCritical:
		return true
	}
	return false
}

// Snapshot is the vehicle-level part of the dashboard state.
type Snapshot struct {
	Status          Status `json:"status" yaml:"status"`
	NextMaintenance string `json:"next_maintenance" yaml:"next_maintenance"`
	DrivingScore    int    `json:"driving_score" yaml:"driving_score"`
	Model           string `json:"model" yaml:"model"`
	Mileage         int    `json:"mileage" yaml:"mileage"`
}

// ComponentHealth holds the predictive health values for each subsystem.
type ComponentHealth struct {
	BrakePadLife             float64 `json:"brake_pad_life" yaml:"brake_pad_life" mapstructure:"brake_pad_life"`
	BrakeDistanceLeft        int     `json:"brake_distance_left" yaml:"brake_distance_left" mapstructure:"brake_distance_left"`
	TreadDepth               float64 `json:"tread_depth" yaml:"tread_depth" mapstructure:"tread_depth"`
	BatteryHealth            float64 `json:"battery_health" yaml:"battery_health" mapstructure:"battery_health"`
	BatteryFailureLikelihood int     `json:"battery_failure_likelihood" yaml:"battery_failure_likelihood" mapstructure:"battery_failure_likelihood"`
	OilQuality               float64 `json:"oil_quality" yaml:"oil_quality" mapstructure:"oil_quality"`
}

// Clamped returns a copy with every value forced into its valid range.
func (h ComponentHealth) Clamped() ComponentHealth {
	h.BrakePadLife = ClampPercent(h.BrakePadLife)
	h.TreadDepth = Clamp(h.TreadDepth, 0, MaxTreadDepth)
	h.BatteryHealth = ClampPercent(h.BatteryHealth)
	h.OilQuality = ClampPercent(h.OilQuality)
	if h.BrakeDistanceLeft < 0 {
		h.BrakeDistanceLeft = 0
	}
	h.BatteryFailureLikelihood = int(ClampPercent(float64(h.BatteryFailureLikelihood)))
	return h
}

// State is everything the dashboard renders apart from the static fixture.
type State struct {
	Vehicle Snapshot        `json:"vehicle" yaml:"vehicle"`
	Health  ComponentHealth `json:"health" yaml:"health"`
}

// HistoricalSample is one point of the sensor history chart.
type HistoricalSample struct {
	Date        string  `json:"date" yaml:"date"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Vibration   float64 `json:"vibration" yaml:"vibration"`
	RPM         float64 `json:"rpm" yaml:"rpm"`
	Anomaly     bool    `json:"anomaly,omitempty" yaml:"anomaly,omitempty"`
}
