package vehicle

import "math"

// Tier is a coarse health bucket derived from a 0-100 health value.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// Tier boundaries. Values above TierHighAbove are high, values above
// TierMediumAbove are medium, everything else is low.
const (
	TierHighAbove   = 70.0
	TierMediumAbove = 40.0
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}

// ColorToken is a solid color name for text and dots.
type ColorToken string

const (
	ColorEmerald ColorToken = "emerald"
	ColorAmber   ColorToken = "amber"
	ColorRose    ColorToken = "rose"
)

// GradientToken is a gradient name for progress bars and status panels.
type GradientToken string

const (
	GradientEmerald GradientToken = "emerald-gradient"
	GradientAmber   GradientToken = "amber-gradient"
	GradientRose    GradientToken = "rose-gradient"
)

// HealthTier buckets a health value. NaN is treated as low.
func HealthTier(value float64) Tier {
	switch {
	case math.IsNaN(value):
		return TierLow
	case value > TierHighAbove:
		return TierHigh
	case value > TierMediumAbove:
		return TierMedium
	default:
		return TierLow
	}
}

// HealthColor returns the solid color token for a health value.
func HealthColor(value float64) ColorToken {
	return HealthTier(value).Color()
}

// HealthGradient returns the gradient token for a health value.
func HealthGradient(value float64) GradientToken {
	return HealthTier(value).Gradient()
}

// Color returns the solid color token for the tier.
func (t Tier) Color() ColorToken {
	switch t {
	case TierHigh:
		return ColorEmerald
	case TierMedium:
		return ColorAmber
	default:
		return ColorRose
	}
}

// Gradient returns the gradient token for the tier.
func (t Tier) Gradient() GradientToken {
	switch t {
	case TierHigh:
		return GradientEmerald
	case TierMedium:
		return GradientAmber
	default:
		return GradientRose
	}
}

// Status thresholds. Any value strictly below a critical threshold makes the
// vehicle critical; below a warning threshold makes it a warning.
const (
	BrakeCriticalBelow   = 20.0
	BatteryCriticalBelow = 40.0
	OilCriticalBelow     = 20.0

	BrakeWarningBelow   = 40.0
	BatteryWarningBelow = 60.0
	OilWarningBelow     = 40.0
)

// ClassifyStatus derives the overall status from component health.
func ClassifyStatus(h ComponentHealth) Status {
	switch {
	case h.BrakePadLife < BrakeCriticalBelow ||
		h.BatteryHealth < BatteryCriticalBelow ||
		h.OilQuality < OilCriticalBelow:
		return StatusCritical
	case h.BrakePadLife < BrakeWarningBelow ||
		h.BatteryHealth < BatteryWarningBelow ||
		h.OilQuality < OilWarningBelow:
		return StatusWarning
	default:
		return StatusGood
	}
}

// MaxTreadDepth is the tread depth of a new tire in millimetres.
const MaxTreadDepth = 8.0

// treadHealthScale converts millimetres of tread into a health value for coloring.
const treadHealthScale = 12.0

// TreadHealth converts tread depth to the value used for tier coloring.
func TreadHealth(depth float64) float64 {
	return depth * treadHealthScale
}

// TreadPercent converts tread depth to a 0-100 bar fill.
func TreadPercent(depth float64) float64 {
	return ClampPercent(depth / MaxTreadDepth * 100)
}

// BrakeAnomaly reports whether the brake panel shows its anomaly flag.
func BrakeAnomaly(h ComponentHealth) bool {
	return h.BrakePadLife < BrakeWarningBelow
}

// EngineVibrationAbnormal reports whether engine vibration reads abnormal.
// Vibration is inferred from oil quality.
func EngineVibrationAbnormal(h ComponentHealth) bool {
	return h.OilQuality < OilWarningBelow
}

// failureRiskAbove is the battery failure likelihood at which risk is highlighted.
const failureRiskAbove = 20

// BatteryRiskElevated reports whether the failure likelihood is highlighted.
func BatteryRiskElevated(h ComponentHealth) bool {
	return h.BatteryFailureLikelihood > failureRiskAbove
}

// Clamp limits v to [lo, hi]. NaN becomes lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampPercent limits v to [0, 100].
func ClampPercent(v float64) float64 {
	return Clamp(v, 0, 100)
}
