package vehicle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthTier(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  Tier
	}{
		{name: "full", value: 100, want: TierHigh},
		{name: "just above high boundary", value: 70.01, want: TierHigh},
		{name: "high boundary is medium", value: 70, want: TierMedium},
		{name: "middle", value: 55, want: TierMedium},
		{name: "just above medium boundary", value: 40.01, want: TierMedium},
		{name: "medium boundary is low", value: 40, want: TierLow},
		{name: "zero", value: 0, want: TierLow},
		{name: "negative", value: -5, want: TierLow},
		{name: "NaN", value: math.NaN(), want: TierLow},
		{name: "above range", value: 250, want: TierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HealthTier(tt.value))
		})
	}
}

func TestHealthColorAndGradientAgree(t *testing.T) {
	colorTier := map[ColorToken]Tier{
		ColorEmerald: TierHigh,
		ColorAmber:   TierMedium,
		ColorRose:    TierLow,
	}
	gradientTier := map[GradientToken]Tier{
		GradientEmerald: TierHigh,
		GradientAmber:   TierMedium,
		GradientRose:    TierLow,
	}

	for v := 0.0; v <= 100.0; v += 0.25 {
		c := HealthColor(v)
		g := HealthGradient(v)
		assert.Equal(t, colorTier[c], gradientTier[g], "value %.2f", v)
		assert.Equal(t, HealthTier(v), colorTier[c], "value %.2f", v)
	}
}

func TestHealthColor(t *testing.T) {
	assert.Equal(t, ColorEmerald, HealthColor(92))
	assert.Equal(t, ColorAmber, HealthColor(65))
	assert.Equal(t, ColorRose, HealthColor(15))
	assert.Equal(t, ColorRose, HealthColor(-1))
}

func TestHealthGradient(t *testing.T) {
	assert.Equal(t, GradientEmerald, HealthGradient(72))
	assert.Equal(t, GradientAmber, HealthGradient(41))
	assert.Equal(t, GradientRose, HealthGradient(40))
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "high", TierHigh.String())
	assert.Equal(t, "medium", TierMedium.String())
	assert.Equal(t, "low", TierLow.String())
	assert.Equal(t, "low", Tier(42).String())
}

func TestClassifyStatus(t *testing.T) {
	nominal := ComponentHealth{BrakePadLife: 72, BatteryHealth: 92, OilQuality: 65}

	tests := []struct {
		name   string
		mutate func(h *ComponentHealth)
		want   Status
	}{
		{name: "initial state is good", mutate: func(h *ComponentHealth) {}, want: StatusGood},
		{name: "brake pads at 15 are critical", mutate: func(h *ComponentHealth) { h.BrakePadLife = 15 }, want: StatusCritical},
		{name: "battery at 55 is a warning", mutate: func(h *ComponentHealth) { h.BatteryHealth = 55 }, want: StatusWarning},
		{name: "battery at 39 is critical", mutate: func(h *ComponentHealth) { h.BatteryHealth = 39 }, want: StatusCritical},
		{name: "oil at 19 is critical", mutate: func(h *ComponentHealth) { h.OilQuality = 19 }, want: StatusCritical},
		{name: "oil at 39 is a warning", mutate: func(h *ComponentHealth) { h.OilQuality = 39 }, want: StatusWarning},
		{name: "brake at exactly 40 is good", mutate: func(h *ComponentHealth) { h.BrakePadLife = 40 }, want: StatusGood},
		{name: "brake at exactly 20 is a warning", mutate: func(h *ComponentHealth) { h.BrakePadLife = 20 }, want: StatusWarning},
		{name: "battery at exactly 60 is good", mutate: func(h *ComponentHealth) { h.BatteryHealth = 60 }, want: StatusGood},
		{
			name: "critical wins over warning",
			mutate: func(h *ComponentHealth) {
				h.BatteryHealth = 55
				h.OilQuality = 10
			},
			want: StatusCritical,
		},
		{
			name:   "tread depth does not affect status",
			mutate: func(h *ComponentHealth) { h.TreadDepth = 0 },
			want:   StatusGood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := nominal
			tt.mutate(&h)
			assert.Equal(t, tt.want, ClassifyStatus(h))
		})
	}
}

func TestClassifyStatus_Idempotent(t *testing.T) {
	h := ComponentHealth{BrakePadLife: 33.3, BatteryHealth: 58, OilQuality: 41}
	first := ClassifyStatus(h)
	second := ClassifyStatus(h)
	assert.Equal(t, first, second)
	assert.Equal(t, ComponentHealth{BrakePadLife: 33.3, BatteryHealth: 58, OilQuality: 41}, h)
}

func TestStatus_Helpers(t *testing.T) {
	assert.Equal(t, "All systems functioning properly", StatusGood.Description())
	assert.Equal(t, "Maintenance recommended soon", StatusWarning.Description())
	assert.Equal(t, "Immediate attention required", StatusCritical.Description())

	assert.Equal(t, TierHigh, StatusGood.Tier())
	assert.Equal(t, TierMedium, StatusWarning.Tier())
	assert.Equal(t, TierLow, StatusCritical.Tier())

	assert.True(t, StatusWarning.Valid())
	assert.False(t, Status("broken").Valid())
	assert.Equal(t, "critical", StatusCritical.String())
}

func TestTreadConversions(t *testing.T) {
	assert.InDelta(t, 78.0, TreadHealth(6.5), 1e-9)
	assert.Equal(t, TierHigh, HealthTier(TreadHealth(6.5)))
	assert.Equal(t, TierMedium, HealthTier(TreadHealth(4)))
	assert.Equal(t, TierLow, HealthTier(TreadHealth(3)))

	assert.InDelta(t, 81.25, TreadPercent(6.5), 1e-9)
	assert.Equal(t, 0.0, TreadPercent(-1))
	assert.Equal(t, 100.0, TreadPercent(9))
}

func TestDerivedFlags(t *testing.T) {
	h := DefaultHealth()
	assert.False(t, BrakeAnomaly(h))
	assert.False(t, EngineVibrationAbnormal(h))
	assert.False(t, BatteryRiskElevated(h))

	h.BrakePadLife = 39.9
	h.OilQuality = 39.9
	h.BatteryFailureLikelihood = 21
	assert.True(t, BrakeAnomaly(h))
	assert.True(t, EngineVibrationAbnormal(h))
	assert.True(t, BatteryRiskElevated(h))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, ClampPercent(-0.0001))
	assert.Equal(t, 100.0, ClampPercent(100.5))
	assert.Equal(t, 42.0, ClampPercent(42))
	assert.Equal(t, 0.0, ClampPercent(math.NaN()))
	assert.Equal(t, 8.0, Clamp(9, 0, 8))
}

func TestComponentHealth_Clamped(t *testing.T) {
	h := ComponentHealth{
		BrakePadLife:             -3,
		BrakeDistanceLeft:        -10,
		TreadDepth:               12,
		BatteryHealth:            140,
		BatteryFailureLikelihood: 120,
		OilQuality:               math.NaN(),
	}.Clamped()

	assert.Equal(t, 0.0, h.BrakePadLife)
	assert.Equal(t, 0, h.BrakeDistanceLeft)
	assert.Equal(t, MaxTreadDepth, h.TreadDepth)
	assert.Equal(t, 100.0, h.BatteryHealth)
	assert.Equal(t, 100, h.BatteryFailureLikelihood)
	assert.Equal(t, 0.0, h.OilQuality)
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	assert.Equal(t, StatusGood, s.Vehicle.Status)
	assert.Equal(t, "Tesla Model S", s.Vehicle.Model)
	assert.Equal(t, 34567, s.Vehicle.Mileage)
	assert.Equal(t, 87, s.Vehicle.DrivingScore)
	assert.Equal(t, "May 15, 2025", s.Vehicle.NextMaintenance)
	assert.Equal(t, ClassifyStatus(s.Health), s.Vehicle.Status)
	assert.Equal(t, 18500, s.Health.BrakeDistanceLeft)
}
