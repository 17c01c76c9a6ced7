package dashboard

import (
	"testing"

	"github.com/rileyhilliard/vitals/internal/vehicle"
	"github.com/stretchr/testify/assert"
)

func TestNewHistory_DefaultSize(t *testing.T) {
	assert.Equal(t, DefaultHistorySize, NewHistory(0).Size())
	assert.Equal(t, DefaultHistorySize, NewHistory(-3).Size())
	assert.Equal(t, 5, NewHistory(5).Size())
}

func TestHistory_PushAndGet(t *testing.T) {
	h := NewHistory(10)
	assert.Equal(t, 0, h.Count())
	assert.Nil(t, h.Get(ComponentBrake, 5))

	h.Push(vehicle.ComponentHealth{BrakePadLife: 72, TreadDepth: 8, BatteryHealth: 92, OilQuality: 65})
	h.Push(vehicle.ComponentHealth{BrakePadLife: 71, TreadDepth: 4, BatteryHealth: 91.5, OilQuality: 64})

	assert.Equal(t, 2, h.Count())
	assert.Equal(t, []float64{72, 71}, h.Get(ComponentBrake, 5))
	assert.Equal(t, []float64{100, 50}, h.Get(ComponentTread, 5), "tread is stored as percent of a new tire")
	assert.Equal(t, []float64{92, 91.5}, h.All(ComponentBattery))
	assert.Equal(t, []float64{64}, h.Get(ComponentOil, 1))
}

func TestHistory_Wraps(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Push(vehicle.ComponentHealth{BrakePadLife: float64(i * 10)})
	}

	assert.Equal(t, 3, h.Count())
	assert.Equal(t, []float64{30, 40, 50}, h.All(ComponentBrake))
	assert.Equal(t, []float64{40, 50}, h.Get(ComponentBrake, 2))
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory(3)
	h.Push(vehicle.DefaultHealth())
	h.Clear()
	assert.Equal(t, 0, h.Count())
	assert.Nil(t, h.All(ComponentOil))
}

func TestComponent_String(t *testing.T) {
	tests := []struct {
		c      Component
		expect string
	}{
		{ComponentBrake, "brake"},
		{ComponentTread, "tread"},
		{ComponentBattery, "battery"},
		{ComponentOil, "oil"},
		{Component(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.c.String())
		})
	}
}
