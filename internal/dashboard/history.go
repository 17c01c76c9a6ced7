package dashboard

import (
	"sync"

	"github.com/rileyhilliard/vitals/internal/vehicle"
)

// DefaultHistorySize is the default number of rounds retained per component.
const DefaultHistorySize = 60

// Component identifies a tracked health value.
type Component int

const (
	ComponentBrake Component = iota
	ComponentTread
	ComponentBattery
	ComponentOil
)

// Components lists every tracked component in display order.
var Components = []Component{ComponentBrake, ComponentTread, ComponentBattery, ComponentOil}

// String returns the display name for the component.
func (c Component) String() string {
	switch c {
	case ComponentBrake:
		return "brake"
	case ComponentTread:
		return "tread"
	case ComponentBattery:
		return "battery"
	case ComponentOil:
		return "oil"
	default:
		return "unknown"
	}
}

// value extracts the component's health from h on the 0-100 scale.
// Tread depth is reported as a percentage of a new tire.
func (c Component) value(h vehicle.ComponentHealth) float64 {
	switch c {
	case ComponentBrake:
		return h.BrakePadLife
	case ComponentTread:
		return vehicle.TreadPercent(h.TreadDepth)
	case ComponentBattery:
		return h.BatteryHealth
	case ComponentOil:
		return h.OilQuality
	default:
		return 0
	}
}

// History keeps a ring buffer of health values per component for the
// trend sparklines. It is safe for concurrent use.
type History struct {
	mu      sync.RWMutex
	size    int
	buffers map[Component]*ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history tracker with the given capacity per component.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	h := &History{
		size:    size,
		buffers: make(map[Component]*ringBuffer, len(Components)),
	}
	for _, c := range Components {
		h.buffers[c] = newRingBuffer(size)
	}
	return h
}

// Size returns the capacity per component.
func (h *History) Size() int {
	return h.size
}

// Push records one sample of every component.
func (h *History) Push(health vehicle.ComponentHealth) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range Components {
		h.buffers[c].push(c.value(health))
	}
}

// Get returns the last count values for c, oldest first.
// Returns fewer values if not enough history is available.
func (h *History) Get(c Component, count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	buf, ok := h.buffers[c]
	if !ok {
		return nil
	}
	return buf.getLast(count)
}

// All returns every stored value for c, oldest first.
func (h *History) All(c Component) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	buf, ok := h.buffers[c]
	if !ok {
		return nil
	}
	return buf.getLast(buf.count)
}

// Count returns how many samples are stored. All components share one count.
func (h *History) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.buffers[ComponentBrake].count
}

// Clear drops all stored samples.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range Components {
		h.buffers[c] = newRingBuffer(h.size)
	}
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}
	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)
	// head is the next write position, so the newest value sits at head-1.
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}
