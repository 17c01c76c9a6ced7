package sim

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rileyhilliard/vitals/internal/logger"
	"github.com/rileyhilliard/vitals/internal/vehicle"
)

// Default simulation parameters.
const (
	DefaultInterval    = 3 * time.Second
	DefaultProbability = 0.3
)

// Per-round decrement ceilings. Each round subtracts U(0, ceiling).
const (
	maxBrakeWear   = 2.0
	maxTreadWear   = 0.1
	maxBatteryWear = 0.5
	maxOilWear     = 1.0
	maxMileageGain = 5.0
)

// StatusTiming selects which health values the status is classified from
// at the end of a mutation round.
type StatusTiming string

const (
	// TimingFresh classifies the values written by the round.
	TimingFresh StatusTiming = "fresh"
	// TimingLagged classifies the values as they stood before the round,
	// so the status trails the bars by one round.
	TimingLagged StatusTiming = "lagged"
)

// Valid reports whether t is a known timing.
func (t StatusTiming) Valid() bool {
	return t == TimingFresh || t == TimingLagged
}

// Rand is the random source the engine draws from. Values must be in [0, 1).
type Rand interface {
	Float64() float64
}

// Observer is called with the committed state after every mutation round.
type Observer func(vehicle.State)

// Engine owns the dashboard state and is the only thing that mutates it.
// It is safe for concurrent use; observers run outside the lock.
type Engine struct {
	mu          sync.Mutex
	state       vehicle.State
	rng         Rand
	probability float64
	threshold   float64
	timing      StatusTiming
	observers   []Observer
	rounds      int
	log         logger.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed seeds a deterministic PCG source. Zero keeps the time-seeded default.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		}
	}
}

// WithState sets the initial state. Health values are clamped and the status
// is derived from them.
func WithState(s vehicle.State) Option {
	return func(e *Engine) {
		s.Health = s.Health.Clamped()
		if s.Vehicle.Mileage < 0 {
			s.Vehicle.Mileage = 0
		}
		s.Vehicle.Status = vehicle.ClassifyStatus(s.Health)
		e.state = s
	}
}

// WithProbability sets the chance that a tick runs a mutation round.
func WithProbability(p float64) Option {
	return func(e *Engine) {
		e.probability = vehicle.Clamp(p, 0, 1)
		e.threshold = skipThreshold(e.probability)
	}
}

// WithStatusTiming selects fresh or lagged status classification.
func WithStatusTiming(t StatusTiming) Option {
	return func(e *Engine) {
		if t.Valid() {
			e.timing = t
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// skipThreshold is the draw at or below which a tick is skipped. Rounded so
// that a probability of 0.3 yields exactly 0.7.
func skipThreshold(probability float64) float64 {
	return math.Round((1-probability)*1e12) / 1e12
}

// NewEngine creates an engine starting from the default vehicle state.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		state:       vehicle.DefaultState(),
		rng:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		probability: DefaultProbability,
		threshold:   skipThreshold(DefaultProbability),
		timing:      TimingFresh,
		log:         logger.Noop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns a copy of the current state.
func (e *Engine) State() vehicle.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Rounds returns how many mutation rounds have been applied.
func (e *Engine) Rounds() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rounds
}

// Timing returns the configured status timing.
func (e *Engine) Timing() StatusTiming {
	return e.timing
}

// Subscribe registers an observer for committed rounds.
func (e *Engine) Subscribe(fn Observer) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, fn)
}

// Step handles one timer tick. With the configured probability it runs a
// mutation round; otherwise it leaves the state untouched. The returned bool
// reports whether a round ran.
func (e *Engine) Step() (vehicle.State, bool) {
	e.mu.Lock()
	draw := e.rng.Float64()
	if draw <= e.threshold {
		s := e.state
		e.mu.Unlock()
		e.log.Debug("tick skipped (draw %.3f)", draw)
		return s, false
	}
	e.mu.Unlock()

	return e.Mutate(), true
}

// Mutate applies exactly one mutation round and notifies observers.
func (e *Engine) Mutate() vehicle.State {
	e.mu.Lock()

	prev := e.state.Health
	next := prev
	next.BrakePadLife = math.Max(prev.BrakePadLife-e.rng.Float64()*maxBrakeWear, 0)
	next.TreadDepth = math.Max(prev.TreadDepth-e.rng.Float64()*maxTreadWear, 0)
	next.BatteryHealth = math.Max(prev.BatteryHealth-e.rng.Float64()*maxBatteryWear, 0)
	next.OilQuality = math.Max(prev.OilQuality-e.rng.Float64()*maxOilWear, 0)
	gained := int(math.Floor(e.rng.Float64() * maxMileageGain))

	classified := next
	if e.timing == TimingLagged {
		classified = prev
	}

	e.state.Health = next.Clamped()
	e.state.Vehicle.Mileage += gained
	e.state.Vehicle.Status = vehicle.ClassifyStatus(classified)
	e.rounds++

	s := e.state
	round := e.rounds
	observers := make([]Observer, len(e.observers))
	copy(observers, e.observers)
	e.mu.Unlock()

	e.log.Debug("round %d: brake=%.2f tread=%.2f battery=%.2f oil=%.2f mileage=%d status=%s",
		round, s.Health.BrakePadLife, s.Health.TreadDepth, s.Health.BatteryHealth,
		s.Health.OilQuality, s.Vehicle.Mileage, s.Vehicle.Status)

	for _, fn := range observers {
		fn(s)
	}
	return s
}
