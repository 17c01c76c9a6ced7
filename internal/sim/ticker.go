package sim

import (
	"context"
	"sync"
	"time"

	"github.com/looplab/fsm"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/logger"
)

// Ticker lifecycle states.
const (
	StateIdle    = "idle"
	StateRunning = "running"
	StateStopped = "stopped"

	eventStart = "start"
	eventStop  = "stop"
)

// TickSource delivers timer ticks. It is satisfied by a wrapped *time.Ticker.
type TickSource interface {
	C() <-chan time.Time
	Stop()
}

// TickSourceFunc creates a tick source firing every interval.
type TickSourceFunc func(interval time.Duration) TickSource

type timeTicker struct{ t *time.Ticker }

func (w timeTicker) C() <-chan time.Time { return w.t.C }
func (w timeTicker) Stop()               { w.t.Stop() }

// NewTimeTickSource is the default TickSourceFunc backed by time.Ticker.
func NewTimeTickSource(interval time.Duration) TickSource {
	return timeTicker{t: time.NewTicker(interval)}
}

// Ticker drives an Engine on a fixed interval until stopped.
//
// Once Stop returns, the engine is not stepped again and no observer is
// called from this ticker. Stop must not be called from an engine observer.
type Ticker struct {
	engine    *Engine
	interval  time.Duration
	newSource TickSourceFunc
	log       logger.Logger

	mu     sync.Mutex
	fsm    *fsm.FSM
	cancel context.CancelFunc
	done   chan struct{}
	ticks  int
}

// TickerOption configures a Ticker.
type TickerOption func(*Ticker)

// WithTickSource replaces the timer implementation, mainly for tests.
func WithTickSource(fn TickSourceFunc) TickerOption {
	return func(t *Ticker) {
		if fn != nil {
			t.newSource = fn
		}
	}
}

// WithTickerLogger sets the ticker logger.
func WithTickerLogger(l logger.Logger) TickerOption {
	return func(t *Ticker) {
		if l != nil {
			t.log = l
		}
	}
}

// NewTicker creates an idle ticker for engine. A non-positive interval uses
// DefaultInterval.
func NewTicker(engine *Engine, interval time.Duration, opts ...TickerOption) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := &Ticker{
		engine:    engine,
		interval:  interval,
		newSource: NewTimeTickSource,
		log:       logger.Noop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.fsm = fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{Name: eventStart, Src: []string{StateIdle, StateStopped}, Dst: StateRunning},
			{Name: eventStop, Src: []string{StateRunning}, Dst: StateStopped},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				t.log.Debug("ticker %s -> %s", e.Src, e.Dst)
			},
		},
	)
	return t
}

// Interval returns the tick interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// State returns the lifecycle state: idle, running or stopped.
func (t *Ticker) State() string {
	return t.fsm.Current()
}

// Ticks returns how many timer ticks have been handled since creation.
func (t *Ticker) Ticks() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticks
}

// Start begins ticking. The ticker also stops ticking when ctx is done,
// but stays in the running state until Stop is called.
func (t *Ticker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.fsm.Event(ctx, eventStart); err != nil {
		return errors.WrapWithCode(err, errors.ErrSim,
			"Cannot start simulation ticker from state "+t.fsm.Current(),
			"Stop the ticker before starting it again")
	}

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})

	src := t.newSource(t.interval)
	go t.run(runCtx, src, t.done)

	t.log.Info("simulation ticker started (interval %s)", t.interval)
	return nil
}

// Stop cancels the scheduled task and waits for the tick loop to exit.
// Stopping a ticker that is not running is a no-op.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.fsm.Is(StateRunning) {
		t.mu.Unlock()
		return
	}
	_ = t.fsm.Event(context.Background(), eventStop)
	cancel, done := t.cancel, t.done
	t.cancel = nil
	t.mu.Unlock()

	cancel()
	<-done
	t.log.Info("simulation ticker stopped after %d ticks", t.Ticks())
}

// Done returns a channel closed when the current tick loop exits, or nil if
// the ticker was never started.
func (t *Ticker) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

func (t *Ticker) run(ctx context.Context, src TickSource, done chan struct{}) {
	defer close(done)
	defer src.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-src.C():
			// A tick and a cancel can be ready together; cancel wins.
			if ctx.Err() != nil {
				return
			}
			t.mu.Lock()
			t.ticks++
			t.mu.Unlock()
			t.engine.Step()
		}
	}
}
