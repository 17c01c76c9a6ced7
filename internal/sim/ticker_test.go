package sim

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualSource is a TickSource driven by the test.
type manualSource struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func newManualSource() *manualSource {
	return &manualSource{ch: make(chan time.Time, 16)}
}

func (m *manualSource) C() <-chan time.Time { return m.ch }

func (m *manualSource) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *manualSource) isStopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

func (m *manualSource) fire() {
	m.ch <- time.Now()
}

func manualTicker(t *testing.T, e *Engine) (*Ticker, *manualSource) {
	t.Helper()
	src := newManualSource()
	var gotInterval time.Duration
	tk := NewTicker(e, 0, WithTickSource(func(d time.Duration) TickSource {
		gotInterval = d
		return src
	}))
	require.NoError(t, tk.Start(context.Background()))
	require.Equal(t, DefaultInterval, gotInterval)
	return tk, src
}

// roundWatcher turns engine rounds into a channel the test can wait on.
func roundWatcher(e *Engine) <-chan vehicle.State {
	ch := make(chan vehicle.State, 64)
	e.Subscribe(func(s vehicle.State) { ch <- s })
	return ch
}

func waitRound(t *testing.T, ch <-chan vehicle.State) vehicle.State {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for mutation round")
		return vehicle.State{}
	}
}

func TestNewTicker_Defaults(t *testing.T) {
	tk := NewTicker(NewEngine(), -time.Second)
	assert.Equal(t, DefaultInterval, tk.Interval())
	assert.Equal(t, StateIdle, tk.State())
	assert.Nil(t, tk.Done())
	assert.Equal(t, 0, tk.Ticks())

	tk = NewTicker(NewEngine(), 500*time.Millisecond)
	assert.Equal(t, 500*time.Millisecond, tk.Interval())
}

func TestTicker_StepsEngineOnTick(t *testing.T) {
	e := NewEngine(WithRand(constRand(0.9)))
	rounds := roundWatcher(e)
	tk, src := manualTicker(t, e)
	defer tk.Stop()

	assert.Equal(t, StateRunning, tk.State())

	src.fire()
	waitRound(t, rounds)
	src.fire()
	waitRound(t, rounds)

	assert.Equal(t, 2, e.Rounds())
	assert.Equal(t, 2, tk.Ticks())
}

func TestTicker_StopPreventsFurtherRounds(t *testing.T) {
	e := NewEngine(WithRand(constRand(0.9)))
	rounds := roundWatcher(e)
	tk, src := manualTicker(t, e)

	src.fire()
	waitRound(t, rounds)

	tk.Stop()
	assert.Equal(t, StateStopped, tk.State())
	assert.True(t, src.isStopped())

	select {
	case <-tk.Done():
	default:
		t.Fatal("tick loop should have exited when Stop returned")
	}

	before := e.State()
	for i := 0; i < 5; i++ {
		src.fire()
	}
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, 1, e.Rounds())
	assert.Equal(t, before, e.State())
	assert.Len(t, rounds, 0, "no observer calls after stop")
}

func TestTicker_StopIsIdempotent(t *testing.T) {
	tk := NewTicker(NewEngine(), time.Second)
	assert.NotPanics(t, tk.Stop)
	assert.Equal(t, StateIdle, tk.State())

	tk, _ = manualTicker(t, NewEngine())
	tk.Stop()
	assert.NotPanics(t, tk.Stop)
	assert.Equal(t, StateStopped, tk.State())
}

func TestTicker_StartTwiceFails(t *testing.T) {
	tk, _ := manualTicker(t, NewEngine())
	defer tk.Stop()

	err := tk.Start(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSim))
	assert.Equal(t, StateRunning, tk.State())
}

func TestTicker_RestartAfterStop(t *testing.T) {
	e := NewEngine(WithRand(constRand(0.9)))
	rounds := roundWatcher(e)

	src := newManualSource()
	tk := NewTicker(e, time.Second, WithTickSource(func(time.Duration) TickSource { return src }))

	require.NoError(t, tk.Start(context.Background()))
	tk.Stop()

	require.NoError(t, tk.Start(context.Background()))
	defer tk.Stop()
	assert.Equal(t, StateRunning, tk.State())

	src.fire()
	waitRound(t, rounds)
	assert.Equal(t, 1, e.Rounds())
}

func TestTicker_ContextCancelEndsLoop(t *testing.T) {
	e := NewEngine(WithRand(constRand(0.9)))
	src := newManualSource()
	tk := NewTicker(e, time.Second, WithTickSource(func(time.Duration) TickSource { return src }))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, tk.Start(ctx))
	done := tk.Done()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tick loop did not exit on context cancel")
	}

	src.fire()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, e.Rounds())

	// Still running until explicitly stopped.
	assert.Equal(t, StateRunning, tk.State())
	tk.Stop()
	assert.Equal(t, StateStopped, tk.State())
}

func TestTicker_RealTimer(t *testing.T) {
	e := NewEngine(WithProbability(1))
	rounds := roundWatcher(e)
	tk := NewTicker(e, 5*time.Millisecond)
	require.NoError(t, tk.Start(context.Background()))

	waitRound(t, rounds)
	tk.Stop()

	after := e.Rounds()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, e.Rounds())
}
