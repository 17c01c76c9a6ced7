package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/sim"
	"github.com/rileyhilliard/vitals/internal/ui"
	"github.com/rileyhilliard/vitals/internal/vehicle"
)

type simulateOptions struct {
	Duration time.Duration
	Interval time.Duration
	JSON     bool
}

// roundEvent is one line of --json simulate output.
type roundEvent struct {
	Round  int           `json:"round"`
	Status string        `json:"status"`
	State  vehicle.State `json:"state"`
}

// simulateSummary is the final line of --json simulate output.
type simulateSummary struct {
	Ticks  int           `json:"ticks"`
	Rounds int           `json:"rounds"`
	Status string        `json:"status"`
	State  vehicle.State `json:"state"`
}

// simulateCommand runs the headless ticker until ctx is done or the duration
// elapses, streaming one line per committed round to stdout.
func simulateCommand(ctx context.Context, stdout, stderr io.Writer, cfg *config.Config, opts simulateOptions, tickerOpts ...sim.TickerOption) error {
	log := newLogger(stderr, cfg, "simulate")

	interval := cfg.Simulation.Interval
	if opts.Interval > 0 {
		interval = opts.Interval
	}

	engine := sim.NewEngine(append(cfg.EngineOptions(), sim.WithLogger(log))...)

	enc := json.NewEncoder(stdout)
	engine.Subscribe(func(s vehicle.State) {
		// Observers run on the ticker goroutine, one round at a time.
		round := engine.Rounds()
		if opts.JSON {
			_ = enc.Encode(roundEvent{Round: round, Status: s.Vehicle.Status.String(), State: s})
			return
		}
		fmt.Fprintln(stdout, ui.RenderRoundLine(round, s))
	})

	if opts.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Duration)
		defer cancel()
	}

	ticker := sim.NewTicker(engine, interval, append([]sim.TickerOption{sim.WithTickerLogger(log)}, tickerOpts...)...)
	if err := ticker.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	ticker.Stop()

	state := engine.State()
	if opts.JSON {
		return enc.Encode(simulateSummary{
			Ticks:  ticker.Ticks(),
			Rounds: engine.Rounds(),
			Status: state.Vehicle.Status.String(),
			State:  state,
		})
	}
	_, err := fmt.Fprintln(stdout, ui.RenderSimulationSummary(ticker.Ticks(), engine.Rounds(), state))
	return err
}
