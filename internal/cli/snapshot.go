package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/dashboard"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/logger"
	"github.com/rileyhilliard/vitals/internal/sim"
	"github.com/rileyhilliard/vitals/internal/vehicle"
)

type snapshotOptions struct {
	Rounds  int
	Width   int
	Fixture string
	JSON    bool
}

// snapshotResult is the --json payload of the snapshot command.
type snapshotResult struct {
	Rounds  int           `json:"rounds"`
	Status  string        `json:"status"`
	State   vehicle.State `json:"state"`
	Derived derivedFlags  `json:"derived"`
}

// derivedFlags mirrors the indicators the dashboard computes from health.
type derivedFlags struct {
	TreadPercent            float64 `json:"tread_percent"`
	BrakeAnomaly            bool    `json:"brake_anomaly"`
	EngineVibrationAbnormal bool    `json:"engine_vibration_abnormal"`
	BatteryRiskElevated     bool    `json:"battery_risk_elevated"`
}

func deriveFlags(h vehicle.ComponentHealth) derivedFlags {
	return derivedFlags{
		TreadPercent:            vehicle.TreadPercent(h.TreadDepth),
		BrakeAnomaly:            vehicle.BrakeAnomaly(h),
		EngineVibrationAbnormal: vehicle.EngineVibrationAbnormal(h),
		BatteryRiskElevated:     vehicle.BatteryRiskElevated(h),
	}
}

// snapshotCommand applies opts.Rounds forced rounds and writes either the
// rendered frame or the resulting state.
func snapshotCommand(w io.Writer, cfg *config.Config, opts snapshotOptions) error {
	if opts.Rounds < 0 {
		return errors.New(errors.ErrSim,
			"Round count must not be negative: "+strconv.Itoa(opts.Rounds),
			"Pass --rounds 0 or more")
	}

	samples, err := loadSamples(opts.Fixture)
	if err != nil {
		return err
	}

	engine := sim.NewEngine(append(cfg.EngineOptions(), sim.WithLogger(logger.Noop()))...)
	for i := 0; i < opts.Rounds; i++ {
		engine.Mutate()
	}
	state := engine.State()

	if opts.JSON {
		return WriteJSONSuccess(w, snapshotResult{
			Rounds:  engine.Rounds(),
			Status:  state.Vehicle.Status.String(),
			State:   state,
			Derived: deriveFlags(state.Health),
		})
	}

	frame := dashboard.Render(dashboard.Frame{
		State:   state,
		Samples: samples,
		Width:   opts.Width,
	})
	if _, err := fmt.Fprintln(w, frame); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender, "Cannot write dashboard frame", "")
	}
	return nil
}
