package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/logger"
	"github.com/rileyhilliard/vitals/internal/sim"
	"github.com/rileyhilliard/vitals/internal/vehicle"
)

// MinInterval is the shortest tick interval accepted from config.
const MinInterval = 100 * time.Millisecond

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but vitals only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade vitals or lower the version field")
	}

	if err := validateVehicle(cfg.Vehicle); err != nil {
		return err
	}
	if err := validateHealth(cfg.Health); err != nil {
		return err
	}
	if err := validateSimulation(cfg.Simulation); err != nil {
		return err
	}
	if err := validateLog(cfg.Log); err != nil {
		return err
	}

	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown output.color %q", cfg.Output.Color),
			"Use one of: auto, always, never")
	}

	return nil
}

func validateVehicle(v VehicleConfig) error {
	if strings.TrimSpace(v.Model) == "" {
		return errors.New(errors.ErrConfig,
			"vehicle.model is empty",
			"Set vehicle.model to the name shown in the header")
	}
	if v.Mileage < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("vehicle.mileage can't be negative (got %d)", v.Mileage),
			"Use 0 or a positive odometer reading")
	}
	if v.DrivingScore < 0 || v.DrivingScore > 100 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("vehicle.driving_score must be within 0-100 (got %d)", v.DrivingScore),
			"Pick a score between 0 and 100")
	}
	return nil
}

func validateHealth(h vehicle.ComponentHealth) error {
	percents := []struct {
		key   string
		value float64
	}{
		{"health.brake_pad_life", h.BrakePadLife},
		{"health.battery_health", h.BatteryHealth},
		{"health.oil_quality", h.OilQuality},
		{"health.battery_failure_likelihood", float64(h.BatteryFailureLikelihood)},
	}
	for _, p := range percents {
		if p.value < 0 || p.value > 100 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("%s must be within 0-100 (got %g)", p.key, p.value),
				"Health values are percentages")
		}
	}

	if h.TreadDepth < 0 || h.TreadDepth > vehicle.MaxTreadDepth {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("health.tread_depth must be within 0-%g mm (got %g)", vehicle.MaxTreadDepth, h.TreadDepth),
			"New tires have about 8 mm of tread")
	}
	if h.BrakeDistanceLeft < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("health.brake_distance_left can't be negative (got %d)", h.BrakeDistanceLeft),
			"Use a distance in km")
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	if s.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("simulation.interval %s is too short", s.Interval),
			fmt.Sprintf("Minimum interval is %s", MinInterval))
	}
	if s.Probability < 0 || s.Probability > 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("simulation.probability must be within 0-1 (got %g)", s.Probability),
			"0.3 means roughly one round every three ticks")
	}
	if !sim.StatusTiming(s.StatusTiming).Valid() {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown simulation.status_timing %q", s.StatusTiming),
			"Use fresh or lagged")
	}
	if s.History < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("simulation.history can't be negative (got %d)", s.History),
			"Use 0 for the default size")
	}
	return nil
}

func validateLog(l LogConfig) error {
	if !logger.ValidLevel(l.Level) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown log.level %q", l.Level),
			"Use one of: debug, info, warn, error")
	}
	switch l.Format {
	case "json", "console":
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown log.format %q", l.Format),
			"Use json or console")
	}
	return nil
}
