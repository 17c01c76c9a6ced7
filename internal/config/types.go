package config

import (
	"time"

	"github.com/rileyhilliard/vitals/internal/sim"
	"github.com/rileyhilliard/vitals/internal/vehicle"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .vitals.yaml configuration file.
type Config struct {
	Version    int                     `yaml:"version" mapstructure:"version"`
	Vehicle    VehicleConfig           `yaml:"vehicle" mapstructure:"vehicle"`
	Health     vehicle.ComponentHealth `yaml:"health" mapstructure:"health"`
	Simulation SimulationConfig        `yaml:"simulation" mapstructure:"simulation"`
	Log        LogConfig               `yaml:"log" mapstructure:"log"`
	Output     OutputConfig            `yaml:"output" mapstructure:"output"`
}

// VehicleConfig describes the vehicle shown in the dashboard header.
type VehicleConfig struct {
	Model           string `yaml:"model" mapstructure:"model"`
	Mileage         int    `yaml:"mileage" mapstructure:"mileage"`
	NextMaintenance string `yaml:"next_maintenance" mapstructure:"next_maintenance"`
	DrivingScore    int    `yaml:"driving_score" mapstructure:"driving_score"`
}

// SimulationConfig controls the random-walk ticker.
type SimulationConfig struct {
	// Interval between ticks.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Probability that a tick runs a mutation round.
	Probability float64 `yaml:"probability" mapstructure:"probability"`

	// Seed for the random source. 0 seeds from the clock.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`

	// StatusTiming is "fresh" or "lagged".
	StatusTiming string `yaml:"status_timing" mapstructure:"status_timing"`

	// History is how many rounds the trend sparklines keep.
	History int `yaml:"history" mapstructure:"history"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// File receives dashboard logs. Empty discards them.
	File string `yaml:"file" mapstructure:"file"`

	// Level is debug, info, warn or error.
	Level string `yaml:"level" mapstructure:"level"`

	// Format is json or console.
	Format string `yaml:"format" mapstructure:"format"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color is auto, always or never.
	Color string `yaml:"color" mapstructure:"color"`
}

// Defaults for fields without a natural zero value.
const (
	DefaultHistorySize = 60
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultColor       = "auto"
)

// DefaultConfig returns a config populated with the stock vehicle and
// simulation parameters.
func DefaultConfig() *Config {
	snap := vehicle.DefaultSnapshot()
	return &Config{
		Version: CurrentConfigVersion,
		Vehicle: VehicleConfig{
			Model:           snap.Model,
			Mileage:         snap.Mileage,
			NextMaintenance: snap.NextMaintenance,
			DrivingScore:    snap.DrivingScore,
		},
		Health: vehicle.DefaultHealth(),
		Simulation: SimulationConfig{
			Interval:     sim.DefaultInterval,
			Probability:  sim.DefaultProbability,
			StatusTiming: string(sim.TimingFresh),
			History:      DefaultHistorySize,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Output: OutputConfig{
			Color: DefaultColor,
		},
	}
}

// InitialState converts the config into the state the dashboard mounts with.
// The status is derived from the configured health values.
func (c *Config) InitialState() vehicle.State {
	s := vehicle.State{
		Vehicle: vehicle.Snapshot{
			Model:           c.Vehicle.Model,
			Mileage:         c.Vehicle.Mileage,
			NextMaintenance: c.Vehicle.NextMaintenance,
			DrivingScore:    c.Vehicle.DrivingScore,
		},
		Health: c.Health,
	}
	s.Vehicle.Status = vehicle.ClassifyStatus(s.Health)
	return s
}

// EngineOptions returns the sim options implied by the config.
func (c *Config) EngineOptions() []sim.Option {
	return []sim.Option{
		sim.WithState(c.InitialState()),
		sim.WithProbability(c.Simulation.Probability),
		sim.WithSeed(c.Simulation.Seed),
		sim.WithStatusTiming(sim.StatusTiming(c.Simulation.StatusTiming)),
	}
}
