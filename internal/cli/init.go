package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/sim"
	"github.com/rileyhilliard/vitals/internal/ui"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string        // Directory to write .vitals.yaml into
	Model          string        // Vehicle model shown in the header
	Mileage        int           // Starting odometer reading; negative means default
	Interval       time.Duration // Tick interval; zero means default
	StatusTiming   string        // fresh or lagged; empty means default
	Overwrite      bool          // Overwrite existing config without asking
	NonInteractive bool          // Skip prompts, use flags and defaults
}

// initDocument is the on-disk shape written by init. Durations are kept as
// strings so the file stays readable.
type initDocument struct {
	Version    int                  `yaml:"version"`
	Vehicle    config.VehicleConfig `yaml:"vehicle"`
	Simulation initSimulation       `yaml:"simulation"`
	Log        config.LogConfig     `yaml:"log"`
	Output     config.OutputConfig  `yaml:"output"`
}

type initSimulation struct {
	Interval     string  `yaml:"interval"`
	Probability  float64 `yaml:"probability"`
	StatusTiming string  `yaml:"status_timing"`
	History      int     `yaml:"history"`
}

const initHeader = `# vitals configuration
# Run 'vitals' to open the dashboard, 'vitals snapshot' for a single frame.

`

// Init writes a new .vitals.yaml built from opts, prompting for any values
// left unset unless running non-interactively.
func Init(w io.Writer, opts InitOptions) error {
	configPath := filepath.Join(opts.Dir, config.ConfigFileName)

	proceed, err := checkExistingConfig(w, configPath, opts)
	if err != nil || !proceed {
		return err
	}

	cfg := config.DefaultConfig()
	mergeInitOptions(cfg, opts)

	if !opts.NonInteractive {
		if err := promptInitValues(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(newInitDocument(cfg))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	if err := os.WriteFile(configPath, []byte(initHeader+string(data)), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Fprintf(w, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  vitals            - Open the dashboard")
	fmt.Fprintln(w, "  vitals snapshot   - Render a single frame")
	fmt.Fprintln(w, "  vitals simulate   - Run the simulation headlessly")
	return nil
}

// checkExistingConfig reports whether init may write configPath.
func checkExistingConfig(w io.Writer, configPath string, opts InitOptions) (bool, error) {
	if _, err := os.Stat(configPath); err != nil || opts.Overwrite {
		return true, nil
	}

	if opts.NonInteractive {
		return false, errors.New(errors.ErrConfig,
			fmt.Sprintf("Config file already exists: %s", configPath),
			"Use --force to overwrite")
	}

	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Try running with --force to overwrite")
	}
	if !overwrite {
		fmt.Fprintln(w, "Cancelled.")
	}
	return overwrite, nil
}

// mergeInitOptions copies the explicitly set options onto cfg.
func mergeInitOptions(cfg *config.Config, opts InitOptions) {
	if opts.Model != "" {
		cfg.Vehicle.Model = opts.Model
	}
	if opts.Mileage >= 0 {
		cfg.Vehicle.Mileage = opts.Mileage
	}
	if opts.Interval > 0 {
		cfg.Simulation.Interval = opts.Interval
	}
	if opts.StatusTiming != "" {
		cfg.Simulation.StatusTiming = opts.StatusTiming
	}
}

func promptInitValues(cfg *config.Config) error {
	mileage := strconv.Itoa(cfg.Vehicle.Mileage)
	interval := cfg.Simulation.Interval.String()
	timing := cfg.Simulation.StatusTiming

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Vehicle model").
				Description("Shown in the dashboard header").
				Value(&cfg.Vehicle.Model).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("model is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Mileage (km)").
				Value(&mileage).
				Validate(validateMileage),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Tick interval").
				Description("How often the simulation may wear components, e.g. 3s or 500ms").
				Value(&interval).
				Validate(validateInterval),
			huh.NewSelect[string]().
				Title("Status timing").
				Description("fresh classifies after each round; lagged uses the previous round's health").
				Options(huh.NewOptions(string(sim.TimingFresh), string(sim.TimingLagged))...).
				Value(&timing),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}

	// Validators above already accepted these.
	cfg.Vehicle.Model = strings.TrimSpace(cfg.Vehicle.Model)
	cfg.Vehicle.Mileage, _ = strconv.Atoi(strings.TrimSpace(mileage))
	cfg.Simulation.Interval, _ = time.ParseDuration(strings.TrimSpace(interval))
	cfg.Simulation.StatusTiming = timing
	return nil
}

func validateMileage(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("mileage must be a whole number of km, 0 or more")
	}
	return nil
}

func validateInterval(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a duration: %s", s)
	}
	if d < config.MinInterval {
		return fmt.Errorf("interval must be at least %s", config.MinInterval)
	}
	return nil
}

func newInitDocument(cfg *config.Config) initDocument {
	return initDocument{
		Version: cfg.Version,
		Vehicle: cfg.Vehicle,
		Simulation: initSimulation{
			Interval:     cfg.Simulation.Interval.String(),
			Probability:  cfg.Simulation.Probability,
			StatusTiming: cfg.Simulation.StatusTiming,
			History:      cfg.Simulation.History,
		},
		Log:    cfg.Log,
		Output: cfg.Output,
	}
}

// initCommand is the implementation called by the cobra command. Prompts are
// skipped when stdin is not a terminal.
func initCommand(w io.Writer, opts InitOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		opts.NonInteractive = true
	}
	return Init(w, opts)
}
