package cli

import (
	"time"

	"github.com/rileyhilliard/vitals/internal/dashboard"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	dashboardFixtureFlag string
	snapshotRoundsFlag   int
	snapshotWidthFlag    int
	snapshotFixtureFlag  string
	simulateDuration     time.Duration
	simulateInterval     time.Duration
	fixtureFormatFlag    string
	fixtureFileFlag      string
	initForce            bool
	initNonInteractive   bool
	initModelFlag        string
	initMileageFlag      int
	initIntervalFlag     time.Duration
	initTimingFlag       string
)

// dashboardCmd opens the interactive dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the live vehicle health dashboard",
	Long: `Open the full-screen vehicle health dashboard.

Component health wears down on a timer while the dashboard is open. When
stdout is not a terminal, a single frame is printed instead.

Keys:
  q / ctrl+c  quit
  p           pause or resume the simulation
  r           run one mutation round now
  ?           toggle help

Examples:
  vitals dashboard
  vitals dashboard --fixture sensors.yaml
  vitals dashboard | less -R`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd.Context(), dashboardFixtureFlag)
	},
}

// snapshotCmd renders the dashboard after a fixed number of rounds
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render one dashboard frame after N mutation rounds",
	Long: `Apply a number of mutation rounds headlessly and print the resulting
dashboard frame. With --json, prints the vehicle state instead.

Set simulation.seed in .vitals.yaml for reproducible output.

Examples:
  vitals snapshot
  vitals snapshot --rounds 25 --width 160
  vitals snapshot --rounds 10 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return snapshotCommand(cmd.OutOrStdout(), cfg, snapshotOptions{
			Rounds:  snapshotRoundsFlag,
			Width:   snapshotWidthFlag,
			Fixture: snapshotFixtureFlag,
			JSON:    MachineMode(),
		})
	},
}

// simulateCmd runs the ticker without a UI
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the wear simulation headlessly",
	Long: `Run the timer-driven wear simulation without the dashboard, printing one
line per mutation round. Stops after --duration, or on Ctrl+C when no
duration is given. Logs go to stderr.

Examples:
  vitals simulate --duration 30s
  vitals simulate --interval 200ms --duration 5s
  vitals simulate --json --duration 1m > rounds.jsonl`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return simulateCommand(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, simulateOptions{
			Duration: simulateDuration,
			Interval: simulateInterval,
			JSON:     MachineMode(),
		})
	},
}

// fixtureCmd prints the historical sensor fixture
var fixtureCmd = &cobra.Command{
	Use:   "fixture",
	Short: "Print the historical sensor fixture",
	Long: `Print the historical sensor samples that feed the analytics chart.

Use --file to read (and convert) a fixture of your own. Files ending in
.yaml or .yml are read as YAML, anything else as JSON.

Examples:
  vitals fixture
  vitals fixture --format yaml
  vitals fixture --format table
  vitals fixture --file sensors.json --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fixtureCommand(cmd.OutOrStdout(), fixtureFileFlag, fixtureFormatFlag, MachineMode())
	},
}

// initCmd writes a starter .vitals.yaml
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .vitals.yaml config in the current directory",
	Long: `Create a .vitals.yaml configuration file in the current directory.

Prompts for the vehicle and simulation settings. Flags pre-fill the prompts,
or skip them entirely with --non-interactive.

Examples:
  vitals init
  vitals init --model "Rivian R1T" --mileage 1200
  vitals init --non-interactive --interval 1s --status-timing lagged`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(cmd.OutOrStdout(), InitOptions{
			Dir:            ".",
			Model:          initModelFlag,
			Mileage:        initMileageFlag,
			Interval:       initIntervalFlag,
			StatusTiming:   initTimingFlag,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
		})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for vitals.

Examples:
  # Bash
  vitals completion bash > /etc/bash_completion.d/vitals

  # Zsh
  vitals completion zsh > "${fpath[1]}/_vitals"

  # Fish
  vitals completion fish > ~/.config/fish/completions/vitals.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// dashboard command flags
	dashboardCmd.Flags().StringVar(&dashboardFixtureFlag, "fixture", "", "sensor fixture file (json or yaml)")

	// snapshot command flags
	snapshotCmd.Flags().IntVarP(&snapshotRoundsFlag, "rounds", "n", 0, "mutation rounds to apply before rendering")
	snapshotCmd.Flags().IntVar(&snapshotWidthFlag, "width", dashboard.DefaultWidth, "frame width in columns")
	snapshotCmd.Flags().StringVar(&snapshotFixtureFlag, "fixture", "", "sensor fixture file (json or yaml)")

	// simulate command flags
	simulateCmd.Flags().DurationVarP(&simulateDuration, "duration", "d", 0, "stop after this long (default: run until interrupted)")
	simulateCmd.Flags().DurationVar(&simulateInterval, "interval", 0, "override simulation.interval")

	// fixture command flags
	fixtureCmd.Flags().StringVarP(&fixtureFormatFlag, "format", "f", "json", "output format: json, yaml or table")
	fixtureCmd.Flags().StringVar(&fixtureFileFlag, "file", "", "read samples from this file instead of the built-in fixture")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts, use flags and defaults")
	initCmd.Flags().StringVar(&initModelFlag, "model", "", "vehicle model")
	initCmd.Flags().IntVar(&initMileageFlag, "mileage", -1, "starting mileage in km")
	initCmd.Flags().DurationVar(&initIntervalFlag, "interval", 0, "simulation tick interval")
	initCmd.Flags().StringVar(&initTimingFlag, "status-timing", "", "fresh or lagged")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(fixtureCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
