package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/logger"
	"github.com/rileyhilliard/vitals/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile     string
	verboseFlag bool
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "vitals",
	Short: "Vehicle health dashboard for the terminal",
	Long: `vitals shows a live vehicle health dashboard: brake, tire, battery and
engine panels that wear down on a simulated timer, plus a sensor analytics
chart with flagged anomalies.

Running vitals with no subcommand opens the dashboard.

Examples:
  vitals
  vitals snapshot --rounds 10
  vitals simulate --duration 30s
  vitals fixture --format yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd.Context(), "")
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: search for .vitals.yaml)")
	pf.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	pf.BoolVar(&machineMode, "json", false, "machine-readable JSON output")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		reportError(os.Stdout, os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err as a JSON envelope in machine mode, otherwise as
// the formatted error on stderr.
func reportError(stdout, stderr io.Writer, err error) {
	if MachineMode() {
		_ = WriteJSONFromError(stdout, err)
		return
	}
	fmt.Fprintln(stderr, err.Error())
}

// loadConfig finds, loads and validates the config, then applies the global
// flags on top of it.
func loadConfig() (*config.Config, error) {
	cfg, _, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	applyGlobalFlags(cfg)
	return cfg, nil
}

func applyGlobalFlags(cfg *config.Config) {
	if verboseFlag {
		cfg.Log.Level = "debug"
	}
	cfg.Output.Color = ui.ResolveColorMode(noColorFlag, cfg.Output.Color)
	ui.ApplyColorMode(cfg.Output.Color)
}

func newLogger(w io.Writer, cfg *config.Config, component string) logger.Logger {
	return logger.New(w, logger.Options{
		Component: component,
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
	})
}
