package cli

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/dashboard"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/logger"
	"github.com/rileyhilliard/vitals/internal/sim"
	"github.com/rileyhilliard/vitals/internal/vehicle"
	"golang.org/x/term"
)

// runDashboard opens the TUI, or prints a single frame when stdout is not a
// terminal.
func runDashboard(ctx context.Context, fixturePath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if MachineMode() || !term.IsTerminal(fd) {
		return snapshotCommand(os.Stdout, cfg, snapshotOptions{
			Width:   frameWidth(fd),
			Fixture: fixturePath,
			JSON:    MachineMode(),
		})
	}

	samples, err := loadSamples(fixturePath)
	if err != nil {
		return err
	}
	return runProgram(ctx, cfg, samples)
}

// frameWidth is the terminal width when it can be read, else the default.
func frameWidth(fd int) int {
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}
	return dashboard.DefaultWidth
}

func runProgram(ctx context.Context, cfg *config.Config, samples []vehicle.HistoricalSample) error {
	// The TUI owns the terminal, so logs go to log.file or nowhere.
	logOut, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open log file: "+cfg.Log.File,
			"Fix log.file in .vitals.yaml or leave it empty to discard dashboard logs")
	}
	defer logOut.Close()
	log := newLogger(logOut, cfg, "dashboard")

	engine := sim.NewEngine(append(cfg.EngineOptions(), sim.WithLogger(log))...)
	model := dashboard.NewModel(engine,
		dashboard.WithInterval(cfg.Simulation.Interval),
		dashboard.WithSamples(samples),
		dashboard.WithHistorySize(cfg.Simulation.History),
		dashboard.WithModelLogger(log),
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			// Interrupted by a signal
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrRender,
			"Dashboard exited with an error",
			"Set log.file and run with --verbose to capture details")
	}

	log.Info("dashboard closed after %d rounds", engine.Rounds())
	return nil
}
