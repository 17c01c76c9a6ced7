// Package cli implements the vitals command-line interface.
//
// Each Cobra command is a thin wrapper: it loads and validates the config,
// then hands off to a command function that takes its writers and options
// explicitly so it can be exercised without a terminal.
//
// # Command Structure
//
// The root command is "vitals"; with no subcommand it opens the dashboard.
//
//	vitals dashboard    - Live TUI dashboard (one frame when not a TTY)
//	vitals snapshot     - Render a frame after N forced mutation rounds
//	vitals simulate     - Headless ticker, one line per round
//	vitals fixture      - Print the historical sensor fixture
//	vitals init         - Write a starter .vitals.yaml
//	vitals version      - Build information
//	vitals completion   - Shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color, --json) are defined on the
// root command. --verbose raises the log level to debug, --no-color wins over
// output.color, and --json switches results and errors to the
// {success, data, error} envelope.
//
// # Logging
//
// The dashboard owns the terminal, so its logs go to log.file (discarded
// when unset). simulate logs to stderr so stdout stays a clean stream of
// rounds.
package cli
