package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/ui"
	"github.com/rileyhilliard/vitals/internal/vehicle"
)

// FormatTable prints the fixture as a terminal table.
const FormatTable = "table"

// fixtureCommand writes the samples from path (or the built-in fixture) in
// the requested format. Machine mode always emits a JSON envelope.
func fixtureCommand(w io.Writer, path, format string, asJSON bool) error {
	samples, err := loadSamples(path)
	if err != nil {
		return err
	}

	if asJSON {
		return WriteJSONSuccess(w, samples)
	}

	if strings.EqualFold(strings.TrimSpace(format), FormatTable) {
		_, err := fmt.Fprintln(w, ui.RenderFixtureTable(samples))
		return err
	}

	ff, err := vehicle.ParseFixtureFormat(format)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrFixture,
			"Unknown fixture format: "+format,
			"Use --format json, yaml or table")
	}
	data, err := vehicle.EncodeSamples(samples, ff)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrFixture, "Cannot encode fixture", "")
	}
	_, err = w.Write(data)
	return err
}

// loadSamples reads a fixture file, or returns the built-in fixture when
// path is empty. The format follows the file extension.
func loadSamples(path string) ([]vehicle.HistoricalSample, error) {
	if path == "" {
		return vehicle.HistoricalFixture(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFixture,
			"Cannot read fixture file: "+path,
			"Check the path passed to --fixture or --file")
	}

	format := vehicle.FormatJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = vehicle.FormatYAML
	}

	samples, err := vehicle.DecodeSamples(data, format)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFixture,
			"Cannot parse fixture file: "+path,
			"Expected a list of {date, temperature, vibration, rpm, anomaly} entries; see 'vitals fixture --format "+string(format)+"'")
	}
	return samples, nil
}
