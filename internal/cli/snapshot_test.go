package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/dashboard"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededConfig(seed uint64) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Simulation.Seed = seed
	return cfg
}

func TestSnapshotCommand_InitialFrame(t *testing.T) {
	var buf bytes.Buffer
	err := snapshotCommand(&buf, config.DefaultConfig(), snapshotOptions{Width: dashboard.DefaultWidth})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Tesla Model S")
	assert.Contains(t, out, "34,567 km")
	assert.Contains(t, out, "Brake Pad Life")
	assert.Contains(t, out, "72%")
	assert.Contains(t, out, "Apr▲")
}

func TestSnapshotCommand_SeededRoundsAreReproducible(t *testing.T) {
	render := func() string {
		var buf bytes.Buffer
		require.NoError(t, snapshotCommand(&buf, seededConfig(42), snapshotOptions{Rounds: 5, Width: 90}))
		return buf.String()
	}
	assert.Equal(t, render(), render())
}

func TestSnapshotCommand_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := snapshotCommand(&buf, seededConfig(7), snapshotOptions{Rounds: 5, JSON: true})
	require.NoError(t, err)

	env := decodeEnvelope(t, &buf)
	require.True(t, env.Success)
	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), data["rounds"])
	assert.Contains(t, []interface{}{"good", "warning", "critical"}, data["status"])

	state := data["state"].(map[string]interface{})
	health := state["health"].(map[string]interface{})
	veh := state["vehicle"].(map[string]interface{})
	assert.LessOrEqual(t, health["brake_pad_life"].(float64), 72.0)
	assert.GreaterOrEqual(t, veh["mileage"].(float64), 34567.0)

	derived := data["derived"].(map[string]interface{})
	assert.Contains(t, derived, "brake_anomaly")
	assert.Contains(t, derived, "tread_percent")
}

func TestSnapshotCommand_ZeroRoundsJSONMatchesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Health.OilQuality = 30

	var buf bytes.Buffer
	require.NoError(t, snapshotCommand(&buf, cfg, snapshotOptions{JSON: true}))

	data := decodeEnvelope(t, &buf).Data.(map[string]interface{})
	assert.Equal(t, "warning", data["status"])
	derived := data["derived"].(map[string]interface{})
	assert.Equal(t, true, derived["engine_vibration_abnormal"])
	assert.Equal(t, false, derived["brake_anomaly"])
}

func TestSnapshotCommand_NegativeRounds(t *testing.T) {
	var buf bytes.Buffer
	err := snapshotCommand(&buf, config.DefaultConfig(), snapshotOptions{Rounds: -1})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSim))
	assert.Empty(t, buf.String())
}

func TestSnapshotCommand_MissingFixture(t *testing.T) {
	var buf bytes.Buffer
	err := snapshotCommand(&buf, config.DefaultConfig(), snapshotOptions{
		Fixture: filepath.Join(t.TempDir(), "nope.json"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrFixture))
}
