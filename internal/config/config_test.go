package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/limaJavier/routine/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	//** Arrange
	t.Chdir(t.TempDir())

	//** Act
	cfg, err := Load(NewViper(""))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, DefaultFile, cfg.Catalog)
	assert.Equal(t, model.DefaultDays, cfg.Days)
	assert.Equal(t, model.DefaultPeriods, cfg.Periods)
	assert.Equal(t, model.DefaultStartTime, cfg.StartTime)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, LogConfig{Level: "info", Format: "console"}, cfg.Log)

	grid, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, "08:30-09:30", grid.Slots[0])
}

func TestLoadFileAndEnvironment(t *testing.T) {
	//** Arrange
	path := filepath.Join(t.TempDir(), "routine.yaml")
	document := `
days: [Saturday, Sunday]
periods: 2
start_time: "13:00"
format: pdf
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(document), 0666))
	t.Setenv("ROUTINE_SEED", "42")
	t.Setenv("ROUTINE_OUTPUT", "weekend.pdf")

	//** Act
	cfg, err := Load(NewViper(path))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"Saturday", "Sunday"}, cfg.Days)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "weekend.pdf", cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)

	grid, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, []string{"01:00-02:00", "02:00-03:00"}, grid.Slots)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	scenarios := map[string]string{
		"unknown format": "format: xlsx\n",
		"empty days":     "days: []\n",
		"unknown log":    "log:\n  format: xml\n",
		"unknown level":  "log:\n  level: loud\n",
	}

	for name, document := range scenarios {
		path := filepath.Join(t.TempDir(), "routine.yaml")
		require.NoError(t, os.WriteFile(path, []byte(document), 0666))

		_, err := Load(NewViper(path))

		assert.Error(t, err, name)
	}
}

func TestGridUsesExplicitSlots(t *testing.T) {
	cfg := Config{Days: []string{"Monday"}, Periods: 0, TimeSlots: []string{"morning", "afternoon"}}

	grid, err := cfg.Grid()

	require.NoError(t, err)
	assert.Equal(t, []string{"morning", "afternoon"}, grid.Slots)
}

func TestGridPropagatesTypedErrors(t *testing.T) {
	_, err := Config{Days: []string{"Monday"}, Periods: 0, StartTime: "08:30"}.Grid()
	assert.ErrorAs(t, err, &model.InvalidPeriodCountError{})

	_, err = Config{Days: []string{"Monday"}, Periods: 3, StartTime: "8:xx"}.Grid()
	assert.ErrorAs(t, err, &model.InvalidTimeFormatError{})
}
