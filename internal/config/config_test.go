package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, "clasificacion_proyectos.json", cfg.Paths.StoreFile)
	assert.Equal(t, "IPI", cfg.Report.SheetName)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ipi-config.yaml")
	raw := `
logging:
  level: debug
report:
  sheet_name: PARTES
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "PARTES", cfg.Report.SheetName)
	// Keys the file does not mention keep their defaults.
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "data", cfg.Paths.DataDir)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ipi-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644))

	t.Setenv("IPI_LOGGING_LEVEL", "warn")
	t.Setenv("IPI_PATHS_DATA_DIR", "/srv/timesheets")

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/srv/timesheets", cfg.Paths.DataDir)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ipi-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: ["), 0644))

	_, err := load(path)
	assert.Error(t, err)
}
