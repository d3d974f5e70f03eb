package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/caltrack/internal/catalog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.False(t, cfg.Reminder.Enabled)
	assert.Len(t, cfg.Reminder.Workdays, 7)

	cat, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Len(t, cat.All(), 2)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
storage:
  backend: File
  path: /tmp/caltrack-test/activities.json
categories:
  - id: 3
    name: Snack
    kind: consumption
  - id: 4
    name: Yoga
    kind: expenditure
reminder:
  enabled: true
  time: "19:30"
  workdays: [monday, TUE, " wed "]
  timezone: UTC
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/caltrack-test/activities.json", cfg.Storage.Path)
	assert.True(t, cfg.Reminder.Enabled)
	assert.Equal(t, "19:30", cfg.Reminder.Time)
	assert.Equal(t, []string{"Mon", "Tue", "Wed"}, cfg.Reminder.Workdays)
	assert.Equal(t, "UTC", cfg.Location().String())

	cat, err := cfg.Catalog()
	require.NoError(t, err)
	yoga, ok := cat.Find(4)
	require.True(t, ok)
	assert.Equal(t, catalog.KindExpenditure, yoga.Kind)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	_, err := Load(writeConfig(t, "storage:\n  backend: redis\n"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CALTRACK_STORAGE_BACKEND", "file")
	t.Setenv("CALTRACK_LOG_LEVEL", "warn")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestCatalogRejectsClash(t *testing.T) {
	cfg := Default()
	cfg.Categories = []catalog.Category{{ID: 2, Name: "Dup", Kind: catalog.KindConsumption}}
	_, err := cfg.Catalog()
	assert.Error(t, err)
}

func TestLocationFallsBackToLocal(t *testing.T) {
	cfg := Default()
	cfg.Reminder.Timezone = "Not/AZone"
	assert.Equal(t, "Local", cfg.Location().String())
}
