package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "carball.cfg.json"), []byte(contents), 0644))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, `{}`)

	require.NoError(t, Load(dir))

	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, "./carballlogs", GetString("logsDir"))
	assert.Equal(t, 500.0, GetFloat64("detector.acceptanceDistance"))
	assert.Equal(t, 250.0, GetFloat64("detector.strictDistance"))
	assert.Equal(t, "memory", GetString("storage.type"))
	assert.False(t, GetBool("influx.enabled"))
	assert.False(t, GetBool("graylog.enabled"))
	assert.Equal(t, "localhost:12201", GetString("graylog.address"))
	assert.Equal(t, "carball", GetString("db.database"))
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, `{
		"logLevel": "debug",
		"detector": {"acceptanceDistance": 450},
		"storage": {"type": "sqlite"},
		"db": {"sqlitePath": "/tmp/test.db"}
	}`)

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", GetString("logLevel"))
	assert.Equal(t, 450.0, GetFloat64("detector.acceptanceDistance"))
	assert.Equal(t, "sqlite", GetString("storage.type"))
	assert.Equal(t, "/tmp/test.db", GetString("db.sqlitePath"))
	// Untouched keys keep their defaults.
	assert.Equal(t, 250.0, GetFloat64("detector.strictDistance"))
}

func TestLoad_MissingFileErrorsButDefaultsApply(t *testing.T) {
	viper.Reset()

	err := Load(t.TempDir())
	assert.Error(t, err)

	// Callers continue with defaults on load failure.
	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, "memory", GetString("storage.type"))
}

func TestStorage(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, `{
		"storage": {
			"type": "memory",
			"memory": {"outputDir": "/var/hits", "compressOutput": true}
		}
	}`)

	require.NoError(t, Load(dir))

	cfg := Storage()
	assert.Equal(t, "memory", cfg.Type)
	assert.Equal(t, "/var/hits", cfg.Memory.OutputDir)
	assert.True(t, cfg.Memory.CompressOutput)
}

func TestAcceptanceOverrides(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, `{
		"detector": {"acceptance": {"cube": 650.5, "puck": 300}}
	}`)

	require.NoError(t, Load(dir))

	overrides := AcceptanceOverrides()
	assert.Equal(t, 650.5, overrides["cube"])
	assert.Equal(t, 300.0, overrides["puck"])
	assert.Len(t, overrides, 2)
}

func TestAcceptanceOverrides_EmptyByDefault(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, `{}`)

	require.NoError(t, Load(dir))
	assert.Empty(t, AcceptanceOverrides())
}
