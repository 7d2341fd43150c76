package toml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIRoot, cfg.APIRoot)
	assert.Equal(t, 30*time.Second, cfg.HealthInterval)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "10", cfg.DefaultBatchSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Path)
}

func TestLoadReadsDefaultConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	configPath := filepath.Join(homeDir, ".config", "mlp", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o700))
	require.NoError(t, os.WriteFile(configPath, []byte(strings.Join([]string{
		"version = 1",
		`api_root = "http://pipeline.internal:8080/api"`,
		`health_interval = "5s"`,
		`default_batch_size = "25"`,
		`log_level = "DEBUG"`,
		"",
	}, "\n")), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://pipeline.internal:8080/api", cfg.APIRoot)
	assert.Equal(t, 5*time.Second, cfg.HealthInterval)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "25", cfg.DefaultBatchSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, configPath, cfg.Path)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`api_root = "http://from-file/api"`+"\n"), 0o600))

	t.Setenv("HOME", t.TempDir())
	t.Setenv("MLP_API_ROOT", "http://from-env/api")
	t.Setenv("MLP_BATCH_SIZE", "50")
	t.Setenv("MLP_REQUEST_TIMEOUT", "2s")

	config := viper.New()
	config.Set(KeyConfigFile, configPath)

	cfg, err := Load(config)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env/api", cfg.APIRoot)
	assert.Equal(t, "50", cfg.DefaultBatchSize)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, configPath, cfg.Path)
}

func TestLoadExplicitValuesWin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MLP_API_ROOT", "http://from-env/api")

	config := viper.New()
	config.Set(KeyAPIRoot, "http://from-flag/api")

	cfg, err := Load(config)
	require.NoError(t, err)
	assert.Equal(t, "http://from-flag/api", cfg.APIRoot)
}

func TestLoadMissingExplicitFileReturnsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config := viper.New()
	config.Set(KeyConfigFile, filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load(config)
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config file")
}

func TestLoadRejectsInvalidDuration(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MLP_HEALTH_INTERVAL", "soon")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.ErrorContains(t, err, "health_interval must be a positive duration")
}

func TestLoadFutureSchemaVersionReturnsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("version = 999\n"), 0o600))

	config := viper.New()
	config.Set(KeyConfigFile, configPath)

	_, err := Load(config)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported config schema version")
}

func TestWriteDefaultCreatesVersionedFileWithPermissions(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, WriteDefault(configPath, false))

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "http://localhost:5000/api")
	assert.Contains(t, string(data), "30s")

	entries, err := os.ReadDir(filepath.Dir(configPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteDefaultRefusesOverwriteWithoutForce(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`api_root = "keep"`+"\n"), 0o600))

	err := WriteDefault(configPath, false)
	require.ErrorIs(t, err, ErrConfigExists)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, `api_root = "keep"`+"\n", string(data))

	require.NoError(t, WriteDefault(configPath, true))
	data, err = os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "localhost:5000")
}

func TestWrittenDefaultLoadsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(configPath, false))

	config := viper.New()
	config.Set(KeyConfigFile, configPath)

	cfg, err := Load(config)
	require.NoError(t, err)
	assert.Equal(t, Defaults().File(), cfg.File())
}
