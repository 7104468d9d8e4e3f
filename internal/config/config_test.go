package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colibri-db/colibri/internal/config"
)

func TestConfig_DefaultValues(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, config.DefaultParallelThreshold, cfg.ParallelThreshold)
	assert.True(t, cfg.MaskCompaction)
	assert.False(t, cfg.VerboseLogging)
}

func TestConfig_Validation(t *testing.T) {
	tests := []struct {
		name          string
		config        config.Config
		expectedError string
	}{
		{
			name:          "valid config",
			config:        config.Config{ParallelThreshold: 500},
			expectedError: "",
		},
		{
			name:          "zero parallel threshold",
			config:        config.Config{ParallelThreshold: 0},
			expectedError: "ParallelThreshold must be positive, got 0",
		},
		{
			name:          "negative parallel threshold",
			config:        config.Config{ParallelThreshold: -1},
			expectedError: "ParallelThreshold must be positive, got -1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectedError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			}
		})
	}
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "parallel_threshold: 250\nmask_compaction: false\nverbose_logging: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.ParallelThreshold)
	assert.False(t, cfg.MaskCompaction)
	assert.True(t, cfg.VerboseLogging)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"parallel_threshold": 42, "mask_compaction": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.ParallelThreshold)
	assert.True(t, cfg.MaskCompaction)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o600))
	_, err = config.LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file extension")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("parallel_threshold: -5"), 0o600))
	_, err = config.LoadFromFile(bad)
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COLIBRI_PARALLEL_THRESHOLD", "77")
	t.Setenv("COLIBRI_MASK_COMPACTION", "false")
	t.Setenv("COLIBRI_VERBOSE_LOGGING", "true")

	cfg := config.LoadFromEnv()
	assert.Equal(t, 77, cfg.ParallelThreshold)
	assert.False(t, cfg.MaskCompaction)
	assert.True(t, cfg.VerboseLogging)
}

func TestLoadFromEnv_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("COLIBRI_PARALLEL_THRESHOLD", "not-a-number")
	t.Setenv("COLIBRI_MASK_COMPACTION", "maybe")

	cfg := config.LoadFromEnv()
	assert.Equal(t, config.DefaultParallelThreshold, cfg.ParallelThreshold)
	assert.True(t, cfg.MaskCompaction)
}

func TestGlobalConfig_SetAndGet(t *testing.T) {
	original := config.GetGlobalConfig()
	defer func() {
		require.NoError(t, config.SetGlobalConfig(original))
	}()

	updated := config.NewConfig()
	updated.ParallelThreshold = 123
	require.NoError(t, config.SetGlobalConfig(updated))
	assert.Equal(t, 123, config.GetGlobalConfig().ParallelThreshold)

	invalid := config.Config{ParallelThreshold: 0}
	assert.Error(t, config.SetGlobalConfig(invalid))
	assert.Equal(t, 123, config.GetGlobalConfig().ParallelThreshold)
}
