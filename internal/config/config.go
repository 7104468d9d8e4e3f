// Package config provides configuration for the evaluation engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds the engine-wide evaluation settings.
type Config struct {
	// ParallelThreshold is the minimum row count at which the surrounding
	// engine may evaluate independent expression-tree nodes concurrently.
	// A single evaluation call is always synchronous.
	ParallelThreshold int `json:"parallel_threshold" yaml:"parallel_threshold"`
	// MaskCompaction run-compresses result masks after membership and
	// comparison evaluation.
	MaskCompaction bool `json:"mask_compaction" yaml:"mask_compaction"`
	// VerboseLogging emits per-evaluation debug lines with filtered row
	// counts.
	VerboseLogging bool `json:"verbose_logging" yaml:"verbose_logging"`
}

// DefaultParallelThreshold is the default row count gating concurrent
// evaluation in the surrounding engine.
const DefaultParallelThreshold = 1000

// Global configuration instance
var (
	globalConfig Config
	configMutex  sync.RWMutex
)

func init() {
	globalConfig = NewConfig()
}

// NewConfig creates a configuration with default values.
func NewConfig() Config {
	return Config{
		ParallelThreshold: DefaultParallelThreshold,
		MaskCompaction:    true,
		VerboseLogging:    false,
	}
}

// Validate returns an error when the configuration is invalid.
func (c *Config) Validate() error {
	if c.ParallelThreshold <= 0 {
		return fmt.Errorf("ParallelThreshold must be positive, got %d", c.ParallelThreshold)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML or JSON file, selected by
// extension, on top of the defaults.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := NewConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromEnv overlays COLIBRI_* environment variables on the defaults.
func LoadFromEnv() Config {
	cfg := NewConfig()
	if v, ok := os.LookupEnv("COLIBRI_PARALLEL_THRESHOLD"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ParallelThreshold = n
		}
	}
	if v, ok := os.LookupEnv("COLIBRI_MASK_COMPACTION"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.MaskCompaction = b
		}
	}
	if v, ok := os.LookupEnv("COLIBRI_VERBOSE_LOGGING"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.VerboseLogging = b
		}
	}
	return cfg
}

// GetGlobalConfig returns a copy of the process-global configuration.
func GetGlobalConfig() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// SetGlobalConfig replaces the process-global configuration.
func SetGlobalConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = cfg
	return nil
}
