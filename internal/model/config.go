package model

import "time"

// Config is the full application configuration. Everything here has a
// working default; the config file, JUSTICE_* environment variables and
// CLI flags override it in that order.
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Cache       CacheConfig       `yaml:"cache"`
	Output      OutputConfig      `yaml:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Rules       RulesConfig       `yaml:"rules"`
}

// Storage backend names accepted in StorageConfig.Backend.
const (
	StorageBackendFile   = "file"
	StorageBackendSQLite = "sqlite"
)

// StorageConfig selects and parameterizes the record store backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Dir     string `yaml:"dir"`     // file backend data directory (empty = default data dir)
	DSN     string `yaml:"dsn"`     // sqlite backend database path (empty = default data dir)
}

// CacheConfig controls the in-memory read cache in front of the store.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"`
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// OutputConfig controls presentation of analysis output.
type OutputConfig struct {
	Verbose           bool `yaml:"verbose"`
	Color             bool `yaml:"color"`
	IncludeDisclaimer bool `yaml:"include_disclaimer"`
}

// ConcurrencyConfig bounds the batch-analysis worker pool.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"` // 0 = number of CPUs
}

// RulesConfig points at an optional rule-table override file.
type RulesConfig struct {
	Path string `yaml:"path"` // empty = built-in tables
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: StorageBackendFile,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             5 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Output: OutputConfig{
			Color:             true,
			IncludeDisclaimer: true,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 0,
		},
	}
}
