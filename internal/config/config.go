// Package config handles loading and parsing the demo binary's
// configuration. The Catalogue core itself takes no configuration — this
// exists for cmd/bookstore and internal/stress, adapted from
// ASHISH26940-heliosdb/internal/config.Config's New()+Load(path) shape.
package config

import "github.com/BurntSushi/toml"

// Config holds the settings for the stress-demo binary.
type Config struct {
	SeedPath           string `toml:"seed_path"`             // path to a JSON seed file of StockBooks, empty to seed a small built-in default set
	StressWorkers      int    `toml:"stress_workers"`        // number of concurrent workers in the demo workload
	StressOpsPerWorker int    `toml:"stress_ops_per_worker"` // operations each worker issues
	DefaultEditorPicks int    `toml:"default_editor_picks"`  // k passed to GetEditorPicks by the demo
}

// New returns a Config populated with sane defaults.
func New() *Config {
	return &Config{
		SeedPath:           "",
		StressWorkers:      8,
		StressOpsPerWorker: 100,
		DefaultEditorPicks: 3,
	}
}

// Load reads a TOML configuration file from path, overwriting any field
// present in the file.
func (c *Config) Load(path string) error {
	_, err := toml.DecodeFile(path, c)
	return err
}
