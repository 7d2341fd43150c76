package toml

import "fmt"

const currentSchemaVersion = 1

// File is the on-disk shape of the config file. Durations are kept in
// their textual form ("30s") so the file stays hand-editable.
type File struct {
	Version          int    `toml:"version" json:"version" yaml:"version"`
	APIRoot          string `toml:"api_root" json:"api_root" yaml:"api_root"`
	HealthInterval   string `toml:"health_interval" json:"health_interval" yaml:"health_interval"`
	RequestTimeout   string `toml:"request_timeout" json:"request_timeout" yaml:"request_timeout"`
	DefaultBatchSize string `toml:"default_batch_size" json:"default_batch_size" yaml:"default_batch_size"`
	LogLevel         string `toml:"log_level" json:"log_level" yaml:"log_level"`
}

func (f *File) applyDefaults() {
	if f.Version == 0 {
		f.Version = currentSchemaVersion
	}
}

func validateVersion(version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", version, currentSchemaVersion)
	}

	return nil
}
