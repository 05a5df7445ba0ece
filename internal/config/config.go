// Package config handles tool configuration loading and management.
package config

// Config holds all uvshape tool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// OutputConfig holds mesh output settings.
type OutputConfig struct {
	// Precision is the number of decimal places written for coordinates.
	Precision int `yaml:"precision"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Output: OutputConfig{
			Precision: 6,
		},
	}
}
