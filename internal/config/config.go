// Package config loads mdrsort settings from environment variables, with an
// optional .env file, and validates them before a run starts.
package config

import "time"

// Config holds all settings. Every field can be set via environment variables.
type Config struct {
	Run     RunConfig
	Retry   RetryConfig
	Export  ExportConfig
	Logging LoggingConfig
}

// RunConfig holds the folder and file selection settings.
type RunConfig struct {
	// Dir is the folder to sort; a CLI argument takes precedence.
	Dir string `env:"MDRSORT_DIR"`

	// Ignore is a comma-separated list of gitignore-style patterns to skip.
	Ignore []string `env:"MDRSORT_IGNORE"`
}

// RetryConfig holds the lock-wait policy for splitting workbooks.
type RetryConfig struct {
	// Attempts is the total number of tries while a file is locked (default: 3)
	Attempts int `env:"MDRSORT_RETRY_ATTEMPTS" default:"3"`

	// Delay is the pause between tries (default: 2s)
	Delay time.Duration `env:"MDRSORT_RETRY_DELAY" default:"2s"`
}

// ExportConfig holds text export settings.
type ExportConfig struct {
	// Enabled turns the text export stage on (default: true)
	Enabled bool `env:"MDRSORT_EXPORT" default:"true"`

	// Encoding is the character encoding of .txt files (default: utf-8)
	Encoding string `env:"MDRSORT_EXPORT_ENCODING" default:"utf-8"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
