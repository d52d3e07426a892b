package config

import (
	"os"
	"strconv"
	"time"
)

// Permission answers the local scheduler can give when a screen mounts
const (
	PermissionGranted = "granted"
	PermissionDenied  = "denied"
)

// Config holds all configuration options for the productivity tracker
type Config struct {
	Ledger        LedgerConfig
	Notifications NotificationsConfig
	Time          TimeConfig
	Input         InputConfig
	Application   ApplicationConfig
	Commands      CommandsConfig
}

// LedgerConfig holds the reminder ledger database settings.
// The ledger is the local scheduler's bookkeeping and is in-memory by default
type LedgerConfig struct {
	DSN          string        `env:"PT_LEDGER_DSN"`
	QueryTimeout time.Duration `env:"PT_LEDGER_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `env:"PT_LEDGER_WRITE_TIMEOUT"`
}

// NotificationsConfig holds local notification settings
type NotificationsConfig struct {
	Permission string `env:"PT_NOTIFY_PERMISSION"`
	Bell       bool   `env:"PT_NOTIFY_BELL"`
}

// TimeConfig holds time formatting configuration
type TimeConfig struct {
	DisplayFormat string `env:"PT_TIME_DISPLAY_FORMAT"`
	InputFormat   string `env:"PT_TIME_INPUT_FORMAT"`
}

// InputConfig holds text entry limits for the interactive screens
type InputConfig struct {
	MaxLength int `env:"PT_INPUT_MAX_LENGTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"PT_APP_TIMEOUT"`
	Verbose bool          `env:"PT_APP_VERBOSE"`
	LogFile string        `env:"PT_LOG_FILE"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	ReplayDefaultFormat string `env:"PT_REPLAY_DEFAULT_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Ledger: LedgerConfig{
			DSN:          ":memory:",
			QueryTimeout: 5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Notifications: NotificationsConfig{
			Permission: PermissionGranted,
			Bell:       true,
		},
		Time: TimeConfig{
			DisplayFormat: "2006-01-02 15:04",
			InputFormat:   "2006-01-02 15:04",
		},
		Input: InputConfig{
			MaxLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
			LogFile: "pt-debug.log",
		},
		Commands: CommandsConfig{
			ReplayDefaultFormat: "table",
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values leave the current setting untouched
func (c *Config) LoadFromEnvironment() error {
	if dsn := os.Getenv("PT_LEDGER_DSN"); dsn != "" {
		c.Ledger.DSN = dsn
	}
	if timeout := os.Getenv("PT_LEDGER_QUERY_TIMEOUT"); timeout != "" {
		c.Ledger.QueryTimeout = ParseDurationWithFallback(timeout, c.Ledger.QueryTimeout)
	}
	if timeout := os.Getenv("PT_LEDGER_WRITE_TIMEOUT"); timeout != "" {
		c.Ledger.WriteTimeout = ParseDurationWithFallback(timeout, c.Ledger.WriteTimeout)
	}

	if permission := os.Getenv("PT_NOTIFY_PERMISSION"); permission != "" {
		c.Notifications.Permission = permission
	}
	if bell := os.Getenv("PT_NOTIFY_BELL"); bell != "" {
		c.Notifications.Bell = ParseBoolWithFallback(bell, c.Notifications.Bell)
	}

	if format := os.Getenv("PT_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}
	if format := os.Getenv("PT_TIME_INPUT_FORMAT"); format != "" {
		c.Time.InputFormat = format
	}

	if maxLen := os.Getenv("PT_INPUT_MAX_LENGTH"); maxLen != "" {
		c.Input.MaxLength = ParseIntWithFallback(maxLen, c.Input.MaxLength)
	}

	if timeout := os.Getenv("PT_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("PT_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}
	if logFile := os.Getenv("PT_LOG_FILE"); logFile != "" {
		c.Application.LogFile = logFile
	}

	if format := os.Getenv("PT_REPLAY_DEFAULT_FORMAT"); format != "" {
		c.Commands.ReplayDefaultFormat = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Ledger.DSN == "" {
		return &ConfigError{Field: "ledger.dsn", Message: "ledger DSN cannot be empty"}
	}
	if c.Ledger.QueryTimeout <= 0 {
		return &ConfigError{Field: "ledger.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Ledger.WriteTimeout <= 0 {
		return &ConfigError{Field: "ledger.write_timeout", Message: "write timeout must be positive"}
	}

	switch c.Notifications.Permission {
	case PermissionGranted, PermissionDenied:
	default:
		return &ConfigError{Field: "notifications.permission", Message: "permission must be \"granted\" or \"denied\""}
	}

	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}
	if c.Time.InputFormat == "" {
		return &ConfigError{Field: "time.input_format", Message: "input format cannot be empty"}
	}

	if c.Input.MaxLength < 1 {
		return &ConfigError{Field: "input.max_length", Message: "input max length must be at least 1"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	switch c.Commands.ReplayDefaultFormat {
	case "table", "json", "csv":
	default:
		return &ConfigError{Field: "commands.replay_default_format", Message: "replay format must be \"table\", \"json\" or \"csv\""}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
