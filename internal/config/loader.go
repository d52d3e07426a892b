package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	envFiles []string
}

// NewLoader creates a new configuration loader reading ./.env when present
func NewLoader() *Loader {
	return &Loader{
		config:   NewConfig(),
		envFiles: []string{".env"},
	}
}

// WithEnvFiles replaces the dotenv files consulted by Load
func (l *Loader) WithEnvFiles(files ...string) *Loader {
	l.envFiles = files
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Fill the process environment from dotenv files (existing variables win)
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadEnvFiles(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) loadEnvFiles() error {
	for _, file := range l.envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	LedgerDSN          *string
	LedgerQueryTimeout *time.Duration
	LedgerWriteTimeout *time.Duration

	NotifyPermission *string
	NotifyBell       *bool

	TimeDisplayFormat *string
	TimeInputFormat   *string

	InputMaxLength *int

	Timeout *time.Duration
	Verbose *bool
	LogFile *string

	ReplayDefaultFormat *string
}

// Apply applies the non-nil overrides to config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.LedgerDSN != nil {
		config.Ledger.DSN = *o.LedgerDSN
	}
	if o.LedgerQueryTimeout != nil {
		config.Ledger.QueryTimeout = *o.LedgerQueryTimeout
	}
	if o.LedgerWriteTimeout != nil {
		config.Ledger.WriteTimeout = *o.LedgerWriteTimeout
	}

	if o.NotifyPermission != nil {
		config.Notifications.Permission = *o.NotifyPermission
	}
	if o.NotifyBell != nil {
		config.Notifications.Bell = *o.NotifyBell
	}

	if o.TimeDisplayFormat != nil {
		config.Time.DisplayFormat = *o.TimeDisplayFormat
	}
	if o.TimeInputFormat != nil {
		config.Time.InputFormat = *o.TimeInputFormat
	}

	if o.InputMaxLength != nil {
		config.Input.MaxLength = *o.InputMaxLength
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
	if o.LogFile != nil {
		config.Application.LogFile = *o.LogFile
	}

	if o.ReplayDefaultFormat != nil {
		config.Commands.ReplayDefaultFormat = *o.ReplayDefaultFormat
	}
}
