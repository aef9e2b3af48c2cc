package config

import (
	"fmt"
	"strings"
)

// Log levels accepted by log_level.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// DPIConfig overrides the detected DPI. Zero means detect.
type DPIConfig struct {
	Monitor int `yaml:"monitor"`
	Window  int `yaml:"window"`
}

// ListConfig tunes the list command.
type ListConfig struct {
	// Width is the terminal width used when it cannot be detected. Zero
	// means detect, then 80.
	Width int `yaml:"width"`
}

// Config is the effective wsize configuration.
type Config struct {
	// Display is the X display to use when DISPLAY is unset.
	Display string `yaml:"display"`
	// XAuthority is the X authority file to use when XAUTHORITY is unset.
	XAuthority string `yaml:"xauthority"`
	LogLevel   string `yaml:"log_level"`

	// Adjust, Regex and FirstMatchOnly are the defaults for the move
	// command's -a, -r and -first flags.
	Adjust         bool `yaml:"adjust"`
	Regex          bool `yaml:"regex"`
	FirstMatchOnly bool `yaml:"first_match_only"`

	DPI  DPIConfig  `yaml:"dpi"`
	List ListConfig `yaml:"list"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: LogLevelWarn,
	}
}

// Validate checks the effective configuration.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}
	if c.DPI.Monitor < 0 {
		return &ValidationError{Path: "dpi.monitor", Err: fmt.Errorf("dpi.monitor must be >= 0")}
	}
	if c.DPI.Window < 0 {
		return &ValidationError{Path: "dpi.window", Err: fmt.Errorf("dpi.window must be >= 0")}
	}
	if c.List.Width < 0 {
		return &ValidationError{Path: "list.width", Err: fmt.Errorf("list.width must be >= 0")}
	}
	return nil
}
