package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "wsize"

// Env holds the WSIZE_* environment overrides. Empty and zero values are
// not applied.
type Env struct {
	// Config replaces the config file path.
	Config   string `envconfig:"CONFIG"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	// DPI overrides dpi.monitor.
	DPI     int    `envconfig:"DPI"`
	Display string `envconfig:"DISPLAY"`
}

// ReadEnv reads the WSIZE_* variables.
func ReadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Env{}, fmt.Errorf("environment: %w", err)
	}
	return env, nil
}

// apply layers the overrides onto raw and records them as sources.
func (e Env) apply(raw RawConfig, sources map[string]Source) RawConfig {
	overlay := RawConfig{}
	if e.LogLevel != "" {
		level := e.LogLevel
		overlay.LogLevel = &level
		sources["log_level"] = Source{Kind: SourceEnv, Name: "WSIZE_LOG_LEVEL"}
	}
	if e.DPI != 0 {
		dpi := e.DPI
		overlay.DPI = &RawDPI{Monitor: &dpi}
		sources["dpi.monitor"] = Source{Kind: SourceEnv, Name: "WSIZE_DPI"}
	}
	if e.Display != "" {
		display := e.Display
		overlay.Display = &display
		sources["display"] = Source{Kind: SourceEnv, Name: "WSIZE_DISPLAY"}
	}
	return raw.merge(overlay)
}
