// Package config loads the YAML platform configuration: which backend to
// open, where to log, how keys are held and whether to play sound.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Backend names accepted in the config file and on the command line.
const (
	BackendTUI   = "tui"
	BackendTcell = "tcell"
)

// Config is the complete platform configuration.
type Config struct {
	Backend string       `yaml:"backend"`
	Log     LogConfig    `yaml:"log"`
	Window  WindowConfig `yaml:"window"`
	Input   InputConfig  `yaml:"input"`
	Audio   AudioConfig  `yaml:"audio"`
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty uses the default log path, "-" is stderr
}

// WindowConfig is passed to the backend when the surface is created.
type WindowConfig struct {
	Title string `yaml:"title"` // Empty uses the game title
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
}

// InputConfig tunes held-key emulation for terminal backends.
type InputConfig struct {
	KeyHold time.Duration `yaml:"key_hold"`
}

// AudioConfig toggles contact tones.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendTUI, BackendTcell:
	default:
		return fmt.Errorf("config: unknown backend %q (want %s or %s)", c.Backend, BackendTUI, BackendTcell)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	if c.Input.KeyHold <= 0 {
		return fmt.Errorf("config: input.key_hold must be positive, got %s", c.Input.KeyHold)
	}
	return nil
}

// LogLevel returns the parsed log level, or info if it does not parse.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
