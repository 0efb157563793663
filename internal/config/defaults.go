package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pong.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/pong.yaml.
func Default() Config {
	return Config{
		Backend: BackendTUI,
		Log: LogConfig{
			Level: "info",
		},
		Window: WindowConfig{
			Title: "",
			X:     100,
			Y:     100,
		},
		Input: InputConfig{
			KeyHold: 250 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled: false,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
