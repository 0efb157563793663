package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() is invalid: %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "partial file keeps defaults",
			yaml: "backend: tcell\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Backend != BackendTcell {
					t.Errorf("Backend = %q, expected tcell", cfg.Backend)
				}
				if cfg.Window.Title != "" || cfg.Input.KeyHold != 250*time.Millisecond {
					t.Errorf("defaults lost: %+v", cfg)
				}
			},
		},
		{
			name: "duration and nested fields",
			yaml: "input:\n  key_hold: 120ms\naudio:\n  enabled: true\nlog:\n  level: debug\n  file: \"-\"\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Input.KeyHold != 120*time.Millisecond {
					t.Errorf("KeyHold = %v, expected 120ms", cfg.Input.KeyHold)
				}
				if !cfg.Audio.Enabled {
					t.Error("Audio.Enabled should be true")
				}
				if cfg.LogPath() != "-" {
					t.Errorf("LogPath() = %q, expected \"-\"", cfg.LogPath())
				}
			},
		},
		{name: "unknown backend", yaml: "backend: sdl\n", wantErr: true},
		{name: "bad log level", yaml: "log:\n  level: loud\n", wantErr: true},
		{name: "zero key hold", yaml: "input:\n  key_hold: 0s\n", wantErr: true},
		{name: "malformed yaml", yaml: "backend: [tui\n", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.yaml))
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.check != nil {
				tc.check(t, cfg)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: Custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Window.Title != "Custom" {
		t.Errorf("Title = %q, expected \"Custom\"", cfg.Window.Title)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("backend: nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) should fail")
	}
	cfg, err := Load(bad)
	if err == nil {
		t.Error("Load(invalid) should fail")
	}
	if cfg != Default() {
		t.Error("a failed load should still return the defaults")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "pong.yaml"), []byte("window:\n  title: Local\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Window.Title != "Local" {
		t.Errorf("Title = %q, expected \"Local\"", cfg.Window.Title)
	}

	// User config wins over the local one
	if err := os.MkdirAll(filepath.Join(home, ".pong"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".pong", "config.yaml"), []byte("window:\n  title: User\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Window.Title != "User" {
		t.Errorf("Title = %q, expected \"User\"", cfg.Window.Title)
	}

	// A broken user config is skipped
	if err := os.WriteFile(filepath.Join(home, ".pong", "config.yaml"), []byte("backend: nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Window.Title != "Local" {
		t.Errorf("Title = %q, expected fallback to \"Local\"", cfg.Window.Title)
	}
}

func TestLogPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	if got, expected := cfg.LogPath(), filepath.Join(home, ".pong", "pong.log"); got != expected {
		t.Errorf("LogPath() = %q, expected %q", got, expected)
	}

	cfg.Log.File = "/tmp/x.log"
	if cfg.LogPath() != "/tmp/x.log" {
		t.Errorf("LogPath() = %q, expected the configured file", cfg.LogPath())
	}
}

func TestLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"
	if cfg.LogLevel().String() != "debug" {
		t.Errorf("LogLevel() = %v, expected debug", cfg.LogLevel())
	}
	cfg.Log.Level = "garbage"
	if cfg.LogLevel().String() != "info" {
		t.Errorf("LogLevel() = %v, expected info fallback", cfg.LogLevel())
	}
}
