package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform"
	"github.com/vovakirdan/tui-pong/internal/platform/tcell"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game variant.

Examples:
  pong play pong
  pong play shell --backend tcell`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return playGame(cmd, args[0])
	},
}

// playGame resolves the configuration and runs one session. Once the session
// starts, failures are logged and the command still succeeds.
func playGame(cmd *cobra.Command, gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'pong list' to see available games", gameID)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg, err = applyFlags(cfg, flagBackend, flagSound, flagLogLevel)
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	factory, err := backendFactory(cfg, logger)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	sound := newSound(cfg, logger)
	defer sound.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	params := pong.DefaultParams()
	s := session.New(factory(cfg.Input.KeyHold), game, session.Config{
		Title:         surfaceTitle(cfg, game),
		X:             cfg.Window.X,
		Y:             cfg.Window.Y,
		Width:         pong.FieldWidth,
		Height:        pong.FieldHeight,
		FrameInterval: params.FrameInterval,
		MaxDelta:      params.MaxDelta,
		Logger:        logger,
		Sound:         sound,
	})

	logger.Info("starting", "game", gameID, "backend", cfg.Backend)
	s.Run(ctx)
	if hint := startupHint(s.Reason(), cfg); hint != "" {
		fmt.Fprintln(os.Stderr, hint)
	}
	return nil
}

// surfaceTitle prefers the configured window title over the game's own.
func surfaceTitle(cfg config.Config, game registry.Game) string {
	if cfg.Window.Title != "" {
		return cfg.Window.Title
	}
	return game.Title()
}

// startupHint explains a session that never reached its loop.
func startupHint(reason session.StopReason, cfg config.Config) string {
	if reason != session.StopInitFailed {
		return ""
	}
	return fmt.Sprintf("pong: could not start the %s backend, see %s", cfg.Backend, cfg.LogPath())
}

// applyFlags overrides cfg with explicitly set command-line flags.
func applyFlags(cfg config.Config, backend string, sound bool, level string) (config.Config, error) {
	if backend != "" {
		cfg.Backend = backend
	}
	if sound {
		cfg.Audio.Enabled = true
	}
	if level != "" {
		cfg.Log.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// backendFactory picks the platform backend named in cfg.
func backendFactory(cfg config.Config, logger *log.Logger) (platform.Factory, error) {
	switch cfg.Backend {
	case config.BackendTUI:
		opts := []tui.Option{tui.WithLogger(logger)}
		if dir := config.Dir(); dir != "" {
			opts = append(opts, tui.WithScreenshotDir(filepath.Join(dir, "screenshots")))
		}
		return tui.Factory(opts...), nil
	case config.BackendTcell:
		return tcell.Factory(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// newSound opens the speaker when audio is enabled. Without a working
// speaker the game runs silently.
func newSound(cfg config.Config, logger *log.Logger) *audio.Player {
	if !cfg.Audio.Enabled {
		return audio.Nop()
	}
	p, err := audio.NewSpeakerPlayer()
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return audio.Nop()
	}
	return p
}
