// pong is a single-player Pong played in the terminal.
//
// Usage:
//
//	pong                 - Play pong
//	pong play <game>     - Play a registered variant
//	pong list            - List available variants
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.pong/config.yaml, ./configs/pong.yaml)
//	--backend <name>     - Terminal backend: tui or tcell
//	--sound              - Play tones on collisions
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-pong/internal/games/pong"
	_ "github.com/vovakirdan/tui-pong/internal/games/shell"
)

var (
	// Global flags
	flagConfig   string
	flagBackend  string
	flagSound    bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - keep the ball in play with your paddle",
	Long: `Pong is a single-player game: bounce the ball off the walls and keep it
from leaving through the left side with your paddle.

Controls:
  W/Up     - Paddle up
  S/Down   - Paddle down
  Esc      - Quit
  Q/Ctrl+C - Quit

Examples:
  pong
  pong --backend tcell --sound
  pong play shell
  pong list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return playGame(cmd, "pong")
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Terminal backend: tui or tcell (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play tones on collisions")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}
