package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cobrien706/mysterions/internal/core"
	"github.com/cobrien706/mysterions/internal/games/mysterions"
	"github.com/cobrien706/mysterions/internal/platform/tui"
	"github.com/cobrien706/mysterions/internal/registry"
	"github.com/cobrien706/mysterions/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  WASD/Arrows - Move
  P           - Pause
  C           - Continue after game over (refills lives, keeps score)
  N           - New game after game over
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Fewer, slower pursuers; extra lives
  normal - Default balance, progresses with your score
  hard   - More, faster pursuers; fewer lives
  fixed  - No progression, stays at config's initial level

Examples:
  mysterions play
  mysterions play --difficulty easy
  mysterions play --seed 42
  mysterions play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Terminal size, falling back to a sane default
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	mysterions.SetConfigPath(flagConfig)
	mysterions.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create("mysterions")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
