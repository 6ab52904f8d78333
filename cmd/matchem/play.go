package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/matchem-poker/internal/core"
	"github.com/vovakirdan/matchem-poker/internal/platform/tui"
	"github.com/vovakirdan/matchem-poker/internal/registry"
	"github.com/vovakirdan/matchem-poker/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Matchem Poker",
	Long: `Start playing. The mode defaults to "matchem"; "matchem_kids" lets
any two cards swap and runs a slower timer.

A game left on pause or interrupted with Q is saved and offered again
the next time you play the same mode.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Pick a card, or press the highlighted button
  Mouse        - Click or drag cards directly
  P            - Pause / resume
  Esc/B        - Pause, or end the game from the pause screen
  I            - How to play (title screen)
  R            - Restart (paused or game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Save and quit

Examples:
  matchem play
  matchem play matchem_kids
  matchem play --preset kids --seed 7
  matchem play --config ./my-matchem.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "matchem"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'matchem list' to see modes)", err)
	}

	logger, err := newLogger(false)
	if err != nil {
		return err
	}

	cfg := terminalConfig()

	store := openStore()
	defer closeStore(store)

	logger.Info("starting", "mode", gameID, "seed", cfg.Seed, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// terminalConfig sizes the runtime to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the database or returns nil, so the game still runs
// without scores or saves.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
