package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matchem-poker/internal/platform/tui"
	"github.com/vovakirdan/matchem-poker/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Pick a mode, resume a saved game or browse the high scores.

Each mode shows its best score and the furthest level reached. Modes with
a game in progress are marked [resume]. Esc on a game's title screen comes
back here.

Keys:
  up/down, j/k   choose a mode (or click it)
  enter, space   play
  tab            high scores
  q              quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

// runMenu loops between the picker, the scoreboard and games on the local
// terminal until the player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(false)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	cfg := terminalConfig()
	for {
		picked, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = picked.Config()

		switch picked.Choice() {
		case tui.MenuScores:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard", "err", err)
			}
			if !back {
				return nil
			}

		case tui.MenuPlay:
			id := picked.Mode()
			game, err := registry.Create(id)
			if err != nil {
				logger.Error("cannot start mode", "err", err)
				continue
			}
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			logger.Info("starting", "mode", id, "seed", cfg.Seed)
			if err := tui.Run(game, store, cfg); err != nil {
				logger.Error("game ended with error", "mode", id, "err", err)
			}

		default:
			return nil
		}
	}
}
