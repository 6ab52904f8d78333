package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/matchem-poker/internal/registry"
	"github.com/vovakirdan/matchem-poker/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode (default "matchem").

Examples:
  matchem scores
  matchem scores matchem_kids --limit 20
  matchem scores --all
  matchem scores clear matchem_kids`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear [mode]",
	Short: "Delete every recorded score of a mode",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScoresClear,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every score instead of the top ones")
	scoresCmd.AddCommand(scoresClearCmd)
}

// modeArg returns the mode named on the command line, checked against the registry.
func modeArg(args []string) (registry.Game, error) {
	gameID := "matchem"
	if len(args) > 0 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'matchem list' to see modes)", err)
	}
	return game, nil
}

func runScores(_ *cobra.Command, args []string) error {
	game, err := modeArg(args)
	if err != nil {
		return err
	}
	gameID := game.ID()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	if len(scores) == 0 {
		fmt.Printf("No %s games recorded yet. Play 'matchem play %s' to set one.\n", game.Title(), gameID)
		return nil
	}

	// Scores run into the tens of thousands; group the digits.
	p := message.NewPrinter(language.English)

	t := newTable("#", "Score", "Level", "Date")
	for i, e := range scores {
		level := "-"
		if e.Level > 0 {
			level = p.Sprint(e.Level)
		}
		t.Row(p.Sprint(i+1), p.Sprintf("%d", e.Score), level, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println(headerStyle.Render(game.Title()))
	fmt.Println(t.Render())

	if st, err := store.Stats(gameID); err == nil {
		p.Printf("%d games, best %d, average %.0f, furthest level %d\n",
			st.GamesCount, st.HighScore, st.AvgScore, st.BestLevel)
	}
	return nil
}

func runScoresClear(_ *cobra.Command, args []string) error {
	game, err := modeArg(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if err := store.ClearScores(game.ID()); err != nil {
		return err
	}
	fmt.Printf("Cleared scores for %s\n", game.Title())
	return nil
}
