// matchem is Matchem Poker for the terminal: swap cards on a grid to
// build poker hands before the timer runs out.
//
// Usage:
//
//	matchem list              - List game modes
//	matchem play [mode]       - Play (default mode: matchem)
//	matchem menu              - Pick a mode interactively
//	matchem serve             - Start SSH server for remote play
//	matchem scores [mode]     - Show high scores
//	matchem saves             - List or delete saved games
//	matchem simulate          - Run a seeded game headless and print its hash
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.matchem/scores.db)
//	--config <path>     - Custom game config YAML
//	--preset <name>     - Difficulty preset: kids, normal
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/matchem-poker/internal/games/matchem"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagLogFile  string

	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matchem",
	Short: "Matchem Poker - make poker hands in your terminal",
	Long: `Matchem Poker is a card matching game: swap neighbouring cards on
the grid so that rows and columns form poker hands. Every hand adds
time and score; the next level is dealt when the time bar fills up.

Available commands:
  list      - Show game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  saves     - Manage saved games
  simulate  - Headless seeded run

Examples:
  matchem play
  matchem play matchem_kids
  matchem menu --preset kids
  matchem serve --ssh :2222
  matchem simulate --seed 42 --frames 3600`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		matchem.SetConfigPath(flagConfig)
		matchem.SetDifficultyPreset(flagPreset)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.matchem/scores.db", "Path to scores and saves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: kids, normal")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the process logger. Interactive commands own the
// terminal, so without --log-file they log nowhere unless toStderr is set.
func newLogger(toStderr bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case toStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "matchem",
		ReportTimestamp: true,
	})
	matchem.SetLogger(logger)
	return logger, nil
}
