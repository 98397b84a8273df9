package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/platform/cli"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
	flagResetHigh        bool
	flagClearHistory     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show finished games and the high score",
	Long: `Display the best finished games, highest first, and the stored high score.

Examples:
  match3 scores
  match3 scores --difficulty hard --limit 5
  match3 scores --reset-high`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show games of this difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagResetHigh, "reset-high", false, "Reset the high score to 0")
	scoresCmd.Flags().BoolVar(&flagClearHistory, "clear", false, "Delete the score history")
}

func runScores(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	ctx := cmd.Context()
	difficulty := ""
	if flagScoresDifficulty != "" {
		difficulty = config.NormalizeDifficulty(flagScoresDifficulty)
	}

	if flagResetHigh {
		if err := a.ctrl.ResetHighScore(ctx); err != nil {
			a.fail(err)
		}
		fmt.Println("High score reset.")
	}
	if flagClearHistory {
		if err := a.store.ClearScores(difficulty); err != nil {
			a.fail(err)
		}
		fmt.Println("Score history cleared.")
	}

	entries, err := a.store.TopScores(difficulty, flagScoresLimit)
	if err != nil {
		a.fail(err)
	}
	best, err := a.ctrl.HighScore(ctx)
	if err != nil {
		a.fail(err)
	}

	title := "High Scores"
	if difficulty != "" {
		title += " - " + difficulty
	}
	fmt.Println(title)
	fmt.Println()
	fmt.Println(cli.RenderScores(entries, best))

	st, err := a.store.ScoreStats(difficulty)
	if err != nil {
		a.logger.Warn("could not load stats", "error", err)
		return
	}
	if st.GamesCount > 0 {
		fmt.Printf("Games: %d  Average: %.0f  Last played: %s\n",
			st.GamesCount, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
