package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/platform/cli"
	"github.com/vovakirdan/match3/internal/session"
)

var (
	flagDifficulty string
	flagGenerateID bool
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new game",
	Long: `Start a fresh game in the session, replacing any game stored there.

Difficulty options:
  tutorial - 500 points in 99 moves
  easy     - 1000 points in 30 moves
  normal   - 1500 points in 20 moves
  hard     - 2000 points in 15 moves

Unknown difficulties fall back to the configured default.

Examples:
  match3 new
  match3 new --difficulty hard
  match3 new --generate-id`,
	Args: cobra.NoArgs,
	Run:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty profile (default from config)")
	newCmd.Flags().BoolVar(&flagGenerateID, "generate-id", false, "Start the game under a new random session ID")
}

func runNew(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	id := flagSession
	if flagGenerateID {
		id = session.NewID()
	}

	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = a.rules.DefaultProfile
	}

	view, err := a.ctrl.NewGame(cmd.Context(), id, difficulty)
	if err != nil {
		a.fail(err)
	}

	fmt.Println(cli.RenderView(view))
	if flagGenerateID {
		fmt.Println()
		fmt.Printf("Continue with 'match3 swap --session %s <r1> <c1> <r2> <c2>'\n", id)
	}
}
