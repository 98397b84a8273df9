package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/platform/cli"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current board",
	Long: `Display the board, score and remaining moves of the session.
A session without a saved game gets a new one with the default difficulty.`,
	Args: cobra.NoArgs,
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	view, err := a.ctrl.State(cmd.Context(), flagSession)
	if err != nil {
		a.fail(err)
	}

	fmt.Println(cli.RenderView(view))
}
