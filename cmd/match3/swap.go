package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/platform/cli"
)

var flagJSON bool

var swapCmd = &cobra.Command{
	Use:   "swap <r1> <c1> <r2> <c2>",
	Short: "Swap two adjacent tiles",
	Long: `Swap the tile at (r1, c1) with the tile at (r2, c2) and resolve the
resulting chain. Rows and columns count from 0 at the top left.

A swap that lines up nothing is reverted and costs no move. If the session
has no game yet, one is started with the default difficulty first.

Examples:
  match3 swap 0 0 0 1
  match3 swap 3 4 4 4 --json`,
	Args: cobra.ExactArgs(4),
	Run:  runSwap,
}

func init() {
	swapCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the move result as JSON")
}

func runSwap(cmd *cobra.Command, args []string) {
	coords := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			fail(fmt.Errorf("coordinate %q is not a number", arg))
		}
		coords[i] = v
	}

	a := mustOpenApp()
	defer a.Close()

	res, err := a.ctrl.RequestSwap(cmd.Context(), flagSession, coords[0], coords[1], coords[2], coords[3])
	if err != nil {
		a.fail(err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			a.fail(err)
		}
		return
	}

	fmt.Println(cli.RenderMove(res))
}
