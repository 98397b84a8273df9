// match3 is a match-three puzzle played one move per invocation, with game
// state kept in a local SQLite database between runs.
//
// Usage:
//
//	match3 new                 - Start a new game
//	match3 swap <r1> <c1> <r2> <c2> - Swap two adjacent tiles
//	match3 show                - Show the current board
//	match3 profiles            - List difficulty profiles
//	match3 scores              - Show finished games and the high score
//
// Global flags:
//
//	--session <id>     - Game session to act on (default: "default")
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Set database path (default: ~/.match3/match3.db)
//	--config <path>    - Custom match3.yaml
//	--log-level <lvl>  - debug, info, warn or error (default: warn)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/session"
)

var (
	// Global flags
	flagSession  string
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match3 - swap tiles, clear runs, chase the target score",
	Long: `Match3 is a match-three puzzle for the terminal. Each invocation plays
one move against a saved game, so it can be driven by hand or by scripts.

Swap two adjacent tiles to line up three or more of the same color. Cleared
tiles drop away, new ones fall in, and further runs chain for a bonus.
Reach the target score before running out of moves.

Available commands:
  new       - Start a new game
  swap      - Swap two adjacent tiles
  show      - Show the current board
  profiles  - List difficulty profiles
  scores    - Show finished games and the high score

Examples:
  match3 new --difficulty hard
  match3 swap 4 4 4 5
  match3 show --session alice
  match3 scores --limit 5`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSession, "session", session.DefaultID, "Game session ID")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/match3.db", "Path to game database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(scoresCmd)
}
