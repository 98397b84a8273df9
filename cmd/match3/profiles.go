package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/platform/cli"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List difficulty profiles",
	Long:  `Shows the difficulty profiles from the active configuration.`,
	Args:  cobra.NoArgs,
	Run:   runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		fail(err)
	}
	rules, err := match3.RulesFromConfig(cfg)
	if err != nil {
		fail(err)
	}

	fmt.Println("Difficulty profiles:")
	fmt.Println()
	fmt.Println(cli.RenderProfiles(rules.Profiles.List(), rules.DefaultProfile))
	fmt.Println()
	fmt.Println("Run 'match3 new --difficulty <name>' to start a game.")
}
