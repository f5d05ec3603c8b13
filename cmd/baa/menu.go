package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/baamageddon/internal/games/baa"
	"github.com/vovakirdan/baamageddon/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start an interactive menu to play, edit the level or browse high scores.

Controls:
  Up/Down or W/S or J/K  - Navigate
  Enter/Space            - Select
  Tab                    - High scores
  Esc/B                  - Back to menu (from a game or the editor)
  Q/Ctrl+C               - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagLevel, "level", "", "Level file to play and edit")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(cmd *cobra.Command, _ []string) {
	levelAndConfigDefaults(cmd)
	configureGame()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.SessionOptions{
		Title:     baa.Title,
		GameID:    baa.ID,
		Store:     store,
		Logger:    logger,
		NewEditor: openEditor,
	}
	if err := tui.RunSession(opts, runtimeConfig()); err != nil {
		fail("%v", err)
	}
}
