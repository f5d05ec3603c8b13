package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/baamageddon/internal/config"
	"github.com/vovakirdan/baamageddon/internal/games/baa"
	"github.com/vovakirdan/baamageddon/internal/level"
	"github.com/vovakirdan/baamageddon/internal/platform/tui"
	"github.com/vovakirdan/baamageddon/internal/registry"
)

var (
	flagLevel      string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Baamageddon",
	Long: `Start playing, on the built-in level or the one given by --level.

Controls:
  Left/Right, A/D  - Walk
  Space/Up/W       - Jump (hold for higher jumps and bush boosts)
  K                - Give up this life
  Tab/F1           - Collision overlay
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot to ~/.baa/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Wolves start slow and speed up as you score
  normal - Wolves start at 30% and speed up
  hard   - Wolves start at 70% and speed up
  fixed  - No progression, stays at config's initial level

Examples:
  baa play
  baa play --level levels/valley.lev
  baa play --difficulty hard --seed 42
  baa play --config ./my-baa.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level file (.lev or .yaml), built-in level if empty")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the collision overlay on")
}

// levelAndConfigDefaults applies BAA_LEVEL and BAA_CONFIG to unset flags.
func levelAndConfigDefaults(cmd *cobra.Command) {
	envDefault(cmd, "level", "BAA_LEVEL", &flagLevel)
	envDefault(cmd, "config", "BAA_CONFIG", &flagConfig)
}

func runPlay(cmd *cobra.Command, _ []string) {
	levelAndConfigDefaults(cmd)

	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			fail("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	configureGame()

	game, err := registry.Create(baa.ID)
	if err != nil {
		fail("%v", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	cfg.Debug = flagDebug
	if err := tui.Run(game, store, cfg, logger); err != nil {
		fail("%v", err)
	}
}

// configureGame hands the CLI settings to the game package and checks the
// level up front so problems reach the log, not only the HUD.
func configureGame() {
	baa.SetConfigPath(flagConfig)
	baa.SetDifficultyPreset(flagDifficulty)
	baa.SetLevelPath(flagLevel)

	if flagLevel == "" {
		return
	}
	lvl, err := level.Load(flagLevel, logger)
	if err == nil {
		err = lvl.Validate()
	}
	if err != nil {
		logger.Warn("level unusable, playing the built-in level", "path", flagLevel, "err", err)
		return
	}
	logger.Debug("level loaded", "path", flagLevel, "objects", len(lvl.Objects))
}
