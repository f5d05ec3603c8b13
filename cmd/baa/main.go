// baa is Baamageddon: a terminal platformer about a sheep, a lot of doughnuts
// and a few wolves, with a level editor.
//
// Usage:
//
//	baa play                 - Play the game
//	baa edit                 - Open the level editor
//	baa menu                 - Start menu (play / edit / scores)
//	baa list                 - List registered games
//	baa scores               - Show high scores
//	baa serve                - Start SSH server for remote play
//	baa levels [name]        - List stored level revisions
//	baa sweep <a> <b> <d>    - Run the collision tests on two boxes
//	baa convert <in> <out>   - Convert a level between .lev and .yaml
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.baa/scores.db, or $BAA_DB)
//	--verbose       - Log debug messages
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/baamageddon/internal/core"
	"github.com/vovakirdan/baamageddon/internal/storage"
)

const defaultDBPath = "~/.baa/scores.db"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "baa",
	})
)

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "baa",
	Short: "Baamageddon - a sheep platformer for your terminal",
	Long: `Baamageddon is a side-scrolling platformer played in the terminal.
Guide the sheep across floating islands, eat every doughnut, dodge spikes,
wolves and swinging blades, and reach the giant doughnut at the end.

Available commands:
  play     - Play the game
  edit     - Open the level editor
  menu     - Interactive menu
  scores   - View high scores
  serve    - Start SSH server for remote play
  levels   - List stored level revisions
  sweep    - Run the collision tests on two boxes
  convert  - Convert a level between formats

Environment:
  BAA_DB, BAA_LEVEL and BAA_CONFIG set the defaults of --db, --level and
  --config. A .env file in the working directory is read at startup.

Examples:
  baa play
  baa play --level levels/valley.lev --difficulty hard
  baa edit --level levels/valley.lev
  baa serve --ssh :2222`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		envDefault(cmd, "db", "BAA_DB", &flagDBPath)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(configCmd)
}

// envDefault fills target from the environment unless the flag was set.
func envDefault(cmd *cobra.Command, flag, env string, target *string) {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return
	}
	if v := os.Getenv(env); v != "" {
		*target = v
	}
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// runtimeConfig builds the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Failures are logged and play goes on
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
