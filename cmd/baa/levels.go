package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/baamageddon/internal/level"
	"github.com/vovakirdan/baamageddon/internal/storage"
)

var (
	flagRestore   string
	flagLevelsDir string
)

var levelsCmd = &cobra.Command{
	Use:   "levels [name]",
	Short: "List stored level revisions",
	Long: `Every save in the editor also stores a revision of the level in the
scores database. Without a name, lists the level files under --dir and the
levels that have revisions; with a name, lists that level's revisions, newest
first.

Examples:
  baa levels
  baa levels valley
  baa levels valley --restore levels/valley.lev`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagRestore, "restore", "", "Write the newest revision to this file")
	levelsCmd.Flags().StringVar(&flagLevelsDir, "dir", "levels", "Directory of level files to list")
}

func runLevels(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		listLevelFiles(flagLevelsDir)

		names, err := store.LevelNames()
		if err != nil {
			fail("%v", err)
		}
		if len(names) == 0 {
			fmt.Println("No level revisions stored yet. Save a level in 'baa edit' first.")
			return
		}
		fmt.Println("Stored revisions:")
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	name := args[0]
	if flagRestore != "" {
		restore(store, name, flagRestore)
		return
	}

	revs, err := store.LevelRevisions(name)
	if err != nil {
		fail("%v", err)
	}
	if len(revs) == 0 {
		fail("no revisions for level %q", name)
	}

	fmt.Printf("Revisions - %s\n\n", name)
	fmt.Printf("  %-36s  %-16s  %-7s  %s\n", "ID", "Checksum", "Objects", "Date")
	for _, rev := range revs {
		fmt.Printf("  %-36s  %-16s  %-7d  %s\n", rev.ID, rev.Checksum, rev.Objects, rev.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func restore(store *storage.Store, name, path string) {
	rev, err := store.LatestLevel(name)
	if errors.Is(err, storage.ErrLevelNotFound) {
		fail("no revisions for level %q", name)
	}
	if err != nil {
		fail("%v", err)
	}
	if err := os.WriteFile(path, rev.Content, 0o644); err != nil {
		fail("writing %s: %v", path, err)
	}
	logger.Info("level restored", "level", name, "revision", rev.ID, "path", path)
}

func listLevelFiles(dir string) {
	if _, err := os.Stat(dir); err != nil {
		logger.Debug("no level directory", "dir", dir)
		return
	}
	levels, err := level.NewLoader(dir, logger).LoadAll()
	if err != nil {
		fail("%v", err)
	}
	if len(levels) == 0 {
		return
	}

	fmt.Printf("Level files in %s:\n", dir)
	for _, lvl := range levels {
		status := "ok"
		if err := lvl.Validate(); err != nil {
			status = err.Error()
		}
		fmt.Printf("  %-16s  %-7d  %-28s  %s\n", lvl.Name, len(lvl.Objects), lvl.Path, status)
	}
	fmt.Println()
}
