package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/baamageddon/internal/config"
	"github.com/vovakirdan/baamageddon/internal/editor"
	"github.com/vovakirdan/baamageddon/internal/level"
	"github.com/vovakirdan/baamageddon/internal/platform/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the level editor",
	Long: `Edit the level file given by --level. A file that does not exist yet
starts as a copy of the built-in level and is created on the first save.

Controls:
  Left click       - Add or select an object of the current mode
  Left drag        - Move the selected object
  1-4              - Change the dragged object's sprite
  Right click / X  - Delete the object under the cursor
  Space/Tab        - Next object mode
  Arrows/WASD      - Scroll
  +/-, wheel       - Zoom
  Ctrl+S           - Save (also stored as a revision in the database)
  H                - Help overlay
  Q/Esc            - Quit

Examples:
  baa edit
  baa edit --level levels/valley.yaml`,
	Args: cobra.NoArgs,
	Run:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagLevel, "level", "", "Level file to edit (default levels/<name>.lev)")
	editCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runEdit(cmd *cobra.Command, _ []string) {
	levelAndConfigDefaults(cmd)

	ed, err := openEditor()
	if err != nil {
		fail("%v", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunEditor(ed, store, runtimeConfig(), logger); err != nil {
		fail("%v", err)
	}
}

// openEditor loads the level named by the flags, or starts a new one from the
// built-in level when the file does not exist.
func openEditor() (*editor.Editor, error) {
	cfg, err := config.LoadBaa(flagConfig)
	if err != nil {
		return nil, err
	}

	path := flagLevel
	if path == "" {
		path = filepath.Join("levels", level.DefaultName+".lev")
	}

	lvl, err := level.Load(path, logger)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		lvl = level.Default()
		lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		logger.Info("new level", "path", path)
	case err != nil:
		return nil, fmt.Errorf("cannot open level: %w", err)
	}
	lvl.Path = path
	return editor.New(cfg, lvl, path, logger), nil
}
