package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/baamageddon/internal/level"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a level between .lev and .yaml",
	Long: `Read a level in one format and write it in the format named by the
output file's extension.

Examples:
  baa convert levels/valley.lev levels/valley.yaml
  baa convert levels/valley.yaml levels/valley.lev`,
	Args: cobra.ExactArgs(2),
	Run:  runConvert,
}

func runConvert(_ *cobra.Command, args []string) {
	in, out := args[0], args[1]

	lvl, err := level.Load(in, logger)
	if err != nil {
		fail("%v", err)
	}
	if err := level.Save(out, lvl); err != nil {
		fail("%v", err)
	}
	logger.Info("level converted",
		"from", filepath.Base(in),
		"to", filepath.Base(out),
		"objects", len(lvl.Objects),
	)
}
