package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/swapunits/swapunits/internal/config"
	"github.com/swapunits/swapunits/internal/site"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the page index from the site manifest",
	Long: `Rebuild the SQLite page index from the pages.jsonl manifest written
by "swu site generate".

Use this if the index is deleted or becomes corrupted.`,
	Args: cobra.NoArgs,
	Run:  runRebuild,
}

// RebuildResult is the response for the rebuild command.
type RebuildResult struct {
	Status string `json:"status"`
	Pages  int    `json:"pages"`
	Index  string `json:"index"`
}

func runRebuild(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()

	manifest := filepath.Join(config.ExpandPath(cfg.OutDir), site.ManifestFile)
	indexPath := cfg.ResolvedIndexPath()
	count, err := rebuildIndex(indexPath, manifest)
	if err != nil {
		exitWithError(ExitDataError, "rebuilding page index: %v", err)
	}

	if humanOutput {
		outputHuman("Rebuilt page index with %d pages\n", count)
		return
	}
	outputJSON(RebuildResult{Status: "rebuilt", Pages: count, Index: indexPath})
}
