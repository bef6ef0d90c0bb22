package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MakeNowJust/heredoc"
	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swapunits/swapunits/internal/config"
	"github.com/swapunits/swapunits/internal/site"
	"github.com/swapunits/swapunits/internal/storage"
)

var siteOut string

func init() {
	siteGenerateCmd.Flags().StringVar(&siteOut, "out", "", "Output directory (default: out_dir from config)")
	siteCmd.AddCommand(siteGenerateCmd)
	rootCmd.AddCommand(siteCmd)
}

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Build the static converter site",
}

var siteGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate every page, the sitemaps and the page index",
	Long: heredoc.Doc(`
		Generate the static site: the home page, one page per category,
		one page per unit pair, the land hub and region pages, sitemap.html and
		sitemap.xml. A pages.jsonl manifest is written next to the pages and the
		search index is rebuilt from it.

		Set precompress to write a .gz sibling for every file.`),
	Args: cobra.NoArgs,
	Run:  runSiteGenerate,
}

// GenerateResponse is the response for site generate.
type GenerateResponse struct {
	Status  string `json:"status"`
	Out     string `json:"out"`
	Pages   int    `json:"pages"`
	Files   int    `json:"files"`
	Bytes   int64  `json:"bytes"`
	Indexed int    `json:"indexed"`
	Index   string `json:"index"`
}

func runSiteGenerate(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := mustLogger(cfg)
	defer logger.Sync()

	out := siteOut
	if out == "" {
		out = config.ExpandPath(cfg.OutDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := &site.Generator{Config: cfg, Logger: logger}
	manifest, err := gen.Generate(ctx, out)
	exitOnError(err, "generating site")

	indexPath := cfg.ResolvedIndexPath()
	if siteOut != "" && cfg.IndexPath == "" {
		indexPath = filepath.Join(siteOut, "pages.db")
	}
	indexed, err := rebuildIndex(indexPath, filepath.Join(out, site.ManifestFile))
	exitOnError(err, "rebuilding index")
	logger.Info("index rebuilt", zap.String("path", indexPath), zap.Int("pages", indexed))

	if humanOutput {
		outputHuman("Generated %d pages (%d files, %s) in %s\n",
			len(manifest.Pages), manifest.Files, humanize.Bytes(uint64(manifest.Bytes)), out)
		outputHuman("Indexed %d pages in %s\n", indexed, indexPath)
		return
	}
	outputJSON(GenerateResponse{
		Status:  "generated",
		Out:     out,
		Pages:   len(manifest.Pages),
		Files:   manifest.Files,
		Bytes:   manifest.Bytes,
		Indexed: indexed,
		Index:   indexPath,
	})
}

// rebuildIndex replaces the SQLite page index with the manifest contents.
func rebuildIndex(indexPath, manifestPath string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(indexPath), 0755); err != nil {
		return 0, err
	}
	db, err := storage.OpenDB(indexPath)
	if err != nil {
		return 0, err
	}
	defer db.Close()
	return db.RebuildFromJSONL(manifestPath)
}
