package main

import (
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/swapunits/swapunits/internal/storage"
)

var (
	searchLimit    int
	searchCategory string
)

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum results to return")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "List the pages of one category instead of searching")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the generated pages",
	Long: heredoc.Doc(`
		Search the page index built by "swu site generate".

		Matches page paths, titles, keywords and categories. Queries containing
		punctuation such as "meter-to-foot" are matched as a phrase.`),
	Example: heredoc.Doc(`
		  swu search fahrenheit
		  swu search "katha sq ft" --limit 5
		  swu search --category temperature`),
	Args: cobra.MaximumNArgs(1),
	Run:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) {
	if len(args) == 0 && searchCategory == "" {
		exitWithError(ExitError, "a query or --category is required")
	}

	cfg := mustLoadConfig()
	indexPath := cfg.ResolvedIndexPath()
	if _, err := os.Stat(indexPath); err != nil {
		exitWithError(ExitDataError, "page index not found at %s: run 'swu site generate' first", indexPath)
	}
	db, err := storage.OpenDB(indexPath)
	if err != nil {
		exitWithError(ExitDataError, "opening page index: %v", err)
	}
	defer db.Close()

	var pages []storage.Page
	if searchCategory != "" {
		pages, err = db.ListByCategory(searchCategory, searchLimit)
	} else {
		pages, err = db.Search(args[0], searchLimit)
	}
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}
	if pages == nil {
		pages = []storage.Page{}
	}

	if humanOutput {
		if len(pages) == 0 {
			outputHuman("No pages found\n")
			return
		}
		for _, p := range pages {
			outputHuman("%-48s %s\n", p.Path, p.Title)
		}
		return
	}
	outputJSON(pages)
}
