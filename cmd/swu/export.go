package main

import (
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/swapunits/swapunits/internal/export"
)

var exportCategories []string

func init() {
	exportCmd.Flags().StringSliceVar(&exportCategories, "category", nil,
		"Category ids to export, or land/<region> (repeatable, default: all categories)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Export conversion matrices to an Excel workbook",
	Long: heredoc.Doc(`
		Write one worksheet per category holding the factor that converts
		one unit of each row into each column.`),
	Example: heredoc.Doc(`
		  swu export units.xlsx
		  swu export land.xlsx --category land/west-bengal --category land/punjab-haryana`),
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

// ExportResponse is the response for the export command.
type ExportResponse struct {
	Status string   `json:"status"`
	Path   string   `json:"path"`
	Sheets []string `json:"sheets"`
}

func runExport(cmd *cobra.Command, args []string) {
	path := args[0]

	cats, err := export.Resolve(exportCategories)
	exitOnError(err, "exporting")

	f, err := os.Create(path)
	if err != nil {
		exitWithError(ExitError, "creating %s: %v", path, err)
	}
	if err := export.WriteWorkbook(f, exportCategories); err != nil {
		f.Close()
		exitOnError(err, "writing workbook")
	}
	if err := f.Close(); err != nil {
		exitWithError(ExitError, "closing %s: %v", path, err)
	}

	sheets := make([]string, len(cats))
	for i, c := range cats {
		sheets[i] = export.SheetName(c.Name)
	}
	if humanOutput {
		outputHuman("Exported %d sheets to %s\n", len(sheets), path)
		return
	}
	outputJSON(ExportResponse{Status: "exported", Path: path, Sheets: sheets})
}
