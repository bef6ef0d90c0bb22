package main

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/swapunits/swapunits/internal/format"
	"github.com/swapunits/swapunits/internal/land"
)

var (
	landValue string
	landFrom  string
)

func init() {
	landCmd.Flags().StringVar(&landValue, "value", "1", "Value to convert")
	landCmd.Flags().StringVar(&landFrom, "from", land.BaseUnitID, "Unit the value is given in")
	rootCmd.AddCommand(landCmd)
}

var landCmd = &cobra.Command{
	Use:   "land [region]",
	Short: "List land regions, or convert within one region",
	Long: heredoc.Doc(`
		List the regional Indian land measurement systems, or express a
		value in every unit of one region.`),
	Example: heredoc.Doc(`
		  swu land
		  swu land west-bengal --value 3 --from bigha
		  swu land punjab-haryana --value 1 --from acre --human`),
	Args: cobra.MaximumNArgs(1),
	Run:  runLand,
}

// RegionInfo is one entry of the region listing.
type RegionInfo struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Units int    `json:"units"`
}

// LandRow is one unit of a land conversion table.
type LandRow struct {
	Unit    string   `json:"unit"`
	Label   string   `json:"label"`
	Value   *float64 `json:"value"`
	Display string   `json:"display"`
}

// LandResponse is the response for a region conversion.
type LandResponse struct {
	Region string    `json:"region"`
	Value  float64   `json:"value"`
	From   string    `json:"from"`
	Rows   []LandRow `json:"rows"`
}

func runLand(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		regions := land.Regions()
		infos := make([]RegionInfo, len(regions))
		for i, r := range regions {
			infos[i] = RegionInfo{Slug: r.Slug, Name: r.Name, Units: len(r.Units)}
		}
		if humanOutput {
			for _, r := range infos {
				outputHuman("%-22s %s\n", r.Slug, r.Name)
			}
			return
		}
		outputJSON(infos)
		return
	}

	region, err := land.Lookup(args[0])
	exitOnError(err, "looking up region")

	value, err := parseValue(landValue)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	table, err := region.Table(value, landFrom)
	exitOnError(err, "converting")

	resp := LandResponse{Region: region.Slug, Value: value, From: landFrom}
	for _, row := range table {
		resp.Rows = append(resp.Rows, LandRow{
			Unit:    row.Unit.ID,
			Label:   row.Unit.DisplayLabel(),
			Value:   finite(row.Value),
			Display: format.FormatResult(row.Value),
		})
	}

	if humanOutput {
		outputHuman("%s %s in %s:\n", format.FormatResult(value), landFrom, region.Name)
		for _, r := range resp.Rows {
			outputHuman("  %-24s %s\n", r.Label, r.Display)
		}
		return
	}
	outputJSON(resp)
}
