package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/swapunits/swapunits/internal/format"
	"github.com/swapunits/swapunits/internal/units"
)

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(quickrefCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <category> <value> <from> <to>",
	Short: "Convert a value between two units",
	Long: heredoc.Doc(`
		Convert a value between two units of one category.

		Thousands separators in the value are ignored. Run "swu units <category>"
		to list the unit ids of a category.`),
	Example: heredoc.Doc(`
		  swu convert length 1 meter mile
		  swu convert temperature 100 celsius fahrenheit
		  swu convert area 1,500 sqfoot sqmeter`),
	Args: cobra.ExactArgs(4),
	Run:  runConvert,
}

var unitsCmd = &cobra.Command{
	Use:   "units [category]",
	Short: "List categories, or the units of one category",
	Args:  cobra.MaximumNArgs(1),
	Run:   runUnits,
}

var quickrefCmd = &cobra.Command{
	Use:   "quickref <category>",
	Short: "Show one base unit expressed in the next units of a category",
	Args:  cobra.ExactArgs(1),
	Run:   runQuickref,
}

// ConvertResult is the response for the convert command.
type ConvertResult struct {
	Category string   `json:"category"`
	Value    float64  `json:"value"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Result   *float64 `json:"result"` // null when the result is undefined or overflows
	Display  string   `json:"display"`
}

// CategoryInfo is one entry of the units listing.
type CategoryInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Units int    `json:"units"`
}

// parseValue parses a user-supplied number, ignoring thousands separators.
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

func runConvert(cmd *cobra.Command, args []string) {
	categoryID, fromID, toID := args[0], args[2], args[3]
	value, err := parseValue(args[1])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	exitOnError(units.CheckUnits(categoryID, fromID, toID), "converting")

	res := newConvertResult(categoryID, value, fromID, toID)

	if humanOutput {
		locale := mustLoadConfig().Locale
		outputHuman("%s %s = %s %s\n", format.Localized(value, locale), fromID,
			format.Localized(units.Convert(categoryID, value, fromID, toID), locale), toID)
		return
	}
	outputJSON(res)
}

// newConvertResult converts value and fills in the response.
func newConvertResult(categoryID string, value float64, fromID, toID string) ConvertResult {
	result := units.Convert(categoryID, value, fromID, toID)
	return ConvertResult{
		Category: categoryID,
		Value:    value,
		From:     fromID,
		To:       toID,
		Result:   finite(result),
		Display:  format.FormatResult(result),
	}
}

func runUnits(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		cats := units.Categories()
		infos := make([]CategoryInfo, len(cats))
		for i, c := range cats {
			infos[i] = CategoryInfo{ID: c.ID, Name: c.Name, Units: len(c.Units)}
		}
		if humanOutput {
			for _, c := range infos {
				outputHuman("%-12s %-12s %d units\n", c.ID, c.Name, c.Units)
			}
			return
		}
		outputJSON(infos)
		return
	}

	refs := units.ListUnits(args[0])
	if refs == nil {
		exitWithError(ExitDataError, "%v: %q", units.ErrUnknownCategory, args[0])
	}
	if humanOutput {
		for _, r := range refs {
			outputHuman("%-14s %s\n", r.ID, r.Label)
		}
		return
	}
	outputJSON(refs)
}

func runQuickref(cmd *cobra.Command, args []string) {
	c, ok := units.Lookup(args[0])
	if !ok {
		exitWithError(ExitDataError, "%v: %q", units.ErrUnknownCategory, args[0])
	}
	refs := c.QuickReference()

	if humanOutput {
		locale := mustLoadConfig().Locale
		outputHuman("1 %s =\n", c.Base().Label)
		for _, r := range refs {
			outputHuman("  %s %s\n", format.Localized(r.Value, locale), r.Label)
		}
		return
	}
	outputJSON(refs)
}
