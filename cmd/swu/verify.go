package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/swapunits/swapunits/internal/verify"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the conversion tables for consistency",
	Long: `Check every category and land region with self and round-trip
conversions, then compare against published reference values.

Exits with status 3 when any check fails.`,
	Args: cobra.NoArgs,
	Run:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) {
	report := verify.Run()

	if humanOutput {
		for _, c := range report.Categories {
			outputHuman("%-28s %d/%d\n", c.Category, c.Passed, c.Checks)
		}
		for _, f := range report.Failures {
			outputHuman("FAIL %s\n", f)
		}
		outputHuman("%d/%d checks passed\n", report.Passed, report.Total)
	} else {
		outputJSON(report)
	}

	if !report.OK() {
		os.Exit(ExitDataError)
	}
}
