package main

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/swapunits/swapunits/internal/calendar"
	"github.com/swapunits/swapunits/internal/config"
)

var (
	includeEnd    bool
	shiftYears    int
	shiftMonths   int
	shiftWeeks    int
	shiftDays     int
	shiftSubtract bool
)

func init() {
	durationCmd.Flags().BoolVar(&includeEnd, "include-end", false, "Count the end date as a whole day")
	bizdaysCmd.Flags().BoolVar(&includeEnd, "include-end", false, "Count the end date when it is a weekday")

	shiftCmd.Flags().IntVar(&shiftYears, "years", 0, "Years to add or subtract")
	shiftCmd.Flags().IntVar(&shiftMonths, "months", 0, "Months to add or subtract")
	shiftCmd.Flags().IntVar(&shiftWeeks, "weeks", 0, "Weeks to add or subtract")
	shiftCmd.Flags().IntVar(&shiftDays, "days", 0, "Days to add or subtract")
	shiftCmd.Flags().BoolVar(&shiftSubtract, "subtract", false, "Move backward in time")

	rootCmd.AddCommand(durationCmd)
	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(bizdaysCmd)
}

var durationCmd = &cobra.Command{
	Use:   "duration <start> <end>",
	Short: "Measure the time between two dates",
	Long: `Measure the time between two dates as a day count and a
year/month/day breakdown.

Dates are YYYY-MM-DD or free-form ("March 2, 2024", "03/02/2024").
Ambiguous numeric dates are read month first unless day_first is set.`,
	Args: cobra.ExactArgs(2),
	Run:  runDuration,
}

var shiftCmd = &cobra.Command{
	Use:   "shift <start>",
	Short: "Add or subtract years, months, weeks and days",
	Long: heredoc.Doc(`
		Shift a date by an offset. Years apply first, then months, then
		weeks and days; overflowing days roll into the next month.`),
	Example: heredoc.Doc(`
		  swu shift 2024-01-31 --months 1          # 2024-03-02
		  swu shift 2024-03-15 --weeks 2 --subtract`),
	Args: cobra.ExactArgs(1),
	Run:  runShift,
}

var bizdaysCmd = &cobra.Command{
	Use:   "bizdays <start> <end>",
	Short: "Count Monday-to-Friday days between two dates",
	Args:  cobra.ExactArgs(2),
	Run:   runBizdays,
}

// DurationResponse is the response for the duration command.
type DurationResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	calendar.DurationResult
	Summary   string `json:"breakdown"`
	YearsText string `json:"years_display"`
}

// ShiftResponse is the response for the shift command.
type ShiftResponse struct {
	Start string `json:"start"`
	Date  string `json:"date"`
	Long  string `json:"long"`
	Label string `json:"label"`
}

// BizdaysResponse is the response for the bizdays command.
type BizdaysResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	calendar.BusinessDays
}

// parseDate reads a date using the configured day-first preference.
func parseDate(cfg *config.Config, s string) (calendar.Date, error) {
	if cfg.DayFirst {
		return calendar.ParseDayFirst(s)
	}
	return calendar.Parse(s)
}

func mustParseDates(cfg *config.Config, args ...string) []calendar.Date {
	dates := make([]calendar.Date, len(args))
	for i, s := range args {
		d, err := parseDate(cfg, s)
		exitOnError(err, "parsing date")
		dates[i] = d
	}
	return dates
}

func runDuration(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	dates := mustParseDates(cfg, args...)

	r, err := calendar.ComputeDuration(dates[0], dates[1], includeEnd)
	exitOnError(err, "computing duration")

	if humanOutput {
		outputHuman("%d days\n", r.TotalDays)
		outputHuman("%s\n", r.Breakdown())
		outputHuman("%s\n", r.WeeksDisplay())
		outputHuman("%d hours, %d minutes, %d seconds\n", r.TotalHours, r.TotalMinutes, r.TotalSeconds)
		outputHuman("%s\n", r.YearsDisplay())
		return
	}
	outputJSON(DurationResponse{
		Start:          dates[0].String(),
		End:            dates[1].String(),
		DurationResult: r,
		Summary:        r.Breakdown(),
		YearsText:      r.YearsDisplay(),
	})
}

func runShift(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	start := mustParseDates(cfg, args[0])[0]

	spec := calendar.ShiftSpec{
		Years:  shiftYears,
		Months: shiftMonths,
		Weeks:  shiftWeeks,
		Days:   shiftDays,
	}
	if shiftSubtract {
		spec.Direction = calendar.Subtract
	}

	r, err := calendar.ShiftDate(start, spec)
	exitOnError(err, "shifting date")

	long := calendar.Format(r.Date, calendar.LongLayout, cfg.Locale)
	if humanOutput {
		outputHuman("%s\n%s\n", long, r.Label)
		return
	}
	outputJSON(ShiftResponse{
		Start: start.String(),
		Date:  r.Date.String(),
		Long:  long,
		Label: r.Label,
	})
}

func runBizdays(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	dates := mustParseDates(cfg, args...)

	b, err := calendar.CountBusinessDays(dates[0], dates[1], includeEnd)
	exitOnError(err, "counting business days")

	if humanOutput {
		outputHuman("%d business days\n", b.Count)
		outputHuman("%d work hours (%d h/day)\n", b.WorkHours, calendar.HoursPerWorkday)
		outputHuman("%s work weeks\n", b.WorkWeeksDisplay())
		return
	}
	outputJSON(BizdaysResponse{
		Start:        dates[0].String(),
		End:          dates[1].String(),
		BusinessDays: b,
	})
}
