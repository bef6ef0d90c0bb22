package calendar

import (
	"fmt"
	"strings"

	"github.com/swapunits/swapunits/internal/format"
)

// DaysPerYear is the mean Gregorian year used for fractional-year displays.
const DaysPerYear = 365.2425

// DurationResult is the elapsed time between two dates.
type DurationResult struct {
	TotalDays int `json:"total_days"`

	// Calendar breakdown.
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`

	SameDay bool `json:"same_day"`

	TotalSeconds    int64   `json:"total_seconds"`
	TotalMinutes    int64   `json:"total_minutes"`
	TotalHours      int64   `json:"total_hours"`
	Weeks           int     `json:"weeks"`
	RemainderDays   int     `json:"remainder_days"`
	FractionalYears float64 `json:"fractional_years"`
}

// ComputeDuration measures the span between start and end in either order.
// With includeEnd the end day itself is counted, so a same-day range is one day.
func ComputeDuration(start, end Date, includeEnd bool) (DurationResult, error) {
	if err := validate(start, end); err != nil {
		return DurationResult{}, err
	}

	total := end.Ordinal() - start.Ordinal()
	if total < 0 {
		total = -total
	}
	if includeEnd {
		total++
	}

	d1, d2 := start, end
	if d2.Before(d1) {
		d1, d2 = d2, d1
	}
	if includeEnd {
		d2 = d2.AddDays(1)
	}

	years := d2.Year - d1.Year
	months := d2.Month - d1.Month
	days := d2.Day - d1.Day
	if days < 0 {
		// Borrow the month before d2. A start day past that month's end
		// (Jan 31 against February) is clamped to it.
		months--
		prev := Normalize(d2.Year, d2.Month, 0).Day
		days = d2.Day + max(prev-d1.Day, 0)
	}
	if months < 0 {
		years--
		months += 12
	}

	return DurationResult{
		TotalDays:       total,
		Years:           years,
		Months:          months,
		Days:            days,
		SameDay:         years == 0 && months == 0 && days == 0,
		TotalSeconds:    int64(total) * 86400,
		TotalMinutes:    int64(total) * 1440,
		TotalHours:      int64(total) * 24,
		Weeks:           total / 7,
		RemainderDays:   total % 7,
		FractionalYears: float64(total) / DaysPerYear,
	}, nil
}

// Breakdown renders the non-zero calendar components, e.g. "1 years, 2 days",
// or "Same day" when all are zero.
func (r DurationResult) Breakdown() string {
	var parts []string
	if r.Years > 0 {
		parts = append(parts, fmt.Sprintf("%d years", r.Years))
	}
	if r.Months > 0 {
		parts = append(parts, fmt.Sprintf("%d months", r.Months))
	}
	if r.Days > 0 {
		parts = append(parts, fmt.Sprintf("%d days", r.Days))
	}
	if len(parts) == 0 {
		return "Same day"
	}
	return strings.Join(parts, ", ")
}

// WeeksDisplay renders whole weeks plus leftover days, e.g. "52 weeks + 1 days".
func (r DurationResult) WeeksDisplay() string {
	if r.Weeks == 0 {
		return "0 weeks"
	}
	s := fmt.Sprintf("%d weeks", r.Weeks)
	if r.RemainderDays > 0 {
		s += fmt.Sprintf(" + %d days", r.RemainderDays)
	}
	return s
}

// YearsDisplay renders spans of a year or more as "1.00 total years" and
// shorter spans as a percentage of a year.
func (r DurationResult) YearsDisplay() string {
	if r.FractionalYears >= 1 {
		return format.Fixed(r.FractionalYears, 2) + " total years"
	}
	return format.Fixed(r.FractionalYears*100, 2) + "% of a year"
}
