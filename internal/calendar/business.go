package calendar

import "github.com/swapunits/swapunits/internal/format"

// HoursPerWorkday is the workday length used for WorkHours.
const HoursPerWorkday = 8

// BusinessDays is a weekday count over a date range.
type BusinessDays struct {
	Count     int     `json:"count"`
	WorkHours int     `json:"work_hours"`
	WorkWeeks float64 `json:"work_weeks"`
}

// CountBusinessDays counts the Monday-to-Friday days from the earlier of the
// two dates up to, but not including, the later one. With includeEnd the
// later date is counted too when it is a weekday. Reversed ranges are swapped.
func CountBusinessDays(start, end Date, includeEnd bool) (BusinessDays, error) {
	if err := validate(start, end); err != nil {
		return BusinessDays{}, err
	}

	lo, hi := start.Ordinal(), end.Ordinal()
	if hi < lo {
		lo, hi = hi, lo
	}

	span := hi - lo
	count := span / 7 * 5
	for n := lo + span/7*7; n < hi; n++ {
		if !isWeekend(n) {
			count++
		}
	}
	if includeEnd && !isWeekend(hi) {
		count++
	}

	return BusinessDays{
		Count:     count,
		WorkHours: count * HoursPerWorkday,
		WorkWeeks: float64(count) / 5,
	}, nil
}

// WorkWeeksDisplay renders WorkWeeks to one decimal.
func (b BusinessDays) WorkWeeksDisplay() string {
	return format.Fixed(b.WorkWeeks, 1)
}
