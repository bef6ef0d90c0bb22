// Package calendar implements day-precision calendar arithmetic over the
// proleptic Gregorian calendar: elapsed durations with a year/month/day
// breakdown, date shifting, and business-day counting.
//
// All arithmetic goes through a day ordinal (days since 1970-01-01), so
// field overflow such as month 13 or day 0 normalizes the same way everywhere.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a day/month/year combination does not name
// a real calendar day.
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar day.
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// NewDate validates and returns the date. Day 31 in a 30-day month and
// Feb 29 outside leap years are rejected.
func NewDate(day, month, year int) (Date, error) {
	d := Date{Day: day, Month: month, Year: year}
	if !d.Valid() {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return d, nil
}

// Valid reports whether normalizing d leaves it unchanged.
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Day <= DaysIn(d.Year, d.Month)
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Ordinal returns the number of days since 1970-01-01. d must be valid.
func (d Date) Ordinal() int {
	y, m := d.Year, d.Month
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d.Day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// FromOrdinal is the inverse of Date.Ordinal.
func FromOrdinal(n int) Date {
	z := n + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153

	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if mp >= 10 {
		month = mp - 9
	}
	year := yoe + era*400
	if month <= 2 {
		year++
	}
	return Date{Day: day, Month: month, Year: year}
}

// Normalize resolves out-of-range month and day fields by rolling them into
// the neighbouring months and years: month 13 is January of the next year,
// day 0 is the last day of the previous month.
func Normalize(year, month, day int) Date {
	year += floorDiv(month-1, 12)
	month = floorMod(month-1, 12) + 1
	first := Date{Day: 1, Month: month, Year: year}
	return FromOrdinal(first.Ordinal() + day - 1)
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return FromOrdinal(d.Ordinal() + n)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Ordinal() < other.Ordinal()
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return weekdayOf(d.Ordinal())
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// FromTime returns the calendar day of t in its own location.
func FromTime(t time.Time) Date {
	return Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

// DaysIn returns the number of days in the given month.
func DaysIn(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func weekdayOf(ordinal int) time.Weekday {
	// 1970-01-01 was a Thursday.
	return time.Weekday(floorMod(ordinal+4, 7))
}

func isWeekend(ordinal int) bool {
	wd := weekdayOf(ordinal)
	return wd == time.Saturday || wd == time.Sunday
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func validate(dates ...Date) error {
	for _, d := range dates {
		if !d.Valid() {
			return fmt.Errorf("%w: %s", ErrInvalidDate, d)
		}
	}
	return nil
}
