package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/goodsign/monday"
)

var isoDate = regexp.MustCompile(`^(-?\d{4,})-(\d{1,2})-(\d{1,2})$`)

// Parse reads a date. YYYY-MM-DD is parsed strictly and checked for validity;
// anything else ("March 2, 2024", "03/02/2024") goes through dateparse with
// ambiguous numeric forms read month first.
func Parse(s string) (Date, error) {
	return parse(s, false)
}

// ParseDayFirst is Parse with ambiguous numeric forms read day first.
func ParseDayFirst(s string) (Date, error) {
	return parse(s, true)
}

func parse(s string, dayFirst bool) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}

	if m := isoDate.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return NewDate(day, month, year)
	}

	t, err := dateparse.ParseIn(s, time.UTC, dateparse.PreferMonthFirst(!dayFirst))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
	}
	return FromTime(t), nil
}

// LongLayout is the weekday-first long form, e.g. "Saturday, March 2, 2024".
const LongLayout = "Monday, January 2, 2006"

var locales = map[string]monday.Locale{
	"en":    monday.LocaleEnUS,
	"en_us": monday.LocaleEnUS,
	"en_gb": monday.LocaleEnGB,
	"de":    monday.LocaleDeDE,
	"de_de": monday.LocaleDeDE,
	"fr":    monday.LocaleFrFR,
	"fr_fr": monday.LocaleFrFR,
	"es":    monday.LocaleEsES,
	"es_es": monday.LocaleEsES,
	"it":    monday.LocaleItIT,
	"it_it": monday.LocaleItIT,
	"pt":    monday.LocalePtPT,
	"pt_br": monday.LocalePtBR,
	"nl":    monday.LocaleNlNL,
	"ru":    monday.LocaleRuRU,
	"ja":    monday.LocaleJaJP,
	"zh":    monday.LocaleZhCN,
}

// Format renders d with a Go time layout, translating month and weekday names
// into locale ("en_US", "de", ...). Unknown locales use US English.
func Format(d Date, layout, locale string) string {
	loc, ok := locales[strings.ToLower(strings.ReplaceAll(locale, "-", "_"))]
	if !ok {
		loc = monday.LocaleEnUS
	}
	return monday.Format(d.Time(), layout, loc)
}
