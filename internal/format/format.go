// Package format renders conversion results for display.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is shown for results that cannot be displayed.
const Placeholder = "—"

// Display thresholds shared by FormatResult and Plain.
const (
	scientificAbove = 1e15
	scientificBelow = 1e-6
	groupAbove      = 1000

	groupedFractionDigits = 6
	significantDigits     = 10
	exponentDigits        = 6
)

// FormatResult renders a converted value the way the converter UI shows it:
// placeholder for NaN/Inf, "0", scientific notation for very large or very
// small magnitudes, thousands grouping from 1000 upward, and otherwise the
// shortest decimal at 10 significant digits.
func FormatResult(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	if v == 0 {
		return "0"
	}

	abs := math.Abs(v)
	switch {
	case abs >= scientificAbove || abs < scientificBelow:
		return exponential(v, exponentDigits)
	case abs >= groupAbove:
		return humanize.CommafWithDigits(roundFraction(v, groupedFractionDigits), groupedFractionDigits)
	default:
		return strconv.FormatFloat(roundSignificant(v, significantDigits), 'f', -1, 64)
	}
}

// Plain renders a value without exponents, for static page text.
// Non-finite values render as "N/A".
func Plain(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	if v == 0 {
		return "0"
	}

	r := roundSignificant(v, significantDigits)
	abs := math.Abs(r)
	switch {
	case abs <= scientificBelow:
		decimals := -int(math.Floor(math.Log10(abs))) + 5
		if decimals > 20 {
			decimals = 20
		}
		return trimZeros(strconv.FormatFloat(r, 'f', decimals, 64))
	case abs >= groupAbove:
		return humanize.Commaf(r)
	default:
		return strconv.FormatFloat(r, 'f', -1, 64)
	}
}

// Count renders an integer with thousands separators.
func Count(n int64) string {
	return humanize.Comma(n)
}

// Fixed renders v with exactly digits fractional digits, like the "2 decimals"
// figures in the date calculator.
func Fixed(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// Localized is FormatResult using the grouping and decimal separators of a
// locale such as "en_US" or "de_DE". Scientific forms are not localized.
// Unparseable locales fall back to English.
func Localized(v float64, locale string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= scientificAbove || abs < scientificBelow {
		return exponential(v, exponentDigits)
	}

	digits := groupedFractionDigits
	if abs >= groupAbove {
		v = roundFraction(v, groupedFractionDigits)
	} else {
		v = roundSignificant(v, significantDigits)
		digits = significantDigits + 5
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(digits)))
}

// exponential mirrors the d.dddddde±x form: the exponent carries no padding.
func exponential(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'e', digits, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	mantissa, exp := s[:i], s[i+1:]
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + sign + exp
}

func roundSignificant(v float64, digits int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', digits, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func roundFraction(v float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.Round(v*scale) / scale
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
