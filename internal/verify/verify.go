// Package verify exhaustively checks the conversion tables: every unit against
// itself, every ordered pair there and back, and a fixed set of reference
// values.
package verify

import (
	"fmt"
	"math"

	"github.com/swapunits/swapunits/internal/land"
	"github.com/swapunits/swapunits/internal/units"
)

// Check names used in failures.
const (
	CheckSelf      = "self"
	CheckRoundTrip = "round-trip"
	CheckSpot      = "spot"
)

// Tolerances.
const (
	SelfTolerance        = 1e-9
	RoundTripRelative    = 1e-8
	TemperatureRoundTrip = 1e-6
)

var (
	linearValues      = []float64{1, 10, 100, 0.5, 1000}
	temperatureValues = []float64{-40, 0, 20, 37, 100, 200}
)

// CategoryResult counts checks for one category.
type CategoryResult struct {
	Category string `json:"category"`
	Checks   int    `json:"checks"`
	Passed   int    `json:"passed"`
}

// Failure describes one failed check.
type Failure struct {
	Check    string  `json:"check"`
	Category string  `json:"category"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Input    float64 `json:"input"`
	Got      float64 `json:"got"`
	Want     float64 `json:"want"`
}

func (f Failure) String() string {
	return fmt.Sprintf("%s %s: %v %s -> %s = %v, want %v", f.Check, f.Category, f.Input, f.From, f.To, f.Got, f.Want)
}

// SpotResult is the outcome of one reference value check.
type SpotResult struct {
	Reference
	Got  float64 `json:"got"`
	Pass bool    `json:"pass"`
}

// Report is the outcome of Run.
type Report struct {
	Categories []CategoryResult `json:"categories"`
	Spots      []SpotResult     `json:"spots"`
	Failures   []Failure        `json:"failures"`
	Total      int              `json:"total"`
	Passed     int              `json:"passed"`
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Run verifies every built-in category and every land region.
func Run() Report {
	cats := units.Categories()
	for _, r := range land.Regions() {
		cats = append(cats, r.Category())
	}
	return RunCategories(cats, References)
}

// RunCategories verifies the given categories and reference values.
func RunCategories(cats []units.Category, refs []Reference) Report {
	var rep Report
	for _, c := range cats {
		rep.Categories = append(rep.Categories, checkCategory(c, &rep))
	}

	byID := make(map[string]units.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	for _, ref := range refs {
		res := SpotResult{Reference: ref, Got: math.NaN()}
		if c, ok := byID[ref.Category]; ok {
			res.Got = c.Convert(ref.Input, ref.From, ref.To)
			res.Pass = ref.accepts(res.Got)
		}
		rep.Spots = append(rep.Spots, res)
		rep.Total++
		if res.Pass {
			rep.Passed++
			continue
		}
		rep.Failures = append(rep.Failures, Failure{
			Check: CheckSpot, Category: ref.Category, From: ref.From, To: ref.To,
			Input: ref.Input, Got: res.Got, Want: ref.Want,
		})
	}
	return rep
}

func checkCategory(c units.Category, rep *Report) CategoryResult {
	res := CategoryResult{Category: c.ID}
	record := func(ok bool, f Failure) {
		res.Checks++
		rep.Total++
		if ok {
			res.Passed++
			rep.Passed++
			return
		}
		f.Category = c.ID
		rep.Failures = append(rep.Failures, f)
	}

	for _, u := range c.Units {
		for _, v := range linearValues {
			got := c.Convert(v, u.ID, u.ID)
			record(math.Abs(got-v) < SelfTolerance, Failure{Check: CheckSelf, From: u.ID, To: u.ID, Input: v, Got: got, Want: v})
		}
	}

	values := linearValues
	if c.Kind == units.Temperature {
		values = temperatureValues
	}
	for _, p := range c.Pairs() {
		for _, v := range values {
			back := c.Convert(c.Convert(v, p.From.ID, p.To.ID), p.To.ID, p.From.ID)
			var ok bool
			if c.Kind == units.Temperature {
				ok = math.Abs(back-v) < TemperatureRoundTrip
			} else {
				ok = math.Abs(back-v)/math.Abs(v) < RoundTripRelative
			}
			record(ok, Failure{Check: CheckRoundTrip, From: p.From.ID, To: p.To.ID, Input: v, Got: back, Want: v})
		}
	}
	return res
}
