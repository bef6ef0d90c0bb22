// Package units holds the static conversion tables and the conversion engine.
//
// Every linear category scales through its first unit (the base unit, factor 1).
// Temperature is the one non-linear category and pivots through Celsius.
package units

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/swapunits/swapunits/internal/format"
)

// Lookup errors, used by callers that need to report why a conversion had no result.
var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownUnit     = errors.New("unknown unit")
)

// QuickReferenceSize is the maximum number of rows in a quick-reference table.
const QuickReferenceSize = 8

// Kind distinguishes linear categories from the temperature pivot.
type Kind int

const (
	Linear Kind = iota
	Temperature
)

// Unit is a single unit of measurement within a category.
type Unit struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`            // e.g. "Meter (m)"
	Name   string  `json:"name"`             // e.g. "Meter"
	Symbol string  `json:"symbol"`           // e.g. "m"
	Factor float64 `json:"factor,omitempty"` // scale to the base unit; zero for temperature
}

// Category is an ordered list of units sharing one dimension.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Kind  Kind   `json:"-"`
	Units []Unit `json:"units"`
}

// UnitRef is the id/label pair used to populate selection widgets.
type UnitRef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// QuickRef is one row of a quick-reference table: 1 base unit expressed in Label.
type QuickRef struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Pair is an ordered (from, to) combination of two distinct units.
type Pair struct {
	From Unit
	To   Unit
}

var byID map[string]*Category

func init() {
	byID = make(map[string]*Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
}

// Categories returns every category in navigation order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		c.Units = slices.Clone(c.Units)
		out[i] = c
	}
	return out
}

// Lookup returns the category with the given id.
func Lookup(id string) (Category, bool) {
	c, ok := byID[id]
	if !ok {
		return Category{}, false
	}
	cp := *c
	cp.Units = slices.Clone(c.Units)
	return cp, true
}

// IsUndefined reports whether v is the undefined numeric result.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// Convert converts value between two units of the named category.
// Unknown categories and unit ids yield NaN rather than an error.
func Convert(categoryID string, value float64, fromID, toID string) float64 {
	c, ok := byID[categoryID]
	if !ok {
		return math.NaN()
	}
	return c.Convert(value, fromID, toID)
}

// ListUnits returns the ordered unit ids and labels of a category, or nil.
func ListUnits(categoryID string) []UnitRef {
	c, ok := byID[categoryID]
	if !ok {
		return nil
	}
	refs := make([]UnitRef, len(c.Units))
	for i, u := range c.Units {
		refs[i] = UnitRef{ID: u.ID, Label: u.Label}
	}
	return refs
}

// QuickReference converts one base unit into each of the next
// QuickReferenceSize units in declaration order.
func QuickReference(categoryID string) []QuickRef {
	c, ok := byID[categoryID]
	if !ok {
		return nil
	}
	return c.QuickReference()
}

// Pairs enumerates every ordered pair of distinct units in a category.
func Pairs(categoryID string) []Pair {
	c, ok := byID[categoryID]
	if !ok {
		return nil
	}
	return c.Pairs()
}

// Base returns the first unit of the category.
func (c Category) Base() Unit {
	if len(c.Units) == 0 {
		return Unit{}
	}
	return c.Units[0]
}

// Unit finds a unit by id.
func (c Category) Unit(id string) (Unit, bool) {
	for _, u := range c.Units {
		if u.ID == id {
			return u, true
		}
	}
	return Unit{}, false
}

// Convert converts value from one unit of c to another.
func (c Category) Convert(value float64, fromID, toID string) float64 {
	if c.Kind == Temperature {
		return convertTemperature(value, fromID, toID)
	}

	from, ok := c.Unit(fromID)
	if !ok {
		return math.NaN()
	}
	to, ok := c.Unit(toID)
	if !ok {
		return math.NaN()
	}
	if fromID == toID {
		return value
	}
	return value * from.Factor / to.Factor
}

// QuickReference is the method form of the package-level QuickReference.
func (c Category) QuickReference() []QuickRef {
	if len(c.Units) < 2 {
		return nil
	}
	base := c.Units[0]
	rest := c.Units[1:]
	if len(rest) > QuickReferenceSize {
		rest = rest[:QuickReferenceSize]
	}

	refs := make([]QuickRef, 0, len(rest))
	for _, u := range rest {
		v := c.Convert(1, base.ID, u.ID)
		refs = append(refs, QuickRef{
			ID:      u.ID,
			Label:   u.Label,
			Value:   v,
			Display: format.FormatResult(v),
		})
	}
	return refs
}

// Pairs is the method form of the package-level Pairs.
func (c Category) Pairs() []Pair {
	pairs := make([]Pair, 0, len(c.Units)*(len(c.Units)-1))
	for _, from := range c.Units {
		for _, to := range c.Units {
			if from.ID == to.ID {
				continue
			}
			pairs = append(pairs, Pair{From: from, To: to})
		}
	}
	return pairs
}

// Validate checks the invariants of a linear category: a non-empty unit list,
// unique ids, strictly positive factors and a base unit of factor 1.
func (c Category) Validate() error {
	if len(c.Units) == 0 {
		return fmt.Errorf("category %s has no units", c.ID)
	}
	seen := make(map[string]bool, len(c.Units))
	for _, u := range c.Units {
		if seen[u.ID] {
			return fmt.Errorf("category %s: duplicate unit %s", c.ID, u.ID)
		}
		seen[u.ID] = true
		if c.Kind == Linear && !(u.Factor > 0) {
			return fmt.Errorf("category %s: unit %s has non-positive factor %v", c.ID, u.ID, u.Factor)
		}
	}
	if c.Kind == Linear && c.Units[0].Factor != 1 {
		return fmt.Errorf("category %s: base unit %s must have factor 1", c.ID, c.Units[0].ID)
	}
	return nil
}

// CheckUnits reports why Convert would yield the undefined result for the
// given arguments, or nil when both units resolve.
func CheckUnits(categoryID, fromID, toID string) error {
	c, ok := byID[categoryID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, categoryID)
	}
	for _, id := range []string{fromID, toID} {
		if _, ok := c.Unit(id); !ok {
			return fmt.Errorf("%w: %q in %s", ErrUnknownUnit, id, categoryID)
		}
	}
	return nil
}
