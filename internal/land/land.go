// Package land provides the regional Indian land-area unit systems. Every
// region is a linear system whose base unit is the square foot.
package land

import (
	_ "embed"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/swapunits/swapunits/internal/units"
)

// ErrUnknownRegion is returned when a region slug is not defined.
var ErrUnknownRegion = errors.New("unknown region")

//go:embed regions.yml
var regionsYAML []byte

// BaseUnitID is the id of the square foot, the first unit of every region.
const BaseUnitID = "sqft"

// Unit is a land unit. SqFt is the number of square feet in one unit.
type Unit struct {
	ID     string  `yaml:"id" json:"id"`
	Label  string  `yaml:"label" json:"label"`
	Symbol string  `yaml:"symbol" json:"symbol"`
	SqFt   float64 `yaml:"sqft" json:"sqft"`
	Note   string  `yaml:"note,omitempty" json:"note,omitempty"`
}

// DisplayLabel renders "Label (Symbol)".
func (u Unit) DisplayLabel() string {
	return fmt.Sprintf("%s (%s)", u.Label, u.Symbol)
}

// Region is one state or group of states sharing a land measurement system.
type Region struct {
	Slug        string `yaml:"slug" json:"slug"`
	Name        string `yaml:"name" json:"name"`
	Short       string `yaml:"short" json:"short"`
	Description string `yaml:"description" json:"description"`
	Units       []Unit `yaml:"units" json:"units"`
}

// Row is one line of a conversion table.
type Row struct {
	Unit  Unit    `json:"unit"`
	Value float64 `json:"value"`
}

type document struct {
	Regions []Region `yaml:"regions"`
}

var regions = mustParse(regionsYAML)

func mustParse(data []byte) []Region {
	rs, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("land: embedded region data: %v", err))
	}
	return rs
}

// Parse decodes and validates a region document.
func Parse(data []byte) ([]Region, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing regions: %w", err)
	}
	if len(doc.Regions) == 0 {
		return nil, errors.New("no regions defined")
	}

	slugs := make(map[string]bool, len(doc.Regions))
	for _, r := range doc.Regions {
		if r.Slug == "" {
			return nil, fmt.Errorf("region %q has no slug", r.Name)
		}
		if slugs[r.Slug] {
			return nil, fmt.Errorf("duplicate region %s", r.Slug)
		}
		slugs[r.Slug] = true
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	return doc.Regions, nil
}

// Validate checks that the region starts with the square foot, has unique
// unit ids and only positive factors.
func (r Region) Validate() error {
	if len(r.Units) == 0 {
		return fmt.Errorf("region %s has no units", r.Slug)
	}
	if r.Units[0].ID != BaseUnitID || r.Units[0].SqFt != 1 {
		return fmt.Errorf("region %s: first unit must be %s with factor 1", r.Slug, BaseUnitID)
	}
	seen := make(map[string]bool, len(r.Units))
	for _, u := range r.Units {
		if seen[u.ID] {
			return fmt.Errorf("region %s: duplicate unit %s", r.Slug, u.ID)
		}
		seen[u.ID] = true
		if !(u.SqFt > 0) {
			return fmt.Errorf("region %s: unit %s has non-positive factor %v", r.Slug, u.ID, u.SqFt)
		}
	}
	return nil
}

// Regions returns every region in display order.
func Regions() []Region {
	out := make([]Region, len(regions))
	for i, r := range regions {
		r.Units = append([]Unit(nil), r.Units...)
		out[i] = r
	}
	return out
}

// Lookup returns the region with the given slug.
func Lookup(slug string) (Region, error) {
	for _, r := range regions {
		if r.Slug == slug {
			r.Units = append([]Unit(nil), r.Units...)
			return r, nil
		}
	}
	return Region{}, fmt.Errorf("%w: %q", ErrUnknownRegion, slug)
}

// Unit finds a unit by id.
func (r Region) Unit(id string) (Unit, bool) {
	for _, u := range r.Units {
		if u.ID == id {
			return u, true
		}
	}
	return Unit{}, false
}

// Convert converts value between two units of the region. Unknown ids yield NaN.
func (r Region) Convert(value float64, fromID, toID string) float64 {
	from, ok := r.Unit(fromID)
	if !ok {
		return math.NaN()
	}
	to, ok := r.Unit(toID)
	if !ok {
		return math.NaN()
	}
	if fromID == toID {
		return value
	}
	return value * from.SqFt / to.SqFt
}

// Table expresses value, given in fromID, in every unit of the region.
func (r Region) Table(value float64, fromID string) ([]Row, error) {
	if _, ok := r.Unit(fromID); !ok {
		return nil, fmt.Errorf("%w: %q in %s", units.ErrUnknownUnit, fromID, r.Slug)
	}
	rows := make([]Row, len(r.Units))
	for i, u := range r.Units {
		rows[i] = Row{Unit: u, Value: r.Convert(value, fromID, u.ID)}
	}
	return rows, nil
}

// Category adapts the region to a linear units.Category so the shared
// conversion engine and formatting apply.
func (r Region) Category() units.Category {
	c := units.Category{
		ID:    "land/" + r.Slug,
		Name:  r.Name,
		Kind:  units.Linear,
		Units: make([]units.Unit, len(r.Units)),
	}
	for i, u := range r.Units {
		c.Units[i] = units.Unit{
			ID:     u.ID,
			Label:  u.DisplayLabel(),
			Name:   u.Label,
			Symbol: u.Symbol,
			Factor: u.SqFt,
		}
	}
	return c
}
