package site

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/swapunits/swapunits/internal/format"
	"github.com/swapunits/swapunits/internal/land"
	"github.com/swapunits/swapunits/internal/units"
)

// Values shown in the pair page conversion tables.
var (
	linearTableValues      = []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}
	temperatureTableValues = []float64{-40, 0, 20, 37, 100, 200, 500}
)

// Worked example inputs.
const (
	linearExampleValue      = 15
	temperatureExampleValue = 20
)

// landHubHidden are the units left out of the hub card unit summaries.
var landHubHidden = map[string]bool{"sqft": true, "sqmeter": true, "acre": true, "hectare": true}

type hubCard struct {
	Path        string
	Icon        string
	Name        string
	Description string
}

type homeBody struct {
	Heading string
	Intro   string
	Cards   []hubCard
}

type categoryBody struct {
	Name        string
	Icon        string
	Description string
	Base        string
	Units       []string
	QuickRef    []quickRow
	Popular     []link
}

type quickRow struct {
	Label   string
	Display string
}

type valueRow struct {
	From string
	To   string
}

type pairBody struct {
	CategoryName   string
	From           units.Unit
	To             units.Unit
	ReversePath    string
	FormulaForward string
	FormulaReverse string
	ExampleValue   string
	Example        string
	Definition     template.HTML
	Rows           []valueRow
	Related        [][]link
}

type regionCard struct {
	Path      string
	Short     string
	Name      string
	UnitNames string
}

type landHubBody struct {
	Regions []regionCard
}

type unitNote struct {
	Unit string
	SqFt string
	Note string
}

type regionRow struct {
	Unit     string
	ToSqFt   string
	FromSqFt string
}

type regionBody struct {
	Name        string
	Description string
	Notes       []unitNote
	Rows        []regionRow
	Others      []link
}

type sitemapGroup struct {
	Name  string
	Links []link
}

type sitemapBody struct {
	Groups []sitemapGroup
}

// withSymbol renders "Name (symbol)".
func withSymbol(u units.Unit) string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Symbol)
}

func buildHome(cats []units.Category, cp *Copy, siteName string) homeBody {
	body := homeBody{
		Heading: siteName + " Unit Converter",
		Intro:   "Free, fast and accurate unit conversion for everyone.",
	}
	for _, c := range cats {
		cc := cp.Category(c.ID, c.Name)
		body.Cards = append(body.Cards, hubCard{
			Path:        CategoryPath(c.ID),
			Icon:        cc.Icon,
			Name:        c.Name,
			Description: cc.Description,
		})
	}
	body.Cards = append(body.Cards, hubCard{
		Path:        "/land/",
		Icon:        "🌾",
		Name:        "Land",
		Description: "Convert Bigha, Katha, Kanal and other Indian land units by state.",
	})
	return body
}

func buildCategory(c units.Category, cp *Copy) categoryBody {
	cc := cp.Category(c.ID, c.Name)
	base := c.Base()
	body := categoryBody{
		Name:        c.Name,
		Icon:        cc.Icon,
		Description: cc.Description,
		Base:        base.Label,
	}
	for _, u := range c.Units {
		body.Units = append(body.Units, u.Label)
	}
	for _, q := range c.QuickReference() {
		body.QuickRef = append(body.QuickRef, quickRow{Label: q.Label, Display: format.Plain(q.Value)})
	}
	for _, u := range c.Units[1:] {
		body.Popular = append(body.Popular,
			link{Path: PairPath(c.ID, base.Name, u.Name), Label: base.Name + " to " + u.Name},
			link{Path: PairPath(c.ID, u.Name, base.Name), Label: u.Name + " to " + base.Name},
		)
	}
	return body
}

func buildPair(c units.Category, from, to units.Unit, cp *Copy) (pairBody, error) {
	def, err := cp.Definition(c.ID, c.Name, from.ID, from.Name)
	if err != nil {
		return pairBody{}, fmt.Errorf("definition of %s: %w", from.ID, err)
	}

	body := pairBody{
		CategoryName: c.Name,
		From:         from,
		To:           to,
		ReversePath:  PairPath(c.ID, to.Name, from.Name),
		Definition:   def,
	}

	forward := c.Convert(1, from.ID, to.ID)
	reverse := c.Convert(1, to.ID, from.ID)
	body.FormulaForward = fmt.Sprintf("1 %s = %s %s", withSymbol(from), format.Plain(forward), withSymbol(to))
	body.FormulaReverse = fmt.Sprintf("1 %s = %s %s", withSymbol(to), format.Plain(reverse), withSymbol(from))

	values := linearTableValues
	if c.Kind == units.Temperature {
		values = temperatureTableValues
		x := float64(temperatureExampleValue)
		body.ExampleValue = format.Plain(x)
		body.Example = fmt.Sprintf("%s %s = %s %s",
			body.ExampleValue, withSymbol(from), format.Plain(c.Convert(x, from.ID, to.ID)), withSymbol(to))
	} else {
		x := float64(linearExampleValue)
		body.ExampleValue = format.Plain(x)
		body.Example = fmt.Sprintf("%s %s = %s × %s %s = %s %s",
			body.ExampleValue, withSymbol(from), body.ExampleValue, format.Plain(forward), withSymbol(to),
			format.Plain(c.Convert(x, from.ID, to.ID)), withSymbol(to))
	}

	for _, v := range values {
		body.Rows = append(body.Rows, valueRow{
			From: format.Plain(v) + " " + from.Symbol,
			To:   format.Plain(c.Convert(v, from.ID, to.ID)) + " " + to.Symbol,
		})
	}

	body.Related = splitColumns(relatedPairs(c, from.ID, to.ID))
	return body, nil
}

// relatedPairs lists every other pair of the category, deduplicated by label.
func relatedPairs(c units.Category, fromID, toID string) []link {
	seen := make(map[string]bool)
	var out []link
	for _, p := range c.Pairs() {
		if p.From.ID == fromID && p.To.ID == toID {
			continue
		}
		label := p.From.Name + " to " + p.To.Name
		if seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, link{Path: PairPath(c.ID, p.From.Name, p.To.Name), Label: label})
	}
	return out
}

// splitColumns splits links into two columns, the first one taking the odd link.
func splitColumns(links []link) [][]link {
	half := (len(links) + 1) / 2
	return [][]link{links[:half], links[half:]}
}

func buildLandHub(regions []land.Region) landHubBody {
	var body landHubBody
	for _, r := range regions {
		var names []string
		for _, u := range r.Units {
			if !landHubHidden[u.ID] {
				names = append(names, u.Label)
			}
		}
		body.Regions = append(body.Regions, regionCard{
			Path:      RegionPath(r.Slug),
			Short:     r.Short,
			Name:      r.Name,
			UnitNames: strings.Join(names, ", "),
		})
	}
	return body
}

func buildRegion(r land.Region, all []land.Region) (regionBody, error) {
	body := regionBody{Name: r.Name, Description: r.Description}
	for _, u := range r.Units {
		body.Notes = append(body.Notes, unitNote{
			Unit: u.DisplayLabel(),
			SqFt: format.Plain(u.SqFt),
			Note: u.Note,
		})
	}

	perSqFt, err := r.Table(1, land.BaseUnitID)
	if err != nil {
		return regionBody{}, err
	}
	for _, row := range perSqFt {
		if row.Unit.ID == land.BaseUnitID {
			continue
		}
		body.Rows = append(body.Rows, regionRow{
			Unit:     row.Unit.DisplayLabel(),
			ToSqFt:   format.Plain(r.Convert(1, row.Unit.ID, land.BaseUnitID)),
			FromSqFt: format.Plain(row.Value),
		})
	}

	for _, o := range all {
		if o.Slug != r.Slug {
			body.Others = append(body.Others, link{Path: RegionPath(o.Slug), Label: o.Name})
		}
	}
	return body, nil
}
