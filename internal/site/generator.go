// Package site renders the static converter website: category, pair, land and
// sitemap pages plus a JSONL manifest of everything written.
package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/swapunits/swapunits/internal/config"
	"github.com/swapunits/swapunits/internal/land"
	"github.com/swapunits/swapunits/internal/storage"
	"github.com/swapunits/swapunits/internal/units"
)

// ManifestFile is the name of the page manifest written into the output directory.
const ManifestFile = "pages.jsonl"

// Generator renders the site for one configuration.
type Generator struct {
	Config *config.Config
	Logger *zap.Logger
	Copy   *Copy            // nil uses the embedded copy
	Now    func() time.Time // nil uses time.Now
}

// Manifest summarizes a generation run.
type Manifest struct {
	Pages []storage.Page `json:"pages"`
	Files int            `json:"files"` // including sitemap.xml and .gz siblings
	Bytes int64          `json:"bytes"` // uncompressed
}

// run holds the state of a single Generate call.
type run struct {
	ctx      context.Context
	cfg      *config.Config
	log      *zap.Logger
	cp       *Copy
	now      time.Time
	lang     string
	nav      []navLink
	out      *fileWriter
	manifest *Manifest
}

// Generate writes the full site into outDir.
func (g *Generator) Generate(ctx context.Context, outDir string) (*Manifest, error) {
	r, err := g.newRun(ctx, outDir)
	if err != nil {
		return nil, err
	}
	r.log.Info("generating site", zap.String("out", outDir), zap.Bool("precompress", r.out.gzip))

	cats := units.Categories()
	regions := land.Regions()

	if err := r.home(cats); err != nil {
		return nil, err
	}
	for _, c := range cats {
		if err := r.category(c); err != nil {
			return nil, err
		}
	}
	if err := r.land(regions); err != nil {
		return nil, err
	}
	if err := r.sitemaps(cats); err != nil {
		return nil, err
	}

	if err := storage.WriteAll(filepath.Join(outDir, ManifestFile), r.manifest.Pages); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	r.manifest.Files = r.out.files
	r.manifest.Bytes = r.out.bytes
	r.log.Info("site generated",
		zap.Int("pages", len(r.manifest.Pages)),
		zap.Int("files", r.manifest.Files),
		zap.Int64("bytes", r.manifest.Bytes))
	return r.manifest, nil
}

func (g *Generator) newRun(ctx context.Context, outDir string) (*run, error) {
	cfg := g.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := g.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cp := g.Copy
	if cp == nil {
		var err error
		if cp, err = DefaultCopy(); err != nil {
			return nil, err
		}
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	level, gz := GzipLevel(cfg.GzipLevel)
	r := &run{
		ctx:      ctx,
		cfg:      cfg,
		log:      log,
		cp:       cp,
		now:      now(),
		lang:     htmlLang(cfg.Locale),
		out:      &fileWriter{root: outDir, gzip: cfg.Precompress && gz, gzipLevel: level},
		manifest: &Manifest{},
	}
	for _, c := range units.Categories() {
		r.nav = append(r.nav, navLink{
			Path:  CategoryPath(c.ID),
			Label: strings.TrimSpace(cp.Category(c.ID, c.Name).Icon + " " + c.Name),
		})
	}
	r.nav = append(r.nav, navLink{Path: "/land/", Label: "🌾 Land"})
	return r, nil
}

// htmlLang is the primary language subtag of a locale such as "en_US".
func htmlLang(locale string) string {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}

// render executes a page template and records the page in the manifest.
func (r *run) render(tmpl *template.Template, page storage.Page, crumbs []link, body any) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}

	nav := make([]navLink, len(r.nav))
	for i, n := range r.nav {
		n.Active = page.Category != "" && n.Path == CategoryPath(page.Category)
		nav[i] = n
	}
	data := pageData{
		SiteName:     r.cfg.SiteName,
		AdsensePubID: r.cfg.AdsensePubID,
		Lang:         r.lang,
		Title:        page.Title,
		Description:  page.Description,
		Keywords:     strings.Join(page.Keywords, ", "),
		Canonical:    r.cfg.SiteURL(page.Path),
		Category:     page.Category,
		Year:         r.now.Year(),
		Nav:          nav,
		Crumbs:       crumbs,
		Body:         body,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering %s: %w", page.Path, err)
	}
	if err := r.out.write(pageFile(page.Path), buf.Bytes()); err != nil {
		return err
	}
	r.manifest.Pages = append(r.manifest.Pages, page)
	return nil
}

func (r *run) home(cats []units.Category) error {
	page := storage.Page{
		Path:        "/",
		Title:       r.cfg.SiteName + " | Free Online Unit Converter",
		Description: "Convert length, temperature, area, volume, weight, time, speed, pressure, energy and Indian land units.",
		Kind:        storage.KindHome,
		Keywords:    []string{"unit converter", "online converter"},
		Priority:    PriorityHome,
	}
	return r.render(homeTemplate, page, nil, buildHome(cats, r.cp, r.cfg.SiteName))
}

func (r *run) category(c units.Category) error {
	cc := r.cp.Category(c.ID, c.Name)
	page := storage.Page{
		Path:        CategoryPath(c.ID),
		Title:       fmt.Sprintf("%s Converter | Free Online %s Unit Conversion | %s", c.Name, c.Name, r.cfg.SiteName),
		Description: cc.Description + " Free, fast, and accurate.",
		Kind:        storage.KindCategory,
		Category:    c.ID,
		Keywords:    splitKeywords(cc.Keywords),
		Priority:    PriorityCategory,
	}
	if err := r.render(categoryTemplate, page, []link{{Label: cc.Heading}}, buildCategory(c, r.cp)); err != nil {
		return err
	}

	pairs := units.Pairs(c.ID)
	for _, p := range pairs {
		if err := r.pair(c, cc, p.From, p.To); err != nil {
			return err
		}
	}
	r.log.Debug("category generated", zap.String("category", c.ID), zap.Int("pairs", len(pairs)))
	return nil
}

func (r *run) pair(c units.Category, cc CategoryCopy, from, to units.Unit) error {
	body, err := buildPair(c, from, to, r.cp)
	if err != nil {
		return err
	}
	lower := strings.ToLower(c.Name)
	page := storage.Page{
		Path:  PairPath(c.ID, from.Name, to.Name),
		Title: fmt.Sprintf("Convert %s to %s | %s to %s Converter", from.Name, to.Name, from.Name, to.Name),
		Description: fmt.Sprintf("Easily convert %s to %s. Free online %s converter with formula, examples, and conversion table.",
			withSymbol(from), withSymbol(to), lower),
		Kind:     storage.KindPair,
		Category: c.ID,
		From:     from.ID,
		To:       to.ID,
		Keywords: []string{
			from.Name + " to " + to.Name,
			from.Symbol + " to " + to.Symbol,
			"convert " + from.Name + " to " + to.Name,
			lower + " converter",
		},
		Priority: PriorityPage,
	}
	crumbs := []link{
		{Path: CategoryPath(c.ID), Label: cc.Heading},
		{Label: "Convert " + from.Name + " to " + to.Name},
	}
	return r.render(pairTemplate, page, crumbs, body)
}

func (r *run) land(regions []land.Region) error {
	hub := storage.Page{
		Path:        "/land/",
		Title:       "Indian Land Unit Converter | Bigha, Katha, Acre by State | " + r.cfg.SiteName,
		Description: "Free Indian land unit converter for all states. Convert Bigha, Katha, Biswa, Kanal, Marla, Ground, Cent, Guntha and more.",
		Kind:        storage.KindLandHub,
		Category:    "land",
		Keywords:    []string{"land unit converter", "bigha to acre", "katha to sq ft"},
		Priority:    PriorityCategory,
	}
	if err := r.render(landHubTemplate, hub, []link{{Label: "Land Conversion"}}, buildLandHub(regions)); err != nil {
		return err
	}

	for _, reg := range regions {
		body, err := buildRegion(reg, regions)
		if err != nil {
			return err
		}
		keywords := []string{strings.ToLower(reg.Short) + " land converter"}
		for _, u := range reg.Units[1:] {
			keywords = append(keywords, strings.ToLower(u.Label)+" to sq ft")
		}
		page := storage.Page{
			Path:  RegionPath(reg.Slug),
			Title: reg.Name + " Land Unit Converter | Bigha, Katha, Acre & More",
			Description: fmt.Sprintf("Convert land units in %s: Bigha, Katha, Acre, Square Feet and more. %s",
				reg.Name, reg.Description),
			Kind:     storage.KindRegion,
			Category: "land",
			Keywords: keywords,
			Priority: PriorityPage,
		}
		crumbs := []link{{Path: "/land/", Label: "Land Conversion"}, {Label: reg.Name}}
		if err := r.render(regionTemplate, page, crumbs, body); err != nil {
			return err
		}
	}
	r.log.Debug("land pages generated", zap.Int("regions", len(regions)))
	return nil
}

func (r *run) sitemaps(cats []units.Category) error {
	names := map[string]string{"land": "Land"}
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	page := storage.Page{
		Path:        "/sitemap.html",
		Title:       "Sitemap | " + r.cfg.SiteName,
		Description: "Sitemap for " + r.cfg.SiteName + ". Easily navigate to all unit converters.",
		Kind:        storage.KindSitemap,
		Priority:    PriorityCategory,
	}
	if err := r.render(sitemapTemplate, page, []link{{Label: "Sitemap"}}, buildSitemap(names)); err != nil {
		return err
	}

	if err := r.ctx.Err(); err != nil {
		return err
	}
	data, err := SitemapXML(r.manifest.Pages, r.cfg.SiteURL, r.now.Format("2006-01-02"))
	if err != nil {
		return err
	}
	return r.out.write("/sitemap.xml", data)
}

func splitKeywords(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
