package site

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/swapunits/swapunits/internal/storage"
)

// Sitemap priorities by page kind.
const (
	PriorityHome     = 1.0
	PriorityCategory = 0.8
	PriorityPage     = 0.7
)

const (
	sitemapNamespace  = "http://www.sitemaps.org/schemas/sitemap/0.9"
	sitemapChangeFreq = "monthly"
)

// sitemapGroups orders the HTML sitemap. Unknown category ids are skipped.
var sitemapGroups = []struct {
	name string
	ids  []string
}{
	{"common converters", []string{"length", "weight", "volume", "temperature", "area", "time"}},
	{"engineering converters", []string{"pressure", "speed", "energy"}},
	{"specialized converters", []string{"land"}},
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// SitemapXML renders the XML sitemap for pages. siteURL maps a site path to
// its absolute URL.
func SitemapXML(pages []storage.Page, siteURL func(string) string, lastMod string) ([]byte, error) {
	set := urlSet{Xmlns: sitemapNamespace}
	for _, p := range pages {
		if p.Kind == storage.KindSitemap {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        siteURL(p.Path),
			LastMod:    lastMod,
			ChangeFreq: sitemapChangeFreq,
			Priority:   strconv.FormatFloat(p.Priority, 'f', 1, 64),
		})
	}

	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}

func buildSitemap(names map[string]string) sitemapBody {
	title := cases.Title(language.English)
	var body sitemapBody
	for _, g := range sitemapGroups {
		group := sitemapGroup{Name: title.String(g.name)}
		for _, id := range g.ids {
			name, ok := names[id]
			if !ok {
				continue
			}
			group.Links = append(group.Links, link{Path: CategoryPath(id), Label: name + " Converter"})
		}
		body.Groups = append(body.Groups, group)
	}
	return body
}
