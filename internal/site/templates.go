package site

import (
	"html/template"
)

// Page templates are parsed at init time to fail fast on template errors.
var (
	homeTemplate     *template.Template
	categoryTemplate *template.Template
	pairTemplate     *template.Template
	landHubTemplate  *template.Template
	regionTemplate   *template.Template
	sitemapTemplate  *template.Template
)

func init() {
	base := template.Must(template.New("layout").Parse(layoutTemplate))
	page := func(content string) *template.Template {
		return template.Must(template.Must(base.Clone()).Parse(content))
	}
	homeTemplate = page(homeContent)
	categoryTemplate = page(categoryContent)
	pairTemplate = page(pairContent)
	landHubTemplate = page(landHubContent)
	regionTemplate = page(regionContent)
	sitemapTemplate = page(sitemapContent)
}

// navLink is one entry of the category navigation bar.
type navLink struct {
	Path   string
	Label  string
	Active bool
}

// link is a plain anchor.
type link struct {
	Path  string
	Label string
}

// pageData is the data every template receives. Body holds the page-specific part.
type pageData struct {
	SiteName     string
	AdsensePubID string
	Lang         string
	Title        string
	Description  string
	Keywords     string
	Canonical    string
	Category     string
	Year         int
	Nav          []navLink
	Crumbs       []link
	Body         any
}

const layoutTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>{{.Title}}</title>
  <meta name="description" content="{{.Description}}" />
{{- if .Keywords}}
  <meta name="keywords" content="{{.Keywords}}" />
{{- end}}
  <meta name="robots" content="index, follow" />
  <link rel="canonical" href="{{.Canonical}}" />
  <meta property="og:type" content="website" />
  <meta property="og:title" content="{{.Title}}" />
  <meta property="og:description" content="{{.Description}}" />
  <meta property="og:url" content="{{.Canonical}}" />
  <meta property="og:site_name" content="{{.SiteName}}" />
  <meta name="twitter:card" content="summary" />
  <link rel="stylesheet" href="/css/style.css" />
{{- if .AdsensePubID}}
  <script async src="https://pagead2.googlesyndication.com/pagead/js/adsbygoogle.js?client={{.AdsensePubID}}" crossorigin="anonymous"></script>
{{- end}}
</head>
<body{{if .Category}} data-category="{{.Category}}"{{end}}>
  <header class="site-header" role="banner">
    <div class="header-inner">
      <a href="/" class="site-logo" aria-label="{{.SiteName}} Home">{{.SiteName}}</a>
      <span class="header-tagline">Free Online Unit Converter</span>
    </div>
  </header>

  <nav class="site-nav" role="navigation" aria-label="Converter categories">
    <div class="nav-inner">
{{- range .Nav}}
      <a href="{{.Path}}" class="nav-link{{if .Active}} active{{end}}">{{.Label}}</a>
{{- end}}
    </div>
  </nav>

  <div class="page-wrapper">
    <main class="main-content" role="main">
{{- if .Crumbs}}
      <nav class="breadcrumb" aria-label="Breadcrumb">
        <a href="/">Home</a>
{{- range .Crumbs}}
        <span>&rsaquo;</span> {{if .Path}}<a href="{{.Path}}">{{.Label}}</a>{{else}}<span>{{.Label}}</span>{{end}}
{{- end}}
      </nav>
{{- end}}
{{template "content" .Body}}
    </main>
  </div>

  <footer class="site-footer" role="contentinfo">
    <div class="footer-bottom">
      <span>&copy; {{.Year}} {{.SiteName}}. All rights reserved.</span>
      <span><a href="/sitemap.html">Sitemap</a> &middot; <a href="/sitemap.xml">XML Sitemap</a></span>
    </div>
  </footer>
</body>
</html>
`

const homeContent = `{{define "content"}}
      <section class="hub-intro">
        <h1>{{.Heading}}</h1>
        <p>{{.Intro}}</p>
      </section>
      <section class="hub-grid">
{{- range .Cards}}
        <a href="{{.Path}}" class="hub-card">
          <span class="hub-card-icon">{{.Icon}}</span>
          <span class="hub-card-name">{{.Name}} Converter</span>
          <span class="hub-card-desc">{{.Description}}</span>
        </a>
{{- end}}
      </section>
{{end}}`

const categoryContent = `{{define "content"}}
      <article class="converter-card">
        <div class="converter-card-header">
          <h1>{{.Icon}} {{.Name}} Converter</h1>
        </div>
        <p>{{.Description}}</p>
        <h2>Units</h2>
        <ul class="unit-list">
{{- range .Units}}
          <li>{{.}}</li>
{{- end}}
        </ul>
      </article>

      <section class="quick-ref-card">
        <h2>Quick Reference: 1 {{.Base}}</h2>
        <table class="quick-ref">
          <tbody>
{{- range .QuickRef}}
            <tr><td>{{.Label}}</td><td>{{.Display}}</td></tr>
{{- end}}
          </tbody>
        </table>
      </section>

      <section class="pair-related-card">
        <h2>Popular {{.Name}} Conversions</h2>
        <ul class="pair-related-list">
{{- range .Popular}}
          <li><a href="{{.Path}}">{{.Label}}</a></li>
{{- end}}
        </ul>
      </section>
{{end}}`

const pairContent = `{{define "content"}}
      <article class="converter-card pair-page-card">
        <div class="converter-card-header">
          <h1>Convert {{.From.Name}} to {{.To.Name}}</h1>
        </div>
        <p class="pair-intro">Convert <strong>{{.From.Name}} [{{.From.Symbol}}]</strong> to <strong>{{.To.Name}} [{{.To.Symbol}}]</strong>, or <a href="{{.ReversePath}}">vice versa</a>.</p>
      </article>

      <section class="pair-info-card">
        <h2>How to Convert {{.From.Name}} to {{.To.Name}}</h2>
        <p>{{.FormulaForward}}</p>
        <p>{{.FormulaReverse}}</p>
        <p><strong>Example:</strong> convert {{.ExampleValue}} {{.From.Name}} ({{.From.Symbol}}) to {{.To.Name}} ({{.To.Symbol}}):<br>
        {{.Example}}</p>
      </section>

      <section class="pair-info-card">
        <h2>{{.From.Name}} Definition</h2>
        {{.Definition}}
      </section>

      <section class="pair-table-card">
        <h2>{{.From.Name}} to {{.To.Name}} Conversion Table</h2>
        <table class="pair-table">
          <thead>
            <tr><th>{{.From.Name}} [{{.From.Symbol}}]</th><th>{{.To.Name}} [{{.To.Symbol}}]</th></tr>
          </thead>
          <tbody>
{{- range .Rows}}
            <tr><td>{{.From}}</td><td>{{.To}}</td></tr>
{{- end}}
          </tbody>
        </table>
      </section>

      <section class="pair-related-card">
        <h2>Popular {{.CategoryName}} Conversions</h2>
        <div class="pair-related-grid">
{{- range .Related}}
          <ul class="pair-related-list">
{{- range .}}
            <li><a href="{{.Path}}">{{.Label}}</a></li>
{{- end}}
          </ul>
{{- end}}
        </div>
      </section>
{{end}}`

const landHubContent = `{{define "content"}}
      <article class="converter-card">
        <div class="converter-card-header">
          <h1>🌾 Indian Land Unit Converter</h1>
        </div>
        <p>Land measurement units differ from state to state. Pick a state to convert Bigha, Katha, Kanal, Ground, Cent and more.</p>
      </article>
      <section class="land-state-grid">
{{- range .Regions}}
        <a href="{{.Path}}" class="land-state-card">
          <div class="land-state-badge">{{.Short}}</div>
          <div class="land-state-name">{{.Name}}</div>
          <div class="land-state-units">{{.UnitNames}}</div>
        </a>
{{- end}}
      </section>
{{end}}`

const regionContent = `{{define "content"}}
      <article class="converter-card">
        <div class="converter-card-header">
          <h1>🌾 {{.Name}} Land Unit Converter</h1>
        </div>
        <p>{{.Description}}</p>
      </article>

      <section class="pair-info-card">
        <h2>{{.Name}} Land Units Reference</h2>
        <ul>
{{- range .Notes}}
          <li><strong>1 {{.Unit}}</strong> = {{.SqFt}} sq ft{{if .Note}} <em>({{.Note}})</em>{{end}}</li>
{{- end}}
        </ul>
      </section>

      <section class="pair-table-card">
        <h2>{{.Name}} Land Unit Conversion Table</h2>
        <table class="pair-table">
          <tbody>
{{- range .Rows}}
            <tr><td>1 {{.Unit}}</td><td>= {{.ToSqFt}} sq ft</td></tr>
            <tr><td>1 sq ft</td><td>= {{.FromSqFt}} {{.Unit}}</td></tr>
{{- end}}
          </tbody>
        </table>
      </section>

      <section class="pair-related-card">
        <h2>Other Indian State Land Converters</h2>
        <ul class="pair-related-list">
{{- range .Others}}
          <li><a href="{{.Path}}">{{.Label}}</a></li>
{{- end}}
        </ul>
      </section>
{{end}}`

const sitemapContent = `{{define "content"}}
      <h1>Sitemap</h1>
      <div class="sitemap-grid">
{{- range .Groups}}
        <div class="sitemap-group">
          <h3>{{.Name}}</h3>
          <ul>
{{- range .Links}}
            <li><a href="{{.Path}}">{{.Label}}</a></li>
{{- end}}
          </ul>
        </div>
{{- end}}
      </div>
{{end}}`
