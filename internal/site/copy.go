package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed copy.yml
var copyYAML []byte

// CategoryCopy is the prose attached to one converter category.
type CategoryCopy struct {
	Heading     string            `yaml:"heading"`
	Icon        string            `yaml:"icon"`
	Description string            `yaml:"description"`
	Keywords    string            `yaml:"keywords"`
	Definitions map[string]string `yaml:"definitions"`
}

type copyDocument struct {
	Categories map[string]CategoryCopy `yaml:"categories"`
}

// Copy holds the page prose keyed by category id.
type Copy struct {
	categories map[string]CategoryCopy
	md         goldmark.Markdown
}

// LoadCopy parses a copy document. An empty document yields empty prose and
// generated fallbacks.
func LoadCopy(data []byte) (*Copy, error) {
	var doc copyDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing page copy: %w", err)
	}
	if doc.Categories == nil {
		doc.Categories = map[string]CategoryCopy{}
	}
	return &Copy{
		categories: doc.Categories,
		md:         goldmark.New(goldmark.WithExtensions(extension.Typographer)),
	}, nil
}

// DefaultCopy returns the embedded page copy.
func DefaultCopy() (*Copy, error) {
	return LoadCopy(copyYAML)
}

// Category returns the copy for a category. Missing fields fall back to
// text derived from the category name.
func (c *Copy) Category(id, name string) CategoryCopy {
	cc := c.categories[id]
	if cc.Heading == "" {
		cc.Heading = name + " Conversion"
	}
	if cc.Description == "" {
		cc.Description = fmt.Sprintf("Convert between %s units.", strings.ToLower(name))
	}
	if cc.Keywords == "" {
		cc.Keywords = strings.ToLower(name) + " converter"
	}
	return cc
}

// Definition renders the Markdown definition of a unit to HTML.
func (c *Copy) Definition(categoryID, categoryName, unitID, unitName string) (template.HTML, error) {
	src, ok := c.categories[categoryID].Definitions[unitID]
	if !ok || src == "" {
		src = fmt.Sprintf("%s is a unit of %s.", unitName, strings.ToLower(categoryName))
	}
	return c.render(src)
}

func (c *Copy) render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
