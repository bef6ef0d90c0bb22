// Package storage persists the generated page manifest as JSONL and indexes it
// in SQLite for full-text search.
package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// ErrNotFound is returned when a page is not in the index.
var ErrNotFound = errors.New("page not found")

// Page kinds.
const (
	KindHome     = "home"
	KindCategory = "category"
	KindPair     = "pair"
	KindLandHub  = "land"
	KindRegion   = "region"
	KindSitemap  = "sitemap"
)

// Page is one generated HTML page.
type Page struct {
	Path        string   `json:"path"` // site-relative URL path, e.g. "/length/meter-to-foot/"
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Kind        string   `json:"kind"`
	Category    string   `json:"category,omitempty"`
	From        string   `json:"from,omitempty"`
	To          string   `json:"to,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Priority    float64  `json:"priority"`
}

// ReadAll reads all pages from a JSONL file.
func ReadAll(path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening pages file: %w", err)
	}
	defer f.Close()

	var pages []Page
	scanner := bufio.NewScanner(f)

	// Increase buffer size for long lines
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var p Page
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		pages = append(pages, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading pages file: %w", err)
	}

	return pages, nil
}

// Append adds a page to the end of a JSONL file.
func Append(path string, p Page) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening pages file for append: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding page: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}
	return nil
}

// WriteAll writes all pages to a JSONL file, replacing existing content.
func WriteAll(path string, pages []Page) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating pages file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, p := range pages {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encoding page %d: %w", i, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("writing page %d: %w", i, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing pages file: %w", err)
	}
	return nil
}

// FindByPath returns the index of the page with the given path.
func FindByPath(pages []Page, path string) (int, bool) {
	for i, p := range pages {
		if p.Path == path {
			return i, true
		}
	}
	return -1, false
}
