package main

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/swapunits/swapunits/internal/calendar"
	"github.com/swapunits/swapunits/internal/config"
	"github.com/swapunits/swapunits/internal/format"
	"github.com/swapunits/swapunits/internal/land"
	"github.com/swapunits/swapunits/internal/storage"
	"github.com/swapunits/swapunits/internal/units"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"1", 1, false},
		{"1,500", 1500, false},
		{" 2.5 ", 2.5, false},
		{"-40", -40, false},
		{"1e3", 1000, false},
		{"", 0, true},
		{"abc", 0, true},
		{"Inf", 0, true},
		{"NaN", 0, true},
		{"1e400", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseValue(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseValue(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseValue(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"invalid date", fmt.Errorf("parsing: %w", calendar.ErrInvalidDate), ExitDataError},
		{"unknown category", units.ErrUnknownCategory, ExitDataError},
		{"unknown unit", fmt.Errorf("%w: %q", units.ErrUnknownUnit, "furlong"), ExitDataError},
		{"unknown region", land.ErrUnknownRegion, ExitDataError},
		{"page not found", storage.ErrNotFound, ExitDataError},
		{"other", errors.New("disk full"), ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	for _, dayFirst := range []bool{false, true} {
		cfg := config.Default()
		cfg.DayFirst = dayFirst

		got, err := parseDate(cfg, "2024-03-02")
		if err != nil {
			t.Fatalf("parseDate(dayFirst=%v) error = %v", dayFirst, err)
		}
		want := calendar.Date{Day: 2, Month: 3, Year: 2024}
		if got != want {
			t.Errorf("parseDate(dayFirst=%v) = %v, want %v", dayFirst, got, want)
		}

		if _, err := parseDate(cfg, "2023-02-29"); !errors.Is(err, calendar.ErrInvalidDate) {
			t.Errorf("parseDate(2023-02-29) error = %v, want ErrInvalidDate", err)
		}
	}
}

func TestRebuildIndex(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "pages.jsonl")
	pages := []storage.Page{
		{Path: "/", Title: "SwapUnits", Kind: storage.KindHome, Priority: 1},
		{Path: "/length/", Title: "Length Converter", Kind: storage.KindCategory, Category: "length", Priority: 0.8},
	}
	if err := storage.WriteAll(manifest, pages); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	got, err := rebuildIndex(filepath.Join(dir, "index", "pages.db"), manifest)
	if err != nil {
		t.Fatalf("rebuildIndex() error = %v", err)
	}
	if got != len(pages) {
		t.Errorf("rebuildIndex() = %d, want %d", got, len(pages))
	}
}

func TestNewConvertResult(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		value       float64
		from, to    string
		wantNull    bool
		wantDisplay string
	}{
		{"finite", "temperature", 100, "celsius", "fahrenheit", false, "212"},
		{"overflow", "length", 1e300, "lightyear", "nanometer", true, format.Placeholder},
		{"unknown unit", "length", 1, "meter", "furlong", true, format.Placeholder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newConvertResult(tt.category, tt.value, tt.from, tt.to)
			if (r.Result == nil) != tt.wantNull {
				t.Errorf("Result = %v, want null %v", r.Result, tt.wantNull)
			}
			if r.Display != tt.wantDisplay {
				t.Errorf("Display = %q, want %q", r.Display, tt.wantDisplay)
			}

			var buf bytes.Buffer
			if err := encodeJSON(&buf, r); err != nil {
				t.Fatalf("encodeJSON() error = %v", err)
			}
			if got := strings.Contains(buf.String(), `"result": null`); got != tt.wantNull {
				t.Errorf("encodeJSON() = %s, want null result %v", buf.String(), tt.wantNull)
			}
		})
	}
}

func TestEncodeJSON_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, map[string]float64{"v": math.Inf(1)}); err == nil {
		t.Fatal("encodeJSON(+Inf) error = nil, want error")
	}
	if buf.Len() != 0 {
		t.Errorf("encodeJSON(+Inf) wrote %q, want nothing", buf.String())
	}
}
