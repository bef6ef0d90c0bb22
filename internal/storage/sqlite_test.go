package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testPages() []Page {
	return []Page{
		{Path: "/", Title: "SwapUnits Unit Converter", Kind: KindHome, Priority: 1},
		{Path: "/length/", Title: "Length Converter", Kind: KindCategory, Category: "length",
			Keywords: []string{"length converter", "meters to feet"}, Priority: 0.8},
		{Path: "/length/meter-to-foot/", Title: "Meter to Foot Converter", Kind: KindPair,
			Category: "length", From: "meter", To: "foot",
			Keywords: []string{"meter to foot", "m to ft"}, Priority: 0.7},
		{Path: "/length/foot-to-meter/", Title: "Foot to Meter Converter", Kind: KindPair,
			Category: "length", From: "foot", To: "meter",
			Keywords: []string{"foot to meter", "ft to m"}, Priority: 0.7},
		{Path: "/temperature/celsius-to-fahrenheit/", Title: "Celsius to Fahrenheit Converter", Kind: KindPair,
			Category: "temperature", From: "celsius", To: "fahrenheit",
			Keywords: []string{"celsius to fahrenheit", "°C to °F"}, Priority: 0.7},
		{Path: "/land/west-bengal/", Title: "West Bengal Land Unit Converter", Kind: KindRegion,
			Category: "land", Description: "Bigha, Katha and Chatak", Keywords: []string{"katha to sq ft"}, Priority: 0.7},
	}
}

// setupTestDB creates a test database rebuilt from a JSONL manifest.
func setupTestDB(t *testing.T) (*DB, string) {
	t.Helper()

	tmpDir := t.TempDir()
	jsonlPath := filepath.Join(tmpDir, "pages.jsonl")
	if err := WriteAll(jsonlPath, testPages()); err != nil {
		t.Fatalf("Failed to write test JSONL: %v", err)
	}

	db, err := OpenDB(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.RebuildFromJSONL(jsonlPath); err != nil {
		t.Fatalf("Failed to rebuild DB: %v", err)
	}
	return db, tmpDir
}

func TestOpenDB_CreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("OpenDB() did not create database file")
	}
	if n, err := db.Count(); err != nil || n != 0 {
		t.Errorf("Count() on new DB = %d, %v", n, err)
	}
}

func TestDB_RebuildFromJSONL(t *testing.T) {
	db, tmpDir := setupTestDB(t)

	count, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != len(testPages()) {
		t.Errorf("Count() = %d, want %d", count, len(testPages()))
	}

	// Rebuild overwrites
	jsonlPath := filepath.Join(tmpDir, "pages.jsonl")
	if err := WriteAll(jsonlPath, testPages()[:1]); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	rebuilt, err := db.RebuildFromJSONL(jsonlPath)
	if err != nil {
		t.Fatalf("RebuildFromJSONL() error = %v", err)
	}
	if rebuilt != 1 {
		t.Errorf("RebuildFromJSONL() = %d, want 1", rebuilt)
	}
	if count, _ = db.Count(); count != 1 {
		t.Errorf("After rebuild, Count() = %d, want 1", count)
	}
	if got, _ := db.Search("meter", 10); len(got) != 0 {
		t.Errorf("Search after rebuild returned stale pages: %v", got)
	}
}

func TestDB_GetByPath(t *testing.T) {
	db, _ := setupTestDB(t)

	p, err := db.GetByPath("/length/meter-to-foot/")
	if err != nil {
		t.Fatalf("GetByPath() error = %v", err)
	}
	want := testPages()[2]
	if p.Title != want.Title || p.From != "meter" || p.To != "foot" || p.Priority != 0.7 {
		t.Errorf("GetByPath() = %+v", p)
	}
	if len(p.Keywords) != 2 || p.Keywords[1] != "m to ft" {
		t.Errorf("Keywords = %v, want %v", p.Keywords, want.Keywords)
	}

	home, err := db.GetByPath("/")
	if err != nil {
		t.Fatal(err)
	}
	if home.Keywords != nil || home.Category != "" {
		t.Errorf("home page = %+v, want empty keywords and category", home)
	}

	if _, err := db.GetByPath("/nope/"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByPath(/nope/) error = %v, want ErrNotFound", err)
	}
}

func TestDB_Search(t *testing.T) {
	db, _ := setupTestDB(t)

	tests := []struct {
		query     string
		wantPaths []string
	}{
		{"fahrenheit", []string{"/temperature/celsius-to-fahrenheit/"}},
		{"katha", []string{"/land/west-bengal/"}},
		{"foot meter", []string{"/length/foot-to-meter/", "/length/meter-to-foot/"}},
		{"meter-to-foot", []string{"/length/meter-to-foot/"}},
		{"parsec", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			pages, err := db.Search(tt.query, 10)
			if err != nil {
				t.Fatalf("Search(%q) error = %v", tt.query, err)
			}
			got := map[string]bool{}
			for _, p := range pages {
				got[p.Path] = true
			}
			if len(got) != len(tt.wantPaths) {
				t.Fatalf("Search(%q) = %d pages, want %d: %v", tt.query, len(pages), len(tt.wantPaths), pages)
			}
			for _, w := range tt.wantPaths {
				if !got[w] {
					t.Errorf("Search(%q) missing %s", tt.query, w)
				}
			}
		})
	}
}

func TestDB_Search_Limit(t *testing.T) {
	db, _ := setupTestDB(t)
	pages, err := db.Search("converter", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 2 {
		t.Errorf("Search(converter, 2) = %d pages, want 2", len(pages))
	}
}

func TestDB_ListByCategory(t *testing.T) {
	db, _ := setupTestDB(t)

	pages, err := db.ListByCategory("length", 0)
	if err != nil {
		t.Fatalf("ListByCategory() error = %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("ListByCategory(length) = %d pages, want 3", len(pages))
	}
	if pages[0].Path != "/length/" {
		t.Errorf("first page = %s, want /length/ (ordered by path)", pages[0].Path)
	}

	limited, _ := db.ListByCategory("length", 1)
	if len(limited) != 1 {
		t.Errorf("ListByCategory(length, 1) = %d pages", len(limited))
	}
}

func TestPrepareFTSQuery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"meter", "meter"},
		{"  meter foot  ", "meter foot"},
		{"meter-to-foot", `"meter-to-foot"`},
		{`say "hi"`, `"say ""hi"""`},
		{"°C", `"°C"`},
		{"", ""},
	}

	for _, tt := range tests {
		if got := prepareFTSQuery(tt.input); got != tt.want {
			t.Errorf("prepareFTSQuery(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
