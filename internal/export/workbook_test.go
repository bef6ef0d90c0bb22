package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/swapunits/swapunits/internal/land"
	"github.com/swapunits/swapunits/internal/units"
)

func openWorkbook(t *testing.T, ids []string) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, ids); err != nil {
		t.Fatalf("WriteWorkbook(%v) error = %v", ids, err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	if err != nil {
		t.Fatalf("GetCellValue(%s, %s) error = %v", sheet, ref, err)
	}
	return v
}

func TestWriteWorkbook_AllCategories(t *testing.T) {
	f := openWorkbook(t, nil)

	sheets := f.GetSheetList()
	cats := units.Categories()
	if len(sheets) != len(cats) {
		t.Fatalf("sheets = %v, want %d", sheets, len(cats))
	}
	for i, c := range cats {
		if sheets[i] != c.Name {
			t.Errorf("sheet %d = %q, want %q", i, sheets[i], c.Name)
		}
	}
}

func TestWriteWorkbook_Matrix(t *testing.T) {
	f := openWorkbook(t, []string{"length"})

	tests := []struct {
		ref  string
		want string
	}{
		{"A1", cornerLabel},
		{"B1", "Meter (m)"},
		{"C1", "Kilometer (km)"},
		{"A2", "Meter (m)"},
		{"A3", "Kilometer (km)"},
		{"B2", "1"},
		{"B3", "1000"},
	}
	for _, tt := range tests {
		if got := cell(t, f, "Length", tt.ref); got != tt.want {
			t.Errorf("Length!%s = %q, want %q", tt.ref, got, tt.want)
		}
	}

	rows, err := f.GetRows("Length")
	if err != nil {
		t.Fatal(err)
	}
	n := len(units.ListUnits("length"))
	if len(rows) != n+1 {
		t.Errorf("rows = %d, want %d", len(rows), n+1)
	}
}

func TestWriteWorkbook_Land(t *testing.T) {
	f := openWorkbook(t, []string{"land/west-bengal"})

	r, _ := land.Lookup("west-bengal")
	sheet := SheetName(r.Name)
	if got := cell(t, f, sheet, "B1"); got != "Square Feet (sq ft)" {
		t.Errorf("B1 = %q, want Square Feet (sq ft)", got)
	}
	// Katha is the 7th unit: row 8, and 1 katha is 720 sq ft.
	if got := cell(t, f, sheet, "B8"); got != "720" {
		t.Errorf("B8 = %q, want 720", got)
	}
}

func TestWriteWorkbook_UnknownID(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWorkbook(&buf, []string{"length", "flux"})
	if !errors.Is(err, units.ErrUnknownCategory) {
		t.Errorf("WriteWorkbook() error = %v, want ErrUnknownCategory", err)
	}

	err = WriteWorkbook(&buf, []string{"land/atlantis"})
	if !errors.Is(err, land.ErrUnknownRegion) {
		t.Errorf("WriteWorkbook() error = %v, want ErrUnknownRegion", err)
	}
	if buf.Len() != 0 {
		t.Error("WriteWorkbook() wrote output on error")
	}
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Length", "Length"},
		{"AP/Telangana/Karnataka", "AP-Telangana-Karnataka"},
		{"What? [draft]", "What (draft)"},
		{"Himachal Pradesh, Uttarakhand and Jammu & Kashmir", "Himachal Pradesh, Uttarakhand a"},
	}
	for _, tt := range tests {
		if got := SheetName(tt.name); got != tt.want {
			t.Errorf("SheetName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
