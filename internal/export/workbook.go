// Package export writes conversion matrices to spreadsheet workbooks.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/swapunits/swapunits/internal/land"
	"github.com/swapunits/swapunits/internal/units"
)

// LandPrefix selects a land region by slug, e.g. "land/west-bengal".
const LandPrefix = "land/"

// maxSheetName is the Excel limit on sheet name length.
const maxSheetName = 31

const cornerLabel = "From \\ To"

var sheetNameReplacer = strings.NewReplacer(
	":", "-", "\\", "-", "/", "-", "?", "", "*", "", "[", "(", "]", ")",
)

// Resolve maps export ids to categories. Plain ids name unit categories;
// LandPrefix ids name land regions. An empty list selects every unit category.
func Resolve(ids []string) ([]units.Category, error) {
	if len(ids) == 0 {
		return units.Categories(), nil
	}
	cats := make([]units.Category, 0, len(ids))
	for _, id := range ids {
		if slug, ok := strings.CutPrefix(id, LandPrefix); ok {
			r, err := land.Lookup(slug)
			if err != nil {
				return nil, err
			}
			cats = append(cats, r.Category())
			continue
		}
		c, ok := units.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", units.ErrUnknownCategory, id)
		}
		cats = append(cats, c)
	}
	return cats, nil
}

// WriteWorkbook writes one sheet per category. Row and column headers are
// unit labels, and each cell holds the value of one row unit in the column unit.
func WriteWorkbook(w io.Writer, categoryIDs []string) error {
	cats, err := Resolve(categoryIDs)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	first := -1
	for _, c := range cats {
		idx, err := writeSheet(f, c)
		if err != nil {
			return fmt.Errorf("writing sheet %s: %w", c.ID, err)
		}
		if first < 0 {
			first = idx
		}
	}
	f.SetActiveSheet(first)
	_ = f.DeleteSheet("Sheet1")

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, c units.Category) (int, error) {
	name := SheetName(c.Name)
	idx, err := f.NewSheet(name)
	if err != nil {
		return 0, err
	}

	if err := f.SetCellValue(name, "A1", cornerLabel); err != nil {
		return 0, err
	}
	for i, u := range c.Units {
		col, _ := excelize.ColumnNumberToName(i + 2)
		if err := f.SetCellValue(name, col+"1", u.Label); err != nil {
			return 0, err
		}
		if err := f.SetCellValue(name, fmt.Sprintf("A%d", i+2), u.Label); err != nil {
			return 0, err
		}
	}

	for r, from := range c.Units {
		for k, to := range c.Units {
			cell, err := excelize.CoordinatesToCellName(k+2, r+2)
			if err != nil {
				return 0, err
			}
			if err := f.SetCellValue(name, cell, c.Convert(1, from.ID, to.ID)); err != nil {
				return 0, err
			}
		}
	}

	last, _ := excelize.ColumnNumberToName(len(c.Units) + 1)
	if err := f.SetColWidth(name, "A", "A", 28); err != nil {
		return 0, err
	}
	if err := f.SetColWidth(name, "B", last, 18); err != nil {
		return 0, err
	}
	return idx, nil
}

// SheetName makes a category name safe for use as an Excel sheet name.
func SheetName(name string) string {
	s := sheetNameReplacer.Replace(name)
	if r := []rune(s); len(r) > maxSheetName {
		s = string(r[:maxSheetName])
	}
	return s
}
