package calendar

import "fmt"

// Direction selects whether a shift moves forward or backward in time.
type Direction int

const (
	Add Direction = iota
	Subtract
)

func (d Direction) String() string {
	if d == Subtract {
		return "subtract"
	}
	return "add"
}

// ParseDirection accepts "add" or "subtract".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "add", "":
		return Add, nil
	case "subtract":
		return Subtract, nil
	}
	return Add, fmt.Errorf("unknown direction %q (want add or subtract)", s)
}

// ShiftSpec is an offset to apply to a date.
type ShiftSpec struct {
	Years     int       `json:"years"`
	Months    int       `json:"months"`
	Weeks     int       `json:"weeks"`
	Days      int       `json:"days"`
	Direction Direction `json:"-"`
}

// ShiftResult is the shifted date with a description of the operation.
type ShiftResult struct {
	Date  Date   `json:"date"`
	Label string `json:"label"`
}

// Labels for ShiftResult.
const (
	AddedLabel      = "Added duration to start date"
	SubtractedLabel = "Subtracted duration from start date"
)

// ShiftDate applies spec to start. Years are applied first, then months, then
// weeks and days together; each step normalizes before the next, so
// Jan 31 + 1 month lands on Mar 2 in a leap year.
func ShiftDate(start Date, spec ShiftSpec) (ShiftResult, error) {
	if err := validate(start); err != nil {
		return ShiftResult{}, err
	}

	factor := 1
	label := AddedLabel
	if spec.Direction == Subtract {
		factor = -1
		label = SubtractedLabel
	}

	d := Normalize(start.Year+spec.Years*factor, start.Month, start.Day)
	d = Normalize(d.Year, d.Month+spec.Months*factor, d.Day)
	d = Normalize(d.Year, d.Month, d.Day+(spec.Weeks*7+spec.Days)*factor)

	return ShiftResult{Date: d, Label: label}, nil
}
