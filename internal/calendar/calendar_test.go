package calendar

import (
	"errors"
	"testing"
)

func TestComputeDuration(t *testing.T) {
	tests := []struct {
		name                string
		start, end          Date
		includeEnd          bool
		wantTotal           int
		wantY, wantM, wantD int
		wantBreakdown       string
	}{
		{"leap year span", Date{1, 1, 2024}, Date{1, 1, 2025}, false, 366, 1, 0, 0, "1 years"},
		{"common year span", Date{1, 1, 2023}, Date{1, 1, 2024}, false, 365, 1, 0, 0, "1 years"},
		{"reversed", Date{1, 1, 2025}, Date{1, 1, 2024}, false, 366, 1, 0, 0, "1 years"},
		{"same day", Date{15, 6, 2024}, Date{15, 6, 2024}, false, 0, 0, 0, 0, "Same day"},
		{"same day inclusive", Date{15, 6, 2024}, Date{15, 6, 2024}, true, 1, 0, 0, 1, "1 days"},
		{"inclusive reversed", Date{10, 1, 2024}, Date{1, 1, 2024}, true, 10, 0, 0, 10, "10 days"},
		{"borrow across year end", Date{15, 12, 2023}, Date{10, 1, 2024}, false, 26, 0, 0, 26, "26 days"},
		{"borrow from february", Date{31, 1, 2024}, Date{1, 3, 2024}, false, 30, 0, 1, 1, "1 months, 1 days"},
		{"borrow from short february", Date{31, 1, 2023}, Date{1, 3, 2023}, false, 29, 0, 1, 1, "1 months, 1 days"},
		{"mixed", Date{10, 3, 2020}, Date{12, 5, 2023}, false, 1158, 3, 2, 2, "3 years, 2 months, 2 days"},
		{"inclusive month end", Date{1, 1, 2024}, Date{31, 1, 2024}, true, 31, 0, 1, 0, "1 months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeDuration(tt.start, tt.end, tt.includeEnd)
			if err != nil {
				t.Fatalf("ComputeDuration() error = %v", err)
			}
			if got.TotalDays != tt.wantTotal {
				t.Errorf("TotalDays = %d, want %d", got.TotalDays, tt.wantTotal)
			}
			if got.Years != tt.wantY || got.Months != tt.wantM || got.Days != tt.wantD {
				t.Errorf("breakdown = {%d %d %d}, want {%d %d %d}", got.Years, got.Months, got.Days, tt.wantY, tt.wantM, tt.wantD)
			}
			if got.Years < 0 || got.Months < 0 || got.Days < 0 {
				t.Errorf("negative breakdown component: %+v", got)
			}
			if b := got.Breakdown(); b != tt.wantBreakdown {
				t.Errorf("Breakdown() = %q, want %q", b, tt.wantBreakdown)
			}
		})
	}
}

func TestComputeDuration_Derived(t *testing.T) {
	r, err := ComputeDuration(Date{1, 1, 2024}, Date{1, 1, 2025}, false)
	if err != nil {
		t.Fatal(err)
	}
	if r.TotalSeconds != 366*86400 || r.TotalMinutes != 366*1440 || r.TotalHours != 366*24 {
		t.Errorf("totals = %d s, %d min, %d h", r.TotalSeconds, r.TotalMinutes, r.TotalHours)
	}
	if r.Weeks != 52 || r.RemainderDays != 2 {
		t.Errorf("weeks = %d + %d, want 52 + 2", r.Weeks, r.RemainderDays)
	}
	if got := r.WeeksDisplay(); got != "52 weeks + 2 days" {
		t.Errorf("WeeksDisplay() = %q", got)
	}
	if got := r.YearsDisplay(); got != "1.00 total years" {
		t.Errorf("YearsDisplay() = %q", got)
	}

	short, _ := ComputeDuration(Date{1, 1, 2024}, Date{31, 1, 2024}, false)
	if got := short.YearsDisplay(); got != "8.21% of a year" {
		t.Errorf("YearsDisplay(30 days) = %q, want 8.21%% of a year", got)
	}
	if got := short.WeeksDisplay(); got != "4 weeks + 2 days" {
		t.Errorf("WeeksDisplay(30 days) = %q", got)
	}

	none, _ := ComputeDuration(Date{1, 1, 2024}, Date{3, 1, 2024}, false)
	if got := none.WeeksDisplay(); got != "0 weeks" {
		t.Errorf("WeeksDisplay(2 days) = %q, want 0 weeks", got)
	}
}

func TestShiftDate(t *testing.T) {
	tests := []struct {
		name  string
		start Date
		spec  ShiftSpec
		want  Date
		label string
	}{
		{"month end rollover", Date{31, 1, 2024}, ShiftSpec{Months: 1}, Date{2, 3, 2024}, AddedLabel},
		{"leap day plus year", Date{29, 2, 2024}, ShiftSpec{Years: 1}, Date{1, 3, 2025}, AddedLabel},
		{"subtract month rollover", Date{31, 3, 2024}, ShiftSpec{Months: 1, Direction: Subtract}, Date{2, 3, 2024}, SubtractedLabel},
		{"weeks and days", Date{1, 1, 2024}, ShiftSpec{Weeks: 2, Days: 3}, Date{18, 1, 2024}, AddedLabel},
		{"subtract into leap day", Date{1, 3, 2024}, ShiftSpec{Days: 1, Direction: Subtract}, Date{29, 2, 2024}, SubtractedLabel},
		{"month across year", Date{15, 12, 2024}, ShiftSpec{Months: 1}, Date{15, 1, 2025}, AddedLabel},
		{"months then days", Date{31, 1, 2024}, ShiftSpec{Months: 1, Days: 30}, Date{1, 4, 2024}, AddedLabel},
		{"everything", Date{10, 6, 2020}, ShiftSpec{Years: 2, Months: 14, Weeks: 1, Days: 1, Direction: Subtract}, Date{2, 4, 2017}, SubtractedLabel},
		{"zero", Date{5, 5, 2024}, ShiftSpec{}, Date{5, 5, 2024}, AddedLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShiftDate(tt.start, tt.spec)
			if err != nil {
				t.Fatalf("ShiftDate() error = %v", err)
			}
			if got.Date != tt.want {
				t.Errorf("ShiftDate(%s) = %s, want %s", tt.start, got.Date, tt.want)
			}
			if got.Label != tt.label {
				t.Errorf("Label = %q, want %q", got.Label, tt.label)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"add": Add, "": Add, "subtract": Subtract} {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDirection("multiply"); err == nil {
		t.Error("ParseDirection(multiply) error = nil")
	}
}

func TestCountBusinessDays(t *testing.T) {
	// 2024-01-01 is a Monday.
	tests := []struct {
		name       string
		start, end Date
		includeEnd bool
		want       int
	}{
		{"mon to fri inclusive", Date{1, 1, 2024}, Date{5, 1, 2024}, true, 5},
		{"mon to fri exclusive", Date{1, 1, 2024}, Date{5, 1, 2024}, false, 4},
		{"reversed", Date{5, 1, 2024}, Date{1, 1, 2024}, true, 5},
		{"weekend only", Date{6, 1, 2024}, Date{7, 1, 2024}, true, 0},
		{"two weeks", Date{1, 1, 2024}, Date{15, 1, 2024}, false, 10},
		{"two weeks inclusive", Date{1, 1, 2024}, Date{15, 1, 2024}, true, 11},
		{"same weekday", Date{3, 1, 2024}, Date{3, 1, 2024}, true, 1},
		{"same weekday exclusive", Date{3, 1, 2024}, Date{3, 1, 2024}, false, 0},
		{"sat to mon inclusive", Date{6, 1, 2024}, Date{8, 1, 2024}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountBusinessDays(tt.start, tt.end, tt.includeEnd)
			if err != nil {
				t.Fatalf("CountBusinessDays() error = %v", err)
			}
			if got.Count != tt.want {
				t.Errorf("Count = %d, want %d", got.Count, tt.want)
			}
			if got.WorkHours != tt.want*8 {
				t.Errorf("WorkHours = %d, want %d", got.WorkHours, tt.want*8)
			}
		})
	}
}

func TestCountBusinessDays_MatchesDayByDay(t *testing.T) {
	base := Date{1, 1, 2024}.Ordinal()
	for offset := 0; offset < 7; offset++ {
		for span := 0; span < 40; span++ {
			start := FromOrdinal(base + offset)
			end := FromOrdinal(base + offset + span)

			want := 0
			for n := start.Ordinal(); n < end.Ordinal(); n++ {
				if !isWeekend(n) {
					want++
				}
			}
			got, err := CountBusinessDays(start, end, false)
			if err != nil {
				t.Fatal(err)
			}
			if got.Count != want {
				t.Errorf("CountBusinessDays(%s, %s) = %d, want %d", start, end, got.Count, want)
			}
			if got.Count < 0 || got.Count > span+1 {
				t.Errorf("CountBusinessDays(%s, %s) = %d out of range", start, end, got.Count)
			}
		}
	}
}

func TestBusinessDays_WorkWeeks(t *testing.T) {
	got, _ := CountBusinessDays(Date{1, 1, 2024}, Date{9, 1, 2024}, true)
	if got.Count != 7 {
		t.Fatalf("Count = %d, want 7", got.Count)
	}
	if s := got.WorkWeeksDisplay(); s != "1.4" {
		t.Errorf("WorkWeeksDisplay() = %q, want 1.4", s)
	}
}

func TestInvalidDateRejectedEverywhere(t *testing.T) {
	bad := Date{Day: 31, Month: 2, Year: 2024}
	good := Date{Day: 1, Month: 1, Year: 2024}

	if _, err := ComputeDuration(bad, good, false); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ComputeDuration(bad start) error = %v", err)
	}
	if _, err := ComputeDuration(good, bad, true); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ComputeDuration(bad end) error = %v", err)
	}
	if _, err := ShiftDate(bad, ShiftSpec{Days: 1}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ShiftDate(bad) error = %v", err)
	}
	if _, err := CountBusinessDays(good, bad, false); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("CountBusinessDays(bad end) error = %v", err)
	}
}
