package tradingday

import "testing"

func TestCalendar_Closed(t *testing.T) {
	c := New("", "")

	tests := []struct {
		date   string
		closed bool
	}{
		{"12/13/2025", true},  // Saturday
		{"12/14/2025", true},  // Sunday
		{"12/25/2025", true},  // Christmas
		{"12/12/2025", false}, // Friday
		{"2025-12-15", false}, // Monday, ISO layout
		{"not a date", false},
		{"01/01/1999", false}, // Friday, before the holiday table
		{"01/02/1999", true},  // Saturday, before the holiday table
		{"01/01/2020", false}, // Wednesday, New Year outside the holiday table
		{"01/01/2035", false}, // Monday, after the holiday table
		{"01/06/2035", true},  // Saturday, after the holiday table
	}
	for _, tt := range tests {
		if got := c.Closed(tt.date); got != tt.closed {
			t.Errorf("Closed(%q) = %v, want %v", tt.date, got, tt.closed)
		}
	}
}

func TestCalendar_Hint(t *testing.T) {
	c := New("XNYS", DefaultLayout)
	if c.Hint("12/13/2025") == "" {
		t.Error("expected a hint for a weekend date")
	}
	if c.Hint("12/12/2025") != "" {
		t.Error("expected no hint for a trading day")
	}
	var none *Calendar
	if none.Hint("12/13/2025") != "" {
		t.Error("nil calendar should give no hint")
	}
}

func TestCalendar_HintOutsideHolidayTable(t *testing.T) {
	c := New("xnys", "")
	for _, date := range []string{"01/01/1999", "01/01/2020", "01/01/2035"} {
		if got := c.Hint(date); got != "" {
			t.Errorf("Hint(%q) = %q, want no hint for a weekday", date, got)
		}
	}
	if c.Hint("01/05/2020") == "" {
		t.Error("expected a weekend hint for 01/05/2020 (Sunday)")
	}
}
