package tradingday

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/scmhub/calendar"
)

const (
	DefaultMIC    = "xnys"
	DefaultLayout = "01/02/2006"
)

// fallbackLayouts are tried after the configured layout.
var fallbackLayouts = []string{"1/2/2006", "2006-01-02"}

// Calendar answers whether a date string falls on an exchange business day.
type Calendar struct {
	cal      *calendar.Calendar
	loc      *time.Location
	layout   string
	fallback bool // plain Mon-Fri when the exchange calendar is unavailable
}

// New returns a Calendar for the exchange identified by mic, falling back to
// NYSE and then to a weekday-only calendar.
func New(mic, layout string) *Calendar {
	if mic == "" {
		mic = DefaultMIC
	}
	if layout == "" {
		layout = DefaultLayout
	}
	mic = strings.ToLower(mic)

	cal := calendar.GetCalendar(mic)
	if cal == nil && mic != DefaultMIC {
		log.Printf("[WARN] No calendar for MIC %q, using %s", mic, DefaultMIC)
		cal = calendar.GetCalendar(DefaultMIC)
	}
	if cal == nil {
		log.Printf("[WARN] Exchange calendars unavailable, treating Mon-Fri as business days")
		return &Calendar{loc: time.UTC, layout: layout, fallback: true}
	}
	return &Calendar{cal: cal, loc: cal.Loc, layout: layout}
}

// Parse reads date with the configured layout or one of the fallbacks.
func (c *Calendar) Parse(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	for _, layout := range append([]string{c.layout}, fallbackLayouts...) {
		if t, err := time.ParseInLocation(layout, date, c.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", date)
}

// IsBusinessDay reports whether the exchange trades on t. Years outside the
// exchange calendar's holiday table use the plain Mon-Fri rule.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	t = t.In(c.loc)
	if c.fallback || !c.covers(t) {
		wd := t.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	}
	return c.cal.IsBusinessDay(t)
}

// covers reports whether t lies inside the years the calendar has holidays for.
func (c *Calendar) covers(t time.Time) bool {
	start, end := c.cal.Years()
	return t.Year() >= start && t.Year() <= end
}

// Closed reports whether date falls on a day the exchange was closed. Dates
// that cannot be parsed are reported as not closed.
func (c *Calendar) Closed(date string) bool {
	t, err := c.Parse(date)
	if err != nil {
		return false
	}
	return !c.IsBusinessDay(t)
}

// Hint returns a short explanation for a missing date, or "" when there is none.
func (c *Calendar) Hint(date string) string {
	if c == nil || !c.Closed(date) {
		return ""
	}
	return "market closed on that day"
}
