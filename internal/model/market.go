package model

import (
	"strings"

	"github.com/guregu/null/v6"
)

// Order declares how the records of a Series are arranged.
type Order int

const (
	// NewestFirst is the storage order of source files: index 0 is the most recent day.
	NewestFirst Order = iota
	// OldestFirst is chronological order, used for moving averages.
	OldestFirst
)

func (o Order) String() string {
	if o == OldestFirst {
		return "oldest-first"
	}
	return "newest-first"
}

// DailyRecord is one trading day for one instrument.
// Date is an opaque matching key and is never parsed as a calendar date.
type DailyRecord struct {
	Date   string     `json:"date"`
	Open   null.Float `json:"open"`
	High   null.Float `json:"high"`
	Low    null.Float `json:"low"`
	Close  null.Float `json:"close"`
	Volume null.Float `json:"volume"`
}

// Series is an ordered sequence of daily records for one instrument.
type Series struct {
	Symbol  string        `json:"symbol"`
	Order   Order         `json:"-"`
	Records []DailyRecord `json:"records"`
}

// NormalizeSymbol returns the store key for a symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// NewSeries builds a newest-first Series. Records without a date are dropped.
func NewSeries(symbol string, records []DailyRecord) Series {
	kept := make([]DailyRecord, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.Date) == "" {
			continue
		}
		kept = append(kept, r)
	}
	return Series{Symbol: NormalizeSymbol(symbol), Order: NewestFirst, Records: kept}
}

// Len returns the number of records.
func (s Series) Len() int { return len(s.Records) }

// ToChronological returns an oldest-first copy of the series.
func (s Series) ToChronological() Series {
	return s.reorder(OldestFirst)
}

// Newest returns a newest-first copy of the series.
func (s Series) Newest() Series {
	return s.reorder(NewestFirst)
}

func (s Series) reorder(target Order) Series {
	out := Series{Symbol: s.Symbol, Order: target, Records: make([]DailyRecord, len(s.Records))}
	if s.Order == target {
		copy(out.Records, s.Records)
		return out
	}
	n := len(s.Records)
	for i, r := range s.Records {
		out.Records[n-1-i] = r
	}
	return out
}

// Closes extracts the close column in the series' current order.
func (s Series) Closes() []null.Float {
	closes := make([]null.Float, len(s.Records))
	for i, r := range s.Records {
		closes[i] = r.Close
	}
	return closes
}
