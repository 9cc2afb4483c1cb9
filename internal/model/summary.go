package model

import (
	"fmt"

	"github.com/guregu/null/v6"
)

// Summary is a fixed-window statistical digest of a series.
type Summary struct {
	Symbol        string     `json:"symbol"`
	Days          int        `json:"days"`      // records actually used
	Requested     int        `json:"requested"` // window size asked for
	From          string     `json:"from"`      // baseline (oldest in window) date
	To            string     `json:"to"`        // current (newest) date
	CurrentPrice  null.Float `json:"current_price"`
	PriceChange   float64    `json:"price_change"`
	PercentChange float64    `json:"percent_change"`
	High          float64    `json:"high"`
	Low           float64    `json:"low"`
	AverageVolume float64    `json:"average_volume"`
}

// Period returns the human label of the window, e.g. "Last 10 Days".
func (s *Summary) Period() string {
	return fmt.Sprintf("Last %d Days", s.Days)
}

// Truncated reports whether the series was shorter than the requested window.
func (s *Summary) Truncated() bool {
	return s.Days < s.Requested
}
