package analysis

import (
	"fmt"

	"StockDesk/internal/calculator"
	"StockDesk/internal/model"
)

// DefaultWindow is the number of days summarized when the caller has no preference.
const DefaultWindow = 10

// Summarize digests the most recent windowSize records of a series. A series
// shorter than the window is summarized in full and the reduced count is reported.
func Summarize(series model.Series, windowSize int) (*model.Summary, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("window size %d: %w", windowSize, ErrInvalidParameter)
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("summarize %s: %w", series.Symbol, ErrEmptySeries)
	}

	records := series.Newest().Records
	days := min(windowSize, len(records))
	window := records[:days]
	current := window[0]
	baseline := window[days-1]

	sum := &model.Summary{
		Symbol:       series.Symbol,
		Days:         days,
		Requested:    windowSize,
		From:         baseline.Date,
		To:           current.Date,
		CurrentPrice: current.Close,
	}

	// A missing close on either end reports no change rather than propagating null.
	if current.Close.Valid && baseline.Close.Valid {
		sum.PriceChange = current.Close.Float64 - baseline.Close.Float64
		sum.PercentChange = calculator.ChangePercent(sum.PriceChange, baseline.Close.Float64)
	}

	st := calculator.CalculateWindowStats(window)
	sum.High = st.High
	sum.Low = st.Low
	sum.AverageVolume = st.AverageVolume
	return sum, nil
}
