package analysis

import (
	"fmt"

	"StockDesk/internal/model"

	"github.com/guregu/null/v6"
)

// chronoSeries builds a newest-first series from oldest-first closes.
// Dates are "d1" (oldest) .. "dN" (newest).
func chronoSeries(closes ...float64) model.Series {
	records := make([]model.DailyRecord, 0, len(closes))
	for i := len(closes) - 1; i >= 0; i-- {
		records = append(records, model.DailyRecord{
			Date:  fmt.Sprintf("d%d", i+1),
			Close: null.FloatFrom(closes[i]),
		})
	}
	return model.NewSeries("test", records)
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
