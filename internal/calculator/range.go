package calculator

import (
	"math"

	"StockDesk/internal/model"
)

// WindowStats holds the extremes and mean volume of a window of records.
type WindowStats struct {
	High          float64
	Low           float64
	AverageVolume float64
}

// CalculateWindowStats scans records ignoring null fields. Each statistic falls
// back to 0 when the window has no value for it.
func CalculateWindowStats(records []model.DailyRecord) WindowStats {
	high := math.Inf(-1)
	low := math.Inf(1)
	var volSum float64
	var volCount int
	for _, r := range records {
		if r.High.Valid && r.High.Float64 > high {
			high = r.High.Float64
		}
		if r.Low.Valid && r.Low.Float64 < low {
			low = r.Low.Float64
		}
		if r.Volume.Valid {
			volSum += r.Volume.Float64
			volCount++
		}
	}

	var st WindowStats
	if !math.IsInf(high, -1) {
		st.High = high
	}
	if !math.IsInf(low, 1) {
		st.Low = low
	}
	if volCount > 0 {
		st.AverageVolume = volSum / float64(volCount)
	}
	return st
}
