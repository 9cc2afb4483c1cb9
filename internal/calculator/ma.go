package calculator

import (
	"errors"

	"StockDesk/internal/model"

	"github.com/guregu/null/v6"
)

// SMA computes the simple moving average of chronologically ordered prices.
// Entry i is null while i+1 < period or when any price in its window is null;
// otherwise it is the mean of prices[i-period+1 .. i].
func SMA(prices []null.Float, period int) (model.MovingAverage, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := make(model.MovingAverage, len(prices))
	for i := period - 1; i < len(prices); i++ {
		if avg, ok := windowMean(prices[i-period+1 : i+1]); ok {
			out[i] = null.FloatFrom(avg)
		}
	}
	return out, nil
}

// windowMean sums the window from scratch so equal windows give identical means.
func windowMean(window []null.Float) (float64, bool) {
	sum := 0.0
	for _, p := range window {
		if !p.Valid {
			return 0, false
		}
		sum += p.Float64
	}
	return sum / float64(len(window)), true
}
