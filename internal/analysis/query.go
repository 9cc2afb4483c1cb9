package analysis

import (
	"strings"

	"StockDesk/internal/model"
)

// PriceOnDate returns the close of the first newest-first record whose date
// exactly equals targetDate. Only the input is trimmed.
func PriceOnDate(series model.Series, targetDate string) (float64, error) {
	target := strings.TrimSpace(targetDate)
	for _, r := range series.Newest().Records {
		if r.Date != target {
			continue
		}
		if !r.Close.Valid {
			return 0, &DateError{Date: target, Err: ErrPriceMissing}
		}
		return r.Close.Float64, nil
	}
	return 0, &DateError{Date: target, Err: ErrDateNotFound}
}
