package analysis

import (
	"strings"

	"StockDesk/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SimulateTrade computes the profit of buying at the close of buyDate and selling
// at the close of sellDate. The first matching record wins for each date; the
// dates may be given in either chronological order.
func SimulateTrade(series model.Series, buyDate, sellDate string) (*model.Performance, error) {
	buyDate = strings.TrimSpace(buyDate)
	sellDate = strings.TrimSpace(sellDate)

	buyIdx, sellIdx := -1, -1
	records := series.Newest().Records
	for i, r := range records {
		if buyIdx < 0 && r.Date == buyDate {
			buyIdx = i
		}
		if sellIdx < 0 && r.Date == sellDate {
			sellIdx = i
		}
		if buyIdx >= 0 && sellIdx >= 0 {
			break
		}
	}

	if buyIdx < 0 {
		return nil, &DateError{Date: buyDate, Err: ErrDateNotFound}
	}
	if sellIdx < 0 {
		return nil, &DateError{Date: sellDate, Err: ErrDateNotFound}
	}
	buyRec, sellRec := records[buyIdx], records[sellIdx]
	if !buyRec.Close.Valid {
		return nil, &DateError{Date: buyDate, Err: ErrPriceMissing}
	}
	if !sellRec.Close.Valid {
		return nil, &DateError{Date: sellDate, Err: ErrPriceMissing}
	}

	buy := decimal.NewFromFloat(buyRec.Close.Float64)
	sell := decimal.NewFromFloat(sellRec.Close.Float64)
	profit := sell.Sub(buy)

	perf := &model.Performance{
		Symbol:    series.Symbol,
		BuyDate:   buyDate,
		BuyPrice:  buy.InexactFloat64(),
		SellDate:  sellDate,
		SellPrice: sell.InexactFloat64(),
		Profit:    profit.InexactFloat64(),
		Outcome:   model.OutcomeProfit,
		// Newest-first storage: a larger index is an older day.
		Reversed: sellIdx > buyIdx,
	}
	// Zero buy price follows the same fallback as the summary's percent change.
	if buy.IsZero() {
		perf.ZeroBasis = true
	} else {
		perf.ROI = profit.Div(buy).Mul(hundred).InexactFloat64()
	}
	if profit.IsNegative() {
		perf.Outcome = model.OutcomeLoss
	}
	return perf, nil
}
