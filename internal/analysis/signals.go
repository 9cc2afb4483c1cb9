package analysis

import (
	"fmt"

	"StockDesk/internal/calculator"
	"StockDesk/internal/model"
)

const (
	DefaultShortPeriod = 5
	DefaultLongPeriod  = 10
)

// AnalyzeSignals finds moving-average crossovers over the whole series and
// classifies the current trend from the final data point.
func AnalyzeSignals(series model.Series, shortPeriod, longPeriod int) (*model.SignalReport, error) {
	if shortPeriod <= 0 || longPeriod <= shortPeriod {
		return nil, fmt.Errorf("periods %d/%d: short must be positive and below long: %w",
			shortPeriod, longPeriod, ErrInvalidParameter)
	}

	chrono := series.ToChronological()
	prices := chrono.Closes()
	if len(prices) < longPeriod+1 {
		return nil, fmt.Errorf("%s has %d records, need %d: %w",
			series.Symbol, len(prices), longPeriod+1, ErrInsufficientHistory)
	}

	shortMA, err := calculator.SMA(prices, shortPeriod)
	if err != nil {
		return nil, err
	}
	longMA, err := calculator.SMA(prices, longPeriod)
	if err != nil {
		return nil, err
	}

	report := &model.SignalReport{
		Symbol:      series.Symbol,
		ShortPeriod: shortPeriod,
		LongPeriod:  longPeriod,
		Points:      len(prices),
		Signals:     []model.Signal{},
	}

	for i := longPeriod; i < len(prices); i++ {
		prevShort, prevLong := shortMA[i-1], longMA[i-1]
		currShort, currLong := shortMA[i], longMA[i]
		if !prevShort.Valid || !prevLong.Valid || !currShort.Valid || !currLong.Valid {
			continue
		}

		var kind model.SignalKind
		switch {
		case prevShort.Float64 <= prevLong.Float64 && currShort.Float64 > currLong.Float64:
			kind = model.SignalBuy
		case prevShort.Float64 >= prevLong.Float64 && currShort.Float64 < currLong.Float64:
			kind = model.SignalSell
		default:
			continue
		}

		report.Signals = append(report.Signals, model.Signal{
			Kind:     kind,
			Date:     chrono.Records[i].Date,
			Price:    prices[i].Float64,
			Short:    currShort.Float64,
			Long:     currLong.Float64,
			Position: i,
		})
	}

	lastShort, lastLong := shortMA.Last(), longMA.Last()
	if !lastShort.Valid || !lastLong.Valid {
		return nil, fmt.Errorf("%s: close missing in the latest %d days: %w",
			series.Symbol, longPeriod, ErrMissingField)
	}
	report.Trend = model.Trend{
		Kind:  model.Bearish,
		Short: lastShort.Float64,
		Long:  lastLong.Float64,
		Gap:   lastShort.Float64 - lastLong.Float64,
	}
	if lastShort.Float64 > lastLong.Float64 {
		report.Trend.Kind = model.Bullish
	}
	return report, nil
}
