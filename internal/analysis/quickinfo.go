package analysis

import (
	"fmt"

	"StockDesk/internal/model"
)

// QuickInfo compares the newest close with the previous one for dashboard display.
func QuickInfo(series model.Series) (*model.InfoLine, error) {
	if series.Len() == 0 {
		return nil, fmt.Errorf("quick info %s: %w", series.Symbol, ErrEmptySeries)
	}
	records := series.Newest().Records
	recent := records[0]
	if !recent.Close.Valid {
		return nil, &DateError{Date: recent.Date, Err: ErrPriceMissing}
	}

	info := &model.InfoLine{
		Symbol: series.Symbol,
		Date:   recent.Date,
		Price:  recent.Close.Float64,
	}
	if len(records) < 2 || !records[1].Close.Valid {
		return info, nil
	}

	info.HasChange = true
	info.Change = recent.Close.Float64 - records[1].Close.Float64
	switch {
	case info.Change > 0:
		info.Direction = model.DirectionUp
	case info.Change < 0:
		info.Direction = model.DirectionDown
	default:
		info.Direction = model.DirectionFlat
	}
	return info, nil
}
