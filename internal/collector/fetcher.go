package collector

import (
	"context"

	"StockDesk/internal/model"
)

// Fetcher downloads daily price history for a symbol, newest record first.
type Fetcher interface {
	FetchDaily(ctx context.Context, symbol string, days int) ([]model.DailyRecord, error)
	Name() string
}
