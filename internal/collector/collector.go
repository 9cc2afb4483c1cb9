package collector

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"StockDesk/internal/loader"
	"StockDesk/internal/model"
	"StockDesk/internal/store"
)

// Collector downloads history into the data directory and the store.
type Collector struct {
	Fetcher Fetcher
	DataDir string
	Store   *store.Store
	Days    int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, dataDir string, st *store.Store, days int) *Collector {
	return &Collector{Fetcher: fetcher, DataDir: dataDir, Store: st, Days: days}
}

// Collect fetches symbol, writes <data dir>/<symbol>.csv and replaces the
// stored series with the fresh records.
func (c *Collector) Collect(ctx context.Context, symbol string) (model.Series, error) {
	sym := model.NormalizeSymbol(symbol)
	if sym == "" {
		return model.Series{}, fmt.Errorf("collect: empty symbol")
	}
	records, err := c.Fetcher.FetchDaily(ctx, sym, c.Days)
	if err != nil {
		return model.Series{}, fmt.Errorf("fetch %s from %s: %w", sym, c.Fetcher.Name(), err)
	}
	if len(records) == 0 {
		return model.Series{}, fmt.Errorf("fetch %s: no records", sym)
	}

	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return model.Series{}, fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(c.DataDir, strings.ToLower(sym)+".csv")
	if existing, err := loader.FindFile(c.DataDir, sym); err == nil && existing != "" {
		path = existing
	}
	if err := loader.WriteFile(path, records); err != nil {
		return model.Series{}, err
	}

	series := c.Store.Put(sym, records)
	log.Printf("[INFO] Collected %s from %s (%d rows) into %s", sym, c.Fetcher.Name(), series.Len(), path)
	return series, nil
}
