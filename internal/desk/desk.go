package desk

import (
	"errors"
	"fmt"
	"log"

	"StockDesk/internal/analysis"
	"StockDesk/internal/export"
	"StockDesk/internal/loader"
	"StockDesk/internal/model"
	"StockDesk/internal/recorder"
	"StockDesk/internal/render"
	"StockDesk/internal/store"
	"StockDesk/internal/tradingday"
	"StockDesk/internal/watchlist"
)

// ErrNoLocalFile is returned when a symbol has no CSV file in the data directory.
var ErrNoLocalFile = errors.New("no local file for this stock, please upload first")

// Defaults are the analysis parameters used when a caller passes zero.
type Defaults struct {
	Window      int
	ShortPeriod int
	LongPeriod  int
	PreviewRows int
}

// Desk ties the store, the engines and the side channels together. Every
// front end (console, HTTP, Telegram, CLI) goes through it.
type Desk struct {
	Store     *store.Store
	Watchlist *watchlist.Watchlist
	Recorder  recorder.Recorder
	Calendar  *tradingday.Calendar
	DataDir   string
	ExportDir string
	Defaults  Defaults
}

// Reload reads every CSV file in the data directory.
func (d *Desk) Reload() (int, error) {
	return loader.LoadDir(d.DataDir, d.Store)
}

// ReloadSymbol re-reads the data file of one stock.
func (d *Desk) ReloadSymbol(symbol string) (model.Series, error) {
	path, err := loader.FindFile(d.DataDir, symbol)
	if err != nil {
		return model.Series{}, err
	}
	if path == "" {
		return model.Series{}, fmt.Errorf("%s: %w", model.NormalizeSymbol(symbol), ErrNoLocalFile)
	}
	records, err := loader.ReadFile(path)
	if err != nil {
		return model.Series{}, err
	}
	return d.Store.Put(loader.SymbolFromPath(path), records), nil
}

// Upload validates a CSV file, copies it into the data directory and loads it.
func (d *Desk) Upload(path string) (model.Series, error) {
	dst, err := loader.SaveUpload(path, d.DataDir)
	if err != nil {
		return model.Series{}, err
	}
	records, err := loader.ReadFile(dst)
	if err != nil {
		return model.Series{}, err
	}
	return d.Store.Put(loader.SymbolFromPath(dst), records), nil
}

// Stocks lists the loaded stocks with their row counts.
func (d *Desk) Stocks() []render.StockEntry {
	symbols := d.Store.Symbols()
	out := make([]render.StockEntry, 0, len(symbols))
	for _, sym := range symbols {
		series, err := d.Store.Get(sym)
		if err != nil {
			continue
		}
		out = append(out, render.StockEntry{Symbol: sym, Rows: series.Len()})
	}
	return out
}

func (d *Desk) Series(symbol string) (model.Series, error) {
	return d.Store.Get(symbol)
}

func pick(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

// Summary runs the summary engine; window 0 means the default window.
func (d *Desk) Summary(src recorder.Source, symbol string, window int) (*model.Summary, error) {
	series, err := d.Store.Get(symbol)
	if err != nil {
		return nil, err
	}
	s, err := analysis.Summarize(series, pick(window, d.Defaults.Window))
	if err != nil {
		return nil, err
	}
	if err := d.Recorder.RecordSummary(src, s); err != nil {
		log.Printf("[ERROR] record summary: %v", err)
	}
	return s, nil
}

// SaveSummary writes a summary to the export directory.
func (d *Desk) SaveSummary(s *model.Summary) (string, error) {
	return export.WriteSummary(d.ExportDir, s)
}

// Signals runs the crossover engine; zero periods mean the defaults.
func (d *Desk) Signals(src recorder.Source, symbol string, short, long int) (*model.SignalReport, error) {
	series, err := d.Store.Get(symbol)
	if err != nil {
		return nil, err
	}
	r, err := analysis.AnalyzeSignals(series, pick(short, d.Defaults.ShortPeriod), pick(long, d.Defaults.LongPeriod))
	if err != nil {
		return nil, err
	}
	if err := d.Recorder.RecordSignals(src, r); err != nil {
		log.Printf("[ERROR] record signals: %v", err)
	}
	return r, nil
}

// Price looks up the closing price of symbol on date.
func (d *Desk) Price(symbol, date string) (float64, error) {
	series, err := d.Store.Get(symbol)
	if err != nil {
		return 0, err
	}
	return analysis.PriceOnDate(series, date)
}

// Trade simulates buying on buyDate and selling on sellDate.
func (d *Desk) Trade(src recorder.Source, symbol, buyDate, sellDate string) (*model.Performance, error) {
	series, err := d.Store.Get(symbol)
	if err != nil {
		return nil, err
	}
	p, err := analysis.SimulateTrade(series, buyDate, sellDate)
	if err != nil {
		return nil, err
	}
	if err := d.Recorder.RecordTrade(src, p); err != nil {
		log.Printf("[ERROR] record trade: %v", err)
	}
	return p, nil
}

// Info returns the quick dashboard line for symbol.
func (d *Desk) Info(symbol string) (*model.InfoLine, error) {
	series, err := d.Store.Get(symbol)
	if err != nil {
		return nil, err
	}
	return analysis.QuickInfo(series)
}

// WatchlistLines renders one dashboard line per watched symbol.
func (d *Desk) WatchlistLines() []string {
	symbols := d.Watchlist.Symbols()
	lines := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		info, err := d.Info(sym)
		switch {
		case err == nil:
			lines = append(lines, render.Info(info))
		case errors.Is(err, store.ErrSymbolNotFound):
			lines = append(lines, render.InfoUnavailable(sym, "Data not loaded yet"))
		case errors.Is(err, analysis.ErrEmptySeries):
			lines = append(lines, render.InfoUnavailable(sym, "No data rows"))
		default:
			lines = append(lines, render.InfoUnavailable(sym, "Price missing"))
		}
	}
	return lines
}

// Explain turns an engine error into a user-facing sentence.
func (d *Desk) Explain(err error) string {
	var de *analysis.DateError
	switch {
	case errors.As(err, &de) && errors.Is(err, analysis.ErrDateNotFound):
		msg := fmt.Sprintf("Date %s not found.", de.Date)
		if hint := d.Calendar.Hint(de.Date); hint != "" {
			msg += " (" + hint + ")"
		}
		return msg
	case errors.As(err, &de) && errors.Is(err, analysis.ErrPriceMissing):
		return fmt.Sprintf("Price data is missing for %s.", de.Date)
	case errors.Is(err, analysis.ErrInsufficientHistory):
		return fmt.Sprintf("Not enough data to analyze: %v", err)
	default:
		return err.Error()
	}
}
