package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"StockDesk/internal/model"
)

// SummaryRows lays a summary out as Metric,Value rows, header included.
func SummaryRows(s *model.Summary) [][]string {
	price := ""
	if s.CurrentPrice.Valid {
		price = formatFloat(s.CurrentPrice.Float64)
	}
	return [][]string{
		{"Metric", "Value"},
		{"Stock Name", s.Symbol},
		{"Analysis Period", s.Period()},
		{"From Date", s.From},
		{"To Date", s.To},
		{"Current Price", price},
		{"Price Change", formatFloat(s.PriceChange)},
		{"Percent Change", fmt.Sprintf("%.2f%%", s.PercentChange)},
		{fmt.Sprintf("%d-Day High", s.Days), formatFloat(s.High)},
		{fmt.Sprintf("%d-Day Low", s.Days), formatFloat(s.Low)},
		{"Avg Volume", strconv.FormatInt(int64(s.AverageVolume), 10)},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FileName is the export file name for symbol.
func FileName(symbol string) string {
	return "Summary_" + model.NormalizeSymbol(symbol) + ".csv"
}

// WriteSummary writes the summary rows to dir/Summary_<SYMBOL>.csv and returns the path.
func WriteSummary(dir string, s *model.Summary) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(s.Symbol))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(SummaryRows(s)); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
