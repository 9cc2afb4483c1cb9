package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"StockDesk/internal/model"

	"github.com/guregu/null/v6"
)

var (
	ErrNotExist       = errors.New("file does not exist")
	ErrNotCSV         = errors.New("file is not a CSV file")
	ErrNoHeader       = errors.New("CSV file has no header row")
	ErrMissingColumns = errors.New("CSV file must contain Date and Close columns")
)

// headerAliases maps lower-cased header names onto record fields.
var headerAliases = map[string]string{
	"date":           "date",
	"timestamp":      "date",
	"open":           "open",
	"high":           "high",
	"low":            "low",
	"close":          "close",
	"adj close":      "close",
	"adjusted close": "close",
	"close/last":     "close",
	"volume":         "volume",
}

// columns is the header position of each mapped field, -1 when absent.
type columns struct {
	date, open, high, low, close, volume int
}

func mapHeader(header []string) columns {
	c := columns{-1, -1, -1, -1, -1, -1}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		field, ok := headerAliases[name]
		if !ok {
			continue
		}
		// first matching column wins, so "Close" beats a later "Adj Close"
		switch field {
		case "date":
			if c.date < 0 {
				c.date = i
			}
		case "open":
			if c.open < 0 {
				c.open = i
			}
		case "high":
			if c.high < 0 {
				c.high = i
			}
		case "low":
			if c.low < 0 {
				c.low = i
			}
		case "close":
			if c.close < 0 {
				c.close = i
			}
		case "volume":
			if c.volume < 0 {
				c.volume = i
			}
		}
	}
	return c
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

// Validate checks that path is an existing CSV file whose header maps both a
// date and a close column.
func Validate(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrNotExist, path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return fmt.Errorf("%w: %s", ErrNotCSV, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	header, err := newReader(f).Read()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoHeader, path)
	}
	cols := mapHeader(header)
	if cols.date < 0 || cols.close < 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, path)
	}
	return nil
}

// ReadFile validates and parses a CSV file into records in file order.
func ReadFile(path string) ([]model.DailyRecord, error) {
	if err := Validate(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

// Parse reads a header row followed by daily rows. Rows without a date are
// skipped; unparsable numbers become null.
func Parse(r io.Reader) ([]model.DailyRecord, error) {
	reader := newReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, ErrNoHeader
	}
	cols := mapHeader(header)
	if cols.date < 0 || cols.close < 0 {
		return nil, ErrMissingColumns
	}

	var records []model.DailyRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		date := strings.TrimSpace(cell(row, cols.date))
		if date == "" {
			continue
		}
		records = append(records, model.DailyRecord{
			Date:   date,
			Open:   parseNumber(cell(row, cols.open)),
			High:   parseNumber(cell(row, cols.high)),
			Low:    parseNumber(cell(row, cols.low)),
			Close:  parseNumber(cell(row, cols.close)),
			Volume: parseNumber(cell(row, cols.volume)),
		})
	}
	return records, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseNumber accepts values such as "$1,234.50"; anything else is null.
func parseNumber(s string) null.Float {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Float{}
	}
	s = strings.NewReplacer(",", "", "$", "").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return null.Float{}
	}
	return null.FloatFrom(v)
}

// WriteFile stores records as a Date,Open,High,Low,Close,Volume CSV file.
func WriteFile(path string, records []model.DailyRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	_ = w.Write([]string{"Date", "Open", "High", "Low", "Close", "Volume"})
	for _, r := range records {
		_ = w.Write([]string{r.Date, formatNumber(r.Open), formatNumber(r.High),
			formatNumber(r.Low), formatNumber(r.Close), formatNumber(r.Volume)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func formatNumber(v null.Float) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}
