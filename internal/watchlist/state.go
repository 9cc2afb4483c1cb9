package watchlist

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"StockDesk/internal/model"
)

const header = "Symbol"

// loadSymbols reads the watchlist file. A missing or unreadable file yields an empty list.
func loadSymbols(filePath string) []string {
	f, err := os.Open(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] Watchlist %s unreadable, starting empty: %v", filePath, err)
		}
		return nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		log.Printf("[WARN] Watchlist %s is corrupt, starting empty: %v", filePath, err)
		return nil
	}

	var symbols []string
	seen := make(map[string]bool)
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		sym := model.NormalizeSymbol(row[0])
		if sym == "" || (i == 0 && sym == "SYMBOL") || seen[sym] {
			continue
		}
		seen[sym] = true
		symbols = append(symbols, sym)
	}
	return symbols
}

// saveSymbols rewrites the watchlist file.
func saveSymbols(filePath string, symbols []string) error {
	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create watchlist dir: %w", err)
		}
	}
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create watchlist: %w", err)
	}
	w := csv.NewWriter(f)
	_ = w.Write([]string{header})
	for _, s := range symbols {
		_ = w.Write([]string{s})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write watchlist: %w", err)
	}
	return f.Close()
}
