package loader

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"StockDesk/internal/model"
	"StockDesk/internal/store"

	"github.com/bmatcuk/doublestar/v4"
)

// SymbolFromPath derives the symbol from a file name: "data/aapl.csv" is AAPL.
func SymbolFromPath(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if sym := model.NormalizeSymbol(name); sym != "" && sym != "." {
		return sym
	}
	return "UNKNOWN"
}

// Discover lists the CSV files directly inside dir, sorted by name.
// A missing directory yields no files.
func Discover(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	pattern := filepath.Join(escape(dir), "*.[cC][sS][vV]")
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// escape guards glob metacharacters that may appear in a directory name.
func escape(dir string) string {
	r := strings.NewReplacer("*", `\*`, "?", `\?`, "[", `\[`, "{", `\{`)
	return r.Replace(dir)
}

// FindFile returns the CSV file in dir that holds symbol, or "" when none does.
// With several candidates the first in name order wins, as in LoadDir.
func FindFile(dir, symbol string) (string, error) {
	files, err := Discover(dir)
	if err != nil {
		return "", err
	}
	want := model.NormalizeSymbol(symbol)
	for _, f := range files {
		if SymbolFromPath(f) == want {
			return f, nil
		}
	}
	return "", nil
}

// LoadDir reads every CSV file in dir into st. A file that fails to load is
// logged and skipped. When two files map to one symbol only the first in name
// order is read. It returns the number of series stored.
func LoadDir(dir string, st *store.Store) (int, error) {
	files, err := Discover(dir)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]string, len(files))
	loaded := 0
	for _, f := range files {
		sym := SymbolFromPath(f)
		if first, dup := seen[sym]; dup {
			log.Printf("[WARN] Skipping %s: %s already provides %s", f, first, sym)
			continue
		}
		seen[sym] = f
		records, err := ReadFile(f)
		if err != nil {
			log.Printf("[WARN] Skipping %s: %v", f, err)
			continue
		}
		series := st.Put(sym, records)
		log.Printf("[INFO] Loaded %s (%d rows)", series.Symbol, series.Len())
		loaded++
	}
	return loaded, nil
}
