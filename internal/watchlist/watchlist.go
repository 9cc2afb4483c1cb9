package watchlist

import (
	"errors"
	"fmt"
	"sync"

	"StockDesk/internal/model"
)

var (
	ErrNotLoaded = errors.New("stock is not loaded")
	ErrDuplicate = errors.New("stock is already in the watchlist")
	ErrNotListed = errors.New("stock is not in the watchlist")
)

// Loaded reports whether a symbol has data available.
type Loaded interface {
	Has(symbol string) bool
}

// Watchlist is a persisted, ordered set of symbols. Every change is written
// back to disk before the call returns.
type Watchlist struct {
	mu       sync.Mutex
	symbols  []string
	filePath string
}

// Open loads the watchlist stored at filePath.
func Open(filePath string) *Watchlist {
	return &Watchlist{symbols: loadSymbols(filePath), filePath: filePath}
}

// Symbols returns a copy of the watched symbols.
func (w *Watchlist) Symbols() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.symbols))
	copy(out, w.symbols)
	return out
}

func (w *Watchlist) Contains(symbol string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.indexOf(model.NormalizeSymbol(symbol)) >= 0
}

func (w *Watchlist) indexOf(sym string) int {
	for i, s := range w.symbols {
		if s == sym {
			return i
		}
	}
	return -1
}

// Add appends symbol when it is loaded and not already watched.
func (w *Watchlist) Add(symbol string, loaded Loaded) error {
	sym := model.NormalizeSymbol(symbol)
	if !loaded.Has(sym) {
		return fmt.Errorf("%w: %s", ErrNotLoaded, sym)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.indexOf(sym) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicate, sym)
	}
	next := append(append([]string{}, w.symbols...), sym)
	if err := saveSymbols(w.filePath, next); err != nil {
		return err
	}
	w.symbols = next
	return nil
}

// Remove drops symbol from the watchlist.
func (w *Watchlist) Remove(symbol string) error {
	sym := model.NormalizeSymbol(symbol)

	w.mu.Lock()
	defer w.mu.Unlock()
	i := w.indexOf(sym)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotListed, sym)
	}
	next := append(append([]string{}, w.symbols[:i]...), w.symbols[i+1:]...)
	if err := saveSymbols(w.filePath, next); err != nil {
		return err
	}
	w.symbols = next
	return nil
}
