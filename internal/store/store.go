package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"StockDesk/internal/model"
)

var ErrSymbolNotFound = errors.New("symbol not found")

// Store maps upper-case symbols to their current Series. Replacing a series swaps
// the whole value, so a Series handed out by Get never changes underneath its reader.
type Store struct {
	mu     sync.RWMutex
	series map[string]model.Series
	order  []string // insertion order, as listed to users
}

// New creates an empty Store.
func New() *Store {
	return &Store{series: make(map[string]model.Series)}
}

// Put replaces the series stored under symbol and returns the stored value.
func (s *Store) Put(symbol string, records []model.DailyRecord) model.Series {
	series := model.NewSeries(symbol, records)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.series[series.Symbol]; !ok {
		s.order = append(s.order, series.Symbol)
	}
	s.series[series.Symbol] = series
	return series
}

// Get returns the series for symbol.
func (s *Store) Get(symbol string) (model.Series, error) {
	key := model.NormalizeSymbol(symbol)
	s.mu.RLock()
	defer s.mu.RUnlock()
	series, ok := s.series[key]
	if !ok {
		return model.Series{}, fmt.Errorf("%w: %q", ErrSymbolNotFound, key)
	}
	return series, nil
}

// Has reports whether symbol is loaded.
func (s *Store) Has(symbol string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.series[model.NormalizeSymbol(symbol)]
	return ok
}

// Symbols lists loaded symbols in the order they were first stored.
func (s *Store) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of loaded symbols.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Resolve accepts either a 1-based position in Symbols() or a symbol name.
func (s *Store) Resolve(choice string) (string, error) {
	choice = strings.TrimSpace(choice)
	if n, err := strconv.Atoi(choice); err == nil {
		symbols := s.Symbols()
		if n < 1 || n > len(symbols) {
			return "", fmt.Errorf("invalid number %d: %w", n, ErrSymbolNotFound)
		}
		return symbols[n-1], nil
	}
	key := model.NormalizeSymbol(choice)
	if !s.Has(key) {
		return "", fmt.Errorf("%w: %q", ErrSymbolNotFound, key)
	}
	return key, nil
}
