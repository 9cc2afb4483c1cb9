package store

import (
	"errors"
	"sync"
	"testing"

	"StockDesk/internal/model"

	"github.com/guregu/null/v6"
)

func rec(date string, close float64) model.DailyRecord {
	return model.DailyRecord{Date: date, Close: null.FloatFrom(close)}
}

func TestStore_PutGet(t *testing.T) {
	s := New()
	s.Put("apple", []model.DailyRecord{rec("2", 2), rec("1", 1)})

	series, err := s.Get(" Apple ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Symbol != "APPLE" || series.Len() != 2 {
		t.Errorf("got %s with %d records", series.Symbol, series.Len())
	}
	if _, err := s.Get("tesla"); !errors.Is(err, ErrSymbolNotFound) {
		t.Errorf("expected ErrSymbolNotFound, got %v", err)
	}
}

func TestStore_ReplaceKeepsSnapshot(t *testing.T) {
	s := New()
	s.Put("x", []model.DailyRecord{rec("1", 1)})
	before, _ := s.Get("x")

	s.Put("x", []model.DailyRecord{rec("3", 3), rec("2", 2)})
	after, _ := s.Get("x")

	if before.Len() != 1 || before.Records[0].Date != "1" {
		t.Errorf("old snapshot changed: %+v", before.Records)
	}
	if after.Len() != 2 {
		t.Errorf("replacement not visible: %+v", after.Records)
	}
	if got := s.Symbols(); len(got) != 1 {
		t.Errorf("replace should not duplicate the symbol, got %v", got)
	}
}

func TestStore_EmptySeriesIsStored(t *testing.T) {
	s := New()
	s.Put("empty", nil)
	series, err := s.Get("EMPTY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Len() != 0 {
		t.Errorf("expected empty series, got %d records", series.Len())
	}
}

func TestStore_Resolve(t *testing.T) {
	s := New()
	s.Put("apple", nil)
	s.Put("tesla", nil)

	tests := []struct {
		choice string
		want   string
		ok     bool
	}{
		{"1", "APPLE", true},
		{"2", "TESLA", true},
		{"tesla", "TESLA", true},
		{"3", "", false},
		{"0", "", false},
		{"msft", "", false},
	}
	for _, tt := range tests {
		got, err := s.Resolve(tt.choice)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("Resolve(%q) = %q, %v; want %q", tt.choice, got, err, tt.want)
		}
		if !tt.ok && !errors.Is(err, ErrSymbolNotFound) {
			t.Errorf("Resolve(%q): expected ErrSymbolNotFound, got %v", tt.choice, err)
		}
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Put("x", []model.DailyRecord{rec("1", 1), rec("0", 0)})
		}()
		go func() {
			defer wg.Done()
			if series, err := s.Get("x"); err == nil && series.Len() != 2 {
				t.Errorf("torn read: %d records", series.Len())
			}
		}()
	}
	wg.Wait()
}
