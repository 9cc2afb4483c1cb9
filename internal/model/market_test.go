package model

import (
	"testing"

	"github.com/guregu/null/v6"
)

func TestNewSeries_DropsUndatedRecords(t *testing.T) {
	s := NewSeries("  aapl ", []DailyRecord{
		{Date: "2", Close: null.FloatFrom(2)},
		{Date: "", Close: null.FloatFrom(9)},
		{Date: "   "},
		{Date: "1", Close: null.FloatFrom(1)},
	})
	if s.Symbol != "AAPL" {
		t.Errorf("symbol: got %q, want AAPL", s.Symbol)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", s.Len())
	}
	if s.Order != NewestFirst {
		t.Errorf("order: got %s", s.Order)
	}
}

func TestToChronological(t *testing.T) {
	s := NewSeries("x", []DailyRecord{{Date: "3"}, {Date: "2"}, {Date: "1"}})
	c := s.ToChronological()
	if c.Order != OldestFirst {
		t.Errorf("order: got %s", c.Order)
	}
	for i, want := range []string{"1", "2", "3"} {
		if c.Records[i].Date != want {
			t.Errorf("index %d: got %s, want %s", i, c.Records[i].Date, want)
		}
	}
	// the source is untouched
	if s.Records[0].Date != "3" {
		t.Error("ToChronological mutated the source series")
	}
	// converting twice is a copy, not a second reversal
	if cc := c.ToChronological(); cc.Records[0].Date != "1" {
		t.Errorf("already chronological series was reversed: %v", cc.Records)
	}
	if n := c.Newest(); n.Records[0].Date != "3" || n.Order != NewestFirst {
		t.Errorf("Newest: got %v", n.Records)
	}
}

func TestSignalReport_Fresh(t *testing.T) {
	r := &SignalReport{Points: 20}
	if r.Fresh() {
		t.Error("report without signals is not fresh")
	}
	r.Signals = []Signal{{Kind: SignalBuy, Position: 12}, {Kind: SignalSell, Position: 19}}
	if !r.Fresh() || r.Latest().Kind != SignalSell {
		t.Errorf("expected fresh SELL, got %+v", r.Latest())
	}
	if SignalBuy.String() != "BUY" || Bullish.String() != "BULLISH" {
		t.Error("unexpected kind labels")
	}
}
