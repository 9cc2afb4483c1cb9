package analysis

import (
	"errors"
	"testing"

	"StockDesk/internal/model"

	"github.com/guregu/null/v6"
)

func TestQuickInfo_Directions(t *testing.T) {
	tests := []struct {
		closes []float64
		dir    model.Direction
		change float64
	}{
		{[]float64{100, 105}, model.DirectionUp, 5},
		{[]float64{100, 95.5}, model.DirectionDown, -4.5},
		{[]float64{100, 100}, model.DirectionFlat, 0},
	}
	for _, tt := range tests {
		info, err := QuickInfo(chronoSeries(tt.closes...))
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.closes, err)
		}
		if !info.HasChange || info.Direction != tt.dir || info.Change != tt.change {
			t.Errorf("%v: got %+v", tt.closes, info)
		}
		if info.Date != "d2" || info.Price != tt.closes[1] {
			t.Errorf("%v: wrong newest record %+v", tt.closes, info)
		}
	}
}

func TestQuickInfo_SingleRecord(t *testing.T) {
	info, err := QuickInfo(chronoSeries(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.HasChange || info.Direction != "" {
		t.Errorf("expected no change indicator, got %+v", info)
	}
	if info.Price != 42 {
		t.Errorf("price: got %.2f", info.Price)
	}
}

func TestQuickInfo_PreviousCloseMissing(t *testing.T) {
	series := model.NewSeries("x", []model.DailyRecord{
		{Date: "2", Close: null.FloatFrom(10)},
		{Date: "1"},
	})
	info, err := QuickInfo(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.HasChange {
		t.Error("missing previous close should drop the change indicator")
	}
}

func TestQuickInfo_Unavailable(t *testing.T) {
	if _, err := QuickInfo(model.NewSeries("x", nil)); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries, got %v", err)
	}
	series := model.NewSeries("x", []model.DailyRecord{{Date: "1"}})
	if _, err := QuickInfo(series); !errors.Is(err, ErrPriceMissing) {
		t.Errorf("expected ErrPriceMissing, got %v", err)
	}
}
