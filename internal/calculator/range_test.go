package calculator

import (
	"testing"

	"StockDesk/internal/model"

	"github.com/guregu/null/v6"
)

func TestCalculateWindowStats(t *testing.T) {
	records := []model.DailyRecord{
		{Date: "3", High: null.FloatFrom(115), Low: null.FloatFrom(108), Volume: null.FloatFrom(300)},
		{Date: "2", High: null.FloatFrom(104), Low: null.FloatFrom(98)},
		{Date: "1", High: null.FloatFrom(95), Low: null.FloatFrom(88), Volume: null.FloatFrom(100)},
	}
	st := CalculateWindowStats(records)
	if st.High != 115 {
		t.Errorf("high: got %.2f, want 115", st.High)
	}
	if st.Low != 88 {
		t.Errorf("low: got %.2f, want 88", st.Low)
	}
	if st.AverageVolume != 200 {
		t.Errorf("avg volume: got %.2f, want 200", st.AverageVolume)
	}
}

func TestCalculateWindowStats_AllNull(t *testing.T) {
	st := CalculateWindowStats([]model.DailyRecord{{Date: "1"}, {Date: "2"}})
	if st.High != 0 || st.Low != 0 || st.AverageVolume != 0 {
		t.Errorf("expected zero defaults, got %+v", st)
	}
}

func TestChangePercent(t *testing.T) {
	tests := []struct {
		change, base, want float64
	}{
		{20, 90, 20.0 / 90 * 100},
		{-5, 50, -10},
		{10, 0, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := ChangePercent(tt.change, tt.base); got != tt.want {
			t.Errorf("ChangePercent(%v, %v) = %v, want %v", tt.change, tt.base, got, tt.want)
		}
	}
}
