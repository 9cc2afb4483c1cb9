package analysis

import (
	"errors"
	"testing"

	"StockDesk/internal/model"

	"github.com/guregu/null/v6"
)

func tradeSeries() model.Series {
	return model.NewSeries("x", []model.DailyRecord{
		{Date: "03", Close: null.FloatFrom(60)},
		{Date: "02", Close: null.FloatFrom(55)},
		{Date: "01", Close: null.FloatFrom(50)},
		{Date: "00", Close: null.FloatFrom(0)},
		{Date: "gap"},
	})
}

func TestSimulateTrade_Profit(t *testing.T) {
	perf, err := SimulateTrade(tradeSeries(), "01", "03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if perf.BuyPrice != 50 || perf.SellPrice != 60 {
		t.Errorf("prices: got %.2f/%.2f", perf.BuyPrice, perf.SellPrice)
	}
	if perf.Profit != 10 || perf.ROI != 20.0 {
		t.Errorf("profit/roi: got %.2f/%.2f, want 10/20", perf.Profit, perf.ROI)
	}
	if perf.Outcome != model.OutcomeProfit {
		t.Errorf("outcome: got %s", perf.Outcome)
	}
	if perf.Reversed || perf.ZeroBasis {
		t.Errorf("unexpected flags: %+v", perf)
	}
}

func TestSimulateTrade_LossAndReversed(t *testing.T) {
	perf, err := SimulateTrade(tradeSeries(), "03", "01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if perf.Profit != -10 || perf.Outcome != model.OutcomeLoss {
		t.Errorf("got profit %.2f outcome %s", perf.Profit, perf.Outcome)
	}
	if !perf.Reversed {
		t.Error("sell before buy should be flagged as reversed")
	}
}

func TestSimulateTrade_SameDateBreaksEven(t *testing.T) {
	perf, err := SimulateTrade(tradeSeries(), "02", "02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if perf.Profit != 0 || perf.Outcome != model.OutcomeProfit {
		t.Errorf("got %+v", perf)
	}
}

func TestSimulateTrade_DecimalArithmetic(t *testing.T) {
	series := model.NewSeries("x", []model.DailyRecord{
		{Date: "b", Close: null.FloatFrom(60.10)},
		{Date: "a", Close: null.FloatFrom(50.05)},
	})
	perf, err := SimulateTrade(series, "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if perf.Profit != 10.05 {
		t.Errorf("profit: got %v, want 10.05", perf.Profit)
	}
}

func TestSimulateTrade_ZeroBasis(t *testing.T) {
	perf, err := SimulateTrade(tradeSeries(), "00", "01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !perf.ZeroBasis || perf.ROI != 0 {
		t.Errorf("expected zero-basis fallback, got %+v", perf)
	}
	if perf.Profit != 50 {
		t.Errorf("profit: got %.2f, want 50", perf.Profit)
	}
}

func TestSimulateTrade_Errors(t *testing.T) {
	tests := []struct {
		buy, sell string
		date      string
		wantErr   error
	}{
		{"nope", "03", "nope", ErrDateNotFound},
		{"01", "nope", "nope", ErrDateNotFound},
		{"gap", "03", "gap", ErrPriceMissing},
		{"01", "gap", "gap", ErrPriceMissing},
	}
	for _, tt := range tests {
		_, err := SimulateTrade(tradeSeries(), tt.buy, tt.sell)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s->%s: expected %v, got %v", tt.buy, tt.sell, tt.wantErr, err)
			continue
		}
		var de *DateError
		if !errors.As(err, &de) || de.Date != tt.date {
			t.Errorf("%s->%s: expected failing date %q, got %v", tt.buy, tt.sell, tt.date, err)
		}
	}
}
