package scheduler

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"StockDesk/internal/desk"
	"StockDesk/internal/model"
	"StockDesk/internal/recorder"
	"StockDesk/internal/store"
	"StockDesk/internal/tradingday"
	"StockDesk/internal/watchlist"

	"github.com/guregu/null/v6"
)

type fakeSender struct{ sent []string }

func (f *fakeSender) SendWithRetry(_ context.Context, text string, _ int) error {
	f.sent = append(f.sent, text)
	return nil
}

// series builds newest-first records from chronological closes, dated d1..dN.
func series(closes ...float64) []model.DailyRecord {
	out := make([]model.DailyRecord, len(closes))
	for i, c := range closes {
		out[len(closes)-1-i] = model.DailyRecord{
			Date:   fmt.Sprintf("d%d", i+1),
			Close:  null.FloatFrom(c),
			Volume: null.FloatFrom(100),
		}
	}
	return out
}

func flat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func newScheduler(t *testing.T) (*Scheduler, *fakeSender) {
	t.Helper()
	dir := t.TempDir()
	d := &desk.Desk{
		Store:     store.New(),
		Watchlist: watchlist.Open(filepath.Join(dir, "w.csv")),
		Recorder:  recorder.NewNoopRecorder(),
		Calendar:  tradingday.New("", ""),
		DataDir:   filepath.Join(dir, "data"),
		ExportDir: filepath.Join(dir, "exports"),
		Defaults:  desk.Defaults{Window: 10, ShortPeriod: 5, LongPeriod: 10, PreviewRows: 5},
	}
	d.Store.Put("CROSS", series(append(flat(10, 11), 20)...))
	d.Store.Put("CALM", series(flat(10, 15)...))
	d.Store.Put("TINY", series(1, 2))
	for _, sym := range []string{"CROSS", "CALM", "TINY"} {
		if err := d.Watchlist.Add(sym, d.Store); err != nil {
			t.Fatal(err)
		}
	}
	sender := &fakeSender{}
	return NewScheduler(context.Background(), d, sender), sender
}

func TestSweep_AlertsOnlyFreshSignals(t *testing.T) {
	s, sender := newScheduler(t)
	if n := s.RunSweepNow(); n != 1 {
		t.Fatalf("expected 1 alert, got %d", n)
	}
	if len(sender.sent) != 1 || !strings.Contains(sender.sent[0], "BUY signal") || !strings.Contains(sender.sent[0], "CROSS") {
		t.Errorf("sent: %v", sender.sent)
	}
}

func TestRegisterAll(t *testing.T) {
	s, _ := newScheduler(t)
	if err := s.RegisterAll("0 0 * * * *", "0 30 16 * * 1-5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(s.Cron.Entries()); got != 2 {
		t.Errorf("expected 2 entries, got %d", got)
	}
	if err := s.RegisterAll("nope", "0 0 * * * *"); err == nil {
		t.Error("expected error for bad cron spec")
	}
}

func TestHandleCommand(t *testing.T) {
	s, _ := newScheduler(t)
	ctx := context.Background()

	tests := []struct {
		command string
		want    string
	}{
		{"/list", "1) CROSS: 12 rows"},
		{"/list@StockDeskBot", "CALM"},
		{"/summary cross", "STOCK SUMMARY: CROSS"},
		{"/summary cross x", "DAYS must be a number"},
		{"/signals cross", "BUY"},
		{"/signals tiny", "Not enough data"},
		{"/price cross d12", "$20.00"},
		{"/price cross d99", "not found"},
		{"/trade cross d1 d12", "PROFIT"},
		{"/trade cross", "Usage"},
		{"/summary nope", "symbol not found"},
		{"/watchlist", "CROSS"},
		{"hello", "Available commands"},
	}
	for _, tt := range tests {
		if got := s.HandleCommand(ctx, tt.command); !strings.Contains(got, tt.want) {
			t.Errorf("HandleCommand(%q) = %q, want it to contain %q", tt.command, got, tt.want)
		}
	}
}
