package console

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"StockDesk/internal/desk"
	"StockDesk/internal/recorder"
	"StockDesk/internal/store"
	"StockDesk/internal/tradingday"
	"StockDesk/internal/watchlist"
)

const acmeCSV = `Date,Open,High,Low,Close,Volume
12/12/2025,105,115,100,110,1000
12/11/2025,95,105,90,100,2000
12/10/2025,85,92,88,90,1500
`

func newDesk(t *testing.T) *desk.Desk {
	t.Helper()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "acme.csv"), []byte(acmeCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	d := &desk.Desk{
		Store:     store.New(),
		Watchlist: watchlist.Open(filepath.Join(dir, "watchlist.csv")),
		Recorder:  recorder.NewNoopRecorder(),
		Calendar:  tradingday.New("", ""),
		DataDir:   dataDir,
		ExportDir: filepath.Join(dir, "exports"),
		Defaults:  desk.Defaults{Window: 10, ShortPeriod: 5, LongPeriod: 10, PreviewRows: 5},
	}
	if _, err := d.Reload(); err != nil {
		t.Fatal(err)
	}
	return d
}

func run(t *testing.T, d *desk.Desk, input ...string) string {
	t.Helper()
	var out bytes.Buffer
	c := New(d, strings.NewReader(strings.Join(input, "\n")+"\n"), &out)
	if err := c.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestConsole_SummaryAndSave(t *testing.T) {
	d := newDesk(t)
	out := run(t, d, "5", "1", "y", "10")
	for _, want := range []string{"STOCK SUMMARY: ACME", "+22.22%", "Saved to:", "Goodbye, 1 stocks loaded."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(filepath.Join(d.ExportDir, "Summary_ACME.csv")); err != nil {
		t.Errorf("summary file not written: %v", err)
	}
}

func TestConsole_PriceByName(t *testing.T) {
	d := newDesk(t)
	out := run(t, d, "6", "acme", "12/11/2025", "6", "acme", "12/13/2025", "10")
	if !strings.Contains(out, "Close: $100.00") {
		t.Errorf("missing price:\n%s", out)
	}
	if !strings.Contains(out, "market closed on that day") {
		t.Errorf("missing closed-market hint:\n%s", out)
	}
}

func TestConsole_WatchlistDashboard(t *testing.T) {
	d := newDesk(t)
	out := run(t, d, "7", "A", "acme", "A", "nope", "X", "B", "10")
	if !strings.Contains(out, "Added ACME.") {
		t.Errorf("missing add confirmation:\n%s", out)
	}
	if !strings.Contains(out, "stock is not loaded") {
		t.Errorf("missing not-loaded error:\n%s", out)
	}
	if !strings.Contains(out, "ACME       | $110.00 (12/12/2025) | UP +10.00") {
		t.Errorf("missing dashboard line:\n%s", out)
	}
	if got := d.Watchlist.Symbols(); len(got) != 1 || got[0] != "ACME" {
		t.Errorf("watchlist: %v", got)
	}
}

func TestConsole_UploadDuplicate(t *testing.T) {
	d := newDesk(t)
	src := filepath.Join(t.TempDir(), "ACME.csv")
	if err := os.WriteFile(src, []byte("Date,Close\n12/15/2025,120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := run(t, d, "2", src, "Z", "K", "10")
	if !strings.Contains(out, "Please enter R, K, or C.") || !strings.Contains(out, "Kept existing stock.") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if s, _ := d.Store.Get("ACME"); s.Len() != 3 {
		t.Errorf("kept series changed: %d rows", s.Len())
	}

	out = run(t, d, "2", src, "R", "10")
	if !strings.Contains(out, "Successfully uploaded ACME, 1 rows.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestConsole_SignalsPerformanceAndErrors(t *testing.T) {
	d := newDesk(t)
	out := run(t, d, "8", "1", "9", "1", "12/10/2025", "12/12/2025", "9", "1", "01/01/2020", "12/12/2025", "4", "9", "42", "10")
	for _, want := range []string{
		"Not enough data",
		"PORTFOLIO PERFORMANCE: ACME",
		"+$20.00",
		"Date 01/01/2020 not found.",
		"Stock '9' not found.",
		"Invalid choice. Try again.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsole_EndOfInput(t *testing.T) {
	d := newDesk(t)
	var out bytes.Buffer
	if err := New(d, strings.NewReader("1\n"), &out).Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "1) ACME: 3 rows") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
