package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"StockDesk/internal/model"

	"github.com/guregu/null/v6"
)

func sample() *model.Summary {
	return &model.Summary{
		Symbol:        "ACME",
		Days:          3,
		Requested:     10,
		From:          "d1",
		To:            "d3",
		CurrentPrice:  null.FloatFrom(110),
		PriceChange:   20,
		PercentChange: 22.2222,
		High:          115,
		Low:           88,
		AverageVolume: 1500.9,
	}
}

func TestSummaryRows(t *testing.T) {
	rows := SummaryRows(sample())
	want := map[string]string{
		"Stock Name":      "ACME",
		"Analysis Period": "Last 3 Days",
		"Current Price":   "110",
		"Price Change":    "20",
		"Percent Change":  "22.22%",
		"3-Day High":      "115",
		"3-Day Low":       "88",
		"Avg Volume":      "1500",
	}
	if rows[0][0] != "Metric" || rows[0][1] != "Value" {
		t.Errorf("header: %v", rows[0])
	}
	seen := 0
	for _, r := range rows[1:] {
		if w, ok := want[r[0]]; ok {
			seen++
			if r[1] != w {
				t.Errorf("%s: got %q, want %q", r[0], r[1], w)
			}
		}
	}
	if seen != len(want) {
		t.Errorf("matched %d of %d metrics in %v", seen, len(want), rows)
	}
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteSummary(dir, sample())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "Summary_ACME.csv" {
		t.Errorf("file name: %s", filepath.Base(path))
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 11 {
		t.Errorf("expected 11 rows, got %d", len(rows))
	}
}
