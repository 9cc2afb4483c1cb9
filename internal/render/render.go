package render

import (
	"fmt"
	"strings"

	"StockDesk/internal/model"

	"github.com/guregu/null/v6"
)

const rule = "----------------------------------------"

// banner draws the ===== framed heading used by every report.
func banner(b *strings.Builder, title string) {
	line := strings.Repeat("=", 40)
	fmt.Fprintf(b, "%s\n%s\n%s\n", line, center(title, 40), line)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}

// StockEntry is one line of the loaded-stocks listing.
type StockEntry struct {
	Symbol string `json:"symbol"`
	Rows   int    `json:"rows"`
}

// StockList numbers the loaded stocks so they can be picked by number.
func StockList(entries []StockEntry) string {
	if len(entries) == 0 {
		return "No stocks loaded."
	}
	var b strings.Builder
	b.WriteString("Loaded stocks:\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "%d) %s: %d rows\n", i+1, e.Symbol, e.Rows)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Preview prints the first n records of a series as stored (newest first).
func Preview(series model.Series, n int) string {
	if n > series.Len() {
		n = series.Len()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "First %d rows for %s:\n", n, series.Symbol)
	fmt.Fprintf(&b, "%-12s %10s %10s %10s %10s %12s\n", "Date", "Open", "High", "Low", "Close", "Volume")
	for _, r := range series.Records[:n] {
		fmt.Fprintf(&b, "%-12s %10s %10s %10s %10s %12s\n",
			r.Date, cell(r.Open), cell(r.High), cell(r.Low), cell(r.Close), volume(r.Volume))
	}
	return strings.TrimRight(b.String(), "\n")
}

func cell(v null.Float) string {
	if !v.Valid {
		return "-"
	}
	return fmt.Sprintf("%.2f", v.Float64)
}

func volume(v null.Float) string {
	if !v.Valid {
		return "-"
	}
	return fmt.Sprintf("%.0f", v.Float64)
}

// Summary renders the stock summary block.
func Summary(s *model.Summary) string {
	var b strings.Builder
	banner(&b, "STOCK SUMMARY: "+s.Symbol)
	fmt.Fprintf(&b, "Period:            %s\n", s.Period())
	if s.Truncated() {
		fmt.Fprintf(&b, "                   (only %d of %d days available)\n", s.Days, s.Requested)
	}
	fmt.Fprintf(&b, "From Date:         %s\n", s.From)
	fmt.Fprintf(&b, "To Date:           %s\n", s.To)
	b.WriteString(rule + "\n")
	price := "n/a"
	if s.CurrentPrice.Valid {
		price = Money(s.CurrentPrice.Float64)
	}
	fmt.Fprintf(&b, "Current Price:     %s\n", price)
	fmt.Fprintf(&b, "Price Change:      %s\n", Signed(s.PriceChange))
	fmt.Fprintf(&b, "Percent Change:    %+.2f%%\n", s.PercentChange)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-19s%s\n", fmt.Sprintf("%d-Day High:", s.Days), Money(s.High))
	fmt.Fprintf(&b, "%-19s%s\n", fmt.Sprintf("%d-Day Low:", s.Days), Money(s.Low))
	fmt.Fprintf(&b, "Avg Volume:        %s\n", thousands(int64(s.AverageVolume)))
	b.WriteString(strings.Repeat("=", 40))
	return b.String()
}

// thousands groups digits with commas.
func thousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// Price renders a successful closing-price lookup.
func Price(symbol, date string, price float64) string {
	return fmt.Sprintf("Stock: %s\nDate:  %s\nClose: %s", symbol, date, Money(price))
}

// Signals renders a crossover report, newest signal last.
func Signals(r *model.SignalReport) string {
	var b strings.Builder
	banner(&b, "STRATEGY ADVISOR: "+r.Symbol)
	fmt.Fprintf(&b, "Moving averages:   SMA%d / SMA%d over %d days\n", r.ShortPeriod, r.LongPeriod, r.Points)
	b.WriteString(rule + "\n")
	if len(r.Signals) == 0 {
		b.WriteString("No crossover signals in this period.\n")
	}
	for _, s := range r.Signals {
		fmt.Fprintf(&b, "%-4s  %-12s %s  (short %.2f / long %.2f)\n",
			s.Kind, s.Date, Money(s.Price), s.Short, s.Long)
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Current trend:     %s (gap %s)\n", r.Trend.Kind, Signed(r.Trend.Gap))
	if r.Fresh() {
		fmt.Fprintf(&b, "Latest signal fired today: %s\n", r.Latest().Kind)
	}
	b.WriteString(strings.Repeat("=", 40))
	return b.String()
}

// Performance renders a simulated trade.
func Performance(p *model.Performance) string {
	var b strings.Builder
	banner(&b, "PORTFOLIO PERFORMANCE: "+p.Symbol)
	fmt.Fprintf(&b, "Buy Date:     %-12s | Price: %s\n", p.BuyDate, Money(p.BuyPrice))
	fmt.Fprintf(&b, "Sell Date:    %-12s | Price: %s\n", p.SellDate, Money(p.SellPrice))
	b.WriteString(rule + "\n")
	status := "PROFIT"
	if p.Outcome == model.OutcomeLoss {
		status = "LOSS"
	}
	fmt.Fprintf(&b, "Result:       %s\n", status)
	fmt.Fprintf(&b, "Net Change:   %s\n", SignedMoney(p.Profit))
	if p.ZeroBasis {
		b.WriteString("Return (ROI): n/a (buy price was zero)\n")
	} else {
		fmt.Fprintf(&b, "Return (ROI): %+.2f%%\n", p.ROI)
	}
	if p.Reversed {
		b.WriteString("Note: the sell date is earlier than the buy date.\n")
	}
	b.WriteString(strings.Repeat("=", 40))
	return b.String()
}

// Info renders one watchlist dashboard line, e.g.
// "APPLE      | $278.28 (12/12/2025) | DOWN -4.82".
func Info(line *model.InfoLine) string {
	s := fmt.Sprintf("%-10s | %s (%s)", line.Symbol, Money(line.Price), line.Date)
	if line.HasChange {
		s += fmt.Sprintf(" | %s %s", line.Direction, Signed(line.Change))
	}
	return s
}

// InfoUnavailable renders a watchlist line for a symbol without usable data.
func InfoUnavailable(symbol, reason string) string {
	return fmt.Sprintf("%-10s | (%s)", symbol, reason)
}
