package notifier

import (
	"fmt"
	"html"
	"strings"

	"StockDesk/internal/model"
	"StockDesk/internal/render"
)

// Pre wraps plain report text in an HTML <pre> block.
func Pre(text string) string {
	return "<pre>" + html.EscapeString(text) + "</pre>"
}

// FormatSignalAlert is the message sent when a watched stock crosses today.
func FormatSignalAlert(r *model.SignalReport) string {
	s := r.Latest()
	icon := "🟢"
	if s.Kind == model.SignalSell {
		icon = "🔴"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>%s signal</b> | %s\n\n", icon, s.Kind, html.EscapeString(r.Symbol))
	fmt.Fprintf(&b, "Date: %s\n", html.EscapeString(s.Date))
	fmt.Fprintf(&b, "Close: %s\n", render.Money(s.Price))
	fmt.Fprintf(&b, "SMA%d %.2f / SMA%d %.2f\n", r.ShortPeriod, s.Short, r.LongPeriod, s.Long)
	fmt.Fprintf(&b, "Trend: %s", r.Trend.Kind)
	return b.String()
}

// FormatWatchlist renders the dashboard lines for Telegram.
func FormatWatchlist(lines []string) string {
	if len(lines) == 0 {
		return "📋 <b>Watchlist</b>\n\n(Your watchlist is empty)"
	}
	return "📋 <b>Watchlist</b>\n" + Pre(strings.Join(lines, "\n"))
}

// FormatError renders a failed command.
func FormatError(err error) string {
	return FormatFailure(err.Error())
}

// FormatFailure renders an already explained failure.
func FormatFailure(msg string) string {
	return "❌ " + html.EscapeString(msg)
}
