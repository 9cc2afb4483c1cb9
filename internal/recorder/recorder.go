package recorder

import "StockDesk/internal/model"

// Source tells where an analysis was requested from: "console", "api",
// "telegram", "sweep" or "cli".
type Source string

const (
	SourceConsole  Source = "console"
	SourceAPI      Source = "api"
	SourceTelegram Source = "telegram"
	SourceSweep    Source = "sweep"
	SourceCLI      Source = "cli"
)

// Recorder keeps a history of analysis results.
type Recorder interface {
	RecordSummary(src Source, s *model.Summary) error
	RecordSignals(src Source, r *model.SignalReport) error
	RecordTrade(src Source, p *model.Performance) error
	Close() error
}
