package recorder

import "StockDesk/internal/model"

// NoopRecorder is used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSummary(_ Source, _ *model.Summary) error      { return nil }
func (n *NoopRecorder) RecordSignals(_ Source, _ *model.SignalReport) error { return nil }
func (n *NoopRecorder) RecordTrade(_ Source, _ *model.Performance) error    { return nil }
func (n *NoopRecorder) Close() error                                        { return nil }
