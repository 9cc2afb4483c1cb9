package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"StockDesk/internal/desk"
	"StockDesk/internal/notifier"
	"StockDesk/internal/recorder"
	"StockDesk/internal/render"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the cron tasks and answers chat commands.
type Scheduler struct {
	Cron     *cron.Cron
	Desk     *desk.Desk
	Notifier notifier.Sender // nil when Telegram is disabled
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, d *desk.Desk, sender notifier.Sender) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Desk:     d,
		Notifier: sender,
		Ctx:      ctx,
	}
}

// RegisterAll registers the reload and signal sweep tasks.
func (s *Scheduler) RegisterAll(reloadCron, sweepCron string) error {
	if _, err := s.Cron.AddFunc(reloadCron, s.reloadTask); err != nil {
		return fmt.Errorf("register reload task: %w", err)
	}
	if _, err := s.Cron.AddFunc(sweepCron, s.sweepTask); err != nil {
		return fmt.Errorf("register sweep task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunSweepNow executes the signal sweep immediately and returns the number of alerts.
func (s *Scheduler) RunSweepNow() int {
	return s.sweep()
}

func (s *Scheduler) reloadTask() {
	log.Println("[INFO] running reload task")
	n, err := s.Desk.Reload()
	if err != nil {
		log.Printf("[ERROR] reload: %v", err)
		return
	}
	log.Printf("[INFO] reloaded %d stocks", n)
}

func (s *Scheduler) sweepTask() {
	log.Println("[INFO] running signal sweep")
	n := s.sweep()
	log.Printf("[INFO] signal sweep done, %d alerts", n)
}

// sweep analyzes every watched stock and alerts on signals that fired on the
// newest data point.
func (s *Scheduler) sweep() int {
	alerts := 0
	for _, sym := range s.Desk.Watchlist.Symbols() {
		report, err := s.Desk.Signals(recorder.SourceSweep, sym, 0, 0)
		if err != nil {
			log.Printf("[WARN] sweep %s: %v", sym, err)
			continue
		}
		if !report.Fresh() {
			continue
		}
		alerts++
		s.trySend(notifier.FormatSignalAlert(report))
	}
	return alerts
}

const helpText = `Available commands:
/list - loaded stocks
/summary SYMBOL [DAYS]
/signals SYMBOL
/price SYMBOL DATE
/trade SYMBOL BUY_DATE SELL_DATE
/watchlist`

// HandleCommand processes a chat command and returns the HTML reply.
func (s *Scheduler) HandleCommand(_ context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}
	name := strings.ToLower(fields[0])
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i] // "/list@MyBot"
	}
	args := fields[1:]
	d := s.Desk

	switch name {
	case "/list":
		return notifier.Pre(render.StockList(d.Stocks()))
	case "/summary":
		if len(args) < 1 {
			return "Usage: /summary SYMBOL [DAYS]"
		}
		window := 0
		if len(args) > 1 {
			if _, err := fmt.Sscanf(args[1], "%d", &window); err != nil {
				return "DAYS must be a number"
			}
		}
		sum, err := d.Summary(recorder.SourceTelegram, args[0], window)
		if err != nil {
			return notifier.FormatError(err)
		}
		return notifier.Pre(render.Summary(sum))
	case "/signals":
		if len(args) < 1 {
			return "Usage: /signals SYMBOL"
		}
		report, err := d.Signals(recorder.SourceTelegram, args[0], 0, 0)
		if err != nil {
			return notifier.FormatFailure(d.Explain(err))
		}
		return notifier.Pre(render.Signals(report))
	case "/price":
		if len(args) < 2 {
			return "Usage: /price SYMBOL DATE"
		}
		price, err := d.Price(args[0], args[1])
		if err != nil {
			return notifier.FormatFailure(d.Explain(err))
		}
		return notifier.Pre(render.Price(strings.ToUpper(args[0]), args[1], price))
	case "/trade":
		if len(args) < 3 {
			return "Usage: /trade SYMBOL BUY_DATE SELL_DATE"
		}
		p, err := d.Trade(recorder.SourceTelegram, args[0], args[1], args[2])
		if err != nil {
			return notifier.FormatFailure(d.Explain(err))
		}
		return notifier.Pre(render.Performance(p))
	case "/watchlist":
		return notifier.FormatWatchlist(d.WatchlistLines())
	default:
		return helpText
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		log.Printf("[INFO] notification (telegram disabled): %s", text)
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
