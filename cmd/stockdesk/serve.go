package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"StockDesk/internal/api"
	"StockDesk/internal/notifier"
	"StockDesk/internal/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var (
		addr       string
		sweepFirst bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, scheduled jobs and Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()
			if addr == "" {
				addr = a.cfg.HTTP.Addr
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var sender notifier.Sender
			var tn *notifier.TelegramNotifier
			if a.cfg.TelegramEnabled() {
				tn = notifier.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.cfg.Proxy)
				sender = tn
			} else {
				log.Println("[INFO] telegram disabled, alerts are logged only")
			}

			sched := scheduler.NewScheduler(ctx, a.desk, sender)
			if err := sched.RegisterAll(a.cfg.Schedule.ReloadCron, a.cfg.Schedule.SweepCron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			if tn != nil {
				go tn.StartPolling(ctx, sched.HandleCommand)
				log.Println("[INFO] Telegram polling started")
			}
			if sweepFirst {
				go sched.RunSweepNow()
			}

			gin.SetMode(gin.ReleaseMode)
			if !a.cfg.RateLimitEnabled() {
				log.Println("[INFO] API rate limiting disabled")
			}
			srv := api.NewServer(a.desk, api.Options{
				RateLimit:   a.cfg.HTTP.RateLimit,
				RateBurst:   a.cfg.HTTP.RateBurst,
				CORSOrigins: a.cfg.HTTP.CORSOrigins,
				Version:     version,
			})
			log.Println("[INFO] StockDesk is running. Press Ctrl+C to stop.")
			return srv.Run(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&sweepFirst, "sweep-now", false, "run the watchlist signal sweep once at startup")
	return cmd
}
