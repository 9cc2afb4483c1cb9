package main

import (
	"fmt"
	"log"
	"os"

	"StockDesk/internal/config"
	"StockDesk/internal/console"
	"StockDesk/internal/desk"
	"StockDesk/internal/recorder"
	"StockDesk/internal/store"
	"StockDesk/internal/tradingday"
	"StockDesk/internal/watchlist"

	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0"
	configPath string
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	rootCmd := &cobra.Command{
		Use:   "stockdesk",
		Short: "Daily stock price analytics",
		Long: `stockdesk loads daily price CSV files and answers questions about them:
summaries, moving-average crossover signals, price lookups and simulated trades.
Without a subcommand it starts the interactive menu.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()
			return console.New(a.desk, os.Stdin, os.Stdout).Run()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $CONFIG_PATH or "+config.DefaultPath+")")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(signalsCmd())
	rootCmd.AddCommand(priceCmd())
	rootCmd.AddCommand(tradeCmd())
	rootCmd.AddCommand(fetchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stockdesk version %s\n", version)
		},
	}
}

// app is the wiring shared by every subcommand.
type app struct {
	cfg  *config.Config
	rec  recorder.Recorder
	desk *desk.Desk
}

func setup() (*app, error) {
	cfg, err := config.Load(config.Path(configPath))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	rec := recorder.Open(cfg.Database.PostgresDSN, cfg.Database.SQLitePath)
	d := &desk.Desk{
		Store:     store.New(),
		Watchlist: watchlist.Open(cfg.Data.Watchlist),
		Recorder:  rec,
		Calendar:  tradingday.New(cfg.Market.MIC, cfg.Market.DateLayout),
		DataDir:   cfg.Data.Dir,
		ExportDir: cfg.Data.ExportDir,
		Defaults: desk.Defaults{
			Window:      cfg.Analysis.SummaryWindow,
			ShortPeriod: cfg.Analysis.ShortPeriod,
			LongPeriod:  cfg.Analysis.LongPeriod,
			PreviewRows: cfg.Analysis.PreviewRows,
		},
	}

	n, err := d.Reload()
	if err != nil {
		log.Printf("[WARN] preload %s: %v", cfg.Data.Dir, err)
	} else if n == 0 {
		log.Printf("[INFO] no CSV files in %s, starting with no stocks", cfg.Data.Dir)
	}
	return &app{cfg: cfg, rec: rec, desk: d}, nil
}

func (a *app) close() {
	if err := a.rec.Close(); err != nil {
		log.Printf("[WARN] close recorder: %v", err)
	}
}
