package main

import (
	"context"
	"fmt"

	"StockDesk/internal/collector"
	"StockDesk/internal/model"
	"StockDesk/internal/recorder"
	"StockDesk/internal/render"

	"github.com/spf13/cobra"
)

// oneShot runs fn against a freshly loaded desk and prints explained errors.
func oneShot(fn func(a *app) (string, error)) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()
	out, err := fn(a)
	if err != nil {
		return fmt.Errorf("%s", a.desk.Explain(err))
	}
	fmt.Println(out)
	return nil
}

func summaryCmd() *cobra.Command {
	var window int
	var save bool
	cmd := &cobra.Command{
		Use:   "summary SYMBOL",
		Short: "Summarize the most recent days of a stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oneShot(func(a *app) (string, error) {
				s, err := a.desk.Summary(recorder.SourceCLI, args[0], window)
				if err != nil {
					return "", err
				}
				out := render.Summary(s)
				if save {
					path, err := a.desk.SaveSummary(s)
					if err != nil {
						return "", err
					}
					out += "\nSaved to: " + path
				}
				return out, nil
			})
		},
	}
	cmd.Flags().IntVarP(&window, "window", "w", 0, "number of days (default from config)")
	cmd.Flags().BoolVar(&save, "save", false, "write Summary_<SYMBOL>.csv to the export directory")
	return cmd
}

func signalsCmd() *cobra.Command {
	var short, long int
	cmd := &cobra.Command{
		Use:   "signals SYMBOL",
		Short: "Detect moving-average crossover signals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oneShot(func(a *app) (string, error) {
				r, err := a.desk.Signals(recorder.SourceCLI, args[0], short, long)
				if err != nil {
					return "", err
				}
				return render.Signals(r), nil
			})
		},
	}
	cmd.Flags().IntVar(&short, "short", 0, "short moving-average period (default from config)")
	cmd.Flags().IntVar(&long, "long", 0, "long moving-average period (default from config)")
	return cmd
}

func priceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price SYMBOL DATE",
		Short: "Show the closing price on a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oneShot(func(a *app) (string, error) {
				p, err := a.desk.Price(args[0], args[1])
				if err != nil {
					return "", err
				}
				return render.Price(model.NormalizeSymbol(args[0]), args[1], p), nil
			})
		},
	}
}

func tradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trade SYMBOL BUY_DATE SELL_DATE",
		Short: "Simulate buying and selling one share",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oneShot(func(a *app) (string, error) {
				p, err := a.desk.Trade(recorder.SourceCLI, args[0], args[1], args[2])
				if err != nil {
					return "", err
				}
				return render.Performance(p), nil
			})
		},
	}
}

func fetchCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "fetch SYMBOL...",
		Short: "Download daily history from Yahoo Finance into the data directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oneShot(func(a *app) (string, error) {
				if days <= 0 {
					days = a.cfg.Collector.Days
				}
				fetcher := collector.NewYahooFetcher(a.cfg.Proxy, a.cfg.Market.DateLayout)
				col := collector.NewCollector(fetcher, a.desk.DataDir, a.desk.Store, days)
				entries := make([]render.StockEntry, 0, len(args))
				for _, sym := range args {
					series, err := col.Collect(context.Background(), sym)
					if err != nil {
						return "", err
					}
					entries = append(entries, render.StockEntry{Symbol: series.Symbol, Rows: series.Len()})
				}
				return render.StockList(entries), nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "number of trading days (default from config)")
	return cmd
}
