package api

import (
	"net/http"
	"strconv"
	"strings"

	"StockDesk/internal/model"
	"StockDesk/internal/recorder"

	"github.com/gin-gonic/gin"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"stocks":  s.Desk.Store.Len(),
		"version": s.Version,
	})
}

func (s *Server) listStocks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stocks": s.Desk.Stocks()})
}

func (s *Server) reload(c *gin.Context) {
	n, err := s.Desk.Reload()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"loaded": n})
}

func (s *Server) reloadSymbol(c *gin.Context) {
	series, err := s.Desk.ReloadSymbol(c.Param("symbol"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"symbol": series.Symbol, "rows": series.Len()})
}

// intQuery reads an optional integer query parameter; absent means 0.
func intQuery(c *gin.Context, name string) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, name+" must be an integer")
		return 0, false
	}
	return v, true
}

func (s *Server) preview(c *gin.Context) {
	rows, ok := intQuery(c, "rows")
	if !ok {
		return
	}
	if rows <= 0 {
		rows = s.Desk.Defaults.PreviewRows
	}
	series, err := s.Desk.Series(c.Param("symbol"))
	if err != nil {
		s.fail(c, err)
		return
	}
	records := series.Records
	if rows < len(records) {
		records = records[:rows]
	}
	c.JSON(http.StatusOK, gin.H{
		"symbol":  series.Symbol,
		"total":   series.Len(),
		"records": records,
	})
}

func (s *Server) summary(c *gin.Context) {
	window, ok := intQuery(c, "window")
	if !ok {
		return
	}
	if _, present := c.GetQuery("window"); present && window <= 0 {
		badRequest(c, "window must be positive")
		return
	}
	sum, err := s.Desk.Summary(recorder.SourceAPI, c.Param("symbol"), window)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":   sum,
		"period":    sum.Period(),
		"truncated": sum.Truncated(),
	})
}

func (s *Server) signals(c *gin.Context) {
	short, ok := intQuery(c, "short")
	if !ok {
		return
	}
	long, ok := intQuery(c, "long")
	if !ok {
		return
	}
	report, err := s.Desk.Signals(recorder.SourceAPI, c.Param("symbol"), short, long)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"report": report,
		"latest": report.Latest(),
		"fresh":  report.Fresh(),
	})
}

func (s *Server) price(c *gin.Context) {
	date := c.Query("date")
	if strings.TrimSpace(date) == "" {
		badRequest(c, "date is required")
		return
	}
	symbol := model.NormalizeSymbol(c.Param("symbol"))
	price, err := s.Desk.Price(symbol, date)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"symbol": symbol, "date": strings.TrimSpace(date), "close": price})
}

func (s *Server) performance(c *gin.Context) {
	buy, sell := c.Query("buy"), c.Query("sell")
	if strings.TrimSpace(buy) == "" || strings.TrimSpace(sell) == "" {
		badRequest(c, "buy and sell dates are required")
		return
	}
	p, err := s.Desk.Trade(recorder.SourceAPI, c.Param("symbol"), buy, sell)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) info(c *gin.Context) {
	line, err := s.Desk.Info(c.Param("symbol"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

type watchEntry struct {
	Symbol string          `json:"symbol"`
	Info   *model.InfoLine `json:"info,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func (s *Server) getWatchlist(c *gin.Context) {
	symbols := s.Desk.Watchlist.Symbols()
	entries := make([]watchEntry, 0, len(symbols))
	for _, sym := range symbols {
		e := watchEntry{Symbol: sym}
		if line, err := s.Desk.Info(sym); err != nil {
			e.Error = err.Error()
		} else {
			e.Info = line
		}
		entries = append(entries, e)
	}
	c.JSON(http.StatusOK, gin.H{"watchlist": entries})
}

func (s *Server) addWatch(c *gin.Context) {
	if err := s.Desk.Watchlist.Add(c.Param("symbol"), s.Desk.Store); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"watchlist": s.Desk.Watchlist.Symbols()})
}

func (s *Server) removeWatch(c *gin.Context) {
	if err := s.Desk.Watchlist.Remove(c.Param("symbol")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"watchlist": s.Desk.Watchlist.Symbols()})
}
