package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"StockDesk/internal/model"

	"github.com/guregu/null/v6"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// ErrNoData is returned when the chart API answers without any bars.
var ErrNoData = errors.New("no chart data returned")

// YahooFetcher downloads daily bars from the Yahoo Finance chart endpoint.
type YahooFetcher struct {
	Client     *http.Client
	BaseURL    string
	DateLayout string            // layout of the written dates, e.g. "01/02/2006"
	Tickers    map[string]string // local symbol -> Yahoo ticker
	Now        func() time.Time
}

// NewYahooFetcher creates a fetcher that honours proxyURL when set.
func NewYahooFetcher(proxyURL, dateLayout string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if dateLayout == "" {
		dateLayout = "01/02/2006"
	}
	return &YahooFetcher{
		Client:     &http.Client{Timeout: 30 * time.Second, Transport: transport},
		BaseURL:    yahooBaseURL,
		DateLayout: dateLayout,
		Tickers:    map[string]string{"SPX500": "^GSPC", "SPX": "^GSPC", "SP500": "^GSPC"},
		Now:        time.Now,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) ticker(symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if t, ok := f.Tickers[symbol]; ok {
		return t
	}
	return symbol
}

// chartURL asks for enough calendar days to cover the wanted trading days
// across weekends and holidays.
func (f *YahooFetcher) chartURL(symbol string, days int) string {
	end := f.Now()
	span := days*7/5 + 10
	if days <= 0 {
		span = 5 * 365
	}
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("period1", strconv.FormatInt(end.AddDate(0, 0, -span).Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	q.Set("includePrePost", "false")
	return fmt.Sprintf("%s/v8/finance/chart/%s?%s", f.BaseURL, url.PathEscape(f.ticker(symbol)), q.Encode())
}

// chartBars is one result of the chart API. Missing values arrive as JSON null.
type chartBars struct {
	Meta struct {
		ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []null.Float `json:"open"`
			High   []null.Float `json:"high"`
			Low    []null.Float `json:"low"`
			Close  []null.Float `json:"close"`
			Volume []null.Float `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

func decodeChart(r io.Reader) (*chartBars, error) {
	var payload struct {
		Chart struct {
			Result []chartBars `json:"result"`
			Error  *struct {
				Code        string `json:"code"`
				Description string `json:"description"`
			} `json:"error"`
		} `json:"chart"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	if e := payload.Chart.Error; e != nil {
		return nil, fmt.Errorf("chart api %s: %s", e.Code, e.Description)
	}
	if len(payload.Chart.Result) == 0 {
		return nil, ErrNoData
	}
	bars := &payload.Chart.Result[0]
	if len(bars.Timestamp) == 0 || len(bars.Indicators.Quote) == 0 {
		return nil, ErrNoData
	}
	return bars, nil
}

func pick(vals []null.Float, i int) null.Float {
	if i < len(vals) {
		return vals[i]
	}
	return null.Float{}
}

// records converts oldest-first bars to at most limit newest-first records.
func (b *chartBars) records(layout string, limit int) []model.DailyRecord {
	loc := time.UTC
	if name := b.Meta.ExchangeTimezoneName; name != "" {
		if tz, err := time.LoadLocation(name); err == nil {
			loc = tz
		}
	}
	q := b.Indicators.Quote[0]
	out := make([]model.DailyRecord, 0, len(b.Timestamp))
	for i := len(b.Timestamp) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		rec := model.DailyRecord{
			Date:   time.Unix(b.Timestamp[i], 0).In(loc).Format(layout),
			Open:   pick(q.Open, i),
			High:   pick(q.High, i),
			Low:    pick(q.Low, i),
			Close:  pick(q.Close, i),
			Volume: pick(q.Volume, i),
		}
		// Holidays show up as bars with every price null.
		if !rec.Open.Valid && !rec.High.Valid && !rec.Low.Valid && !rec.Close.Valid {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// FetchDaily returns up to days daily records, newest first. days <= 0
// returns everything the endpoint sends for five years.
func (f *YahooFetcher) FetchDaily(ctx context.Context, symbol string, days int) ([]model.DailyRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.chartURL(symbol, days), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("yahoo %s: status %d: %s", symbol, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	bars, err := decodeChart(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, err)
	}
	return bars.records(f.DateLayout, days), nil
}
