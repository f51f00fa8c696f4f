package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/guttosm/marketpulse/internal/domain/models"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

var errNoData = errors.New("no price data returned")

// YahooFetcher retrieves daily closes from the Yahoo Finance v8 chart API.
type YahooFetcher struct {
	client  *http.Client
	baseURL string
}

// NewYahooFetcher builds a fetcher against the given base URL (empty means
// the public Yahoo endpoint).
func NewYahooFetcher(baseURL string) *YahooFetcher {
	if baseURL == "" {
		baseURL = defaultYahooBaseURL
	}
	return &YahooFetcher{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart mirrors the chart API response. Close values arrive as JSON
// nulls on non-trading gaps, hence the pointer slice.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchDailyCloses returns the ticker's daily closing prices inside
// [start, end]. Null closes (holidays, halts) stay absent from the series.
func (f *YahooFetcher) FetchDailyCloses(ctx context.Context, symbol string, start, end time.Time) (models.PriceSeries, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		f.baseURL, url.PathEscape(symbol), start.Unix(), end.Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d for %s", resp.StatusCode, symbol)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, errNoData
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	series := make(models.PriceSeries, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		series[models.TradingDay(time.Unix(ts, 0))] = *quote.Close[i]
	}
	if len(series) == 0 {
		return nil, errNoData
	}
	return series, nil
}
