package symbols

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/guttosm/marketpulse/internal/logger"
)

// DefaultWikipediaURL is the constituents page the roster is scraped from.
const DefaultWikipediaURL = "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"

// WikipediaProvider scrapes the constituents table from the Wikipedia
// "List of S&P 500 companies" page. The ticker sits in the first column of
// the first sortable wikitable.
type WikipediaProvider struct {
	client *http.Client
	url    string
}

// NewWikipediaProvider builds a provider for the given page URL. An empty
// URL falls back to DefaultWikipediaURL.
func NewWikipediaProvider(url string) *WikipediaProvider {
	if url == "" {
		url = DefaultWikipediaURL
	}
	return &WikipediaProvider{
		client: &http.Client{Timeout: 15 * time.Second},
		url:    url,
	}
}

func (p *WikipediaProvider) Name() string { return "wikipedia" }

// CurrentConstituents fetches and parses the constituents table.
//
// On any failure (network, HTTP status, unparsable page) it returns a nil
// roster and the error; callers treat that as "roster unavailable" and keep
// whatever they had cached.
func (p *WikipediaProvider) CurrentConstituents(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "marketpulse/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch constituents page: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("constituents page: unexpected status %d", resp.StatusCode)
	}

	roster, err := ParseConstituentsTable(resp)
	if err != nil {
		return nil, err
	}

	logger.L().Info().Int("count", len(roster)).Str("source", p.Name()).Msg("constituent roster loaded")
	return roster, nil
}

// ParseConstituentsTable extracts normalized, deduplicated tickers from the
// first sortable wikitable in the response body.
func ParseConstituentsTable(resp *http.Response) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse constituents page: %w", err)
	}

	table := doc.Find("table.wikitable.sortable").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("constituents table not found")
	}

	var tickers []string
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cell := row.Find("td").First() // header rows have no td
		if cell.Length() == 0 {
			return
		}
		if t := Normalize(cell.Text()); t != "" {
			tickers = append(tickers, t)
		}
	})

	tickers = Dedupe(tickers)
	if len(tickers) == 0 {
		return nil, fmt.Errorf("constituents table is empty")
	}
	return tickers, nil
}
