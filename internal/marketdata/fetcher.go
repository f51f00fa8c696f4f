// Package marketdata downloads per-ticker daily closing prices and
// assembles them into the price table the breadth aggregator consumes.
package marketdata

import (
	"context"
	"time"

	"github.com/guttosm/marketpulse/internal/domain/models"
)

// Fetcher retrieves one ticker's daily closes inside [start, end].
type Fetcher interface {
	FetchDailyCloses(ctx context.Context, symbol string, start, end time.Time) (models.PriceSeries, error)
	Name() string
}

// MockFetcher returns canned series for tests. Symbols absent from Series
// fail with Err (or a default error when Err is nil).
type MockFetcher struct {
	Series map[string]models.PriceSeries
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(_ context.Context, symbol string, _, _ time.Time) (models.PriceSeries, error) {
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return nil, errNoData
}
