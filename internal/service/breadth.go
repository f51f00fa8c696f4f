// Package service holds the business-logic layer between the HTTP handlers
// and the data collaborators. It owns the memoize-with-expiry policy the
// pure computation layer below it must not know about.
package service

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/guttosm/marketpulse/internal/breadth"
	"github.com/guttosm/marketpulse/internal/domain/models"
	"github.com/guttosm/marketpulse/internal/logger"
	"github.com/guttosm/marketpulse/internal/marketdata"
	"github.com/guttosm/marketpulse/internal/metrics"
	"github.com/guttosm/marketpulse/internal/symbols"
)

const (
	cacheKeySymbols = "symbols"
	cacheKeyHistory = "breadth_history"
)

// BreadthService exposes the market-breadth pipeline: roster -> price table
// -> aggregated history -> latest snapshot.
//
// Empty results mean "unavailable" and are the degraded path for upstream
// failures; errors are reserved for cancellation and genuinely unexpected
// conditions.
type BreadthService interface {
	Symbols(ctx context.Context) []string
	History(ctx context.Context) (models.BreadthHistory, error)
	Snapshot(ctx context.Context) (models.BreadthSnapshot, error)
	Refresh(ctx context.Context) error
}

// BreadthConfig tunes the pipeline. Zero values pick the defaults below.
type BreadthConfig struct {
	SymbolsTTL  time.Duration // roster cache lifetime (default 7 days)
	HistoryTTL  time.Duration // price/history cache lifetime (default 6 hours)
	HistoryDays int           // calendar days of price history to request (default 2008, ~5.5y)
}

type breadthService struct {
	provider   symbols.Provider
	downloader *marketdata.Downloader
	agg        *breadth.Aggregator
	cache      *gocache.Cache

	symbolsTTL  time.Duration
	historyTTL  time.Duration
	historyDays int
}

// NewBreadthService wires the pipeline. The aggregator and downloader are
// pure/stateless; all expiry policy lives here.
func NewBreadthService(provider symbols.Provider, downloader *marketdata.Downloader, agg *breadth.Aggregator, cfg BreadthConfig) BreadthService {
	if cfg.SymbolsTTL <= 0 {
		cfg.SymbolsTTL = 7 * 24 * time.Hour
	}
	if cfg.HistoryTTL <= 0 {
		cfg.HistoryTTL = 6 * time.Hour
	}
	if cfg.HistoryDays <= 0 {
		cfg.HistoryDays = 2008
	}
	return &breadthService{
		provider:    provider,
		downloader:  downloader,
		agg:         agg,
		cache:       gocache.New(cfg.HistoryTTL, 30*time.Minute),
		symbolsTTL:  cfg.SymbolsTTL,
		historyTTL:  cfg.HistoryTTL,
		historyDays: cfg.HistoryDays,
	}
}

// Symbols returns the current constituent roster. An empty roster means the
// provider is unavailable; it is never an error and never "zero
// constituents".
func (s *breadthService) Symbols(ctx context.Context) []string {
	if cached, ok := s.cache.Get(cacheKeySymbols); ok {
		return cached.([]string)
	}

	roster, err := s.provider.CurrentConstituents(ctx)
	if err != nil {
		logger.L().Warn().Err(err).Str("source", s.provider.Name()).Msg("constituent roster unavailable")
		return nil
	}
	s.cache.Set(cacheKeySymbols, roster, s.symbolsTTL)
	return roster
}

// History computes (or returns the cached) breadth history. A nil history
// means insufficient data; rendering layers degrade instead of crashing.
func (s *breadthService) History(ctx context.Context) (models.BreadthHistory, error) {
	if cached, ok := s.cache.Get(cacheKeyHistory); ok {
		return cached.(models.BreadthHistory), nil
	}

	roster := s.Symbols(ctx)
	if len(roster) == 0 {
		return nil, nil
	}

	end := time.Now()
	start := end.AddDate(0, 0, -s.historyDays)
	table, omitted, err := s.downloader.Download(ctx, roster, start, end)
	if err != nil {
		return nil, err
	}
	if len(table) == 0 {
		logger.L().Warn().Int("omitted", omitted).Msg("price table empty, breadth unavailable")
		return nil, nil
	}

	history := s.agg.ComputeHistory(table, roster)
	if len(history) == 0 {
		return nil, nil
	}

	metrics.BreadthEligible.Set(float64(history[len(history)-1].Eligible))
	s.cache.Set(cacheKeyHistory, history, s.historyTTL)
	return history, nil
}

// Snapshot reduces the history to its latest row. The unavailable sentinel
// flows through untouched when there is no data.
func (s *breadthService) Snapshot(ctx context.Context) (models.BreadthSnapshot, error) {
	history, err := s.History(ctx)
	if err != nil {
		return models.BreadthSnapshot{}, err
	}
	return breadth.LatestSnapshot(history), nil
}

// Refresh drops the cached history and recomputes it. The roster keeps its
// own (longer) expiry.
func (s *breadthService) Refresh(ctx context.Context) error {
	s.cache.Delete(cacheKeyHistory)
	_, err := s.History(ctx)
	return err
}
