// Package breadth computes the market-breadth indicator: for each trading
// day, how many constituents closed above their own trailing 20- and
// 60-observation simple moving averages, out of how many had enough history
// to be compared at all.
//
// The computation is a pure function of the supplied price table and ticker
// universe. It performs no I/O, assumes no caching, and returns identical
// results for identical inputs regardless of ticker order.
package breadth

import (
	"sort"
	"time"

	"github.com/guttosm/marketpulse/internal/domain/models"
)

// Default moving-average windows, in observed trading days.
const (
	DefaultShortWindow = 20
	DefaultLongWindow  = 60
)

// indicator is the per-ticker, per-date contribution before the reduce step.
// Presence of an entry means the ticker is eligible on that date (it has a
// close and a defined long-window average).
type indicator struct {
	aboveShort bool
	aboveLong  bool
}

// Aggregator computes breadth history over a price table.
type Aggregator struct {
	shortWindow int
	longWindow  int
}

// NewAggregator creates an Aggregator with the given moving-average windows.
// Non-positive or inverted windows fall back to the 20/60 defaults.
func NewAggregator(shortWindow, longWindow int) *Aggregator {
	if shortWindow <= 0 || longWindow <= 0 || shortWindow > longWindow {
		shortWindow = DefaultShortWindow
		longWindow = DefaultLongWindow
	}
	return &Aggregator{shortWindow: shortWindow, longWindow: longWindow}
}

// ComputeHistory aggregates per-date breadth counts across the given ticker
// universe.
//
// Rules:
//   - Only tickers in the universe are considered; stale tickers that exist
//     in the table but not in the universe contribute nothing.
//   - Moving averages are computed over each ticker's own observed dates.
//     They are undefined (not zero) until enough observations exist.
//   - A ticker is eligible on a date when it has both a close and a defined
//     long-window average there. Ineligible tickers are excluded from all
//     three counts, not treated as "below".
//   - "Above" is strict: close > average. An exact tie does not count.
//   - Dates where no ticker is eligible are omitted from the result.
//
// Counts merge by per-date summation, which is commutative and associative,
// so the result is independent of ticker processing order.
func (a *Aggregator) ComputeHistory(table models.PriceTable, tickers []string) models.BreadthHistory {
	if len(table) == 0 || len(tickers) == 0 {
		return nil
	}

	rows := make(map[time.Time]*models.BreadthRow)
	seen := make(map[string]struct{}, len(tickers))

	for _, ticker := range tickers {
		if _, dup := seen[ticker]; dup {
			continue
		}
		seen[ticker] = struct{}{}

		series, ok := table[ticker]
		if !ok {
			continue
		}
		for date, ind := range a.tickerIndicators(series) {
			row, ok := rows[date]
			if !ok {
				row = &models.BreadthRow{Date: date}
				rows[date] = row
			}
			row.Eligible++
			if ind.aboveShort {
				row.Above20++
			}
			if ind.aboveLong {
				row.Above60++
			}
		}
	}

	if len(rows) == 0 {
		return nil
	}

	history := make(models.BreadthHistory, 0, len(rows))
	for _, row := range rows {
		history = append(history, *row)
	}
	sort.Slice(history, func(i, j int) bool { return history[i].Date.Before(history[j].Date) })
	return history
}

// tickerIndicators maps one ticker's price series to its per-date eligibility
// and above/below flags. Dates with no close stay absent; the trailing
// windows advance over the ticker's observed dates only, so a gap in the
// calendar does not dilute the averages.
func (a *Aggregator) tickerIndicators(series models.PriceSeries) map[time.Time]indicator {
	if len(series) < a.longWindow {
		return nil
	}

	dates := make([]time.Time, 0, len(series))
	for d := range series {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	closes := make([]float64, len(dates))
	for i, d := range dates {
		closes[i] = series[d]
	}

	// Prefix sums make each trailing mean an O(1) lookup.
	prefix := make([]float64, len(closes)+1)
	for i, c := range closes {
		prefix[i+1] = prefix[i] + c
	}
	trailingMean := func(i, window int) float64 {
		return (prefix[i+1] - prefix[i+1-window]) / float64(window)
	}

	out := make(map[time.Time]indicator, len(dates)-a.longWindow+1)
	for i := a.longWindow - 1; i < len(dates); i++ {
		c := closes[i]
		out[dates[i]] = indicator{
			aboveShort: c > trailingMean(i, a.shortWindow),
			aboveLong:  c > trailingMean(i, a.longWindow),
		}
	}
	return out
}

// LatestSnapshot reduces a breadth history to its most recent row, expanded
// into percentages. An empty history yields the unavailable sentinel
// (Available=false), never a zero-filled snapshot.
func LatestSnapshot(history models.BreadthHistory) models.BreadthSnapshot {
	if len(history) == 0 {
		return models.BreadthSnapshot{Available: false}
	}

	latest := history[len(history)-1]
	if latest.Eligible == 0 {
		// Stored rows always have Eligible >= 1; guard anyway so a malformed
		// input can never divide by zero.
		return models.BreadthSnapshot{Available: false}
	}

	return models.BreadthSnapshot{
		Available:     true,
		Date:          latest.Date,
		Above20Count:  latest.Above20,
		Above60Count:  latest.Above60,
		EligibleTotal: latest.Eligible,
		Pct20:         float64(latest.Above20) / float64(latest.Eligible) * 100,
		Pct60:         float64(latest.Above60) / float64(latest.Eligible) * 100,
	}
}
