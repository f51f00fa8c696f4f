package marketdata

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/marketpulse/internal/domain/models"
	"github.com/guttosm/marketpulse/internal/logger"
	"github.com/guttosm/marketpulse/internal/metrics"
)

const maxParallelDownloads = 16

// Downloader fans per-ticker fetches out across a bounded worker pool and
// merges the results into a single price table.
type Downloader struct {
	fetcher  Fetcher
	parallel int
}

// NewDownloader wraps a Fetcher. parallel <= 0 picks min(NumCPU, 16).
func NewDownloader(fetcher Fetcher, parallel int) *Downloader {
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	if parallel > maxParallelDownloads {
		parallel = maxParallelDownloads
	}
	return &Downloader{fetcher: fetcher, parallel: parallel}
}

// Download fetches daily closes for every ticker inside [start, end].
//
// Per-ticker failures do not fail the call: the failed ticker is omitted
// from the table, counted in the returned omitted total, and surfaced on the
// download-failure metric. Only context cancellation aborts the whole
// download.
//
// The merge is a per-ticker map insert, so the resulting table does not
// depend on worker scheduling order.
func (d *Downloader) Download(ctx context.Context, tickers []string, start, end time.Time) (models.PriceTable, int, error) {
	if len(tickers) == 0 {
		return nil, 0, nil
	}

	began := time.Now()
	table := make(models.PriceTable, len(tickers))
	omitted := 0

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.parallel)

	for _, ticker := range tickers {
		tk := ticker
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			series, err := d.fetcher.FetchDailyCloses(gctx, tk, start, end)

			mu.Lock()
			defer mu.Unlock()
			if err != nil || len(series) == 0 {
				omitted++
				metrics.DownloadFailures.WithLabelValues(d.fetcher.Name()).Inc()
				if err != nil {
					logger.L().Debug().Str("ticker", tk).Err(err).Msg("price download omitted")
				}
				return nil
			}
			table[tk] = series
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	metrics.RefreshDuration.WithLabelValues("prices").Observe(time.Since(began).Seconds())
	logger.L().Info().
		Int("tickers", len(tickers)).
		Int("downloaded", len(table)).
		Int("omitted", omitted).
		Str("source", d.fetcher.Name()).
		Dur("elapsed", time.Since(began)).
		Msg("price table downloaded")

	return table, omitted, nil
}
