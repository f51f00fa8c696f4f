package treasury

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/guttosm/marketpulse/internal/logger"
	"github.com/guttosm/marketpulse/internal/metrics"
	"github.com/guttosm/marketpulse/internal/storage"
)

// Updater downloads the latest yield-curve CSV and persists it when it
// carries a strictly newer observation than what is stored. Re-running it
// against unchanged source data is a no-op, so a scheduler can fire it as
// often as it likes.
type Updater struct {
	client *http.Client
	url    string
	repo   storage.CurveRepository
}

// NewUpdater builds an Updater fetching from the given CSV URL.
func NewUpdater(url string, repo storage.CurveRepository) *Updater {
	return &Updater{
		client: &http.Client{Timeout: 60 * time.Second},
		url:    url,
		repo:   repo,
	}
}

// Refresh performs one download-compare-persist cycle. It returns whether
// the stored dataset was replaced.
func (u *Updater) Refresh(ctx context.Context) (bool, error) {
	began := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.url, nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("download treasury csv: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("treasury csv: unexpected status %d", resp.StatusCode)
	}

	points, err := ParseCurveCSV(resp.Body)
	if err != nil {
		return false, fmt.Errorf("parse treasury csv: %w", err)
	}

	newest, ok := LatestObservation(points)
	if !ok {
		return false, fmt.Errorf("treasury csv contains no usable observations")
	}

	stored, hasStored, err := u.repo.LatestObservationDate()
	if err != nil {
		return false, fmt.Errorf("read stored latest date: %w", err)
	}
	if hasStored && !newest.After(stored) {
		logger.L().Info().
			Time("latest", stored).
			Msg("treasury data already current")
		return false, nil
	}

	if err := u.repo.ReplaceCurvePoints(points); err != nil {
		return false, fmt.Errorf("persist curve points: %w", err)
	}
	if err := u.repo.UpsertRefreshLog(newest, len(points)); err != nil {
		return false, fmt.Errorf("update refresh log: %w", err)
	}

	metrics.CurveObservations.Set(float64(len(points)))
	metrics.RefreshDuration.WithLabelValues("treasury").Observe(time.Since(began).Seconds())
	logger.L().Info().
		Time("latest", newest).
		Int("points", len(points)).
		Dur("elapsed", time.Since(began)).
		Msg("treasury data refreshed")
	return true, nil
}
