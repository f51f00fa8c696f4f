package service

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/guttosm/marketpulse/internal/domain/models"
	"github.com/guttosm/marketpulse/internal/storage"
)

const cacheKeyCurve = "curve_points"

// CurveService serves the stored Treasury yield-curve dataset.
type CurveService interface {
	Curve(ctx context.Context, date *time.Time) ([]models.CurvePoint, error)
}

type curveService struct {
	repo  storage.CurveRepository
	cache *gocache.Cache
	ttl   time.Duration
}

// NewCurveService wraps the repository with a TTL cache for the unfiltered
// (full-history) query, which is what the dashboard loads on every view.
func NewCurveService(repo storage.CurveRepository, ttl time.Duration) CurveService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &curveService{
		repo:  repo,
		cache: gocache.New(ttl, 15*time.Minute),
		ttl:   ttl,
	}
}

// Curve returns stored curve points, optionally restricted to a single
// observation date. Date-filtered queries bypass the cache; they are rare
// and cheap.
func (s *curveService) Curve(_ context.Context, date *time.Time) ([]models.CurvePoint, error) {
	if date != nil {
		return s.repo.GetCurvePoints(date)
	}

	if cached, ok := s.cache.Get(cacheKeyCurve); ok {
		return cached.([]models.CurvePoint), nil
	}
	points, err := s.repo.GetCurvePoints(nil)
	if err != nil {
		return nil, err
	}
	if len(points) > 0 {
		s.cache.Set(cacheKeyCurve, points, s.ttl)
	}
	return points, nil
}
