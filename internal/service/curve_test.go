package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/marketpulse/internal/domain/models"
)

type stubCurveRepo struct {
	points []models.CurvePoint
	err    error
	calls  int
}

func (r *stubCurveRepo) ReplaceCurvePoints(_ []models.CurvePoint) error { return nil }

func (r *stubCurveRepo) GetCurvePoints(date *time.Time) ([]models.CurvePoint, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if date == nil {
		return r.points, nil
	}
	var out []models.CurvePoint
	for _, p := range r.points {
		if p.Date.Equal(*date) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubCurveRepo) LatestObservationDate() (time.Time, bool, error) {
	return time.Time{}, false, nil
}

func (r *stubCurveRepo) UpsertRefreshLog(_ time.Time, _ int) error { return nil }

func curvePoints() []models.CurvePoint {
	d1 := time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)
	return []models.CurvePoint{
		{Date: d1, MaturityLabel: "1 Mo", MaturityYears: 1.0 / 12, Yield: 4.45},
		{Date: d1, MaturityLabel: "10 Yr", MaturityYears: 10, Yield: 4.57},
		{Date: d2, MaturityLabel: "1 Mo", MaturityYears: 1.0 / 12, Yield: 4.44},
		{Date: d2, MaturityLabel: "10 Yr", MaturityYears: 10, Yield: 4.60},
	}
}

func TestCurveService_FullHistoryCached(t *testing.T) {
	repo := &stubCurveRepo{points: curvePoints()}
	svc := NewCurveService(repo, time.Hour)

	for i := 0; i < 3; i++ {
		points, err := svc.Curve(context.Background(), nil)
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if len(points) != 4 {
			t.Fatalf("call %d: got %d points", i, len(points))
		}
	}
	if repo.calls != 1 {
		t.Fatalf("repo hit %d times, want 1 (full query must be cached)", repo.calls)
	}
}

func TestCurveService_DateFilterBypassesCache(t *testing.T) {
	repo := &stubCurveRepo{points: curvePoints()}
	svc := NewCurveService(repo, time.Hour)

	d := time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)
	points, err := svc.Curve(context.Background(), &d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points for one date, want 2", len(points))
	}

	if _, err := svc.Curve(context.Background(), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("repo hit %d times, want 2 (filtered queries bypass cache)", repo.calls)
	}
}

func TestCurveService_RepoError(t *testing.T) {
	repo := &stubCurveRepo{err: errors.New("db down")}
	svc := NewCurveService(repo, time.Hour)

	if _, err := svc.Curve(context.Background(), nil); err == nil {
		t.Fatal("expected error")
	}
}
