package treasury

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/marketpulse/internal/domain/models"
)

// fakeRepo is an in-memory CurveRepository for updater tests.
type fakeRepo struct {
	stored     []models.CurvePoint
	latest     time.Time
	hasLatest  bool
	latestErr  error
	replaceErr error
	logged     bool
}

func (f *fakeRepo) ReplaceCurvePoints(points []models.CurvePoint) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.stored = points
	return nil
}

func (f *fakeRepo) GetCurvePoints(_ *time.Time) ([]models.CurvePoint, error) {
	return f.stored, nil
}

func (f *fakeRepo) LatestObservationDate() (time.Time, bool, error) {
	return f.latest, f.hasLatest, f.latestErr
}

func (f *fakeRepo) UpsertRefreshLog(_ time.Time, _ int) error {
	f.logged = true
	return nil
}

func csvServer(t *testing.T, body string, code int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
}

func TestRefresh_PersistsWhenNewer(t *testing.T) {
	srv := csvServer(t, sampleCSV, http.StatusOK)
	defer srv.Close()

	repo := &fakeRepo{latest: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), hasLatest: true}
	updated, err := NewUpdater(srv.URL, repo).Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated {
		t.Fatal("expected update: downloaded data is one day newer")
	}
	if len(repo.stored) == 0 || !repo.logged {
		t.Fatalf("repository not written: stored=%d logged=%v", len(repo.stored), repo.logged)
	}
}

func TestRefresh_NoOpWhenCurrent(t *testing.T) {
	srv := csvServer(t, sampleCSV, http.StatusOK)
	defer srv.Close()

	repo := &fakeRepo{latest: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), hasLatest: true}
	updated, err := NewUpdater(srv.URL, repo).Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated {
		t.Fatal("stored data is already at the downloaded date, expected no-op")
	}
	if repo.stored != nil || repo.logged {
		t.Fatal("no-op must not write to the repository")
	}
}

func TestRefresh_FirstLoad(t *testing.T) {
	srv := csvServer(t, sampleCSV, http.StatusOK)
	defer srv.Close()

	repo := &fakeRepo{}
	updated, err := NewUpdater(srv.URL, repo).Refresh(context.Background())
	if err != nil || !updated {
		t.Fatalf("first load should persist: updated=%v err=%v", updated, err)
	}
}

func TestRefresh_Errors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		srv := csvServer(t, "gone", http.StatusNotFound)
		defer srv.Close()
		if _, err := NewUpdater(srv.URL, &fakeRepo{}).Refresh(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("malformed csv", func(t *testing.T) {
		srv := csvServer(t, "Maturity,Oops\n1,2\n", http.StatusOK)
		defer srv.Close()
		if _, err := NewUpdater(srv.URL, &fakeRepo{}).Refresh(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("repo latest-date failure", func(t *testing.T) {
		srv := csvServer(t, sampleCSV, http.StatusOK)
		defer srv.Close()
		repo := &fakeRepo{latestErr: errors.New("db down")}
		if _, err := NewUpdater(srv.URL, repo).Refresh(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("persist failure", func(t *testing.T) {
		srv := csvServer(t, sampleCSV, http.StatusOK)
		defer srv.Close()
		repo := &fakeRepo{replaceErr: errors.New("copy failed")}
		if _, err := NewUpdater(srv.URL, repo).Refresh(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})
}
