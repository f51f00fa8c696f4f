package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketpulse/internal/domain/dto"
	"github.com/guttosm/marketpulse/internal/domain/models"
	"github.com/guttosm/marketpulse/internal/service"
)

type mockBreadthService struct {
	symbols []string
	history models.BreadthHistory
	snap    models.BreadthSnapshot
	err     error
}

func (m *mockBreadthService) Symbols(_ context.Context) []string { return m.symbols }

func (m *mockBreadthService) History(_ context.Context) (models.BreadthHistory, error) {
	return m.history, m.err
}

func (m *mockBreadthService) Snapshot(_ context.Context) (models.BreadthSnapshot, error) {
	return m.snap, m.err
}

func (m *mockBreadthService) Refresh(_ context.Context) error { return m.err }

var _ service.BreadthService = (*mockBreadthService)(nil)

type mockCurveService struct {
	points []models.CurvePoint
	err    error

	gotDate *time.Time
}

func (m *mockCurveService) Curve(_ context.Context, date *time.Time) ([]models.CurvePoint, error) {
	m.gotDate = date
	return m.points, m.err
}

var _ service.CurveService = (*mockCurveService)(nil)

func setupRouterWithMocks(b service.BreadthService, cv service.CurveService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(b, cv)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/breadth/history", h.GetBreadthHistory)
	v1.GET("/breadth/snapshot", h.GetBreadthSnapshot)
	v1.GET("/yield-curve", h.GetYieldCurve)
	v1.GET("/symbols", h.GetSymbols)
	return r
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetBreadthHistory_TableDriven(t *testing.T) {
	history := models.BreadthHistory{
		{Date: day(2025, time.September, 10), Above20: 300, Above60: 250, Eligible: 500},
		{Date: day(2025, time.September, 11), Above20: 200, Above60: 100, Eligible: 400},
	}

	cases := []struct {
		name   string
		svc    *mockBreadthService
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "no data",
			svc:    &mockBreadthService{},
			status: http.StatusNotFound,
		},
		{
			name:   "internal error",
			svc:    &mockBreadthService{err: errors.New("upstream down")},
			status: http.StatusInternalServerError,
		},
		{
			name:   "success",
			svc:    &mockBreadthService{history: history},
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.BreadthHistoryResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out.Rows) != 2 {
					t.Fatalf("rows=%d, want 2", len(out.Rows))
				}
				last := out.Rows[1]
				if last.Above20 != 200 || last.Eligible != 400 {
					t.Fatalf("unexpected row: %+v", last)
				}
				if last.Pct20 != 50 || last.Pct60 != 25 {
					t.Fatalf("pct20=%v pct60=%v, want 50/25", last.Pct20, last.Pct60)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMocks(tc.svc, &mockCurveService{})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/breadth/history", nil))
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d", w.Code, tc.status)
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetBreadthSnapshot_TableDriven(t *testing.T) {
	snap := models.BreadthSnapshot{
		Available:     true,
		Date:          day(2025, time.September, 11),
		Above20Count:  200,
		Above60Count:  100,
		EligibleTotal: 400,
		Pct20:         50,
		Pct60:         25,
	}

	cases := []struct {
		name   string
		svc    *mockBreadthService
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "unavailable",
			svc:    &mockBreadthService{snap: models.BreadthSnapshot{Available: false}},
			status: http.StatusNotFound,
		},
		{
			name:   "internal error",
			svc:    &mockBreadthService{err: errors.New("upstream down")},
			status: http.StatusInternalServerError,
		},
		{
			name:   "success",
			svc:    &mockBreadthService{snap: snap},
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.BreadthSnapshotResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Above20Count != 200 || out.EligibleTotal != 400 || out.Pct60 != 25 {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMocks(tc.svc, &mockCurveService{})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/breadth/snapshot", nil))
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d", w.Code, tc.status)
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetYieldCurve_TableDriven(t *testing.T) {
	points := []models.CurvePoint{
		{Date: day(2025, time.September, 10), MaturityLabel: "3 Mo", MaturityYears: 0.25, Yield: 4.9},
		{Date: day(2025, time.September, 11), MaturityLabel: "10 Yr", MaturityYears: 10, Yield: 4.1},
	}

	cases := []struct {
		name   string
		svc    *mockCurveService
		query  string
		status int
		assert func(t *testing.T, svc *mockCurveService, body []byte)
	}{
		{
			name:   "invalid date format",
			svc:    &mockCurveService{},
			query:  "/api/v1/yield-curve?date=2025/09/11",
			status: http.StatusBadRequest,
		},
		{
			name:   "no data",
			svc:    &mockCurveService{},
			query:  "/api/v1/yield-curve",
			status: http.StatusNotFound,
		},
		{
			name:   "internal error",
			svc:    &mockCurveService{err: errors.New("db down")},
			query:  "/api/v1/yield-curve",
			status: http.StatusInternalServerError,
		},
		{
			name:   "success full history",
			svc:    &mockCurveService{points: points},
			query:  "/api/v1/yield-curve",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockCurveService, body []byte) {
				if svc.gotDate != nil {
					t.Fatalf("expected nil date filter, got %v", svc.gotDate)
				}
				var out dto.CurveResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if !out.LatestDate.Equal(day(2025, time.September, 11)) {
					t.Fatalf("latest_date=%v", out.LatestDate)
				}
				if len(out.Points) != 2 {
					t.Fatalf("points=%d, want 2", len(out.Points))
				}
			},
		},
		{
			name:   "success with date filter",
			svc:    &mockCurveService{points: points[:1]},
			query:  "/api/v1/yield-curve?date=2025-09-10",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockCurveService, body []byte) {
				if svc.gotDate == nil || !svc.gotDate.Equal(day(2025, time.September, 10)) {
					t.Fatalf("date filter not forwarded: %v", svc.gotDate)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMocks(&mockBreadthService{}, tc.svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.query, nil))
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d", w.Code, tc.status)
			}
			if tc.assert != nil {
				tc.assert(t, tc.svc, w.Body.Bytes())
			}
		})
	}
}

func TestGetSymbols(t *testing.T) {
	t.Run("unavailable", func(t *testing.T) {
		r := setupRouterWithMocks(&mockBreadthService{}, &mockCurveService{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/symbols", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("status=%d, want 404", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		svc := &mockBreadthService{symbols: []string{"MMM", "AOS", "BRK-B"}}
		r := setupRouterWithMocks(svc, &mockCurveService{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/symbols", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, want 200", w.Code)
		}
		var out dto.SymbolsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if out.Count != 3 || len(out.Symbols) != 3 || out.Symbols[2] != "BRK-B" {
			t.Fatalf("unexpected body: %+v", out)
		}
	})
}
