package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketpulse/internal/domain/dto"
	"github.com/guttosm/marketpulse/internal/service"
)

// Handler provides the HTTP handlers for the dashboard data endpoints.
//
// Responsibilities:
//   - Validate incoming query parameters
//   - Call the service layer
//   - Translate results into response DTOs, mapping "unavailable" to an
//     explicit no-data response instead of zero-filled payloads
type Handler struct {
	breadth service.BreadthService
	curve   service.CurveService
}

// NewHandler constructs a Handler on top of the two dataset services.
func NewHandler(breadthSvc service.BreadthService, curveSvc service.CurveService) *Handler {
	return &Handler{breadth: breadthSvc, curve: curveSvc}
}

// GetBreadthHistory handles GET /api/v1/breadth/history.
//
// GetBreadthHistory godoc
// @Summary      Market breadth history
// @Description  Per-date counts and percentages of constituents above their 20/60-day moving averages
// @Tags         breadth
// @Produce      json
// @Success      200  {object}  dto.BreadthHistoryResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse           "No breadth data available"
// @Failure      500  {object}  dto.ErrorResponse           "Internal Error"
// @Router       /api/v1/breadth/history [get]
func (h *Handler) GetBreadthHistory(c *gin.Context) {
	history, err := h.breadth.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute breadth history", err))
		return
	}
	if len(history) == 0 {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no breadth data available", nil))
		return
	}

	resp := dto.BreadthHistoryResponse{Rows: make([]dto.BreadthRowResponse, 0, len(history))}
	for _, row := range history {
		resp.Rows = append(resp.Rows, dto.BreadthRowResponse{
			Date:     row.Date,
			Above20:  row.Above20,
			Above60:  row.Above60,
			Eligible: row.Eligible,
			Pct20:    float64(row.Above20) / float64(row.Eligible) * 100,
			Pct60:    float64(row.Above60) / float64(row.Eligible) * 100,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// GetBreadthSnapshot handles GET /api/v1/breadth/snapshot.
//
// GetBreadthSnapshot godoc
// @Summary      Latest market breadth snapshot
// @Description  Counts and percentages for the most recent date with eligible constituents
// @Tags         breadth
// @Produce      json
// @Success      200  {object}  dto.BreadthSnapshotResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse            "No breadth data available"
// @Failure      500  {object}  dto.ErrorResponse            "Internal Error"
// @Router       /api/v1/breadth/snapshot [get]
func (h *Handler) GetBreadthSnapshot(c *gin.Context) {
	snap, err := h.breadth.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute breadth snapshot", err))
		return
	}
	if !snap.Available {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no breadth data available", nil))
		return
	}

	c.JSON(http.StatusOK, dto.BreadthSnapshotResponse{
		Date:          snap.Date,
		Above20Count:  snap.Above20Count,
		Above60Count:  snap.Above60Count,
		EligibleTotal: snap.EligibleTotal,
		Pct20:         snap.Pct20,
		Pct60:         snap.Pct60,
	})
}

// GetYieldCurve handles GET /api/v1/yield-curve.
//
// GetYieldCurve godoc
// @Summary      Treasury yield curve
// @Description  Long-form yield curve points, optionally for a single observation date
// @Tags         curve
// @Produce      json
// @Param        date  query     string  false  "Observation date in YYYY-MM-DD"  example(2025-09-12)
// @Success      200   {object}  dto.CurveResponse   "Success"
// @Failure      400   {object}  dto.ErrorResponse   "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse   "No curve data"
// @Failure      500   {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/yield-curve [get]
func (h *Handler) GetYieldCurve(c *gin.Context) {
	var date *time.Time
	if s := c.Query("date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid date format, expected YYYY-MM-DD", err))
			return
		}
		date = &parsed
	}

	points, err := h.curve.Curve(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch yield curve", err))
		return
	}
	if len(points) == 0 {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no curve data found", nil))
		return
	}

	// Points are ordered by date, so the latest observation is at the end.
	c.JSON(http.StatusOK, dto.CurveResponse{
		LatestDate: points[len(points)-1].Date,
		Points:     points,
	})
}

// GetSymbols handles GET /api/v1/symbols.
//
// GetSymbols godoc
// @Summary      Current index constituents
// @Description  Normalized ticker roster the breadth computation runs over
// @Tags         breadth
// @Produce      json
// @Success      200  {object}  dto.SymbolsResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse    "Roster unavailable"
// @Router       /api/v1/symbols [get]
func (h *Handler) GetSymbols(c *gin.Context) {
	roster := h.breadth.Symbols(c.Request.Context())
	if len(roster) == 0 {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("constituent roster unavailable", nil))
		return
	}
	c.JSON(http.StatusOK, dto.SymbolsResponse{Count: len(roster), Symbols: roster})
}
