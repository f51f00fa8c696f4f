package dto

import (
	"time"

	"github.com/guttosm/marketpulse/internal/domain/models"
)

// CurveResponse is the payload of GET /api/v1/yield-curve.
//
// LatestDate is the most recent observation date present in the result,
// which the chart layer uses as the default animation frame.
type CurveResponse struct {
	LatestDate time.Time           `json:"latest_date" example:"2025-09-12T00:00:00Z"`
	Points     []models.CurvePoint `json:"points"`
}
