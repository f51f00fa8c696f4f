package dto

import "time"

// BreadthRowResponse is one date of breadth history as exposed by the API.
// Percentages are derived server-side from the raw counts so chart layers
// never divide (or round) on their own.
type BreadthRowResponse struct {
	Date     time.Time `json:"date" example:"2025-09-12T00:00:00Z"`
	Above20  int       `json:"above_20" example:"312"`
	Above60  int       `json:"above_60" example:"288"`
	Eligible int       `json:"eligible" example:"497"`
	Pct20    float64   `json:"pct_20" example:"62.8"`
	Pct60    float64   `json:"pct_60" example:"57.9"`
}

// BreadthHistoryResponse wraps the full history returned by
// GET /api/v1/breadth/history.
type BreadthHistoryResponse struct {
	Rows []BreadthRowResponse `json:"rows"`
}

// BreadthSnapshotResponse is the payload of GET /api/v1/breadth/snapshot.
// Counts come straight from the latest stored row; they are never re-derived
// from the (already rounded) percentages.
type BreadthSnapshotResponse struct {
	Date          time.Time `json:"date" example:"2025-09-12T00:00:00Z"`
	Above20Count  int       `json:"above_20_count" example:"312"`
	Above60Count  int       `json:"above_60_count" example:"288"`
	EligibleTotal int       `json:"eligible_total" example:"497"`
	Pct20         float64   `json:"pct_20" example:"62.8"`
	Pct60         float64   `json:"pct_60" example:"57.9"`
}

// SymbolsResponse is the payload of GET /api/v1/symbols.
type SymbolsResponse struct {
	Count   int      `json:"count" example:"503"`
	Symbols []string `json:"symbols"`
}
