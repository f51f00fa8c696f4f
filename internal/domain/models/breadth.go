package models

import "time"

// PriceSeries maps a trading day to the closing price of one ticker.
// Non-trading days, delistings, and failed downloads are simply absent;
// a missing close is never represented as zero.
type PriceSeries map[time.Time]float64

// PriceTable maps a ticker to its closing-price series. Tickers may cover
// different subsets of the shared trading calendar.
type PriceTable map[string]PriceSeries

// BreadthRow holds the per-date aggregation across the constituent universe.
//
// Invariant: 0 <= Above20 <= Eligible and 0 <= Above60 <= Eligible.
// Rows are only materialized for dates where Eligible >= 1.
type BreadthRow struct {
	Date     time.Time `json:"date"`
	Above20  int       `json:"above_20"`
	Above60  int       `json:"above_60"`
	Eligible int       `json:"eligible"`
}

// BreadthHistory is the per-date breadth sequence, ascending by date.
type BreadthHistory []BreadthRow

// BreadthSnapshot is the most recent BreadthRow expanded into percentages.
//
// Available distinguishes "no data" from a legitimate 0% reading: a snapshot
// derived from an empty history has Available=false and must not be rendered
// as zeros.
type BreadthSnapshot struct {
	Available     bool      `json:"available"`
	Date          time.Time `json:"date,omitempty"`
	Above20Count  int       `json:"above_20_count"`
	Above60Count  int       `json:"above_60_count"`
	EligibleTotal int       `json:"eligible_total"`
	Pct20         float64   `json:"pct_20"`
	Pct60         float64   `json:"pct_60"`
}

// TradingDay normalizes a timestamp to its UTC calendar date. PriceSeries
// keys and BreadthRow dates are always normalized through this.
func TradingDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
