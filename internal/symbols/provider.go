// Package symbols supplies the current roster of S&P 500 constituents.
package symbols

import (
	"context"
	"strings"
)

// Provider yields the current index constituent tickers.
//
// An empty roster means "unavailable", never "zero constituents"; callers
// must degrade (skip the breadth computation) rather than treat it as an
// index with no members.
type Provider interface {
	CurrentConstituents(ctx context.Context) ([]string, error)
	Name() string
}

// Normalize canonicalizes a raw ticker cell: trims whitespace and footnote
// debris, upper-cases, and rewrites the class-share dot separator to the
// dash form the price source indexes on (BRK.B -> BRK-B).
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, "\n\r"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, ".", "-")
	return s
}

// Dedupe removes duplicate tickers while preserving first-seen order.
func Dedupe(tickers []string) []string {
	seen := make(map[string]struct{}, len(tickers))
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
