// Package treasury ingests the daily Treasury yield-curve CSV and reshapes
// it into the long form the chart layer plots: one row per (date, maturity)
// with a numeric maturity axis.
package treasury

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/marketpulse/internal/domain/models"
)

// maturityYears maps the CSV's column labels to a numeric x-axis value in
// years. Columns outside this map (e.g. "4 Mo", introduced mid-2022) are
// ignored so header drift across vintage years does not break ingestion.
var maturityYears = map[string]float64{
	"1 Mo": 1.0 / 12, "2 Mo": 2.0 / 12, "3 Mo": 3.0 / 12, "6 Mo": 6.0 / 12,
	"1 Yr": 1, "2 Yr": 2, "3 Yr": 3, "5 Yr": 5, "7 Yr": 7,
	"10 Yr": 10, "20 Yr": 20, "30 Yr": 30,
}

// earliestYear filters out pre-2000 history, matching the dashboard's
// display window.
const earliestYear = 2000

// csv date layouts seen across Treasury vintages.
var dateLayouts = []string{"01/02/2006", "2006-01-02"}

// ParseCurveCSV reads the Treasury daily yield-curve CSV and melts it into
// sorted long-form curve points.
//
// The first column must be "Date". Yield cells that are empty or
// unparsable are dropped (a missing yield is absent, never zero). Rows
// before the year 2000 are discarded.
func ParseCurveCSV(r io.Reader) ([]models.CurvePoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 2 || strings.TrimSpace(header[0]) != "Date" {
		return nil, fmt.Errorf("invalid header: first column must be Date, got %q", header)
	}

	// Column index -> maturity label, for the columns we chart.
	cols := make(map[int]string, len(header))
	for i := 1; i < len(header); i++ {
		label := strings.TrimSpace(header[i])
		if _, ok := maturityYears[label]; ok {
			cols[i] = label
		}
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("no maturity columns recognized in header %q", header)
	}

	var points []models.CurvePoint
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		date, err := parseCurveDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if date.Year() < earliestYear {
			continue
		}

		for i, label := range cols {
			if i >= len(rec) {
				continue
			}
			cell := strings.TrimSpace(rec[i])
			if cell == "" || strings.EqualFold(cell, "N/A") {
				continue
			}
			y, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue // tolerate stray non-numeric cells, as the source does
			}
			points = append(points, models.CurvePoint{
				Date:          date,
				MaturityLabel: label,
				MaturityYears: maturityYears[label],
				Yield:         y,
			})
		}
	}

	sort.Slice(points, func(i, j int) bool {
		if !points[i].Date.Equal(points[j].Date) {
			return points[i].Date.Before(points[j].Date)
		}
		return points[i].MaturityYears < points[j].MaturityYears
	})
	return points, nil
}

func parseCurveDate(cell string) (time.Time, error) {
	s := strings.TrimSpace(cell)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return models.TradingDay(d), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// LatestObservation returns the maximum date among the given points, and
// false when there are none.
func LatestObservation(points []models.CurvePoint) (time.Time, bool) {
	var latest time.Time
	for _, p := range points {
		if p.Date.After(latest) {
			latest = p.Date
		}
	}
	return latest, !latest.IsZero()
}
