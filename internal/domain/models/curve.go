package models

import "time"

// CurvePoint is one observation of the Treasury yield curve in long form:
// a single (date, maturity) pair with its yield in percent.
//
// MaturityYears is the numeric x-axis value derived from the label
// (e.g. "3 Mo" -> 0.25, "10 Yr" -> 10) so the chart layer never has to
// re-parse the label.
type CurvePoint struct {
	Date          time.Time `json:"date"`
	MaturityLabel string    `json:"maturity_label"`
	MaturityYears float64   `json:"maturity_years"`
	Yield         float64   `json:"yield"`
}
