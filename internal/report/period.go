// Package report implements the reporting pipeline: period filtering,
// financial aggregation, share-link issuance, and the per-report-type
// orchestrators that compose record-store fetches into rendered documents.
package report

import (
	"strconv"

	"condogest/internal/format"
)

// AllCategories is the sentinel category meaning "no category filter".
const AllCategories = "all"

// Period is the filtering window for a report: a calendar month and year,
// optionally refined by a category. A Period value is immutable once
// captured by a request; results are always labeled from the captured
// value, never from live selector state.
type Period struct {
	Month    int
	Year     int
	Category string
}

// HasCategory reports whether the period restricts by category.
func (p Period) HasCategory() bool {
	return p.Category != "" && p.Category != AllCategories
}

// Contains reports whether the given date falls inside the period's
// calendar month, compared in UTC.
func (p Period) Contains(d format.Date) bool {
	return !d.IsZero() && d.Month() == p.Month && d.Year() == p.Year
}

// Label renders the period for titles, e.g. "Dezembro/2025".
func (p Period) Label() string {
	return format.MonthName(p.Month) + "/" + strconv.Itoa(p.Year)
}
