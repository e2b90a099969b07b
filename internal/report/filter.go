package report

import (
	"condogest/internal/format"
	"condogest/internal/models"
)

// Filter returns the subset of records whose governing date falls inside
// the period. When the period carries a category and categoryOf is
// non-nil, records must also match it exactly. The input is never
// mutated and relative ordering is preserved.
func Filter[R any](records []R, period Period, dateOf func(R) format.Date, categoryOf func(R) string) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if !period.Contains(dateOf(r)) {
			continue
		}
		if categoryOf != nil && period.HasCategory() && categoryOf(r) != period.Category {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterTransactions narrows transactions by date and optional category.
func FilterTransactions(transactions []models.Transaction, period Period) []models.Transaction {
	return Filter(transactions, period,
		func(t models.Transaction) format.Date { return t.Date },
		func(t models.Transaction) string { return t.Category })
}

// FilterOccurrences narrows occurrences by creation date and optional category.
func FilterOccurrences(occurrences []models.Occurrence, period Period) []models.Occurrence {
	return Filter(occurrences, period,
		func(o models.Occurrence) format.Date { return o.CreatedAt },
		func(o models.Occurrence) string { return o.Category })
}

// FilterReadings narrows meter readings by reading date, falling back to
// the creation timestamp when no reading date was recorded.
func FilterReadings(readings []models.Reading, period Period) []models.Reading {
	return Filter(readings, period,
		func(r models.Reading) format.Date { return r.GoverningDate() }, nil)
}

// FilterReservations narrows reservations by their start time.
func FilterReservations(reservations []models.Reservation, period Period) []models.Reservation {
	return Filter(reservations, period,
		func(r models.Reservation) format.Date { return r.StartTime }, nil)
}
