package models

import (
	"github.com/shopspring/decimal"

	"condogest/internal/format"
)

// Reading represents a water meter reading for one unit.
type Reading struct {
	ID          string          `json:"id"`
	UnitID      string          `json:"unit_id"`
	Consumption decimal.Decimal `json:"consumption"`
	ReadingDate format.Date     `json:"reading_date"`
	CreatedAt   format.Date     `json:"created_at"`
}

// GoverningDate returns the reading date, falling back to the creation
// timestamp when no explicit reading date was recorded.
func (r Reading) GoverningDate() format.Date {
	if !r.ReadingDate.IsZero() {
		return r.ReadingDate
	}
	return r.CreatedAt
}
