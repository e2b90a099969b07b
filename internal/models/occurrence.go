package models

import "condogest/internal/format"

// Occurrence represents an incident or complaint reported by a resident.
type Occurrence struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Category   string      `json:"category"`
	Status     string      `json:"status"`
	Anonymous  bool        `json:"anonymous"`
	ReporterID string      `json:"reporter_id,omitempty"`
	CreatedAt  format.Date `json:"created_at"`
}
