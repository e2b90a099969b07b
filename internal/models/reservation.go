package models

import "condogest/internal/format"

// Reservation represents a booking of a common area.
type Reservation struct {
	ID           string      `json:"id"`
	CommonAreaID string      `json:"common_area_id,omitempty"`
	RequesterID  string      `json:"requester_id,omitempty"`
	StartTime    format.Date `json:"start_time"`
	EndTime      format.Date `json:"end_time"`
	Status       string      `json:"status"`
}
