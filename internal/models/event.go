package models

import "time"

type EventStatus string

const (
	EventStatusActive  EventStatus = "active"
	EventStatusDeleted EventStatus = "deleted"
)

// Date is kept as yyyy-mm-dd text, not a parsed time: active events are
// sorted by lexicographic date, which for this form matches calendar order.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	City        string      `json:"city"`
	Date        string      `json:"date"`
	Price       float64     `json:"price"`
	Venue       string      `json:"venue"`
	Image       string      `json:"image,omitempty"`
	Description string      `json:"description,omitempty"`
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}
