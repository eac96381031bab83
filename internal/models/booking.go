package models

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// EventID is a weak reference: a booking may reference its event by id,
// by the denormalized title only, or both.
type Booking struct {
	ID         string        `json:"id"`
	EventID    string        `json:"event_id,omitempty"`
	EventTitle string        `json:"event_title"`
	UserEmail  string        `json:"user_email"`
	Quantity   int           `json:"quantity"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

// BookingView is the listing shape: the creation timestamp is duplicated
// into a date alias alongside the original field.
type BookingView struct {
	Booking
	Date time.Time `json:"date"`
}

func NewBookingView(b Booking) BookingView {
	return BookingView{
		Booking: b,
		Date:    b.CreatedAt,
	}
}
