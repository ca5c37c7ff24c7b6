package domain

import "github.com/google/uuid"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusPaid      BookingStatus = "paid"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking reserves tickets for an event. Code is the human-facing
// identifier (QTX-####), distinct from the record id.
type Booking struct {
	ID       string        `json:"id"`
	Code     string        `json:"code"`
	EventID  string        `json:"event_id"`
	User     string        `json:"user,omitempty"`
	Date     string        `json:"date,omitempty"`
	Quantity int           `json:"quantity"`
	Status   BookingStatus `json:"status"`
}

// NewBooking creates a pending booking for the given event.
func NewBooking(code, eventID string, quantity int) Booking {
	return Booking{
		ID:       uuid.NewString(),
		Code:     code,
		EventID:  eventID,
		Quantity: quantity,
		Status:   StatusPending,
	}
}

// CanTransition reports whether a booking may move to the target status.
// Any non-cancelled booking may be cancelled; cancelled is terminal.
func (b Booking) CanTransition(to BookingStatus) bool {
	switch to {
	case StatusConfirmed:
		return b.Status == StatusPending
	case StatusPaid:
		return b.Status == StatusConfirmed
	case StatusCancelled:
		return b.Status != StatusCancelled
	default:
		return false
	}
}
