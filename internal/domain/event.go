package domain

import "github.com/google/uuid"

const (
	// DefaultAvailableTickets is used when an event is added without an
	// explicit ticket count (the keyworded ADD phrasing).
	DefaultAvailableTickets = 100

	// DateLayout is the only accepted date format on the command surface.
	DateLayout = "2006-01-02"
)

// Event is a bookable item in the store. Type carries the category tag
// derived from the ADD command ("concert ticket", "bus ticket", ...).
type Event struct {
	ID               string  `json:"id"`
	Type             string  `json:"type"`
	Title            string  `json:"title"`
	Venue            string  `json:"venue"`
	Location         string  `json:"location"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate"`
	PriceMin         float64 `json:"priceMin"`
	PriceMax         float64 `json:"priceMax"`
	AvailableTickets int     `json:"available_tickets"`
}

// NewEvent builds an event with a generated id and defaults applied.
func NewEvent(category, title, venue, location, startDate, endDate string, priceMin, priceMax float64, tickets int) Event {
	if tickets < 0 {
		tickets = 0
	}
	return Event{
		ID:               uuid.NewString(),
		Type:             category,
		Title:            title,
		Venue:            venue,
		Location:         location,
		StartDate:        startDate,
		EndDate:          endDate,
		PriceMin:         priceMin,
		PriceMax:         priceMax,
		AvailableTickets: tickets,
	}
}
