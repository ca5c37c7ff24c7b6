// Package command defines the structured operations produced by the
// parser. A value of one of these types is only built once every field
// has been extracted and coerced, so executors never see partial input.
package command

// Command is the closed set of operations the interpreter understands.
type Command interface {
	isCommand()
}

// ListEvents lists events, optionally filtered by location
// (case-insensitive). An empty Location means all events.
type ListEvents struct {
	Location string
}

// BookByID books Quantity tickets against an event record id.
type BookByID struct {
	EventID  string
	Quantity int
}

// BookByName books a single ticket by event title and date, on behalf of
// a named user.
type BookByName struct {
	Title string
	Date  string
	User  string
}

// ConfirmBooking moves a pending booking to confirmed.
type ConfirmBooking struct {
	Code string
}

// PayBooking pays for a confirmed booking. Amount is monetary and may
// need fractional handling downstream, hence float64.
type PayBooking struct {
	Code   string
	Amount float64
}

// CancelBooking cancels a booking and restores its tickets.
type CancelBooking struct {
	Code string
}

// SetTickets replaces an event's available ticket count.
type SetTickets struct {
	EventID string
	Tickets int
}

// AddTickets increments an event's available ticket count, addressing
// the event by title.
type AddTickets struct {
	Title   string
	Tickets int
}

// AddEvent creates a new event. Category is the free-form word after ADD
// ("concert", "bus", ...), turned into a category tag by the executor.
type AddEvent struct {
	Category  string
	Title     string
	Venue     string
	Location  string
	StartDate string
	EndDate   string
	PriceMin  float64
	PriceMax  float64
	Tickets   int
}

// Help asks for the usage text.
type Help struct{}

// Unrecognized carries a single stray word that matched no verb. It is a
// normal command, not an error: executing it yields a hint message.
type Unrecognized struct {
	Word string
}

func (ListEvents) isCommand()     {}
func (BookByID) isCommand()       {}
func (BookByName) isCommand()     {}
func (ConfirmBooking) isCommand() {}
func (PayBooking) isCommand()     {}
func (CancelBooking) isCommand()  {}
func (SetTickets) isCommand()     {}
func (AddTickets) isCommand()     {}
func (AddEvent) isCommand()       {}
func (Help) isCommand()           {}
func (Unrecognized) isCommand()   {}
