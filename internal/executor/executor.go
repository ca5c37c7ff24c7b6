// Package executor runs structured commands against the repository and
// renders operator-facing result text. Every branch is total: missing
// records, bad status transitions and storage failures all come back as
// messages, never as panics or raw errors.
package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quicktix/quicktix/internal/apperr"
	"github.com/quicktix/quicktix/internal/command"
	"github.com/quicktix/quicktix/internal/domain"
	"github.com/quicktix/quicktix/internal/storage"
)

// codeAttempts bounds the booking-code collision check.
const codeAttempts = 5

type Executor struct {
	repo storage.Repository
}

func New(repo storage.Repository) *Executor {
	return &Executor{repo: repo}
}

// Execute dispatches on the command's type and always returns a
// printable result line (or block).
func (x *Executor) Execute(ctx context.Context, cmd command.Command) string {
	out, err := x.dispatch(ctx, cmd)
	if err != nil {
		return renderError(err)
	}
	return out
}

func (x *Executor) dispatch(ctx context.Context, cmd command.Command) (string, error) {
	switch c := cmd.(type) {
	case command.ListEvents:
		return x.listEvents(ctx, c)
	case command.BookByID:
		return x.bookByID(ctx, c)
	case command.BookByName:
		return x.bookByName(ctx, c)
	case command.ConfirmBooking:
		return x.confirmBooking(ctx, c)
	case command.PayBooking:
		return x.payBooking(ctx, c)
	case command.CancelBooking:
		return x.cancelBooking(ctx, c)
	case command.SetTickets:
		return x.setTickets(ctx, c)
	case command.AddTickets:
		return x.addTickets(ctx, c)
	case command.AddEvent:
		return x.addEvent(ctx, c)
	case command.Help:
		return helpText, nil
	case command.Unrecognized:
		return fmt.Sprintf("Unrecognized command: %s. Type 'help' for available commands.", c.Word), nil
	default:
		return "", apperr.NewDomain(fmt.Sprintf("unsupported command %T", cmd))
	}
}

func renderError(err error) string {
	var de *apperr.DomainError
	if errors.As(err, &de) {
		return "❌ " + de.Message
	}
	var re *apperr.RepositoryError
	if errors.As(err, &re) {
		return "❌ Operation failed: " + re.Message
	}
	return "❌ Operation failed: " + err.Error()
}

func (x *Executor) listEvents(ctx context.Context, c command.ListEvents) (string, error) {
	events, err := x.repo.FindEvents(ctx, storage.EventQuery{Location: c.Location})
	if err != nil {
		return "", apperr.NewRepositoryWrap("failed to fetch events", err)
	}

	if len(events) == 0 {
		if c.Location != "" {
			return fmt.Sprintf("⚠️ No events found in %s.", c.Location), nil
		}
		return "⚠️ No events found.", nil
	}

	var b strings.Builder
	if c.Location != "" {
		fmt.Fprintf(&b, "📍 Events in %s:\n", c.Location)
	} else {
		b.WriteString("📍 All Available Events:\n")
	}

	for _, e := range events {
		fmt.Fprintf(&b, "\n🆔 Event ID: %s", e.ID)
		fmt.Fprintf(&b, "\n🎫 Title: %s", e.Title)
		fmt.Fprintf(&b, "\n📌 Type: %s", e.Type)
		fmt.Fprintf(&b, "\n📍 Venue: %s, %s", e.Venue, e.Location)
		fmt.Fprintf(&b, "\n📅 Date: %s to %s", e.StartDate, e.EndDate)
		fmt.Fprintf(&b, "\n💵 Price Range: $%g - $%g", e.PriceMin, e.PriceMax)
		fmt.Fprintf(&b, "\n🎟️ Tickets Left: %d", e.AvailableTickets)
		b.WriteString("\n" + strings.Repeat("-", 50) + "\n")
	}
	return b.String(), nil
}

func (x *Executor) bookByID(ctx context.Context, c command.BookByID) (string, error) {
	event, err := x.getEvent(ctx, c.EventID)
	if err != nil {
		return "", err
	}

	if event.AvailableTickets < c.Quantity {
		return "", apperr.NewDomain(fmt.Sprintf("Only %d tickets available", event.AvailableTickets))
	}

	event.AvailableTickets -= c.Quantity
	if err := x.repo.PutEvent(ctx, *event); err != nil {
		return "", apperr.NewRepositoryWrap("failed to update event", err)
	}

	code, err := x.newBookingCode(ctx)
	if err != nil {
		return "", err
	}

	booking := domain.NewBooking(code, event.ID, c.Quantity)
	if err := x.repo.PutBooking(ctx, booking); err != nil {
		return "", apperr.NewRepositoryWrap("failed to create booking", err)
	}

	return fmt.Sprintf("✅ Booking created! Code: %s", code), nil
}

// bookByName resolves an event in three tiers: exact title+date, then
// title only (reporting the dates that do exist), then title substring
// (reporting similar events). The fallback tiers are usability
// messages, not errors.
func (x *Executor) bookByName(ctx context.Context, c command.BookByName) (string, error) {
	events, err := x.repo.FindEvents(ctx, storage.EventQuery{Title: c.Title, StartDate: c.Date})
	if err != nil {
		return "", apperr.NewRepositoryWrap("failed to fetch events", err)
	}

	if len(events) == 0 {
		byTitle, err := x.repo.FindEvents(ctx, storage.EventQuery{Title: c.Title})
		if err != nil {
			return "", apperr.NewRepositoryWrap("failed to fetch events", err)
		}
		if len(byTitle) > 0 {
			dates := make([]string, 0, len(byTitle))
			for _, e := range byTitle {
				dates = append(dates, e.StartDate)
			}
			return fmt.Sprintf("Event '%s' exists but not on %s. Available dates: %s",
				c.Title, c.Date, strings.Join(dates, ", ")), nil
		}

		similar, err := x.repo.FindEvents(ctx, storage.EventQuery{TitleContains: c.Title})
		if err != nil {
			return "", apperr.NewRepositoryWrap("failed to fetch events", err)
		}
		if len(similar) > 0 {
			var b strings.Builder
			fmt.Fprintf(&b, "No exact match for '%s' on %s. Similar events found:", c.Title, c.Date)
			for _, e := range similar {
				fmt.Fprintf(&b, "\n- %s on %s", e.Title, e.StartDate)
			}
			return b.String(), nil
		}

		return fmt.Sprintf("No event found with title '%s'", c.Title), nil
	}

	event := events[0]
	if event.AvailableTickets <= 0 {
		return "No tickets available", nil
	}

	code, err := x.newBookingCode(ctx)
	if err != nil {
		return "", err
	}

	booking := domain.NewBooking(code, event.ID, 1)
	booking.User = c.User
	booking.Date = c.Date
	if err := x.repo.PutBooking(ctx, booking); err != nil {
		return "", apperr.NewRepositoryWrap("failed to create booking", err)
	}

	return fmt.Sprintf("✅ Booking created! Code: %s", code), nil
}

func (x *Executor) confirmBooking(ctx context.Context, c command.ConfirmBooking) (string, error) {
	booking, err := x.getBookingByCode(ctx, c.Code)
	if err != nil {
		return "", err
	}

	if booking.Status != domain.StatusPending {
		return "", apperr.NewDomain(fmt.Sprintf("Booking is already %s", booking.Status))
	}

	event, err := x.getEvent(ctx, booking.EventID)
	if err != nil {
		return "", err
	}

	// Tickets can vanish between booking and confirmation. When they
	// do, the booking folds instead of over-committing the event.
	if event.AvailableTickets < booking.Quantity {
		booking.Status = domain.StatusCancelled
		if err := x.repo.PutBooking(ctx, *booking); err != nil {
			return "", apperr.NewRepositoryWrap("failed to update booking", err)
		}
		return "❌ Booking cancelled: tickets no longer available", nil
	}

	booking.Status = domain.StatusConfirmed
	if err := x.repo.PutBooking(ctx, *booking); err != nil {
		return "", apperr.NewRepositoryWrap("failed to update booking", err)
	}

	return fmt.Sprintf("✅ Booking %s confirmed successfully", c.Code), nil
}

func (x *Executor) payBooking(ctx context.Context, c command.PayBooking) (string, error) {
	booking, err := x.getBookingByCode(ctx, c.Code)
	if err != nil {
		return "", err
	}

	if booking.Status != domain.StatusConfirmed {
		return "", apperr.NewDomain(fmt.Sprintf("Cannot pay for booking in %s status", booking.Status))
	}

	event, err := x.getEvent(ctx, booking.EventID)
	if err != nil {
		return "", err
	}

	total := event.PriceMin * float64(booking.Quantity)
	if c.Amount < total {
		return "", apperr.NewDomain(fmt.Sprintf("Amount $%g is less than required $%g", c.Amount, total))
	}

	booking.Status = domain.StatusPaid
	if err := x.repo.PutBooking(ctx, *booking); err != nil {
		return "", apperr.NewRepositoryWrap("failed to update booking", err)
	}

	return fmt.Sprintf("✅ Payment of $%g processed for booking %s", c.Amount, c.Code), nil
}

func (x *Executor) cancelBooking(ctx context.Context, c command.CancelBooking) (string, error) {
	booking, err := x.getBookingByCode(ctx, c.Code)
	if err != nil {
		return "", err
	}

	if !booking.CanTransition(domain.StatusCancelled) {
		return "", apperr.NewDomain("Booking is already cancelled")
	}

	event, err := x.getEvent(ctx, booking.EventID)
	if err != nil {
		return "", err
	}

	event.AvailableTickets += booking.Quantity
	if err := x.repo.PutEvent(ctx, *event); err != nil {
		return "", apperr.NewRepositoryWrap("failed to update event", err)
	}

	booking.Status = domain.StatusCancelled
	if err := x.repo.PutBooking(ctx, *booking); err != nil {
		return "", apperr.NewRepositoryWrap("failed to update booking", err)
	}

	return fmt.Sprintf("✅ Booking %s cancelled and %d ticket(s) restored", c.Code, booking.Quantity), nil
}

func (x *Executor) setTickets(ctx context.Context, c command.SetTickets) (string, error) {
	event, err := x.getEvent(ctx, c.EventID)
	if err != nil {
		return "", err
	}

	event.AvailableTickets = c.Tickets
	if err := x.repo.PutEvent(ctx, *event); err != nil {
		return "", apperr.NewRepositoryWrap("failed to update event", err)
	}

	return fmt.Sprintf("🔄 Updated '%s': available tickets set to %d.", event.Title, c.Tickets), nil
}

func (x *Executor) addTickets(ctx context.Context, c command.AddTickets) (string, error) {
	events, err := x.repo.FindEvents(ctx, storage.EventQuery{Title: c.Title})
	if err != nil {
		return "", apperr.NewRepositoryWrap("failed to fetch events", err)
	}
	if len(events) == 0 {
		return "", apperr.NewDomain("Event not found.")
	}

	event := events[0]
	event.AvailableTickets += c.Tickets
	if err := x.repo.PutEvent(ctx, event); err != nil {
		return "", apperr.NewRepositoryWrap("failed to update event", err)
	}

	return fmt.Sprintf("🔁 Updated '%s' with %d new tickets.", c.Title, c.Tickets), nil
}

func (x *Executor) addEvent(ctx context.Context, c command.AddEvent) (string, error) {
	tickets := c.Tickets
	if tickets < 0 {
		tickets = domain.DefaultAvailableTickets
	}

	category := c.Category + " ticket" // e.g. "concert ticket", "bus ticket"
	event := domain.NewEvent(category, c.Title, c.Venue, c.Location, c.StartDate, c.EndDate, c.PriceMin, c.PriceMax, tickets)

	if err := x.repo.PutEvent(ctx, event); err != nil {
		return "", apperr.NewRepositoryWrap("failed to insert event", err)
	}

	return fmt.Sprintf("✅ Added '%s' (%s) with ID: %s", event.Title, event.Type, event.ID), nil
}

func (x *Executor) getEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := x.repo.GetEvent(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NewDomain("Event not found")
	}
	if err != nil {
		return nil, apperr.NewRepositoryWrap("failed to fetch event", err)
	}
	return event, nil
}

func (x *Executor) getBookingByCode(ctx context.Context, code string) (*domain.Booking, error) {
	booking, err := x.repo.FindBookingByCode(ctx, code)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NewDomain("Booking not found")
	}
	if err != nil {
		return nil, apperr.NewRepositoryWrap("failed to fetch booking", err)
	}
	return booking, nil
}

// newBookingCode generates a QTX-#### code, retrying a few times when
// the code is already taken by a live booking.
func (x *Executor) newBookingCode(ctx context.Context) (string, error) {
	var code string
	for range codeAttempts {
		code = domain.NewBookingCode()
		_, err := x.repo.FindBookingByCode(ctx, code)
		if errors.Is(err, storage.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", apperr.NewRepositoryWrap("failed to check booking code", err)
		}
	}
	return code, nil
}
