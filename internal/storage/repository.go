// Package storage defines the repository boundary the executor talks
// to. Implementations live in subpackages; the executor only depends on
// this interface and is handed a concrete repository at call time.
package storage

import (
	"context"
	"errors"

	"github.com/quicktix/quicktix/internal/domain"
)

// ErrNotFound is returned when a record addressed by id or code does
// not exist. Callers check it with errors.Is.
var ErrNotFound = errors.New("record not found")

// Type selects a repository backend.
type Type string

const (
	PG    Type = "pg"
	ES    Type = "es"
	InMem Type = "inmem"
)

var ErrUnsupportedRepository = errors.New("unsupported repository type")

// EventQuery is the predicate vocabulary the repository must support.
// Zero-valued fields are ignored. Location matches case-insensitively,
// Title exactly, TitleContains by substring.
type EventQuery struct {
	Location      string
	Title         string
	TitleContains string
	StartDate     string
}

// Repository is the persistent store for events and bookings. Any call
// may fail or time out; the executor treats that as a recoverable
// failure and never retries on its own.
type Repository interface {
	FindEvents(ctx context.Context, q EventQuery) ([]domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	PutEvent(ctx context.Context, e domain.Event) error
	DeleteEvent(ctx context.Context, id string) error

	FindBookingByCode(ctx context.Context, code string) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	PutBooking(ctx context.Context, b domain.Booking) error
	DeleteBooking(ctx context.Context, id string) error
}
