// Package inmem is the map-backed repository used by tests and as the
// CLI default when no backend is configured.
package inmem

import (
	"context"
	"strings"
	"sync"

	"github.com/quicktix/quicktix/internal/domain"
	"github.com/quicktix/quicktix/internal/storage"
)

type Repository struct {
	mu       sync.RWMutex
	events   map[string]domain.Event
	bookings map[string]domain.Booking
}

func NewRepository() *Repository {
	return &Repository{
		events:   make(map[string]domain.Event),
		bookings: make(map[string]domain.Booking),
	}
}

func (r *Repository) FindEvents(ctx context.Context, q storage.EventQuery) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Event
	for _, e := range r.events {
		if !matches(e, q) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func matches(e domain.Event, q storage.EventQuery) bool {
	if q.Location != "" && !strings.EqualFold(e.Location, q.Location) {
		return false
	}
	if q.Title != "" && e.Title != q.Title {
		return false
	}
	if q.TitleContains != "" && !strings.Contains(e.Title, q.TitleContains) {
		return false
	}
	if q.StartDate != "" && e.StartDate != q.StartDate {
		return false
	}
	return true
}

func (r *Repository) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &e, nil
}

func (r *Repository) PutEvent(ctx context.Context, e domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[e.ID] = e
	return nil
}

func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *Repository) FindBookingByCode(ctx context.Context, code string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.Code == code {
			out := b
			return &out, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *Repository) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &b, nil
}

func (r *Repository) PutBooking(ctx context.Context, b domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings[b.ID] = b
	return nil
}

func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}
