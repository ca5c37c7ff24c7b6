// Package pg backs the repository with PostgreSQL over pgx. Events and
// bookings live in their own tables; predicate queries compile to WHERE
// clauses so filtering happens server-side.
package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quicktix/quicktix/internal/domain"
	"github.com/quicktix/quicktix/internal/storage"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *ConnectionPool) *Repository {
	return &Repository{db: pool.conn}
}

const eventColumns = "id, type, title, venue, location, start_date, end_date, price_min, price_max, available_tickets"

func (r *Repository) FindEvents(ctx context.Context, q storage.EventQuery) ([]domain.Event, error) {
	var clauses []string
	var args []any

	add := func(clause string, arg any) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if q.Location != "" {
		add("LOWER(location) = LOWER($%d)", q.Location)
	}
	if q.Title != "" {
		add("title = $%d", q.Title)
	}
	if q.TitleContains != "" {
		add("title LIKE '%%' || $%d || '%%'", q.TitleContains)
	}
	if q.StartDate != "" {
		add("start_date = $%d", q.StartDate)
	}

	query := "SELECT " + eventColumns + " FROM events"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Type, &e.Title, &e.Venue, &e.Location, &e.StartDate, &e.EndDate, &e.PriceMin, &e.PriceMax, &e.AvailableTickets); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *Repository) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	var e domain.Event
	err := r.db.QueryRow(ctx, "SELECT "+eventColumns+" FROM events WHERE id = $1", id).
		Scan(&e.ID, &e.Type, &e.Title, &e.Venue, &e.Location, &e.StartDate, &e.EndDate, &e.PriceMin, &e.PriceMax, &e.AvailableTickets)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &e, nil
}

func (r *Repository) PutEvent(ctx context.Context, e domain.Event) error {
	cmd := `
        INSERT INTO events (id, type, title, venue, location, start_date, end_date, price_min, price_max, available_tickets)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (id) DO UPDATE SET
            type = EXCLUDED.type,
            title = EXCLUDED.title,
            venue = EXCLUDED.venue,
            location = EXCLUDED.location,
            start_date = EXCLUDED.start_date,
            end_date = EXCLUDED.end_date,
            price_min = EXCLUDED.price_min,
            price_max = EXCLUDED.price_max,
            available_tickets = EXCLUDED.available_tickets;
    `
	_, err := r.db.Exec(ctx, cmd, e.ID, e.Type, e.Title, e.Venue, e.Location, e.StartDate, e.EndDate, e.PriceMin, e.PriceMax, e.AvailableTickets)
	if err != nil {
		return fmt.Errorf("failed to upsert event: %w", err)
	}
	return nil
}

func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

const bookingColumns = "id, code, event_id, user_name, event_date, quantity, status"

func (r *Repository) FindBookingByCode(ctx context.Context, code string) (*domain.Booking, error) {
	return r.scanBooking(r.db.QueryRow(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE code = $1", code))
}

func (r *Repository) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return r.scanBooking(r.db.QueryRow(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE id = $1", id))
}

func (r *Repository) scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.Code, &b.EventID, &b.User, &b.Date, &b.Quantity, &b.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan booking: %w", err)
	}
	return &b, nil
}

func (r *Repository) PutBooking(ctx context.Context, b domain.Booking) error {
	cmd := `
        INSERT INTO bookings (id, code, event_id, user_name, event_date, quantity, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO UPDATE SET
            code = EXCLUDED.code,
            event_id = EXCLUDED.event_id,
            user_name = EXCLUDED.user_name,
            event_date = EXCLUDED.event_date,
            quantity = EXCLUDED.quantity,
            status = EXCLUDED.status;
    `
	_, err := r.db.Exec(ctx, cmd, b.ID, b.Code, b.EventID, b.User, b.Date, b.Quantity, b.Status)
	if err != nil {
		return fmt.Errorf("failed to upsert booking: %w", err)
	}
	return nil
}

func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM bookings WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
