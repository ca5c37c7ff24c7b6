package es

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicktix/quicktix/internal/domain"
	"github.com/quicktix/quicktix/internal/storage"
	pkgtesting "github.com/quicktix/quicktix/pkg/testing"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	ctx := context.Background()

	es := pkgtesting.NewESContainer(ctx, t)
	repo, err := NewRepository(ctx, ClientConfig{
		Addresses: []string{es.Address},
		IndexName: "quicktix_test",
	})
	require.NoError(t, err)
	return repo
}

func TestRepository_Elasticsearch(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("event round trip", func(t *testing.T) {
		e := domain.Event{
			ID: "E1", Type: "concert ticket", Title: "Jazz Night",
			Venue: "City Hall", Location: "Kingston",
			StartDate: "2025-01-01", EndDate: "2025-01-02",
			PriceMin: 20, PriceMax: 50, AvailableTickets: 30,
		}
		require.NoError(t, repo.PutEvent(ctx, e))

		got, err := repo.GetEvent(ctx, "E1")
		require.NoError(t, err)
		assert.Equal(t, e, *got)
	})

	t.Run("find events by filters", func(t *testing.T) {
		require.NoError(t, repo.PutEvent(ctx, domain.Event{
			ID: "E2", Title: "Jazz Brunch", Location: "Montego Bay", StartDate: "2025-02-01",
		}))

		byLocation, err := repo.FindEvents(ctx, storage.EventQuery{Location: "kingston"})
		require.NoError(t, err)
		require.Len(t, byLocation, 1)
		assert.Equal(t, "E1", byLocation[0].ID)

		byContains, err := repo.FindEvents(ctx, storage.EventQuery{TitleContains: "Jazz"})
		require.NoError(t, err)
		assert.Len(t, byContains, 2)

		none, err := repo.FindEvents(ctx, storage.EventQuery{Title: "Jazz Night", StartDate: "2025-02-01"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("booking by code", func(t *testing.T) {
		b := domain.NewBooking("QTX-1234", "E1", 2)
		require.NoError(t, repo.PutBooking(ctx, b))

		got, err := repo.FindBookingByCode(ctx, "QTX-1234")
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)

		// Bookings never leak into event queries.
		events, err := repo.FindEvents(ctx, storage.EventQuery{})
		require.NoError(t, err)
		for _, e := range events {
			assert.NotEqual(t, b.ID, e.ID)
		}

		require.NoError(t, repo.DeleteBooking(ctx, b.ID))
		_, err = repo.FindBookingByCode(ctx, "QTX-1234")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("missing records", func(t *testing.T) {
		_, err := repo.GetEvent(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		err = repo.DeleteEvent(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
