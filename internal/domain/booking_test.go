package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusPaid, true},
		{StatusPending, StatusPaid, false},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusPaid, StatusConfirmed, false},

		// Any non-cancelled booking may be cancelled; cancelled is terminal.
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusPaid, StatusCancelled, true},
		{StatusCancelled, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		b := Booking{Status: tt.from}
		assert.Equal(t, tt.allowed, b.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestNewBooking(t *testing.T) {
	b := NewBooking("QTX-1234", "E1", 2)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "QTX-1234", b.Code)
	assert.Equal(t, "E1", b.EventID)
	assert.Equal(t, 2, b.Quantity)
	assert.Equal(t, StatusPending, b.Status)
}

func TestNewBookingCode_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^QTX-\d{4}$`)
	for range 100 {
		code := NewBookingCode()
		assert.Regexp(t, pattern, code)
	}
}
