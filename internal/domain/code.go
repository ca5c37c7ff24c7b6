package domain

import (
	"fmt"
	"math/rand"
)

// NewBookingCode returns a short human-readable booking code in the
// QTX-#### format. Codes are pseudo-random; uniqueness against live
// bookings is enforced by the caller.
func NewBookingCode() string {
	return fmt.Sprintf("QTX-%04d", 1000+rand.Intn(9000))
}
