package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GuestUserName is used when a booking request carries no user profile.
const GuestUserName = "guest"

type User struct {
	Name  string
	Email string
}

// Booking is an append-only ledger record: created once, never mutated or
// deleted for the lifetime of the process.
type Booking struct {
	ID        string
	MovieID   string
	Hall      string
	Time      string
	Seats     []string
	User      User
	CreatedAt time.Time
}

// NewBookingID returns a fresh booking identifier. Identifiers are unique
// within a process lifetime; nothing is guaranteed across restarts.
func NewBookingID() string {
	return "bk_" + uuid.NewString()
}

type BookingRepository interface {
	// Create assigns an identifier and creation timestamp and appends the
	// booking. Fails with ErrEmptySeatSet when the seat set is empty.
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	GetAll(ctx context.Context) ([]*Booking, error)
}
