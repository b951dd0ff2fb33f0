package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinebook/internal/domain"
)

// MemoryBookingRepository is the booking ledger: an append-only, in-process
// collection with no persistence. There is no update and no delete.
type MemoryBookingRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Booking
	inOrder []string
	nowFunc func() time.Time
	idFunc  func() string
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		byID:    make(map[string]*domain.Booking),
		nowFunc: time.Now,
		idFunc:  domain.NewBookingID,
	}
}

func (r *MemoryBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if len(booking.Seats) == 0 {
		return domain.ErrEmptySeatSet
	}

	if booking.User.Name == "" {
		booking.User.Name = domain.GuestUserName
	}

	booking.ID = r.idFunc()
	booking.CreatedAt = r.nowFunc().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneBooking(booking)
	r.byID[stored.ID] = stored
	r.inOrder = append(r.inOrder, stored.ID)

	return nil
}

func (r *MemoryBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("booking %q: %w", id, domain.ErrRecordNotFound)
	}

	return cloneBooking(booking), nil
}

// GetAll returns a snapshot of the ledger in creation order.
func (r *MemoryBookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]*domain.Booking, 0, len(r.inOrder))
	for _, id := range r.inOrder {
		bookings = append(bookings, cloneBooking(r.byID[id]))
	}

	return bookings, nil
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	clone := *b
	clone.Seats = make([]string, len(b.Seats))
	copy(clone.Seats, b.Seats)

	return &clone
}
