package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinebook/internal/domain"
)

// MemoryPaymentRepository is the payment ledger. The only permitted mutation
// is the pending to paid transition performed by Confirm.
type MemoryPaymentRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Payment
	nowFunc func() time.Time
}

func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{
		byID:    make(map[string]*domain.Payment),
		nowFunc: time.Now,
	}
}

func (r *MemoryPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if payment.BookingID == "" {
		return fmt.Errorf("payment without booking id: %w", domain.ErrRecordNotFound)
	}
	if payment.Amount <= 0 {
		return domain.ErrInvalidAmount
	}

	if payment.ID == "" {
		payment.ID = domain.NewPaymentID()
	}
	payment.Status = domain.PaymentStatusPending
	payment.CreatedAt = r.nowFunc().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *payment
	r.byID[stored.ID] = &stored

	return nil
}

func (r *MemoryPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("payment %q: %w", id, domain.ErrRecordNotFound)
	}

	clone := *payment

	return &clone, nil
}

// Confirm marks the payment paid. Re-confirming an already paid payment is a
// no-op success: the paid state is simply re-asserted, and PaidAt keeps its
// original value.
func (r *MemoryPaymentRepository) Confirm(ctx context.Context, id string) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("payment %q: %w", id, domain.ErrRecordNotFound)
	}

	if payment.Status != domain.PaymentStatusPaid {
		paidAt := r.nowFunc().UTC()
		payment.Status = domain.PaymentStatusPaid
		payment.PaidAt = &paidAt
	}

	clone := *payment

	return &clone, nil
}
