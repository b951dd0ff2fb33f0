package mocks

import (
	"context"

	"cinebook/internal/domain"
)

type MockPaymentProvider struct {
	PaymentURLFunc func(ctx context.Context, payment *domain.Payment, booking *domain.Booking) (string, error)
}

func (m *MockPaymentProvider) PaymentURL(ctx context.Context, payment *domain.Payment, booking *domain.Booking) (string, error) {
	return m.PaymentURLFunc(ctx, payment, booking)
}
