package mocks

import (
	"context"

	"cinebook/internal/domain"
)

type MockPaymentRepo struct {
	domain.PaymentRepository
	CreateFunc  func(ctx context.Context, payment *domain.Payment) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Payment, error)
	ConfirmFunc func(ctx context.Context, id string) (*domain.Payment, error)
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	return m.CreateFunc(ctx, payment)
}

func (m *MockPaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockPaymentRepo) Confirm(ctx context.Context, id string) (*domain.Payment, error) {
	return m.ConfirmFunc(ctx, id)
}
