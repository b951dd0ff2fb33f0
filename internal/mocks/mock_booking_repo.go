package mocks

import (
	"context"

	"cinebook/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateFunc  func(ctx context.Context, booking *domain.Booking) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Booking, error)
	GetAllFunc  func(ctx context.Context) ([]*domain.Booking, error)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.CreateFunc(ctx, booking)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockBookingRepo) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	return m.GetAllFunc(ctx)
}
