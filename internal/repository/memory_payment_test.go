package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinebook/internal/domain"
)

func TestMemoryPaymentCreate(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	repo := NewMemoryPaymentRepository()
	repo.nowFunc = func() time.Time { return now }

	payment := domain.Payment{
		BookingID: "bk_1",
		Amount:    398,
		PayURL:    "https://demo.pay/local/pay_x",
	}

	if err := repo.Create(context.Background(), &payment); err != nil {
		t.Fatal(err)
	}

	if payment.ID == "" {
		t.Fatal("expected an id to be assigned")
	}
	if payment.ID[:4] != "pay_" {
		t.Errorf("id = %v, want pay_ prefix", payment.ID)
	}
	if payment.Status != domain.PaymentStatusPending {
		t.Errorf("status = %v, want pending", payment.Status)
	}
	if !payment.CreatedAt.Equal(now) {
		t.Errorf("createdAt = %v, want %v", payment.CreatedAt, now)
	}
}

func TestMemoryPaymentCreateKeepsCallerID(t *testing.T) {
	repo := NewMemoryPaymentRepository()

	payment := domain.Payment{ID: "pay_fixed", BookingID: "bk_1", Amount: 199}
	if err := repo.Create(context.Background(), &payment); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByID(context.Background(), "pay_fixed")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "pay_fixed" {
		t.Errorf("id = %v, want pay_fixed", got.ID)
	}
}

func TestMemoryPaymentCreateValidation(t *testing.T) {
	repo := NewMemoryPaymentRepository()

	err := repo.Create(context.Background(), &domain.Payment{Amount: 199})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for missing booking id, got %v", err)
	}

	err = repo.Create(context.Background(), &domain.Payment{BookingID: "bk_1", Amount: 0})
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestMemoryPaymentConfirm(t *testing.T) {
	times := []time.Time{
		time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 1, 12, 5, 0, 0, time.UTC),
		time.Date(2026, 8, 1, 12, 10, 0, 0, time.UTC),
	}
	calls := 0

	repo := NewMemoryPaymentRepository()
	repo.nowFunc = func() time.Time {
		t := times[calls]
		calls++
		return t
	}

	payment := domain.Payment{BookingID: "bk_1", Amount: 199}
	if err := repo.Create(context.Background(), &payment); err != nil {
		t.Fatal(err)
	}

	confirmed, err := repo.Confirm(context.Background(), payment.ID)
	if err != nil {
		t.Fatal(err)
	}
	if confirmed.Status != domain.PaymentStatusPaid {
		t.Errorf("status = %v, want paid", confirmed.Status)
	}
	if confirmed.PaidAt == nil || !confirmed.PaidAt.Equal(times[1]) {
		t.Errorf("paidAt = %v, want %v", confirmed.PaidAt, times[1])
	}

	// Once paid the status never reverts and PaidAt keeps its first value.
	again, err := repo.Confirm(context.Background(), payment.ID)
	if err != nil {
		t.Fatal(err)
	}
	if again.Status != domain.PaymentStatusPaid {
		t.Errorf("status after second confirm = %v, want paid", again.Status)
	}
	if !again.PaidAt.Equal(times[1]) {
		t.Errorf("paidAt changed on second confirm: %v, want %v", again.PaidAt, times[1])
	}
}

func TestMemoryPaymentConfirmUnknown(t *testing.T) {
	repo := NewMemoryPaymentRepository()

	_, err := repo.Confirm(context.Background(), "pay_missing")
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestMemoryPaymentGetByIDUnknown(t *testing.T) {
	repo := NewMemoryPaymentRepository()

	_, err := repo.GetByID(context.Background(), "pay_missing")
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}
