package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"

	// PaymentStatusNotFound is a query-time response state for unknown
	// payment identifiers. It is never stored.
	PaymentStatusNotFound PaymentStatus = "not_found"
)

// SeatUnitPrice is the flat per-seat ticket price in rupees.
var SeatUnitPrice = decimal.NewFromInt(199)

// TicketAmount derives the payable amount for a seat count.
func TicketAmount(seatCount int) decimal.Decimal {
	return SeatUnitPrice.Mul(decimal.NewFromInt(int64(seatCount)))
}

// Payment is created once per booking with status pending and transitions
// exactly once to paid. The status is monotonic: once paid, it never
// reverts.
type Payment struct {
	ID        string
	BookingID string
	Amount    int64
	Status    PaymentStatus
	PayURL    string
	CreatedAt time.Time
	PaidAt    *time.Time
}

func NewPaymentID() string {
	return "pay_" + uuid.NewString()
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id string) (*Payment, error)

	// Confirm transitions the payment to paid. Confirming an already paid
	// payment is a no-op success that re-asserts the paid state.
	Confirm(ctx context.Context, id string) (*Payment, error)
}
