package domain

import "context"

// PaymentProvider produces the payable reference presented to the user. The
// demo provider emits a placeholder URL; the Stripe provider emits a real
// hosted checkout URL.
type PaymentProvider interface {
	PaymentURL(ctx context.Context, payment *Payment, booking *Booking) (string, error)
}
