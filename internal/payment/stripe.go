package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"cinebook/internal/domain"
)

// StripeProvider creates a real Stripe Checkout Session and uses its hosted
// page URL as the payable reference.
type StripeProvider struct {
	successUrl string
	cancelUrl  string
}

func NewStripeProvider(successUrl, cancelUrl string) *StripeProvider {
	return &StripeProvider{
		successUrl: successUrl,
		cancelUrl:  cancelUrl,
	}
}

func (p *StripeProvider) PaymentURL(ctx context.Context, payment *domain.Payment, booking *domain.Booking) (string, error) {
	seatPrice := domain.SeatUnitPrice
	priceMinorUnits := seatPrice.Mul(decimal.NewFromInt(100)).IntPart()

	var lineItems []*stripe.CheckoutSessionLineItemParams

	for _, seat := range booking.Seats {
		lineItem := &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyINR)),
				UnitAmount: stripe.Int64(priceMinorUnits),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(fmt.Sprintf("🎬 Movie ticket - Seat %s", seat)),
					Description: stripe.String(fmt.Sprintf(
						"Hall: %s • Showtime: %s • Seats: %s",
						booking.Hall,
						booking.Time,
						strings.Join(booking.Seats, ", "),
					)),
				},
			},
			Quantity: stripe.Int64(1),
		}

		lineItems = append(lineItems, lineItem)
	}

	params := &stripe.CheckoutSessionParams{
		LineItems:  lineItems,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.successUrl),
		CancelURL:  stripe.String(p.cancelUrl),
		Metadata: map[string]string{
			"payment_id": payment.ID,
			"booking_id": booking.ID,
		},
		ClientReferenceID: stripe.String(booking.ID),
	}

	s, err := session.New(params)
	if err != nil {
		return "", err
	}

	return s.URL, nil
}
