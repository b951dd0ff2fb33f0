package payment

import (
	"context"
	"fmt"

	"cinebook/internal/domain"
)

const demoPayBaseURL = "https://demo.pay/local"

// DemoProvider derives the payable reference deterministically from the
// payment identifier. It stands in for a hosted checkout page; nothing is
// listening behind the URL.
type DemoProvider struct{}

func NewDemoProvider() *DemoProvider {
	return &DemoProvider{}
}

func (p *DemoProvider) PaymentURL(ctx context.Context, payment *domain.Payment, booking *domain.Booking) (string, error) {
	return fmt.Sprintf("%s/%s", demoPayBaseURL, payment.ID), nil
}
