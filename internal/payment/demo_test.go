package payment

import (
	"context"
	"testing"

	"cinebook/internal/domain"
)

func TestDemoProviderPaymentURL(t *testing.T) {
	provider := NewDemoProvider()

	payment := &domain.Payment{ID: "pay_abc"}
	booking := &domain.Booking{ID: "bk_abc"}

	url, err := provider.PaymentURL(context.Background(), payment, booking)
	if err != nil {
		t.Fatal(err)
	}

	want := "https://demo.pay/local/pay_abc"
	if url != want {
		t.Errorf("url = %v, want %v", url, want)
	}
}
