package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cinebook/api"
	"cinebook/internal/domain"
)

func (app *Application) CreatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreatePaymentRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	// A payment must reference an existing booking at creation time.
	booking, err := app.bookingRepo.GetByID(r.Context(), input.BookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("payment creation rejected: unknown booking", "booking_id", input.BookingId)
			app.badRequestResponse(w, r, fmt.Errorf("booking %q does not exist", input.BookingId))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	payment := domain.Payment{
		ID:        domain.NewPaymentID(),
		BookingID: booking.ID,
		Amount:    input.Amount,
		Status:    domain.PaymentStatusPending,
	}

	payUrl, err := app.paymentProvider.PaymentURL(r.Context(), &payment, booking)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	payment.PayURL = payUrl

	err = app.paymentRepo.Create(r.Context(), &payment)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("payment created", "payment_id", payment.ID, "booking_id", booking.ID, "amount", payment.Amount)

	resp := api.PaymentResponse{
		Success: true,
		Payment: toApiPayment(&payment),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// PaymentStatusHandler is the poll target of the settlement loop. An unknown
// or missing payment id is answered with status not_found and HTTP 200: the
// caller is expected to poll and tolerate transient absence.
func (app *Application) PaymentStatusHandler(w http.ResponseWriter, r *http.Request) {
	paymentId := r.URL.Query().Get("paymentId")

	if paymentId == "" {
		app.writeJSON(w, http.StatusOK, api.PaymentStatusResponse{Status: string(domain.PaymentStatusNotFound)}, nil)
		return
	}

	payment, err := app.paymentRepo.GetByID(r.Context(), paymentId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.writeJSON(w, http.StatusOK, api.PaymentStatusResponse{Status: string(domain.PaymentStatusNotFound)}, nil)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	apiPayment := toApiPayment(payment)
	resp := api.PaymentStatusResponse{
		Status:  string(payment.Status),
		Payment: &apiPayment,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ConfirmPaymentHandler settles a payment. In production this would be a
// provider webhook; here it is an explicit demo action. Confirming an
// already paid payment is a no-op success.
func (app *Application) ConfirmPaymentHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.ConfirmPaymentRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	payment, err := app.paymentRepo.Confirm(r.Context(), input.PaymentId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("not_found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("payment settled", "payment_id", payment.ID, "booking_id", payment.BookingID)

	app.sendConfirmationEmail(r, payment)

	resp := api.PaymentResponse{
		Success: true,
		Payment: toApiPayment(payment),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// sendConfirmationEmail notifies the booker in the background when their
// profile carries an email address. Failures are logged, never surfaced.
func (app *Application) sendConfirmationEmail(r *http.Request, payment *domain.Payment) {
	booking, err := app.bookingRepo.GetByID(r.Context(), payment.BookingID)
	if err != nil {
		app.contextGetLogger(r).Error("failed to load booking for confirmation email", "error", err)
		return
	}

	if booking.User.Email == "" {
		return
	}

	logger := app.contextGetLogger(r)

	go func() {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic occurred during sending confirmation mail", "panic", err)
			}
		}()

		data := map[string]any{
			"userName":  booking.User.Name,
			"amount":    payment.Amount,
			"bookingID": booking.ID,
			"hall":      booking.Hall,
			"time":      booking.Time,
			"seats":     strings.Join(booking.Seats, ", "),
		}

		err := app.mailer.Send(booking.User.Email, "booking_confirmation.tmpl", data)
		if err != nil {
			logger.Error("failed to send confirmation email", "error", err)
		} else {
			logger.Info("confirmation email sent", "booking_id", booking.ID)
		}
	}()
}

func toApiPayment(p *domain.Payment) api.Payment {
	return api.Payment{
		Id:        p.ID,
		Amount:    p.Amount,
		Status:    string(p.Status),
		BookingId: p.BookingID,
		PayUrl:    p.PayURL,
		CreatedAt: p.CreatedAt,
		PaidAt:    p.PaidAt,
	}
}
