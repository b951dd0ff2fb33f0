// Package api holds the wire types of the CineBook HTTP surface. The JSON
// field names are a contract shared with the web front end; do not rename
// them without versioning the API.
package api

import "time"

type Movie struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	Duration string `json:"duration"`
}

type Show struct {
	Hall    string   `json:"hall"`
	Timings []string `json:"timings"`
}

type ShowListResponse struct {
	MovieId string `json:"movieId"`
	Shows   []Show `json:"shows"`
}

type User struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type CreateBookingRequest struct {
	MovieId string   `json:"movieId" validate:"required"`
	Hall    string   `json:"hall"`
	Time    string   `json:"time"`
	Seats   []string `json:"seats" validate:"required,min=1,dive,seat_label"`
	User    *User    `json:"user"`
}

type Booking struct {
	Id        string    `json:"id"`
	MovieId   string    `json:"movieId"`
	Hall      string    `json:"hall"`
	Time      string    `json:"time"`
	Seats     []string  `json:"seats"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

type BookingResponse struct {
	Success bool    `json:"success"`
	Booking Booking `json:"booking"`
}

type CreatePaymentRequest struct {
	BookingId string `json:"bookingId" validate:"required"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
}

type Payment struct {
	Id        string     `json:"id"`
	Amount    int64      `json:"amount"`
	Status    string     `json:"status"`
	BookingId string     `json:"bookingId"`
	PayUrl    string     `json:"payUrl"`
	CreatedAt time.Time  `json:"createdAt"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}

type PaymentResponse struct {
	Success bool    `json:"success"`
	Payment Payment `json:"payment"`
}

// PaymentStatusResponse is the poll target of the settlement loop. Status is
// "pending", "paid" or "not_found"; Payment is present for the first two.
type PaymentStatusResponse struct {
	Status  string   `json:"status"`
	Payment *Payment `json:"payment,omitempty"`
}

type ConfirmPaymentRequest struct {
	PaymentId string `json:"paymentId" validate:"required"`
}

type AssistantRequest struct {
	Prompt string `json:"prompt"`
}

type AssistantResponse struct {
	Result string `json:"result"`
}

// UpstreamErrorResponse passes an assistant API failure through to the
// caller with the upstream status and body intact.
type UpstreamErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validation_errors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"system_info"`
}
