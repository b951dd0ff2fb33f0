package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cinebook/api"
)

func TestClientMovies(t *testing.T) {
	want := []api.Movie{
		{Id: "m1", Title: "Neon Nights", Genre: "EDM", Duration: "2h 10m"},
		{Id: "m2", Title: "Romance in Rain", Genre: "Romance", Duration: "1h 55m"},
	}

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/movies" {
			t.Errorf("path = %v, want /api/movies", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("genres")
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)

	movies, err := c.Movies(context.Background(), []string{"EDM", "Romance"})
	if err != nil {
		t.Fatal(err)
	}

	if gotQuery != "EDM,Romance" {
		t.Errorf("genres query = %q, want %q", gotQuery, "EDM,Romance")
	}
	if diff := cmp.Diff(want, movies); diff != "" {
		t.Errorf("movies mismatch (-want +got):\n%s", diff)
	}
}

func TestClientShows(t *testing.T) {
	want := api.ShowListResponse{
		MovieId: "m1",
		Shows: []api.Show{
			{Hall: "Hall 1", Timings: []string{"10:00", "18:00"}},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/shows/m1" {
			t.Errorf("path = %v, want /api/shows/m1", r.URL.Path)
		}
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)

	resp, err := c.Shows(context.Background(), "m1")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("shows mismatch (-want +got):\n%s", diff)
	}
}

func TestClientCreateBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		json.NewEncoder(w).Encode(api.BookingResponse{
			Success: true,
			Booking: api.Booking{
				Id:      "bk_1",
				MovieId: req.MovieId,
				Seats:   req.Seats,
				User:    api.User{Name: "guest"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)

	booking, err := c.CreateBooking(context.Background(), api.CreateBookingRequest{
		MovieId: "m1",
		Seats:   []string{"A1"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if booking.Id != "bk_1" {
		t.Errorf("booking id = %v, want bk_1", booking.Id)
	}
	if booking.MovieId != "m1" {
		t.Errorf("movie id = %v, want m1", booking.MovieId)
	}
}

func TestClientPaymentLifecycle(t *testing.T) {
	confirmed := false

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/pay/create":
			json.NewEncoder(w).Encode(api.PaymentResponse{
				Success: true,
				Payment: api.Payment{Id: "pay_1", BookingId: "bk_1", Amount: 199, Status: "pending"},
			})
		case "/api/pay/status":
			if r.URL.Query().Get("paymentId") != "pay_1" {
				json.NewEncoder(w).Encode(api.PaymentStatusResponse{Status: "not_found"})
				return
			}
			status := "pending"
			if confirmed {
				status = "paid"
			}
			json.NewEncoder(w).Encode(api.PaymentStatusResponse{Status: status})
		case "/api/pay/confirm":
			confirmed = true
			json.NewEncoder(w).Encode(api.PaymentResponse{
				Success: true,
				Payment: api.Payment{Id: "pay_1", Status: "paid"},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	ctx := context.Background()

	payment, err := c.CreatePayment(ctx, api.CreatePaymentRequest{BookingId: "bk_1", Amount: 199})
	if err != nil {
		t.Fatal(err)
	}
	if payment.Status != "pending" {
		t.Errorf("status = %v, want pending", payment.Status)
	}

	status, err := c.PaymentStatus(ctx, "pay_1")
	if err != nil {
		t.Fatal(err)
	}
	if status.Status != "pending" {
		t.Errorf("polled status = %v, want pending", status.Status)
	}

	if _, err := c.ConfirmPayment(ctx, "pay_1"); err != nil {
		t.Fatal(err)
	}

	status, err = c.PaymentStatus(ctx, "pay_1")
	if err != nil {
		t.Fatal(err)
	}
	if status.Status != "paid" {
		t.Errorf("polled status after confirm = %v, want paid", status.Status)
	}
}

func TestClientAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.AssistantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Prompt != "hello" {
			t.Errorf("prompt = %q, want hello", req.Prompt)
		}
		json.NewEncoder(w).Encode(api.AssistantResponse{Result: "ACK"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)

	result, err := c.Ask(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}
	if result != "ACK" {
		t.Errorf("result = %v, want ACK", result)
	}
}

func TestClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"The requested resource not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)

	_, err := c.Movies(context.Background(), nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %v, want 404", apiErr.StatusCode)
	}
	if apiErr.Endpoint != "/api/movies" {
		t.Errorf("endpoint = %v, want /api/movies", apiErr.Endpoint)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should report true for a 404")
	}
}
