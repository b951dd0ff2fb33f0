package app

import (
	"net/http"

	"cinebook/api"
	"cinebook/internal/domain"
)

func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

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

	booking := domain.Booking{
		MovieID: input.MovieId,
		Hall:    input.Hall,
		Time:    input.Time,
		Seats:   input.Seats,
		User:    domain.User{Name: domain.GuestUserName},
	}

	if input.User != nil && input.User.Name != "" {
		booking.User = domain.User{Name: input.User.Name, Email: input.User.Email}
	}

	err = app.bookingRepo.Create(r.Context(), &booking)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("booking created", "booking_id", booking.ID, "movie_id", booking.MovieID, "seats", len(booking.Seats))

	resp := api.BookingResponse{
		Success: true,
		Booking: toApiBooking(&booking),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiBooking(b *domain.Booking) api.Booking {
	return api.Booking{
		Id:        b.ID,
		MovieId:   b.MovieID,
		Hall:      b.Hall,
		Time:      b.Time,
		Seats:     b.Seats,
		User:      api.User{Name: b.User.Name, Email: b.User.Email},
		CreatedAt: b.CreatedAt,
	}
}
