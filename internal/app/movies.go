package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cinebook/api"
	"cinebook/internal/domain"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	genres := splitCSV(r.URL.Query().Get("genres"))

	movies, err := app.catalogRepo.Movies(r.Context(), genres)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovies(movies), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowsByMovie(w http.ResponseWriter, r *http.Request) {
	movieId := chi.URLParam(r, "movieId")

	shows, err := app.catalogRepo.ShowsByMovieID(r.Context(), movieId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowListResponse{
		MovieId: movieId,
		Shows:   toApiShows(shows),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiMovies(movies []domain.Movie) []api.Movie {
	out := make([]api.Movie, len(movies))

	for i, m := range movies {
		out[i] = api.Movie{
			Id:       m.ID,
			Title:    m.Title,
			Genre:    m.Genre,
			Duration: m.Duration,
		}
	}

	return out
}

func toApiShows(shows []domain.Show) []api.Show {
	out := make([]api.Show, len(shows))

	for i, s := range shows {
		out[i] = api.Show{
			Hall:    s.Hall,
			Timings: s.Timings,
		}
	}

	return out
}
