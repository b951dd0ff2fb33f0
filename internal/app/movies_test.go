package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"

	"cinebook/api"
	"cinebook/internal/domain"
	"cinebook/internal/mocks"
)

func TestGetMovies(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		moviesFunc     func(context.Context, []string) ([]domain.Movie, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   []api.Movie
	}{
		{
			name: "successful retrieval",
			url:  "/api/movies",
			moviesFunc: func(ctx context.Context, genres []string) ([]domain.Movie, error) {
				return []domain.Movie{
					{ID: "m1", Title: "Interstellar", Genre: "Sci-Fi", Duration: "2h49m"},
					{ID: "m2", Title: "Inception", Genre: "Sci-Fi", Duration: "2h28m"},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: []api.Movie{
				{Id: "m1", Title: "Interstellar", Genre: "Sci-Fi", Duration: "2h49m"},
				{Id: "m2", Title: "Inception", Genre: "Sci-Fi", Duration: "2h28m"},
			},
		},
		{
			name: "genre filter is forwarded",
			url:  "/api/movies?genres=Drama,Thriller",
			moviesFunc: func(ctx context.Context, genres []string) ([]domain.Movie, error) {
				want := []string{"Drama", "Thriller"}
				if diff := cmp.Diff(want, genres); diff != "" {
					t.Errorf("genres mismatch (-want +got):\n%s", diff)
				}
				return []domain.Movie{
					{ID: "m3", Title: "Parasite", Genre: "Thriller", Duration: "2h12m"},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: []api.Movie{
				{Id: "m3", Title: "Parasite", Genre: "Thriller", Duration: "2h12m"},
			},
		},
		{
			name: "empty catalog",
			url:  "/api/movies",
			moviesFunc: func(ctx context.Context, genres []string) ([]domain.Movie, error) {
				return []domain.Movie{}, nil
			},
			wantStatus:   http.StatusOK,
			wantResponse: []api.Movie{},
		},
		{
			name: "repository error",
			url:  "/api/movies",
			moviesFunc: func(ctx context.Context, genres []string) ([]domain.Movie, error) {
				return nil, fmt.Errorf("catalog unavailable")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.catalogRepo = &mocks.MockCatalogRepo{
					MoviesFunc: tt.moviesFunc,
				}
			})

			w, r := executeRequest(t, http.MethodGet, tt.url, nil)

			app.GetMovies(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetMovies() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response []api.Movie
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, response); diff != "" {
					t.Errorf("GetMovies() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func TestGetShowsByMovie(t *testing.T) {
	tests := []struct {
		name           string
		movieId        string
		showsFunc      func(context.Context, string) ([]domain.Show, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.ShowListResponse
	}{
		{
			name:    "movie with shows",
			movieId: "m1",
			showsFunc: func(ctx context.Context, movieID string) ([]domain.Show, error) {
				return []domain.Show{
					{MovieID: "m1", Hall: "Hall 1", Timings: []string{"10:00", "13:30", "18:00"}},
					{MovieID: "m1", Hall: "Hall 2", Timings: []string{"21:00"}},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.ShowListResponse{
				MovieId: "m1",
				Shows: []api.Show{
					{Hall: "Hall 1", Timings: []string{"10:00", "13:30", "18:00"}},
					{Hall: "Hall 2", Timings: []string{"21:00"}},
				},
			},
		},
		{
			name:    "unknown movie yields empty show list",
			movieId: "m404",
			showsFunc: func(ctx context.Context, movieID string) ([]domain.Show, error) {
				return []domain.Show{}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.ShowListResponse{
				MovieId: "m404",
				Shows:   []api.Show{},
			},
		},
		{
			name:    "repository error",
			movieId: "m1",
			showsFunc: func(ctx context.Context, movieID string) ([]domain.Show, error) {
				return nil, fmt.Errorf("catalog unavailable")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.catalogRepo = &mocks.MockCatalogRepo{
					ShowsByMovieIDFunc: tt.showsFunc,
				}
			})

			w, r := executeRequest(t, http.MethodGet, "/api/shows/"+tt.movieId, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("movieId", tt.movieId)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

			app.GetShowsByMovie(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetShowsByMovie() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.ShowListResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("GetShowsByMovie() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}
