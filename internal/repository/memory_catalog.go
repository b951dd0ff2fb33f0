package repository

import (
	"context"
	"fmt"

	"cinebook/internal/domain"
)

// MemoryCatalogRepository serves the static movie and show catalog. The data
// is fixed at construction and never mutated, so reads need no locking.
type MemoryCatalogRepository struct {
	movies []domain.Movie
	shows  map[string][]domain.Show
}

func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{
		movies: seedMovies(),
		shows:  seedShows(),
	}
}

func (r *MemoryCatalogRepository) Movies(ctx context.Context, genres []string) ([]domain.Movie, error) {
	movies := make([]domain.Movie, len(r.movies))
	copy(movies, r.movies)

	return domain.FilterMoviesByGenre(movies, genres), nil
}

func (r *MemoryCatalogRepository) MovieByID(ctx context.Context, id string) (domain.Movie, error) {
	for _, m := range r.movies {
		if m.ID == id {
			return m, nil
		}
	}

	return domain.Movie{}, fmt.Errorf("movie %q: %w", id, domain.ErrRecordNotFound)
}

// FindMovieByTitle returns the first movie whose title contains hint,
// case-insensitively. When nothing matches, it falls back to the first
// catalog entry, mirroring the assistant's lenient lookup.
func (r *MemoryCatalogRepository) FindMovieByTitle(ctx context.Context, hint string) (domain.Movie, error) {
	for _, m := range r.movies {
		if m.MatchesTitle(hint) {
			return m, nil
		}
	}

	return r.movies[0], nil
}

// ShowsByMovieID returns an empty slice for unknown movie ids. Absence of
// shows is a normal catalog answer, not an error.
func (r *MemoryCatalogRepository) ShowsByMovieID(ctx context.Context, movieID string) ([]domain.Show, error) {
	shows := r.shows[movieID]

	out := make([]domain.Show, len(shows))
	copy(out, shows)

	return out, nil
}

func seedMovies() []domain.Movie {
	return []domain.Movie{
		{ID: "m1", Title: "Neon Nights", Genre: "EDM", Duration: "2h 10m"},
		{ID: "m2", Title: "Romance in Rain", Genre: "Romance", Duration: "1h 55m"},
		{ID: "m3", Title: "Action Frontier", Genre: "Action", Duration: "2h 5m"},
		{ID: "m4", Title: "Bollywood Beats", Genre: "Bollywood", Duration: "2h"},
		{ID: "m5", Title: "Silent Thriller", Genre: "Thriller", Duration: "1h 50m"},
		{ID: "m6", Title: "Mystery Manor", Genre: "Thriller", Duration: "2h 5m"},
		{ID: "m7", Title: "The Great Escape", Genre: "Action", Duration: "2h 8m"},
		{ID: "m8", Title: "Hearts & Harmony", Genre: "Romance", Duration: "1h 45m"},
		{ID: "m9", Title: "City Lights", Genre: "Bollywood", Duration: "2h 2m"},
		{ID: "m10", Title: "Festival Beats", Genre: "EDM", Duration: "1h 55m"},
	}
}

func seedShows() map[string][]domain.Show {
	return map[string][]domain.Show{
		"m1":  {{MovieID: "m1", Hall: "Dobaraa - Phoenix Mall", Timings: []string{"6:00 PM", "8:00 PM", "10:30 PM"}}},
		"m2":  {{MovieID: "m2", Hall: "PVR Forum", Timings: []string{"5:30 PM", "8:15 PM"}}},
		"m3":  {{MovieID: "m3", Hall: "Cinepolis City", Timings: []string{"7:00 PM", "9:45 PM"}}},
		"m4":  {{MovieID: "m4", Hall: "Dobaraa - Phoenix Mall", Timings: []string{"6:30 PM", "9:00 PM"}}},
		"m5":  {{MovieID: "m5", Hall: "PVR Forum", Timings: []string{"4:00 PM", "7:30 PM"}}},
		"m6":  {{MovieID: "m6", Hall: "Cineplex Downtown", Timings: []string{"5:00 PM", "8:30 PM"}}},
		"m7":  {{MovieID: "m7", Hall: "Cinepolis City", Timings: []string{"6:20 PM", "9:10 PM"}}},
		"m8":  {{MovieID: "m8", Hall: "PVR Forum", Timings: []string{"3:30 PM", "6:45 PM"}}},
		"m9":  {{MovieID: "m9", Hall: "Dobaraa - Phoenix Mall", Timings: []string{"7:30 PM", "10:00 PM"}}},
		"m10": {{MovieID: "m10", Hall: "Cineplex Downtown", Timings: []string{"5:45 PM", "9:15 PM"}}},
	}
}
