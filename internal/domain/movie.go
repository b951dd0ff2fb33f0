package domain

import (
	"context"
	"slices"
	"strings"
)

type Movie struct {
	ID       string
	Title    string
	Genre    string
	Duration string
}

// Show is a run of a movie in a named hall with an ordered list of showtime
// strings. Shows never change after catalog construction.
type Show struct {
	MovieID string
	Hall    string
	Timings []string
}

// MatchesTitle reports whether the movie title contains hint,
// case-insensitively.
func (m Movie) MatchesTitle(hint string) bool {
	return strings.Contains(strings.ToLower(m.Title), strings.ToLower(hint))
}

// FilterMoviesByGenre returns the movies whose genre is in genres, keeping
// the original catalog order. An empty genre set returns the input unchanged.
func FilterMoviesByGenre(movies []Movie, genres []string) []Movie {
	if len(genres) == 0 {
		return movies
	}

	filtered := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if slices.Contains(genres, m.Genre) {
			filtered = append(filtered, m)
		}
	}

	return filtered
}

type CatalogRepository interface {
	Movies(ctx context.Context, genres []string) ([]Movie, error)
	MovieByID(ctx context.Context, id string) (Movie, error)
	FindMovieByTitle(ctx context.Context, hint string) (Movie, error)
	ShowsByMovieID(ctx context.Context, movieID string) ([]Show, error)
}
