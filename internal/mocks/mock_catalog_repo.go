package mocks

import (
	"context"

	"cinebook/internal/domain"
)

type MockCatalogRepo struct {
	domain.CatalogRepository
	MoviesFunc           func(ctx context.Context, genres []string) ([]domain.Movie, error)
	MovieByIDFunc        func(ctx context.Context, id string) (domain.Movie, error)
	FindMovieByTitleFunc func(ctx context.Context, hint string) (domain.Movie, error)
	ShowsByMovieIDFunc   func(ctx context.Context, movieID string) ([]domain.Show, error)
}

func (m *MockCatalogRepo) Movies(ctx context.Context, genres []string) ([]domain.Movie, error) {
	return m.MoviesFunc(ctx, genres)
}

func (m *MockCatalogRepo) MovieByID(ctx context.Context, id string) (domain.Movie, error) {
	return m.MovieByIDFunc(ctx, id)
}

func (m *MockCatalogRepo) FindMovieByTitle(ctx context.Context, hint string) (domain.Movie, error) {
	return m.FindMovieByTitleFunc(ctx, hint)
}

func (m *MockCatalogRepo) ShowsByMovieID(ctx context.Context, movieID string) ([]domain.Show, error) {
	return m.ShowsByMovieIDFunc(ctx, movieID)
}
