package assistant

import (
	"context"
	"encoding/json"

	"cinebook/internal/domain"
)

// AckReply is the mock's answer to prompts it has no canned response for.
const AckReply = "ACK"

// OpenSeatModalReply tells the chat client to open its seat picker.
const OpenSeatModalReply = `{"status":"OPEN_SEAT_MODAL"}`

// MockAssistant is the deterministic local fallback used when no assistant
// API credential is configured. It answers the three literal chat triggers
// from the catalog and acknowledges everything else.
type MockAssistant struct {
	catalog domain.CatalogRepository
}

func NewMockAssistant(catalog domain.CatalogRepository) *MockAssistant {
	return &MockAssistant{catalog: catalog}
}

type movieSummary struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Genre string `json:"genre"`
}

type showSummary struct {
	Hall    string   `json:"hall"`
	Timings []string `json:"timings"`
}

type timingsReply struct {
	Title string        `json:"title"`
	Shows []showSummary `json:"shows"`
}

func (m *MockAssistant) Ask(ctx context.Context, prompt string) (string, error) {
	intent := Route(prompt)

	switch intent.Kind {
	case IntentListMovies:
		return m.listMovies(ctx)
	case IntentShowTimings:
		return m.showTimings(ctx, intent.MovieHint)
	case IntentStartBooking:
		return OpenSeatModalReply, nil
	default:
		return AckReply, nil
	}
}

func (m *MockAssistant) listMovies(ctx context.Context) (string, error) {
	movies, err := m.catalog.Movies(ctx, nil)
	if err != nil {
		return "", err
	}

	summaries := make([]movieSummary, len(movies))
	for i, movie := range movies {
		summaries[i] = movieSummary{Id: movie.ID, Title: movie.Title, Genre: movie.Genre}
	}

	return marshalReply(summaries)
}

func (m *MockAssistant) showTimings(ctx context.Context, hint string) (string, error) {
	movie, err := m.catalog.FindMovieByTitle(ctx, hint)
	if err != nil {
		return "", err
	}

	shows, err := m.catalog.ShowsByMovieID(ctx, movie.ID)
	if err != nil {
		return "", err
	}

	reply := timingsReply{Title: movie.Title, Shows: make([]showSummary, len(shows))}
	for i, show := range shows {
		reply.Shows[i] = showSummary{Hall: show.Hall, Timings: show.Timings}
	}

	return marshalReply(reply)
}

func marshalReply(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
