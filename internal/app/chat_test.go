package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"cinebook/api"
	"cinebook/internal/assistant"
	"cinebook/internal/mocks"
)

func TestAssistantHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         api.AssistantRequest
		askFunc      func(context.Context, string) (string, error)
		wantStatus   int
		wantResult   string
		wantUpstream *api.UpstreamErrorResponse
	}{
		{
			name: "successful completion",
			body: api.AssistantRequest{Prompt: "what should I watch tonight?"},
			askFunc: func(ctx context.Context, prompt string) (string, error) {
				return "Try Interstellar.", nil
			},
			wantStatus: http.StatusOK,
			wantResult: "Try Interstellar.",
		},
		{
			name:       "empty prompt",
			body:       api.AssistantRequest{Prompt: ""},
			wantStatus: http.StatusBadRequest,
			wantResult: "No prompt provided",
		},
		{
			name:       "whitespace-only prompt",
			body:       api.AssistantRequest{Prompt: "   "},
			wantStatus: http.StatusBadRequest,
			wantResult: "No prompt provided",
		},
		{
			name: "upstream failure is passed through",
			body: api.AssistantRequest{Prompt: "hello"},
			askFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", &assistant.UpstreamError{StatusCode: 429, Body: `{"error":"rate limited"}`}
			},
			wantStatus: http.StatusBadGateway,
			wantUpstream: &api.UpstreamErrorResponse{
				Error:  "assistant API error",
				Status: 429,
				Body:   `{"error":"rate limited"}`,
			},
		},
		{
			name: "transport failure",
			body: api.AssistantRequest{Prompt: "hello"},
			askFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", fmt.Errorf("connection refused")
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.assistant = &mocks.MockAssistant{AskFunc: tt.askFunc}
			})

			w, r := executeRequest(t, http.MethodPost, "/api/groq", tt.body)

			app.AssistantHandler(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("AssistantHandler() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantUpstream != nil {
				var resp api.UpstreamErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if resp != *tt.wantUpstream {
					t.Errorf("upstream response = %+v, want %+v", resp, *tt.wantUpstream)
				}
				return
			}

			if tt.wantResult != "" {
				var resp api.AssistantResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if resp.Result != tt.wantResult {
					t.Errorf("result = %v, want %v", resp.Result, tt.wantResult)
				}
			}
		})
	}
}
