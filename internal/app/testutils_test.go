package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinebook/api"
	"cinebook/internal/mailer"
	"cinebook/internal/mocks"
	"cinebook/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator:   validator.NewValidator(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		mailer:      mailer.NewMockMailer(),
		catalogRepo: &mocks.MockCatalogRepo{},
		bookingRepo: &mocks.MockBookingRepo{},
		paymentRepo: &mocks.MockPaymentRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	var errorResp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if wantErrMessage != "" && errorResp.Message != wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
	}
}

func checkValidationResponse(t *testing.T, w *httptest.ResponseRecorder, wantIssue string) {
	t.Helper()

	var validationResp api.ValidationErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
		t.Fatalf("Failed to decode validation error response: %v", err)
	}

	if validationResp.Message != "missing fields" {
		t.Errorf("Validation message = %v, want %v", validationResp.Message, "missing fields")
	}

	issueSet := make(map[string]bool)
	for _, vErr := range validationResp.ValidationErrors {
		issueSet[vErr.Issue] = true
	}

	if !issueSet[wantIssue] {
		t.Errorf("Expected validation issue '%s' not found in response", wantIssue)
	}
}

func ptr[T any](v T) *T {
	return &v
}
