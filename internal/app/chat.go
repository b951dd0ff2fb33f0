package app

import (
	"errors"
	"net/http"
	"strings"

	"cinebook/api"
	"cinebook/internal/assistant"
)

// AssistantHandler proxies a chat prompt to the configured assistant. With
// no API credential the assistant is the deterministic local mock, so the
// endpoint stays usable offline.
func (app *Application) AssistantHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.AssistantRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if strings.TrimSpace(input.Prompt) == "" {
		app.writeJSON(w, http.StatusBadRequest, api.AssistantResponse{Result: "No prompt provided"}, nil)
		return
	}

	result, err := app.assistant.Ask(r.Context(), input.Prompt)
	if err != nil {
		var upstreamErr *assistant.UpstreamError

		switch {
		case errors.As(err, &upstreamErr):
			logger.Error("assistant upstream failure", "status", upstreamErr.StatusCode)
			app.badGatewayResponse(w, r, upstreamErr.StatusCode, upstreamErr.Body)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, api.AssistantResponse{Result: result}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
