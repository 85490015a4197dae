package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/internal/llm"
	"github.com/blaisecz/step-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseUserID writes a 400 problem and returns false when the path id is malformed.
func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, false
	}
	return userID, true
}

// writeServiceError maps service errors to problem responses. action names
// the failed operation in the 500 detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var p *problem.Problem
	switch {
	case errors.Is(err, domain.ErrNotFound):
		p = problem.NotFound("User not found")
	case errors.Is(err, domain.ErrInvalidInput):
		p = problem.BadRequest(err.Error())
	case errors.Is(err, domain.ErrConflict):
		p = problem.Conflict(err.Error())
	case errors.Is(err, domain.ErrDataUnavailable):
		p = problem.StepDataUnavailable("Step data is temporarily unavailable")
	case errors.Is(err, llm.ErrOpenAIUnavailable):
		p = problem.AdviceUnavailable("OpenAI service is not configured")
	case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
		p = problem.AdviceUpstream("Failed to generate advice from LLM")
	default:
		log.Printf("[handler] %s: %v", action, err)
		p = problem.InternalError("Failed to " + action)
	}
	p.WriteFor(w, r)
}

// parseIntParam parses an integer query parameter with a default value.
// ok is false when the parameter is present but not an integer.
func parseIntParam(r *http.Request, name string, defaultValue int) (value int, ok bool) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue, true
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
