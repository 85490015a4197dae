package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/step-tracker/internal/api/validation"
	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/internal/service"
	"github.com/blaisecz/step-tracker/pkg/problem"
)

// AdviceHandler handles LLM walking advice endpoints.
type AdviceHandler struct {
	service service.AdviceService
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(service service.AdviceService) *AdviceHandler {
	return &AdviceHandler{service: service}
}

// GetAdvice handles GET /v1/users/{userId}/steps/advice
// @Summary Get walking advice
// @Description Summarize recent weeks, months and the goal streak, then ask the LLM for behavioural suggestions. Requires OPENAI_API_KEY.
// @Tags advice
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.AdviceResponse "Advice with the data it was based on"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM not configured or step data unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/steps/advice [get]
func (h *AdviceHandler) GetAdvice(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	advice, err := h.service.Advise(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "generate advice")
		return
	}

	writeJSON(w, http.StatusOK, advice)
}

// PostFeedback handles POST /v1/users/{userId}/steps/advice/feedback
// @Summary Rate advice
// @Description Attach a 1-5 rating to a previous advice response, identified by its trace_id.
// @Tags advice
// @Accept json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.AdviceFeedbackRequest true "Feedback"
// @Success 204 "Feedback accepted"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/steps/advice/feedback [post]
func (h *AdviceHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.AdviceFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.Feedback(r.Context(), userID, &req); err != nil {
		writeServiceError(w, r, err, "record feedback")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
