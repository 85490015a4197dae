package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/step-tracker/internal/api/validation"
	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/internal/service"
	"github.com/blaisecz/step-tracker/pkg/problem"
)

const (
	defaultSummaryCount = 4
)

type StepHandler struct {
	steps   service.StepLogService
	summary service.SummaryService
	streak  service.StreakService
}

func NewStepHandler(steps service.StepLogService, summary service.SummaryService, streak service.StreakService) *StepHandler {
	return &StepHandler{steps: steps, summary: summary, streak: streak}
}

// Upsert handles PUT /v1/users/{userId}/steps
// @Summary Record daily step counts
// @Description Write one or more daily step counts. A day that already has a count is overwritten, so retries are safe.
// @Tags steps
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.UpsertStepRecordsRequest true "Daily counts"
// @Success 200 {array} domain.StepRecordResponse "Stored records, oldest first"
// @Failure 400 {object} problem.Problem "Invalid request body or a day in the future"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/steps [put]
func (h *StepHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.UpsertStepRecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	records, err := h.steps.Upsert(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, "store step records")
		return
	}

	resp := make([]domain.StepRecordResponse, len(records))
	for i := range records {
		resp[i] = records[i].ToResponse()
	}
	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /v1/users/{userId}/steps
// @Summary List daily step records
// @Description Fetch paginated step history, newest day first. from and to are inclusive calendar days.
// @Tags steps
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "First day (YYYY-MM-DD)" format(date) example(2024-03-01)
// @Param to query string false "Last day (YYYY-MM-DD)" format(date) example(2024-03-31)
// @Param limit query integer false "Results per page (1-366)" default(31) minimum(1) maximum(366)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.StepRecordListResponse "Step records with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/steps [get]
func (h *StepHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseStepFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.steps.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, r, err, "list step records")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Summary handles GET /v1/users/{userId}/steps/summary
// @Summary Summarize steps per calendar period
// @Description Aggregate daily counts into the last N calendar weeks, months or years, most recent first, with the change of the current period against the previous one.
// @Tags steps
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param unit query string false "Period unit" Enums(week, month, year) default(week)
// @Param count query integer false "Number of periods" default(4) minimum(1) maximum(52)
// @Param mode query string false "Aggregate mode" Enums(sum, average) default(sum)
// @Success 200 {object} domain.StepCountSummary
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 503 {object} problem.Problem "Step data unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/steps/summary [get]
func (h *StepHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	req, fieldErrors := parseSummaryRequest(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	summary, err := h.summary.Summary(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err, "compute summary")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Streak handles GET /v1/users/{userId}/steps/streak
// @Summary Get the daily goal streak
// @Description Count consecutive days that met the daily goal, walking back from yesterday, and classify today's achievement status.
// @Tags steps
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.StreakResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 503 {object} problem.Problem "Step data unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/steps/streak [get]
func (h *StepHandler) Streak(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	streak, err := h.streak.Streak(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "compute streak")
		return
	}

	writeJSON(w, http.StatusOK, streak)
}

func parseStepFilter(r *http.Request) (domain.StepRecordFilter, []problem.FieldError) {
	var filter domain.StepRecordFilter
	var fieldErrors []problem.FieldError

	q := r.URL.Query()
	if fromStr := q.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DayLayout, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a calendar day (YYYY-MM-DD)",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := q.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DayLayout, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a calendar day (YYYY-MM-DD)",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = q.Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}

func parseSummaryRequest(r *http.Request) (domain.SummaryRequest, []problem.FieldError) {
	q := r.URL.Query()
	req := domain.SummaryRequest{
		Unit: domain.PeriodWeek,
		Mode: domain.AggregateSum,
	}
	if unit := q.Get("unit"); unit != "" {
		req.Unit = domain.PeriodUnit(unit)
	}
	if mode := q.Get("mode"); mode != "" {
		req.Mode = domain.AggregateMode(mode)
	}

	count, ok := parseIntParam(r, "count", defaultSummaryCount)
	if !ok {
		return req, []problem.FieldError{{Field: "count", Message: "must be an integer"}}
	}
	req.Count = count

	return req, validation.Validate(req)
}
