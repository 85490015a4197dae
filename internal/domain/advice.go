package domain

// AdviceContext is the aggregated step data sent to the LLM.
// @Description Context data for step advice generation.
type AdviceContext struct {
	// Configured daily step goal
	DailyGoal int `json:"daily_goal" example:"8000"`
	// Reference day in the user's time zone
	AsOf string `json:"as_of" example:"2024-03-10"`
	// Average steps per day for the last weeks, most recent first
	Weekly StepCountSummary `json:"weekly"`
	// Monthly totals, most recent first
	Monthly StepCountSummary `json:"monthly"`
	// Goal streak and achievement status
	Streak StreakResponse `json:"streak"`
}

// LLMAdviceOutput contains the structured output from the LLM.
// @Description LLM-generated walking advice.
type LLMAdviceOutput struct {
	// Summary of recent activity (2-3 sentences)
	Summary string `json:"summary" example:"You walked more this week than last week..."`
	// Observations about trends (2-5 items)
	Observations []string `json:"observations" example:"[\"Your weekday average is 20% above your weekend average\"]"`
	// Concrete suggestions (2-4 items)
	Suggestions []string `json:"suggestions" example:"[\"Add a 15 minute walk after lunch\"]"`
}

// AdviceResponse is the response for the advice endpoint.
// @Description Step advice with the data it was based on.
type AdviceResponse struct {
	Context AdviceContext   `json:"context"`
	Advice  LLMAdviceOutput `json:"advice"`
	// Trace ID for feedback (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}

// AdviceFeedbackRequest is the request body for rating a previous advice response.
// @Description Request body for submitting feedback on advice.
type AdviceFeedbackRequest struct {
	// Trace ID from the advice response
	TraceID string `json:"trace_id" validate:"required,max=64" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"max=1000" example:"Useful suggestions"`
}
