package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/internal/langfuse"
	"github.com/blaisecz/step-tracker/internal/llm"
	"github.com/blaisecz/step-tracker/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Windows fed to the LLM
	AdviceWeeks  = 4
	AdviceMonths = 3

	adviceTraceName = "step-advice"
	feedbackScore   = "user_rating"
)

// AdviceService generates LLM walking advice from a user's step history.
type AdviceService interface {
	Advise(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error)
	// Feedback attaches a user rating to a previous advice trace.
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.AdviceFeedbackRequest) error
}

type adviceService struct {
	summaryService SummaryService
	streakService  StreakService
	userRepo       repository.UserRepository
	llmClient      llm.AdviceLLM
	langfuseClient langfuse.Client
	promptVersion  int
	clock          Clock
}

// NewAdviceService creates a new AdviceService. promptVersion is recorded on
// each trace; zero means the built-in prompt. The summaries and the streak of
// one advice share a single reference instant read from clock.
func NewAdviceService(
	summaryService SummaryService,
	streakService StreakService,
	userRepo repository.UserRepository,
	llmClient llm.AdviceLLM,
	langfuseClient langfuse.Client,
	promptVersion int,
	clock Clock,
) AdviceService {
	return &adviceService{
		summaryService: summaryService,
		streakService:  streakService,
		userRepo:       userRepo,
		llmClient:      llmClient,
		langfuseClient: langfuseClient,
		promptVersion:  promptVersion,
		clock:          clock.orDefault(),
	}
}

func (s *adviceService) Advise(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error) {
	tracer := otel.Tracer("step-tracker-api/advice")
	ctx, span := tracer.Start(ctx, "AdviceService.Advise",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	ref := localNow(s.clock, user)

	weekly, err := s.summaryService.SummaryAt(ctx, user, domain.SummaryRequest{
		Unit:  domain.PeriodWeek,
		Count: AdviceWeeks,
		Mode:  domain.AggregateAverage,
	}, ref)
	if err != nil {
		return nil, err
	}

	monthly, err := s.summaryService.SummaryAt(ctx, user, domain.SummaryRequest{
		Unit:  domain.PeriodMonth,
		Count: AdviceMonths,
		Mode:  domain.AggregateSum,
	}, ref)
	if err != nil {
		return nil, err
	}

	streak, err := s.streakService.StreakAt(ctx, user, ref)
	if err != nil {
		return nil, err
	}

	adviceCtx := &domain.AdviceContext{
		DailyGoal: user.DailyGoal,
		AsOf:      streak.AsOf,
		Weekly:    *weekly,
		Monthly:   *monthly,
		Streak:    *streak,
	}

	if inputJSON, err := json.Marshal(adviceCtx); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	output, err := s.llmClient.GenerateAdvice(ctx, adviceCtx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	response := &domain.AdviceResponse{
		Context: *adviceCtx,
		Advice:  *output,
	}

	// Reuse the OTEL trace ID so the Langfuse trace and the span line up
	var traceID string
	if sc := span.SpanContext(); sc.IsValid() {
		traceID = sc.TraceID().String()
	}

	if s.langfuseClient != nil && s.langfuseClient.IsEnabled() {
		id, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
			ID:     traceID,
			UserID: userID.String(),
			Name:   adviceTraceName,
			Input:  adviceCtx,
			Output: output,
			Tags:   []string{"step-tracker", "advice"},
			Metadata: map[string]any{
				"prompt_version": s.promptVersion,
			},
		})
		if err != nil {
			log.Printf("[langfuse] advice trace for user %s not queued: %v", userID, err)
		} else {
			traceID = id
		}
	}
	response.TraceID = traceID

	return response, nil
}

func (s *adviceService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.AdviceFeedbackRequest) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	if req.Score < 1 || req.Score > 5 || req.TraceID == "" {
		return domain.ErrInvalidInput
	}

	if s.langfuseClient == nil || !s.langfuseClient.IsEnabled() {
		log.Printf("[langfuse] disabled, feedback for trace %s not forwarded", req.TraceID)
		return nil
	}

	// Scoring failures are logged only; the rating is best effort
	if err := s.langfuseClient.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    feedbackScore,
		Value:   float64(req.Score),
		Comment: req.Comment,
	}); err != nil {
		log.Printf("[langfuse] feedback for trace %s not queued: %v", req.TraceID, err)
	}
	return nil
}
