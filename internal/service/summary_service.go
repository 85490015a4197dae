package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/internal/repository"
	"github.com/blaisecz/step-tracker/internal/stepstats"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SummaryService aggregates a user's step counts into calendar periods.
type SummaryService interface {
	// Summary returns the trailing req.Count periods ending with the current one,
	// most recent first, aligned to the user's local calendar.
	Summary(ctx context.Context, userID uuid.UUID, req domain.SummaryRequest) (*domain.StepCountSummary, error)
	// SummaryAt is Summary for an already loaded user at a fixed reference instant.
	SummaryAt(ctx context.Context, user *domain.User, req domain.SummaryRequest, ref time.Time) (*domain.StepCountSummary, error)
}

type summaryService struct {
	source    StepSource
	userRepo  repository.UserRepository
	weekStart time.Weekday
	clock     Clock
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(source StepSource, userRepo repository.UserRepository, weekStart time.Weekday, clock Clock) SummaryService {
	return &summaryService{
		source:    source,
		userRepo:  userRepo,
		weekStart: weekStart,
		clock:     clock.orDefault(),
	}
}

func (s *summaryService) Summary(ctx context.Context, userID uuid.UUID, req domain.SummaryRequest) (*domain.StepCountSummary, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.SummaryAt(ctx, user, req, localNow(s.clock, user))
}

func (s *summaryService) SummaryAt(ctx context.Context, user *domain.User, req domain.SummaryRequest, ref time.Time) (*domain.StepCountSummary, error) {
	tracer := otel.Tracer("step-tracker-api/summary")
	ctx, span := tracer.Start(ctx, "SummaryService.Summary",
		trace.WithAttributes(
			attribute.String("user.id", user.ID.String()),
			attribute.String("summary.unit", string(req.Unit)),
			attribute.Int("summary.count", req.Count),
			attribute.String("summary.mode", string(req.Mode)),
		),
	)
	defer span.End()

	opts := stepstats.Options{WeekStart: s.weekStart, Mode: req.Mode}

	from, to, err := stepstats.PeriodRange(ref, req.Unit, req.Count, opts)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("window.from", stepstats.DayKey(from)),
		attribute.String("window.to", stepstats.DayKey(to)),
	)

	series, err := s.source.FetchDailyStepCounts(ctx, user.ID, from, to)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	summary, err := stepstats.Summarize(series, req.Unit, req.Count, ref, opts)
	if err != nil {
		return nil, err
	}

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(summary); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return summary, nil
}
