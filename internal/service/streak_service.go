package service

import (
	"context"
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/internal/repository"
	"github.com/blaisecz/step-tracker/internal/stepstats"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StreakService reports how consistently a user meets the daily step goal.
type StreakService interface {
	Streak(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error)
	// StreakAt is Streak for an already loaded user at a fixed reference instant.
	StreakAt(ctx context.Context, user *domain.User, ref time.Time) (*domain.StreakResponse, error)
}

type streakService struct {
	source      StepSource
	userRepo    repository.UserRepository
	lookbackCap int
	clock       Clock
}

// NewStreakService creates a new StreakService. A non-positive lookbackCap
// selects stepstats.DefaultLookbackCap.
func NewStreakService(source StepSource, userRepo repository.UserRepository, lookbackCap int, clock Clock) StreakService {
	if lookbackCap <= 0 {
		lookbackCap = stepstats.DefaultLookbackCap
	}
	return &streakService{
		source:      source,
		userRepo:    userRepo,
		lookbackCap: lookbackCap,
		clock:       clock.orDefault(),
	}
}

func (s *streakService) Streak(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.StreakAt(ctx, user, localNow(s.clock, user))
}

func (s *streakService) StreakAt(ctx context.Context, user *domain.User, ref time.Time) (*domain.StreakResponse, error) {
	tracer := otel.Tracer("step-tracker-api/streak")
	ctx, span := tracer.Start(ctx, "StreakService.Streak",
		trace.WithAttributes(attribute.String("user.id", user.ID.String())),
	)
	defer span.End()

	today := stepstats.StartOfDay(ref)

	// The walk starts yesterday and examines at most lookbackCap days
	series, err := s.source.FetchDailyStepCounts(ctx, user.ID, stepstats.AddDays(today, -s.lookbackCap), today)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	streak, err := stepstats.NewGoalStreak(series, user.DailyGoal, ref, s.lookbackCap)
	if err != nil {
		return nil, err
	}
	status, err := stepstats.Classify(series, user.DailyGoal, ref, s.lookbackCap)
	if err != nil {
		return nil, err
	}
	longest, err := stepstats.LongestGoalStreak(series, user.DailyGoal)
	if err != nil {
		return nil, err
	}

	response := &domain.StreakResponse{
		Streak:        streak,
		Status:        status,
		LongestStreak: longest,
		AsOf:          stepstats.DayKey(today),
	}
	if count, ok := series[stepstats.DayKey(today)]; ok {
		response.TodayCount = &count
	}

	span.SetAttributes(
		attribute.Int("streak.days", streak.StreakDays),
		attribute.String("streak.status", string(status.Kind)),
	)

	return response, nil
}
