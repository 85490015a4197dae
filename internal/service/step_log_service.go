package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/internal/repository"
	"github.com/blaisecz/step-tracker/pkg/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type StepLogService interface {
	// Upsert stores one count per day; a day already present is overwritten.
	Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertStepRecordsRequest) ([]domain.DailyStepRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.StepRecordFilter) (*domain.StepRecordListResponse, error)
}

type stepLogService struct {
	repo        repository.StepRecordRepository
	userRepo    repository.UserRepository
	invalidator StepCacheInvalidator
	clock       Clock
}

// NewStepLogService creates a StepLogService. invalidator may be nil when no
// cache sits in front of the step records.
func NewStepLogService(repo repository.StepRecordRepository, userRepo repository.UserRepository, invalidator StepCacheInvalidator, clock Clock) StepLogService {
	return &stepLogService{
		repo:        repo,
		userRepo:    userRepo,
		invalidator: invalidator,
		clock:       clock.orDefault(),
	}
}

func (s *stepLogService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertStepRecordsRequest) ([]domain.DailyStepRecord, error) {
	ctx, span := otel.Tracer("step-tracker-api/steps").Start(ctx, "StepLogService.Upsert",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("records.count", len(req.Records)),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := domain.CivilDate(localNow(s.clock, user))

	// Later entries for the same day win
	byDay := make(map[string]domain.DailyStepRecord, len(req.Records))
	for _, in := range req.Records {
		day, err := time.Parse(domain.DayLayout, in.Day)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed day %q", domain.ErrInvalidInput, in.Day)
		}
		if day.After(today) {
			return nil, fmt.Errorf("%w: day %s is in the future", domain.ErrInvalidInput, in.Day)
		}
		if in.Count < 0 {
			return nil, fmt.Errorf("%w: negative count on %s", domain.ErrInvalidInput, in.Day)
		}

		source := in.Source
		if source == "" {
			source = domain.StepSourceDevice
		}

		byDay[in.Day] = domain.DailyStepRecord{
			UserID: userID,
			Day:    day,
			Count:  in.Count,
			Source: source,
		}
	}

	records := make([]domain.DailyStepRecord, 0, len(byDay))
	for _, r := range byDay {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Day.Before(records[j].Day)
	})

	if err := s.repo.UpsertMany(ctx, records); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx, userID)
	}

	return records, nil
}

func (s *stepLogService) List(ctx context.Context, userID uuid.UUID, filter domain.StepRecordFilter) (*domain.StepRecordListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, fmt.Errorf("%w: from is after to", domain.ErrInvalidInput)
	}
	if filter.Cursor != "" {
		if _, err := pagination.DecodeCursor(filter.Cursor); err != nil {
			return nil, errors.Join(domain.ErrInvalidInput, fmt.Errorf("invalid cursor: %w", err))
		}
	}

	records, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit

	// Trim to actual limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.StepRecordListResponse{
		Data: make([]domain.StepRecordResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i := range records {
		response.Data[i] = records[i].ToResponse()
	}

	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:  last.ID,
			Day: last.Day,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
