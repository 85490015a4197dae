package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/internal/repository"
	"github.com/google/uuid"
)

// StepSource resolves a user's daily step counts for the inclusive day range
// [from, to]. Only the calendar date of from and to is significant.
type StepSource interface {
	FetchDailyStepCounts(ctx context.Context, userID uuid.UUID, from, to time.Time) (domain.StepSeries, error)
}

// StepCacheInvalidator drops cached step data of a user after writes.
type StepCacheInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID)
}

type repositoryStepSource struct {
	repo repository.StepRecordRepository
}

// NewRepositoryStepSource reads step counts straight from the database.
func NewRepositoryStepSource(repo repository.StepRecordRepository) StepSource {
	return &repositoryStepSource{repo: repo}
}

func (s *repositoryStepSource) FetchDailyStepCounts(ctx context.Context, userID uuid.UUID, from, to time.Time) (domain.StepSeries, error) {
	records, err := s.repo.ListByDayRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}
	return domain.SeriesFromRecords(records), nil
}
