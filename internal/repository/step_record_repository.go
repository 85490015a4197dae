package repository

import (
	"context"
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StepRecordRepository interface {
	UpsertMany(ctx context.Context, records []domain.DailyStepRecord) error
	List(ctx context.Context, userID uuid.UUID, filter domain.StepRecordFilter) ([]domain.DailyStepRecord, error)
	ListByDayRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyStepRecord, error)
}

type stepRecordRepository struct {
	db *gorm.DB
}

func NewStepRecordRepository(db *gorm.DB) StepRecordRepository {
	return &stepRecordRepository{db: db}
}

// UpsertMany writes one row per (user, day). An existing day keeps its id and
// gets the new count and source.
func (r *stepRecordRepository) UpsertMany(ctx context.Context, records []domain.DailyStepRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{"count", "source", "updated_at"}),
		}).
		Create(&records).Error
}

func (r *stepRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.StepRecordFilter) ([]domain.DailyStepRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day DESC").
		Order("id DESC")

	if filter.From != nil {
		query = query.Where("day >= ?", domain.CivilDate(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("day <= ?", domain.CivilDate(*filter.To))
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: days before the cursor, id keeps the order total
			query = query.Where(
				"(day < ?) OR (day = ? AND id < ?)",
				cursor.Day, cursor.Day, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.DailyStepRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// ListByDayRange returns every record with from <= day <= to, oldest first.
func (r *stepRecordRepository) ListByDayRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyStepRecord, error) {
	var records []domain.DailyStepRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("day >= ? AND day <= ?", domain.CivilDate(from), domain.CivilDate(to)).
		Order("day ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
