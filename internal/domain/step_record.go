package domain

import (
	"time"

	"github.com/google/uuid"
)

// DayLayout is the key format of a StepSeries and of calendar days on the wire.
const DayLayout = "2006-01-02"

// StepSource identifies where a daily count came from.
// @Description Origin of a daily step count.
type StepSource string

const (
	StepSourceDevice StepSource = "DEVICE"
	StepSourceManual StepSource = "MANUAL"
	StepSourceImport StepSource = "IMPORT"
)

// StepSeries maps a local calendar day (DayLayout) to that day's step count.
// A missing key means no data for the day, not zero steps.
type StepSeries map[string]int

// DailyStepRecord is the persisted step count of one user for one calendar day.
// Day holds the civil date at midnight UTC; its Y-M-D fields are the user's local date.
type DailyStepRecord struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_step_records_user_day" json:"user_id"`
	Day       time.Time  `gorm:"type:date;not null;uniqueIndex:idx_step_records_user_day,sort:desc" json:"day"`
	Count     int        `gorm:"not null" json:"count"`
	Source    StepSource `gorm:"type:varchar(16);not null;default:'DEVICE'" json:"source"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DailyStepRecord) TableName() string {
	return "daily_step_records"
}

// DayKey returns the StepSeries key of the record.
func (r *DailyStepRecord) DayKey() string {
	return r.Day.UTC().Format(DayLayout)
}

// CivilDate drops the clock and location of t, keeping its local Y-M-D as midnight UTC.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SeriesFromRecords folds records into a StepSeries. Later records for the same day win.
func SeriesFromRecords(records []DailyStepRecord) StepSeries {
	series := make(StepSeries, len(records))
	for _, r := range records {
		series[r.DayKey()] = r.Count
	}
	return series
}

// StepRecordInput is one day of a batch upsert.
type StepRecordInput struct {
	// Local calendar day (YYYY-MM-DD)
	Day string `json:"day" validate:"required,calendar_day" example:"2024-03-09"`
	// Step count for the whole day
	Count int `json:"count" validate:"min=0,max=1000000" example:"9421"`
	// Origin of the count
	Source StepSource `json:"source,omitempty" validate:"omitempty,oneof=DEVICE MANUAL IMPORT" example:"DEVICE" enums:"DEVICE,MANUAL,IMPORT"`
}

// UpsertStepRecordsRequest is the request body for writing daily step counts.
// @Description Batch of daily step counts; an existing day is overwritten.
type UpsertStepRecordsRequest struct {
	Records []StepRecordInput `json:"records" validate:"required,min=1,max=400,dive"`
}

// StepRecordResponse is the response body for a daily step record.
type StepRecordResponse struct {
	ID        uuid.UUID  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID    uuid.UUID  `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Day       string     `json:"day" example:"2024-03-09"`
	Count     int        `json:"count" example:"9421"`
	Source    StepSource `json:"source" example:"DEVICE"`
	UpdatedAt time.Time  `json:"updated_at" example:"2024-03-09T21:05:00Z"`
}

func (r *DailyStepRecord) ToResponse() StepRecordResponse {
	return StepRecordResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Day:       r.DayKey(),
		Count:     r.Count,
		Source:    r.Source,
		UpdatedAt: r.UpdatedAt,
	}
}

// StepRecordListResponse is the response body for listing step records.
type StepRecordListResponse struct {
	Data       []StepRecordResponse `json:"data"`
	Pagination PaginationResponse   `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// StepRecordFilter contains filter parameters for listing step records.
// From and To are inclusive civil dates.
type StepRecordFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
