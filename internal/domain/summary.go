package domain

import "time"

// PeriodUnit is the calendar span a summary aggregates over.
// @Description Calendar period unit.
type PeriodUnit string

const (
	PeriodWeek  PeriodUnit = "week"
	PeriodMonth PeriodUnit = "month"
	PeriodYear  PeriodUnit = "year"
)

// AggregateMode selects how daily counts fold into a period value.
// @Description Period aggregate: sum of days or average per day with data.
type AggregateMode string

const (
	AggregateSum     AggregateMode = "sum"
	AggregateAverage AggregateMode = "average"
)

// PeriodSummary is the aggregate of one calendar period.
// @Description Aggregated step count for one calendar period.
type PeriodSummary struct {
	// Relative descriptor ("This week", "2 weeks ago")
	Label string `json:"label" example:"This week"`
	// First day of the period (local midnight)
	PeriodStart time.Time `json:"period_start" example:"2024-03-04T00:00:00+01:00"`
	// Last day of the period, inclusive (local midnight)
	PeriodEnd time.Time `json:"period_end" example:"2024-03-10T00:00:00+01:00"`
	// Aggregate value according to the summary mode
	Value int `json:"value" example:"64210"`
	// Sum of all daily counts in the period
	Total int `json:"total" example:"64210"`
	// Number of days in the period that have a record
	DaysWithData int `json:"days_with_data" example:"7"`
}

// StepCountSummary is an ordered list of period summaries, most recent first.
// @Description Period summaries with period-over-period change.
type StepCountSummary struct {
	Unit    PeriodUnit      `json:"unit" example:"week"`
	Mode    AggregateMode   `json:"mode" example:"sum"`
	Periods []PeriodSummary `json:"periods"`
	// Percentage change of the current period versus the previous one; null when the previous value is zero
	ChangePercent *float64 `json:"change_percent" example:"12.5"`
}

// GoalStreak is the number of consecutive days before today that met the goal.
// @Description Consecutive days meeting the daily goal, counted back from yesterday.
type GoalStreak struct {
	Goal        int `json:"goal" example:"8000"`
	StreakDays  int `json:"streak_days" example:"12"`
	LookbackCap int `json:"lookback_cap" example:"100"`
	// True when the walk hit the lookback cap
	Saturated bool `json:"saturated" example:"false"`
}

// AchievementKind tags an AchievementStatus.
// @Description Goal achievement classification.
type AchievementKind string

const (
	AchievedToday     AchievementKind = "achieved_today"
	Consecutive       AchievementKind = "consecutive"
	AchievedYesterday AchievementKind = "achieved_yesterday"
	MissedYesterday   AchievementKind = "missed_yesterday"
)

// AchievementStatus classifies today's standing against the goal.
// Days is set for AchievedToday and Consecutive only.
type AchievementStatus struct {
	Kind AchievementKind `json:"kind" example:"consecutive"`
	Days int             `json:"days,omitempty" example:"5"`
}

// StreakResponse is the response for the streak endpoint.
// @Description Goal streak, achievement status and today's progress.
type StreakResponse struct {
	Streak GoalStreak        `json:"streak"`
	Status AchievementStatus `json:"status"`
	// Today's count so far; null when no record exists for today
	TodayCount *int `json:"today_count"`
	// Longest run of goal days inside the lookback window
	LongestStreak int `json:"longest_streak" example:"21"`
	// Reference date in the user's time zone
	AsOf string `json:"as_of" example:"2024-03-10"`
}

// SummaryRequest holds the summary query parameters.
type SummaryRequest struct {
	Unit  PeriodUnit    `validate:"required,oneof=week month year"`
	Count int           `validate:"required,min=1,max=52"`
	Mode  AggregateMode `validate:"required,oneof=sum average"`
}
