package stepstats

import (
	"testing"
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGoalStreak(t *testing.T) {
	// Reference day is 2024-03-10; yesterday is 2024-03-09
	ref := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		series domain.StepSeries
		goal   int
		want   int
	}{
		{
			name:   "two qualifying days then a shortfall",
			series: domain.StepSeries{"2024-03-09": 9000, "2024-03-08": 8500, "2024-03-07": 7000},
			goal:   8000,
			want:   2,
		},
		{
			name:   "yesterday below goal",
			series: domain.StepSeries{"2024-03-09": 7000},
			goal:   8000,
			want:   0,
		},
		{
			name:   "missing day breaks the walk",
			series: domain.StepSeries{"2024-03-09": 9000, "2024-03-07": 9000, "2024-03-06": 9000},
			goal:   8000,
			want:   1,
		},
		{
			name:   "exactly at goal counts",
			series: domain.StepSeries{"2024-03-09": 8000, "2024-03-08": 8000},
			goal:   8000,
			want:   2,
		},
		{
			name:   "today shortfall ignored",
			series: domain.StepSeries{"2024-03-10": 10, "2024-03-09": 9000},
			goal:   8000,
			want:   1,
		},
		{
			name:   "today achieved does not count",
			series: domain.StepSeries{"2024-03-10": 20000},
			goal:   8000,
			want:   0,
		},
		{
			name:   "empty series",
			series: domain.StepSeries{},
			goal:   8000,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeGoalStreak(tt.series, tt.goal, ref, DefaultLookbackCap)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeGoalStreak_LookbackCap(t *testing.T) {
	ref := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	series := domain.StepSeries{}
	for i := 1; i <= 150; i++ {
		series[DayKey(AddDays(ref, -i))] = 12000
	}

	got, err := ComputeGoalStreak(series, 8000, ref, DefaultLookbackCap)
	require.NoError(t, err)
	assert.Equal(t, 100, got)

	streak, err := NewGoalStreak(series, 8000, ref, DefaultLookbackCap)
	require.NoError(t, err)
	assert.True(t, streak.Saturated)
	assert.Equal(t, 100, streak.LookbackCap)

	got, err = ComputeGoalStreak(series, 8000, ref, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestComputeGoalStreak_UsesLocalCalendar(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// 23:30 local on 2024-03-10 is already 2024-03-11 in UTC
	ref := time.Date(2024, 3, 10, 23, 30, 0, 0, la)
	series := domain.StepSeries{"2024-03-10": 500, "2024-03-09": 9000, "2024-03-08": 9000}

	got, err := ComputeGoalStreak(series, 8000, ref, DefaultLookbackCap)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestComputeGoalStreak_InvalidArguments(t *testing.T) {
	ref := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := ComputeGoalStreak(domain.StepSeries{}, 0, ref, DefaultLookbackCap)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ComputeGoalStreak(domain.StepSeries{}, 8000, ref, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ComputeGoalStreak(domain.StepSeries{"2024-03-09": -5}, 8000, ref, DefaultLookbackCap)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClassify(t *testing.T) {
	ref := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		series domain.StepSeries
		want   domain.AchievementStatus
	}{
		{
			name:   "achieved today extends the streak",
			series: domain.StepSeries{"2024-03-10": 9000, "2024-03-09": 9000, "2024-03-08": 9000},
			want:   domain.AchievementStatus{Kind: domain.AchievedToday, Days: 3},
		},
		{
			name:   "achieved today after a miss",
			series: domain.StepSeries{"2024-03-10": 8000, "2024-03-09": 100},
			want:   domain.AchievementStatus{Kind: domain.AchievedToday, Days: 1},
		},
		{
			name:   "consecutive days before today",
			series: domain.StepSeries{"2024-03-10": 1000, "2024-03-09": 9000, "2024-03-08": 8500, "2024-03-07": 7000},
			want:   domain.AchievementStatus{Kind: domain.Consecutive, Days: 2},
		},
		{
			name:   "only yesterday",
			series: domain.StepSeries{"2024-03-09": 9000},
			want:   domain.AchievementStatus{Kind: domain.AchievedYesterday},
		},
		{
			name:   "missed yesterday",
			series: domain.StepSeries{"2024-03-09": 7000},
			want:   domain.AchievementStatus{Kind: domain.MissedYesterday},
		},
		{
			name:   "no data",
			series: domain.StepSeries{},
			want:   domain.AchievementStatus{Kind: domain.MissedYesterday},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.series, 8000, ref, DefaultLookbackCap)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLongestGoalStreak(t *testing.T) {
	series := domain.StepSeries{
		"2024-02-27": 9000,
		"2024-02-28": 9000,
		"2024-02-29": 9000,
		"2024-03-01": 9000,
		"2024-03-02": 100,
		"2024-03-03": 9000,
		"2024-03-05": 9000,
	}

	got, err := LongestGoalStreak(series, 8000)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = LongestGoalStreak(domain.StepSeries{"2024-03-02": 100}, 8000)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = LongestGoalStreak(series, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
