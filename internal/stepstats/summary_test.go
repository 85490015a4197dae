package stepstats

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillDays sets count for every day from first to last inclusive.
func fillDays(series domain.StepSeries, first, last string, count int) domain.StepSeries {
	from, _ := time.Parse(domain.DayLayout, first)
	to, _ := time.Parse(domain.DayLayout, last)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		series[d.Format(domain.DayLayout)] = count
	}
	return series
}

func TestComputePeriodSummary_WeeklyAverages(t *testing.T) {
	// Sunday; Monday-start week runs 2024-03-04..2024-03-10
	ref := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	series := domain.StepSeries{}
	fillDays(series, "2024-03-04", "2024-03-10", 10000)
	fillDays(series, "2024-02-26", "2024-03-03", 8000)

	opts := Options{WeekStart: time.Monday, Mode: domain.AggregateAverage}
	periods, err := ComputePeriodSummary(series, domain.PeriodWeek, 2, ref, opts)
	require.NoError(t, err)
	require.Len(t, periods, 2)

	assert.Equal(t, "This week", periods[0].Label)
	assert.Equal(t, 10000, periods[0].Value)
	assert.Equal(t, 70000, periods[0].Total)
	assert.Equal(t, 7, periods[0].DaysWithData)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), periods[0].PeriodStart)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), periods[0].PeriodEnd)

	assert.Equal(t, "Last week", periods[1].Label)
	assert.Equal(t, 8000, periods[1].Value)

	change, ok := PercentageChange(periods[0].Value, periods[1].Value)
	require.True(t, ok)
	assert.InDelta(t, 25.0, change, 1e-9)
}

func TestComputePeriodSummary_OrderingAndLabels(t *testing.T) {
	ref := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	periods, err := ComputePeriodSummary(domain.StepSeries{}, domain.PeriodWeek, 4, ref, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, periods, 4)

	wantLabels := []string{"This week", "Last week", "2 weeks ago", "3 weeks ago"}
	for i, p := range periods {
		assert.Equal(t, wantLabels[i], p.Label)
		assert.Equal(t, 0, p.Value, "empty period aggregates to zero")
		if i > 0 {
			assert.True(t, p.PeriodStart.Before(periods[i-1].PeriodStart), "periods must be most recent first")
			assert.Equal(t, periods[i-1].PeriodStart, AddDays(p.PeriodEnd, 1), "periods must be contiguous")
		}
	}
}

func TestComputePeriodSummary_Months(t *testing.T) {
	ref := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	series := domain.StepSeries{
		"2024-03-01": 5000,
		"2024-03-15": 7000,
		"2024-02-29": 12000,
		"2024-01-31": 3000,
		"2023-12-31": 99999,
	}

	periods, err := ComputePeriodSummary(series, domain.PeriodMonth, 3, ref, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, periods, 3)

	assert.Equal(t, "This month", periods[0].Label)
	assert.Equal(t, 12000, periods[0].Value)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), periods[0].PeriodEnd)

	assert.Equal(t, "Last month", periods[1].Label)
	assert.Equal(t, 12000, periods[1].Value)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), periods[1].PeriodStart)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), periods[1].PeriodEnd)

	assert.Equal(t, "2 months ago", periods[2].Label)
	assert.Equal(t, 3000, periods[2].Value)
}

func TestComputePeriodSummary_Years(t *testing.T) {
	ref := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	series := domain.StepSeries{"2024-01-01": 10, "2023-12-31": 20, "2023-01-01": 30}

	periods, err := ComputePeriodSummary(series, domain.PeriodYear, 2, ref, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 10, periods[0].Value)
	assert.Equal(t, 50, periods[1].Value)
	assert.Equal(t, "Last year", periods[1].Label)
}

func TestComputePeriodSummary_SundayWeekStart(t *testing.T) {
	// Sunday belongs to the new week when weeks start on Sunday
	ref := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	series := domain.StepSeries{"2024-03-10": 4000, "2024-03-09": 6000}

	periods, err := ComputePeriodSummary(series, domain.PeriodWeek, 2, ref, Options{WeekStart: time.Sunday})
	require.NoError(t, err)
	assert.Equal(t, 4000, periods[0].Value)
	assert.Equal(t, 6000, periods[1].Value)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), periods[0].PeriodEnd)
}

func TestComputePeriodSummary_AverageRounding(t *testing.T) {
	ref := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	// 3 + 4 over 2 days = 3.5, rounded half away from zero
	series := domain.StepSeries{"2024-03-05": 3, "2024-03-06": 4}

	periods, err := ComputePeriodSummary(series, domain.PeriodWeek, 1, ref, Options{WeekStart: time.Monday, Mode: domain.AggregateAverage})
	require.NoError(t, err)
	assert.Equal(t, 4, periods[0].Value)
	assert.Equal(t, 7, periods[0].Total)
	assert.Equal(t, 2, periods[0].DaysWithData)
}

func TestComputePeriodSummary_DaylightSavingTransition(t *testing.T) {
	prague, err := time.LoadLocation("Europe/Prague")
	require.NoError(t, err)

	// Clocks go forward on 2024-03-31; that week has a 23 hour Sunday
	ref := time.Date(2024, 4, 2, 9, 0, 0, 0, prague)
	series := domain.StepSeries{}
	fillDays(series, "2024-03-25", "2024-04-02", 1000)

	periods, err := ComputePeriodSummary(series, domain.PeriodWeek, 2, ref, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2000, periods[0].Value)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, prague), periods[0].PeriodStart)
	assert.Equal(t, 7000, periods[1].Value)
	assert.Equal(t, 7, periods[1].DaysWithData)
	assert.Equal(t, time.Date(2024, 3, 25, 0, 0, 0, 0, prague), periods[1].PeriodStart)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, prague), periods[1].PeriodEnd)
}

func TestComputePeriodSummary_Idempotent(t *testing.T) {
	ref := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	series := fillDays(domain.StepSeries{}, "2024-01-01", "2024-03-10", 6543)

	first, err := ComputePeriodSummary(series, domain.PeriodMonth, 3, ref, DefaultOptions())
	require.NoError(t, err)
	second, err := ComputePeriodSummary(series, domain.PeriodMonth, 3, ref, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputePeriodSummary_InvalidArguments(t *testing.T) {
	ref := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		series domain.StepSeries
		unit   domain.PeriodUnit
		count  int
		opts   Options
	}{
		{name: "zero count", unit: domain.PeriodWeek, count: 0, opts: DefaultOptions()},
		{name: "negative count", unit: domain.PeriodWeek, count: -2, opts: DefaultOptions()},
		{name: "unknown unit", unit: "fortnight", count: 1, opts: DefaultOptions()},
		{name: "unknown mode", unit: domain.PeriodWeek, count: 1, opts: Options{Mode: "median"}},
		{name: "negative steps", series: domain.StepSeries{"2024-03-09": -1}, unit: domain.PeriodWeek, count: 1, opts: DefaultOptions()},
		{name: "malformed day", series: domain.StepSeries{"09/03/2024": 10}, unit: domain.PeriodWeek, count: 1, opts: DefaultOptions()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputePeriodSummary(tt.series, tt.unit, tt.count, ref, tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     float64
		wantOK   bool
	}{
		{name: "increase", current: 10000, previous: 8000, want: 25, wantOK: true},
		{name: "decrease", current: 6000, previous: 8000, want: -25, wantOK: true},
		{name: "unchanged", current: 4321, previous: 4321, want: 0, wantOK: true},
		{name: "to zero", current: 0, previous: 500, want: -100, wantOK: true},
		{name: "previous zero", current: 500, previous: 0, wantOK: false},
		{name: "both zero", current: 0, previous: 0, wantOK: false},
		{name: "unrounded", current: 1, previous: 3, want: -200.0 / 3, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PercentageChange(tt.current, tt.previous)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSummarize(t *testing.T) {
	ref := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("change from two periods", func(t *testing.T) {
		series := domain.StepSeries{"2024-03-05": 1500, "2024-02-27": 1000}
		summary, err := Summarize(series, domain.PeriodWeek, 2, ref, Options{WeekStart: time.Monday})
		require.NoError(t, err)
		assert.Equal(t, domain.AggregateSum, summary.Mode)
		require.NotNil(t, summary.ChangePercent)
		assert.InDelta(t, 50.0, *summary.ChangePercent, 1e-9)
	})

	t.Run("previous period empty", func(t *testing.T) {
		series := domain.StepSeries{"2024-03-05": 1500}
		summary, err := Summarize(series, domain.PeriodWeek, 2, ref, DefaultOptions())
		require.NoError(t, err)
		assert.Nil(t, summary.ChangePercent)
	})

	t.Run("single period", func(t *testing.T) {
		summary, err := Summarize(domain.StepSeries{}, domain.PeriodMonth, 1, ref, DefaultOptions())
		require.NoError(t, err)
		assert.Len(t, summary.Periods, 1)
		assert.Nil(t, summary.ChangePercent)
	})
}

func TestPeriodRange(t *testing.T) {
	ref := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	from, to, err := PeriodRange(ref, domain.PeriodWeek, 4, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), to)

	from, to, err = PeriodRange(ref, domain.PeriodMonth, 2, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), to)

	_, _, err = PeriodRange(ref, domain.PeriodMonth, 0, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
