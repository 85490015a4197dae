package stepstats

import (
	"fmt"
	"math"
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
)

// ComputePeriodSummary aggregates the trailing count calendar periods ending
// with the period that contains ref. The result is ordered most recent first.
// Periods without any record aggregate to zero.
func ComputePeriodSummary(series domain.StepSeries, unit domain.PeriodUnit, count int, ref time.Time, opts Options) ([]domain.PeriodSummary, error) {
	if count <= 0 {
		return nil, invalid("period count must be positive, got %d", count)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := ValidateSeries(series); err != nil {
		return nil, err
	}

	current, err := StartOfPeriod(ref, unit, opts.WeekStart)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.PeriodSummary, 0, count)
	for ago := 0; ago < count; ago++ {
		start := AddPeriods(current, unit, -ago)
		next := AddPeriods(start, unit, 1)

		total, days := 0, 0
		for day := start; day.Before(next); day = AddDays(day, 1) {
			if steps, ok := series[DayKey(day)]; ok {
				total += steps
				days++
			}
		}

		summaries = append(summaries, domain.PeriodSummary{
			Label:        periodLabel(unit, ago),
			PeriodStart:  start,
			PeriodEnd:    AddDays(next, -1),
			Value:        aggregate(opts.Mode, total, days),
			Total:        total,
			DaysWithData: days,
		})
	}

	return summaries, nil
}

// PercentageChange returns the relative change from previous to current in
// percent. ok is false when previous is zero, where the change is undefined.
func PercentageChange(current, previous int) (change float64, ok bool) {
	if previous == 0 {
		return 0, false
	}
	return float64(current-previous) / float64(previous) * 100, true
}

// ChangeOf compares the two most recent periods of an ordered summary list.
// It returns nil when there is no previous period or its value is zero.
func ChangeOf(periods []domain.PeriodSummary) *float64 {
	if len(periods) < 2 {
		return nil
	}
	change, ok := PercentageChange(periods[0].Value, periods[1].Value)
	if !ok {
		return nil
	}
	return &change
}

// Summarize builds a StepCountSummary including the period-over-period change.
func Summarize(series domain.StepSeries, unit domain.PeriodUnit, count int, ref time.Time, opts Options) (*domain.StepCountSummary, error) {
	periods, err := ComputePeriodSummary(series, unit, count, ref, opts)
	if err != nil {
		return nil, err
	}

	mode := opts.Mode
	if mode == "" {
		mode = domain.AggregateSum
	}

	return &domain.StepCountSummary{
		Unit:          unit,
		Mode:          mode,
		Periods:       periods,
		ChangePercent: ChangeOf(periods),
	}, nil
}

func aggregate(mode domain.AggregateMode, total, days int) int {
	if mode != domain.AggregateAverage {
		return total
	}
	if days == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(days)))
}

func periodLabel(unit domain.PeriodUnit, ago int) string {
	switch ago {
	case 0:
		return "This " + string(unit)
	case 1:
		return "Last " + string(unit)
	default:
		return fmt.Sprintf("%d %ss ago", ago, unit)
	}
}
