package stepstats

import (
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
)

// Options controls calendar alignment and period aggregation.
type Options struct {
	// WeekStart is the first day of a calendar week.
	WeekStart time.Weekday
	// Mode selects sum or per-day average. Empty means sum.
	Mode domain.AggregateMode
}

// DefaultOptions aligns weeks on Monday and sums daily counts.
func DefaultOptions() Options {
	return Options{WeekStart: time.Monday, Mode: domain.AggregateSum}
}

func (o Options) validate() error {
	if o.WeekStart < time.Sunday || o.WeekStart > time.Saturday {
		return invalid("week start %d out of range", int(o.WeekStart))
	}
	switch o.Mode {
	case "", domain.AggregateSum, domain.AggregateAverage:
		return nil
	default:
		return invalid("unknown aggregate mode %q", o.Mode)
	}
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays returns local midnight n calendar days after t's day. Going through
// time.Date keeps the result on midnight across DST changes.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

// DayKey formats t's local calendar day as a StepSeries key.
func DayKey(t time.Time) string {
	return t.Format(domain.DayLayout)
}

// ParseDayKey parses a StepSeries key into local midnight in loc.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DayLayout, key, loc)
	if err != nil {
		return time.Time{}, invalid("malformed day %q", key)
	}
	return t, nil
}

// StartOfPeriod returns the first day of the calendar period containing t.
func StartOfPeriod(t time.Time, unit domain.PeriodUnit, weekStart time.Weekday) (time.Time, error) {
	day := StartOfDay(t)
	switch unit {
	case domain.PeriodWeek:
		offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
		return AddDays(day, -offset), nil
	case domain.PeriodMonth:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()), nil
	case domain.PeriodYear:
		return time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location()), nil
	default:
		return time.Time{}, invalid("unknown period unit %q", unit)
	}
}

// AddPeriods moves a period-aligned start by n periods.
func AddPeriods(start time.Time, unit domain.PeriodUnit, n int) time.Time {
	switch unit {
	case domain.PeriodMonth:
		return time.Date(start.Year(), start.Month()+time.Month(n), 1, 0, 0, 0, 0, start.Location())
	case domain.PeriodYear:
		return time.Date(start.Year()+n, time.January, 1, 0, 0, 0, 0, start.Location())
	default:
		return AddDays(start, 7*n)
	}
}

// PeriodRange returns the first and last day (inclusive) covered by the
// trailing count periods ending with the one containing ref.
func PeriodRange(ref time.Time, unit domain.PeriodUnit, count int, opts Options) (from, to time.Time, err error) {
	if count <= 0 {
		return time.Time{}, time.Time{}, invalid("period count must be positive, got %d", count)
	}
	if err := opts.validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}
	current, err := StartOfPeriod(ref, unit, opts.WeekStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	from = AddPeriods(current, unit, -(count - 1))
	to = AddDays(AddPeriods(current, unit, 1), -1)
	return from, to, nil
}

// ValidateSeries rejects malformed day keys and negative counts.
func ValidateSeries(series domain.StepSeries) error {
	for key, count := range series {
		if _, err := time.Parse(domain.DayLayout, key); err != nil {
			return invalid("malformed day %q", key)
		}
		if count < 0 {
			return invalid("negative step count %d on %s", count, key)
		}
	}
	return nil
}
