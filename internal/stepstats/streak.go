package stepstats

import (
	"sort"
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
)

// DefaultLookbackCap bounds how many days a streak walk examines.
const DefaultLookbackCap = 100

// ComputeGoalStreak counts consecutive days meeting goal, walking back from
// the day before ref. The walk stops at the first day without a record, the
// first day below goal, or after lookbackCap days. Today never counts.
func ComputeGoalStreak(series domain.StepSeries, goal int, ref time.Time, lookbackCap int) (int, error) {
	if err := checkStreakArgs(series, goal, lookbackCap); err != nil {
		return 0, err
	}
	return goalStreak(series, goal, ref, lookbackCap), nil
}

// NewGoalStreak is ComputeGoalStreak wrapped into a domain.GoalStreak.
func NewGoalStreak(series domain.StepSeries, goal int, ref time.Time, lookbackCap int) (domain.GoalStreak, error) {
	days, err := ComputeGoalStreak(series, goal, ref, lookbackCap)
	if err != nil {
		return domain.GoalStreak{}, err
	}
	return domain.GoalStreak{
		Goal:        goal,
		StreakDays:  days,
		LookbackCap: lookbackCap,
		Saturated:   days == lookbackCap,
	}, nil
}

// Classify derives the achievement status for ref's day. When today already
// meets goal the streak is recomputed as of tomorrow so today is included.
func Classify(series domain.StepSeries, goal int, ref time.Time, lookbackCap int) (domain.AchievementStatus, error) {
	if err := checkStreakArgs(series, goal, lookbackCap); err != nil {
		return domain.AchievementStatus{}, err
	}

	if today, ok := series[DayKey(ref)]; ok && today >= goal {
		days := goalStreak(series, goal, AddDays(ref, 1), lookbackCap)
		return domain.AchievementStatus{Kind: domain.AchievedToday, Days: days}, nil
	}

	yesterday := goalStreak(series, goal, ref, lookbackCap)
	switch {
	case yesterday >= 2:
		return domain.AchievementStatus{Kind: domain.Consecutive, Days: yesterday}, nil
	case yesterday == 1:
		return domain.AchievementStatus{Kind: domain.AchievedYesterday}, nil
	default:
		return domain.AchievementStatus{Kind: domain.MissedYesterday}, nil
	}
}

// LongestGoalStreak returns the longest run of consecutive calendar days in
// series that meet goal.
func LongestGoalStreak(series domain.StepSeries, goal int) (int, error) {
	if goal <= 0 {
		return 0, invalid("goal must be positive, got %d", goal)
	}
	if err := ValidateSeries(series); err != nil {
		return 0, err
	}

	var days []time.Time
	for key, steps := range series {
		if steps < goal {
			continue
		}
		day, _ := time.Parse(domain.DayLayout, key)
		days = append(days, day)
	}
	if len(days) == 0 {
		return 0, nil
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest, nil
}

func goalStreak(series domain.StepSeries, goal int, ref time.Time, lookbackCap int) int {
	streak := 0
	day := AddDays(ref, -1)
	for streak < lookbackCap {
		steps, ok := series[DayKey(day)]
		if !ok || steps < goal {
			break
		}
		streak++
		day = AddDays(day, -1)
	}
	return streak
}

func checkStreakArgs(series domain.StepSeries, goal, lookbackCap int) error {
	if goal <= 0 {
		return invalid("goal must be positive, got %d", goal)
	}
	if lookbackCap <= 0 {
		return invalid("lookback cap must be positive, got %d", lookbackCap)
	}
	return ValidateSeries(series)
}
