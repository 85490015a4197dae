package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/internal/stepstats"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
)

func summarize(series domain.StepSeries, unit domain.PeriodUnit, count int, mode domain.AggregateMode, weekStart time.Weekday, ref time.Time) (*domain.StepCountSummary, error) {
	return stepstats.Summarize(series, unit, count, ref, stepstats.Options{WeekStart: weekStart, Mode: mode})
}

type streakReport struct {
	AsOf    string
	Streak  domain.GoalStreak
	Status  domain.AchievementStatus
	Longest int
	Today   *int
}

func streak(series domain.StepSeries, goal, lookbackCap int, ref time.Time) (*streakReport, error) {
	s, err := stepstats.NewGoalStreak(series, goal, ref, lookbackCap)
	if err != nil {
		return nil, err
	}
	status, err := stepstats.Classify(series, goal, ref, lookbackCap)
	if err != nil {
		return nil, err
	}
	longest, err := stepstats.LongestGoalStreak(series, goal)
	if err != nil {
		return nil, err
	}

	report := &streakReport{
		AsOf:    stepstats.DayKey(ref),
		Streak:  s,
		Status:  status,
		Longest: longest,
	}
	if today, ok := series[report.AsOf]; ok {
		report.Today = &today
	}
	return report, nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderSummary(w io.Writer, s *domain.StepCountSummary) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Period", "From", "To", "Days", "Total", valueHeader(s.Mode)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, p := range s.Periods {
		t.Row(
			p.Label,
			p.PeriodStart.Format(domain.DayLayout),
			p.PeriodEnd.Format(domain.DayLayout),
			strconv.Itoa(p.DaysWithData),
			strconv.Itoa(p.Total),
			strconv.Itoa(p.Value),
		)
	}
	fmt.Fprintln(w, t.Render())

	if s.ChangePercent == nil {
		fmt.Fprintln(w, "Change: n/a (no previous data)")
		return
	}
	change := fmt.Sprintf("%+.1f%%", *s.ChangePercent)
	switch {
	case *s.ChangePercent > 0:
		change = color.GreenString(change)
	case *s.ChangePercent < 0:
		change = color.RedString(change)
	}
	fmt.Fprintf(w, "Change: %s\n", change)
}

func valueHeader(mode domain.AggregateMode) string {
	if mode == domain.AggregateAverage {
		return "Avg/day"
	}
	return "Sum"
}

func renderStreak(w io.Writer, r *streakReport) {
	days := strconv.Itoa(r.Streak.StreakDays)
	if r.Streak.Saturated {
		days = fmt.Sprintf("%d+", r.Streak.StreakDays-1)
	}
	fmt.Fprintf(w, "As of:   %s\n", r.AsOf)
	fmt.Fprintf(w, "Goal:    %d steps\n", r.Streak.Goal)
	if r.Today != nil {
		fmt.Fprintf(w, "Today:   %d steps\n", *r.Today)
	} else {
		fmt.Fprintln(w, "Today:   no data")
	}
	fmt.Fprintf(w, "Streak:  %s days\n", days)
	fmt.Fprintf(w, "Longest: %d days\n", r.Longest)
	fmt.Fprintf(w, "Status:  %s\n", statusLine(r.Status))
}

func statusLine(s domain.AchievementStatus) string {
	switch s.Kind {
	case domain.AchievedToday:
		return color.New(color.FgGreen, color.Bold).Sprintf("goal reached today, %d day streak", s.Days)
	case domain.Consecutive:
		return color.GreenString("%d days in a row", s.Days)
	case domain.AchievedYesterday:
		return color.YellowString("goal reached yesterday")
	default:
		return color.RedString("goal missed yesterday")
	}
}
