// Command stepstat runs the step aggregation over a local series file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/blaisecz/step-tracker/internal/config"
	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	file     string
	now      string
	timezone string
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "stepstat",
		Short:         "Summaries and goal streaks for a daily step series",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.file, "file", "f", "", "series file (YAML or JSON map of YYYY-MM-DD: count)")
	root.PersistentFlags().StringVar(&flags.now, "now", "", "reference day YYYY-MM-DD (default today)")
	root.PersistentFlags().StringVar(&flags.timezone, "tz", "Local", "IANA time zone of the series")
	_ = root.MarkPersistentFlagRequired("file")

	root.AddCommand(newSummaryCmd(&flags))
	root.AddCommand(newStreakCmd(&flags))
	return root
}

// reference resolves --tz and --now into a reference time.
func (f *globalFlags) reference() (time.Time, error) {
	loc, err := time.LoadLocation(f.timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --tz: %w", err)
	}
	if f.now == "" {
		return time.Now().In(loc), nil
	}
	ref, err := time.ParseInLocation(domain.DayLayout, f.now, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: want YYYY-MM-DD", f.now)
	}
	return ref, nil
}

func newSummaryCmd(flags *globalFlags) *cobra.Command {
	var unit, mode, weekStart string
	var count int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate the series into calendar weeks, months or years",
		RunE: func(cmd *cobra.Command, _ []string) error {
			series, err := loadSeries(flags.file)
			if err != nil {
				return err
			}
			ref, err := flags.reference()
			if err != nil {
				return err
			}
			start, err := config.ParseWeekday(weekStart)
			if err != nil {
				return err
			}
			summary, err := summarize(series, domain.PeriodUnit(unit), count, domain.AggregateMode(mode), start, ref)
			if err != nil {
				return err
			}
			renderSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
	cmd.Flags().StringVar(&unit, "unit", string(domain.PeriodWeek), "period unit: week, month or year")
	cmd.Flags().IntVar(&count, "count", 4, "number of periods")
	cmd.Flags().StringVar(&mode, "mode", string(domain.AggregateSum), "aggregate: sum or average")
	cmd.Flags().StringVar(&weekStart, "week-start", "monday", "first day of the week: monday or sunday")
	return cmd
}

func newStreakCmd(flags *globalFlags) *cobra.Command {
	var goal, lookbackCap int

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Count consecutive goal days before the reference day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			series, err := loadSeries(flags.file)
			if err != nil {
				return err
			}
			ref, err := flags.reference()
			if err != nil {
				return err
			}
			report, err := streak(series, goal, lookbackCap, ref)
			if err != nil {
				return err
			}
			renderStreak(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().IntVar(&goal, "goal", 8000, "daily step goal")
	cmd.Flags().IntVar(&lookbackCap, "cap", 100, "maximum number of days to look back")
	return cmd
}
