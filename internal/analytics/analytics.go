package analytics

import (
	"github.com/raphi011/runlog/internal/run"
)

const (
	// DailyGoalMiles is the distance a day must reach to count toward a streak.
	DailyGoalMiles = 1.0
	// YearGoalDays is the number of qualifying days targeted per year.
	YearGoalDays = 365

	weekDays  = 7
	monthDays = 30
	trendDays = 30
)

// DailyData is one point of the trend series.
type DailyData struct {
	Date     run.Date
	Distance float64
}

// MetGoal reports whether the day reached the daily goal.
func (d DailyData) MetGoal() bool {
	return d.Distance >= DailyGoalMiles
}

// PeriodStats aggregates the runs inside a date window.
type PeriodStats struct {
	Runs     int
	Distance float64
	Average  float64 // per run, 0 when Runs is 0
}

// MonthlyData aggregates one calendar month.
type MonthlyData struct {
	Year            int
	Month           int
	TotalDistance   float64
	RunCount        int
	AverageDistance float64
}

// Analytics is an immutable summary of a run history.
type Analytics struct {
	CurrentStreak int
	LongestStreak int

	TotalRuns       int
	TotalDistance   float64
	AverageDistance float64

	Week  PeriodStats // today-6 .. today
	Month PeriodStats // today-29 .. today
	Year  PeriodStats // Jan 1 .. today

	RecentTrend []DailyData // today-29 .. today, gap-filled

	// DaysRemainingToYearGoal is YearGoalDays minus the qualifying days so
	// far this year. It is signed and may go negative.
	DaysRemainingToYearGoal      int
	YearGoalCompletionPercentage float64

	MonthlyBreakdown []MonthlyData
}

// Empty returns the summary of an empty history.
func Empty() Analytics {
	return Analytics{
		DaysRemainingToYearGoal: YearGoalDays,
	}
}

// Compute summarizes runs relative to today.
func Compute(runs []run.Run, today run.Date) Analytics {
	if len(runs) == 0 {
		return Empty()
	}

	days := groupByDate(runs)

	a := Analytics{
		CurrentStreak: currentStreak(days, today),
		LongestStreak: longestStreak(days),
		TotalRuns:     len(runs),
	}

	for _, r := range runs {
		a.TotalDistance += r.DistanceMiles
	}
	a.AverageDistance = average(a.TotalDistance, a.TotalRuns)

	a.Week = periodStats(runs, today.AddDays(-(weekDays - 1)), today)
	a.Month = periodStats(runs, today.AddDays(-(monthDays - 1)), today)
	a.Year = periodStats(runs, today.StartOfYear(), today)

	a.RecentTrend = trend(days, today, trendDays)

	qualifying := qualifyingDays(days, today.StartOfYear(), today)
	a.DaysRemainingToYearGoal = YearGoalDays - qualifying
	a.YearGoalCompletionPercentage = float64(qualifying) / YearGoalDays * 100

	a.MonthlyBreakdown = monthlyBreakdown(runs)

	return a
}

func average(total float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func inWindow(d, from, to run.Date) bool {
	return !d.Before(from) && !d.After(to)
}

func periodStats(runs []run.Run, from, to run.Date) PeriodStats {
	var p PeriodStats
	for _, r := range runs {
		if inWindow(r.Date, from, to) {
			p.Runs++
			p.Distance += r.DistanceMiles
		}
	}
	p.Average = average(p.Distance, p.Runs)
	return p
}
