package tui

import (
	"fmt"
	"strings"

	"github.com/raphi011/runlog/internal/analytics"
	"github.com/raphi011/runlog/internal/ui/progress"
	"github.com/raphi011/runlog/internal/ui/static"
	"github.com/raphi011/runlog/internal/ui/styles"
)

const (
	trendShown  = 14
	monthsShown = 12
)

// goalDone is the number of qualifying days so far this year.
func goalDone(a analytics.Analytics) int {
	return analytics.YearGoalDays - a.DaysRemainingToYearGoal
}

func statsView(a analytics.Analytics, bar progress.GoalBar) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Analytics") + "\n")

	b.WriteString(fmt.Sprintf("Current streak  %s\n", styles.FormatStreak(a.CurrentStreak)))
	b.WriteString(fmt.Sprintf("Longest streak  %s\n\n", styles.FormatStreak(a.LongestStreak)))

	b.WriteString(styles.Bold.Render("Year goal") + "\n")
	b.WriteString(bar.View(goalDone(a), analytics.YearGoalDays, a.YearGoalCompletionPercentage) + "\n")
	if a.DaysRemainingToYearGoal > 0 {
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d days to go", a.DaysRemainingToYearGoal)) + "\n")
	} else {
		b.WriteString(styles.SuccessStyle.Render("goal reached") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(static.RenderTable(
		[]string{"PERIOD", "RUNS", "MILES", "AVG"},
		[][]string{
			periodRow("Week", a.Week),
			periodRow("Month", a.Month),
			periodRow("Year", a.Year),
			periodRow("All time", analytics.PeriodStats{
				Runs:     a.TotalRuns,
				Distance: a.TotalDistance,
				Average:  a.AverageDistance,
			}),
		},
	))
	b.WriteString("\n")

	b.WriteString(styles.Bold.Render("Last 14 days") + "\n")
	trend := a.RecentTrend
	if len(trend) > trendShown {
		trend = trend[len(trend)-trendShown:]
	}
	for _, d := range trend {
		b.WriteString(fmt.Sprintf("%s %5.2f %s\n",
			styles.MutedStyle.Render(d.Date.Short()), d.Distance, styles.FormatDayBar(d.Distance)))
	}

	if len(a.MonthlyBreakdown) > 0 {
		b.WriteString("\n" + styles.Bold.Render("Monthly") + "\n")
		b.WriteString(static.RenderMonthly(a.MonthlyBreakdown, monthsShown))
	}
	return b.String()
}

func periodRow(name string, p analytics.PeriodStats) []string {
	return []string{
		name,
		fmt.Sprintf("%d", p.Runs),
		fmt.Sprintf("%.1f", p.Distance),
		fmt.Sprintf("%.2f", p.Average),
	}
}

// summaryText is the plain-text summary copied to the clipboard.
func summaryText(a analytics.Analytics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current streak: %d days\n", a.CurrentStreak)
	fmt.Fprintf(&b, "Longest streak: %d days\n", a.LongestStreak)
	fmt.Fprintf(&b, "Year goal: %d/%d days (%.1f%%)\n",
		goalDone(a), analytics.YearGoalDays, a.YearGoalCompletionPercentage)
	fmt.Fprintf(&b, "Total: %d runs, %.1f mi (avg %.2f mi)\n",
		a.TotalRuns, a.TotalDistance, a.AverageDistance)
	fmt.Fprintf(&b, "This week: %d runs, %.1f mi\n", a.Week.Runs, a.Week.Distance)
	fmt.Fprintf(&b, "Last 30 days: %d runs, %.1f mi\n", a.Month.Runs, a.Month.Distance)
	fmt.Fprintf(&b, "This year: %d runs, %.1f mi\n", a.Year.Runs, a.Year.Distance)
	return b.String()
}
