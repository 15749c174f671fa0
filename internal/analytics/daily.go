package analytics

import (
	"slices"

	"github.com/raphi011/runlog/internal/run"
)

// dailyTotals is the per-date distance sum, sorted by ascending date.
// Lookups go through byDate; ordered scans use the slice.
type dailyTotals struct {
	sorted []DailyData
	byDate map[run.Date]float64
}

func groupByDate(runs []run.Run) dailyTotals {
	byDate := make(map[run.Date]float64, len(runs))
	for _, r := range runs {
		byDate[r.Date] += r.DistanceMiles
	}

	sorted := make([]DailyData, 0, len(byDate))
	for d, miles := range byDate {
		sorted = append(sorted, DailyData{Date: d, Distance: miles})
	}
	slices.SortFunc(sorted, func(a, b DailyData) int {
		return a.Date.Compare(b.Date)
	})

	return dailyTotals{sorted: sorted, byDate: byDate}
}

// qualifies reports whether d has a total at or above the daily goal.
func (t dailyTotals) qualifies(d run.Date) bool {
	miles, ok := t.byDate[d]
	return ok && miles >= DailyGoalMiles
}

func currentStreak(days dailyTotals, today run.Date) int {
	streak := 0
	for d := today; days.qualifies(d); d = d.AddDays(-1) {
		streak++
	}
	return streak
}

func longestStreak(days dailyTotals) int {
	longest, current := 0, 0
	var prev run.Date
	havePrev := false

	// newest to oldest; below-goal days are skipped without resetting the chain
	for i := len(days.sorted) - 1; i >= 0; i-- {
		day := days.sorted[i]
		if !day.MetGoal() {
			continue
		}
		switch {
		case !havePrev:
			current = 1
		case day.Date.AddDays(1) == prev:
			current++
		default:
			longest = max(longest, current)
			current = 1
		}
		prev, havePrev = day.Date, true
	}

	return max(longest, current)
}

// trend returns one entry per day for the n days ending today, oldest first.
func trend(days dailyTotals, today run.Date, n int) []DailyData {
	series := make([]DailyData, 0, n)
	for d := today.AddDays(-(n - 1)); !d.After(today); d = d.AddDays(1) {
		series = append(series, DailyData{Date: d, Distance: days.byDate[d]})
	}
	return series
}

func qualifyingDays(days dailyTotals, from, to run.Date) int {
	count := 0
	for _, day := range days.sorted {
		if inWindow(day.Date, from, to) && day.MetGoal() {
			count++
		}
	}
	return count
}
