package analytics

import (
	"cmp"
	"slices"

	"github.com/raphi011/runlog/internal/run"
)

type monthKey struct {
	year  int
	month int
}

// monthlyBreakdown groups runs per calendar month in ascending order.
func monthlyBreakdown(runs []run.Run) []MonthlyData {
	byMonth := make(map[monthKey]*MonthlyData)
	for _, r := range runs {
		key := monthKey{year: r.Date.Year, month: int(r.Date.Month)}
		m, ok := byMonth[key]
		if !ok {
			m = &MonthlyData{Year: key.year, Month: key.month}
			byMonth[key] = m
		}
		m.RunCount++
		m.TotalDistance += r.DistanceMiles
	}

	months := make([]MonthlyData, 0, len(byMonth))
	for _, m := range byMonth {
		m.AverageDistance = average(m.TotalDistance, m.RunCount)
		months = append(months, *m)
	}
	slices.SortFunc(months, func(a, b MonthlyData) int {
		if c := cmp.Compare(a.Year, b.Year); c != 0 {
			return c
		}
		return cmp.Compare(a.Month, b.Month)
	})
	return months
}
