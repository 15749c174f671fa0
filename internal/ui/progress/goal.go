// Package progress renders goal progress bars for the analytics view.
package progress

import (
	"fmt"

	"charm.land/bubbles/v2/progress"

	"github.com/raphi011/runlog/internal/ui/styles"
)

// DefaultWidth is the bar width used when the terminal width is unknown.
const DefaultWidth = 40

// GoalBar renders completion of a day-count goal, e.g. the year goal.
type GoalBar struct {
	bar progress.Model
}

// NewGoalBar creates a bar of the given cell width in the theme colors.
// Create it after styles.Init so the colors match the active theme.
func NewGoalBar(width int) GoalBar {
	if width <= 0 {
		width = DefaultWidth
	}
	return GoalBar{
		bar: progress.New(
			progress.WithWidth(width),
			progress.WithoutPercentage(),
			progress.WithColors(styles.Primary, styles.Accent),
		),
	}
}

// View renders e.g. "████░░░░ 42/365 days  11.5%".
// percent is on a 0-100 scale; values outside are clamped for the bar only.
func (g GoalBar) View(done, goal int, percent float64) string {
	fill := min(max(percent/100, 0), 1)
	return fmt.Sprintf("%s %d/%d days  %.1f%%", g.bar.ViewAs(fill), done, goal, percent)
}
