package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/runlog/internal/analytics"
)

// Symbols holds the icon/symbol set based on nerdfont configuration
type Symbols struct {
	GoalMet string // day total reached the daily goal
	Partial string // ran, but below the goal
	Missed  string // no run
	Streak  string
	Bar     string // unit of the trend bars
}

// Default symbols (unicode, no special font)
var defaultSymbols = Symbols{
	GoalMet: "✓",
	Partial: "◐",
	Missed:  "·",
	Streak:  "»",
	Bar:     "█",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	GoalMet: "\uf00c", // nf-fa-check
	Partial: "\uf10c", // nf-fa-circle_o
	Missed:  "\uf00d", // nf-fa-times
	Streak:  "\uf490", // nf-oct-flame
	Bar:     "█",
}

// MaxBarWidth caps trend bars; one cell per tenth of a mile.
const MaxBarWidth = 50

// useNerdfont tracks whether nerd font symbols are enabled
var useNerdfont bool

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// DayStyle returns the style for a day's total distance:
// success at or above the goal, warning below it, error with no distance.
func DayStyle(distance float64) lipgloss.Style {
	switch {
	case distance >= analytics.DailyGoalMiles:
		return SuccessStyle
	case distance > 0:
		return WarningStyle
	default:
		return ErrorStyle
	}
}

// DaySymbol returns the plain status symbol for a day's total distance.
func DaySymbol(distance float64) string {
	switch {
	case distance >= analytics.DailyGoalMiles:
		return currentSymbols.GoalMet
	case distance > 0:
		return currentSymbols.Partial
	default:
		return currentSymbols.Missed
	}
}

// BarWidth returns the bar length for distance miles.
func BarWidth(distance float64) int {
	if distance <= 0 {
		return 0
	}
	return min(int(distance*10), MaxBarWidth)
}

// FormatDayBar renders a coloured bar for one trend day.
func FormatDayBar(distance float64) string {
	bar := strings.Repeat(currentSymbols.Bar, BarWidth(distance))
	return DayStyle(distance).Render(DaySymbol(distance) + " " + bar)
}

// FormatStreak renders a streak length with its symbol.
func FormatStreak(days int) string {
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	style := MutedStyle
	if days > 0 {
		style = AccentStyle
	}
	return style.Render(fmt.Sprintf("%s %d %s", currentSymbols.Streak, days, unit))
}

// FormatPath renders a file path with an OSC 8 file:// hyperlink.
func FormatPath(path string) string {
	if path == "" {
		return ""
	}
	return ansi.SetHyperlink("file://"+path) + InfoStyle.Render(path) + ansi.ResetHyperlink()
}
