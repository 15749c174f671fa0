package tui

import (
	"strings"

	"github.com/raphi011/runlog/internal/ui/styles"
)

var helpSections = []struct {
	title string
	keys  [][2]string
}{
	{"Global", [][2]string{
		{"ctrl+q, ctrl+c", "quit"},
		{"esc", "navigation mode"},
		{"esc 1 / 2 / 3", "quick entry / runs / analytics"},
		{"esc h, ?", "this help"},
		{"esc esc", "clear the entry form"},
		{"q", "quit (outside quick entry)"},
	}},
	{"Quick Entry", [][2]string{
		{"tab, down", "next field"},
		{"shift+tab, up", "previous field"},
		{"enter", "save run"},
	}},
	{"Runs", [][2]string{
		{"up/k, down/j", "move selection"},
		{"e", "edit run"},
		{"d", "delete run"},
		{"/", "filter by date or note (esc clears)"},
		{"x", "export runs as JSON"},
	}},
	{"Analytics", [][2]string{
		{"y", "copy summary to clipboard"},
		{"r", "refresh"},
	}},
}

func helpView(dbPath string) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Help") + "\n")
	for _, s := range helpSections {
		b.WriteString(styles.Bold.Render(s.title) + "\n")
		for _, k := range s.keys {
			b.WriteString("  " + styles.AccentStyle.Render(pad(k[0], 16)) + " " + styles.NormalStyle.Render(k[1]) + "\n")
		}
		b.WriteString("\n")
	}
	if dbPath != "" {
		b.WriteString(styles.MutedStyle.Render("Data file: ") + styles.FormatPath(dbPath) + "\n")
	}
	b.WriteString(styles.MutedStyle.Render("Press h or ? to go back."))
	return b.String()
}
