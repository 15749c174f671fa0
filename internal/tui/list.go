package tui

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/runlog/internal/run"
	"github.com/raphi011/runlog/internal/ui/static"
	"github.com/raphi011/runlog/internal/ui/styles"
)

const pageSize = 10

// runList is the scrolling run table with an optional fuzzy filter.
type runList struct {
	runs      []run.Run
	visible   []int // indexes into runs, in display order
	cursor    int   // position within visible
	offset    int
	filter    string
	filtering bool
}

// searchable implements fuzzy.Source over date and note.
type searchable []run.Run

func (s searchable) String(i int) string {
	return s[i].Date.String() + " " + s[i].Note
}

func (s searchable) Len() int { return len(s) }

func (l *runList) setRuns(runs []run.Run) {
	l.runs = runs
	l.apply()
}

func (l *runList) apply() {
	l.visible = l.visible[:0]
	if l.filter == "" {
		for i := range l.runs {
			l.visible = append(l.visible, i)
		}
	} else {
		for _, m := range fuzzy.FindFrom(l.filter, searchable(l.runs)) {
			l.visible = append(l.visible, m.Index)
		}
	}
	l.clamp()
}

func (l *runList) clamp() {
	if l.cursor >= len(l.visible) {
		l.cursor = len(l.visible) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+pageSize {
		l.offset = l.cursor - pageSize + 1
	}
	if last := len(l.visible) - pageSize; l.offset > last {
		l.offset = last
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

func (l *runList) up() {
	l.cursor--
	l.clamp()
}

func (l *runList) down() {
	l.cursor++
	l.clamp()
}

// selected returns the highlighted run.
func (l *runList) selected() (run.Run, bool) {
	if len(l.visible) == 0 {
		return run.Run{}, false
	}
	return l.runs[l.visible[l.cursor]], true
}

func (l *runList) startFilter() {
	l.filtering = true
}

func (l *runList) setFilter(s string) {
	l.filter = s
	l.cursor = 0
	l.offset = 0
	l.apply()
}

func (l *runList) clearFilter() {
	l.filtering = false
	l.setFilter("")
}

func (l *runList) view() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Runs") + "\n")

	if l.filtering || l.filter != "" {
		b.WriteString(styles.AccentStyle.Render("/") + styles.HighlightStyle.Render(l.filter))
		if l.filtering {
			b.WriteString(styles.MutedStyle.Render("▏"))
		}
		b.WriteString("\n\n")
	}

	if len(l.visible) == 0 {
		if len(l.runs) == 0 {
			b.WriteString(styles.MutedStyle.Render("No runs logged yet. Press esc 1 to add one."))
		} else {
			b.WriteString(styles.MutedStyle.Render("No runs match the filter."))
		}
		return b.String()
	}

	end := min(l.offset+pageSize, len(l.visible))
	rows := make([][]string, 0, end-l.offset)
	for _, idx := range l.visible[l.offset:end] {
		rows = append(rows, static.RunTableRow(l.runs[idx]))
	}
	table := static.RenderTable(static.RunHeaders, rows)

	// header line first, then one line per row
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	for i, line := range lines {
		if i-1 == l.cursor-l.offset {
			line = styles.SelectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d-%d of %d", l.offset+1, end, len(l.visible))))
	return b.String()
}
