package tui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/runlog/internal/run"
	"github.com/raphi011/runlog/internal/ui/styles"
)

const (
	fieldDate = iota
	fieldTime
	fieldDistance
	fieldNote
	fieldCount
)

var fieldLabels = [fieldCount]string{"Date", "Time", "Distance (mi)", "Note"}

// entryForm is the Quick Entry form. A non-nil editing run switches it
// from insert to update.
type entryForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	edit   *run.Run
	err    error
}

func newEntryForm(now time.Time) *entryForm {
	f := &entryForm{}
	placeholders := [fieldCount]string{"YYYY-MM-DD", "HH:MM", "3.1", "optional"}
	limits := [fieldCount]int{10, 11, 6, 200}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.SetWidth(30)

		s := ti.Styles()
		s.Cursor.Shape = tea.CursorBar
		s.Cursor.Blink = false
		ti.SetStyles(s)

		f.inputs[i] = ti
	}
	f.reset(now)
	return f
}

// reset prefills date and time with now and clears everything else.
func (f *entryForm) reset(now time.Time) {
	f.inputs[fieldDate].SetValue(now.Format("2006-01-02"))
	f.inputs[fieldTime].SetValue(now.Format("15:04"))
	f.inputs[fieldDistance].SetValue("")
	f.inputs[fieldNote].SetValue("")
	f.edit = nil
	f.err = nil
	f.setFocus(fieldDistance)
}

// clearAfterInsert keeps date and time so consecutive runs are quick to log.
func (f *entryForm) clearAfterInsert() {
	f.inputs[fieldDistance].SetValue("")
	f.inputs[fieldNote].SetValue("")
	f.err = nil
	f.setFocus(fieldDistance)
}

// load fills the form from r for editing.
func (f *entryForm) load(r run.Run) {
	in := run.InputFrom(r)
	f.inputs[fieldDate].SetValue(in.Date)
	f.inputs[fieldTime].SetValue(in.Time)
	f.inputs[fieldDistance].SetValue(in.Distance)
	f.inputs[fieldNote].SetValue(in.Note)
	for i := range f.inputs {
		f.inputs[i].CursorEnd()
	}
	f.edit = &r
	f.err = nil
	f.setFocus(fieldDistance)
}

func (f *entryForm) editing() bool {
	return f.edit != nil
}

func (f *entryForm) input() run.Input {
	in := run.Input{
		Date:     f.inputs[fieldDate].Value(),
		Time:     f.inputs[fieldTime].Value(),
		Distance: f.inputs[fieldDistance].Value(),
		Note:     f.inputs[fieldNote].Value(),
	}
	if f.edit != nil {
		in.ID = f.edit.ID
	}
	return in
}

func (f *entryForm) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *entryForm) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *entryForm) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

// update forwards a key to the focused input.
func (f *entryForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *entryForm) view() string {
	var b strings.Builder

	title := "Quick Entry"
	if f.editing() {
		title = "Edit Run"
	}
	b.WriteString(styles.TitleStyle.Render(title) + "\n")

	var fields strings.Builder
	for i := range f.inputs {
		label := styles.MutedStyle.Render(pad(fieldLabels[i], 14))
		if i == f.focus {
			label = styles.FocusedLabelStyle.Render(pad(fieldLabels[i], 14))
		}
		fields.WriteString(label + " " + f.inputs[i].View())
		if i < fieldCount-1 {
			fields.WriteString("\n")
		}
	}
	b.WriteString(styles.RoundedBorder.Render(fields.String()) + "\n")

	if f.err != nil {
		b.WriteString("\n" + styles.ErrorStyle.Render(f.err.Error()))
	}
	return b.String()
}

func pad(s string, width int) string {
	if n := width - len(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
