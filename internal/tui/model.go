package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/runlog/internal/analytics"
	"github.com/raphi011/runlog/internal/log"
	"github.com/raphi011/runlog/internal/run"
	"github.com/raphi011/runlog/internal/storage"
	"github.com/raphi011/runlog/internal/ui/progress"
	"github.com/raphi011/runlog/internal/ui/styles"
)

type screen int

const (
	screenEntry screen = iota
	screenList
	screenAnalytics
	screenHelp
)

func (s screen) String() string {
	switch s {
	case screenEntry:
		return "Quick Entry"
	case screenList:
		return "Runs"
	case screenAnalytics:
		return "Analytics"
	case screenHelp:
		return "Help"
	}
	return "unknown"
}

// Options configures a session.
type Options struct {
	DataDir    string
	DBPath     string
	ExportPath string // defaults to <DataDir>/runs-export.json

	Now  func() time.Time   // defaults to time.Now
	Copy func(string) error // defaults to the system clipboard
}

// Model is the root bubbletea model of the session.
type Model struct {
	ctx    context.Context
	repo   Repository
	opts   Options
	logger *log.Logger

	keys keyMap
	help help.Model

	screen     screen
	lastScreen screen
	navigating bool

	entry *entryForm
	list  *runList
	stats analytics.Analytics
	goal  progress.GoalBar

	status    string
	statusErr bool

	width, height int
	quitting      bool
}

// New creates a session on the Quick Entry screen.
func New(ctx context.Context, repo Repository, opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.ExportPath == "" && opts.DataDir != "" {
		opts.ExportPath = filepath.Join(opts.DataDir, storage.ExportFileName)
	}

	return &Model{
		ctx:    ctx,
		repo:   repo,
		opts:   opts,
		logger: log.FromContext(ctx).With("component", "tui"),
		keys:   defaultKeyMap(),
		help:   help.New(),
		entry:  newEntryForm(opts.Now()),
		list:   &runList{},
		stats:  analytics.Empty(),
		goal:   progress.NewGoalBar(progress.DefaultWidth),
	}
}

// Run starts the full-screen session and blocks until the user quits.
func Run(ctx context.Context, repo Repository, opts Options) error {
	m := New(ctx, repo, opts)

	profile := colorprofile.Detect(os.Stdout, os.Environ())
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithColorProfile(profile),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.entry.setFocus(fieldDistance), loadRuns(m.ctx, m.repo))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.SetWidth(msg.Width)
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case runsLoadedMsg:
		if msg.err != nil {
			m.setError("load runs", msg.err)
			return m, nil
		}
		m.list.setRuns(msg.runs)
		m.stats = analytics.Compute(msg.runs, run.DateOf(m.opts.Now()))
		m.logger.Debug("runs loaded", "count", len(msg.runs))
		return m, nil

	case runSavedMsg:
		return m, m.handleSaved(msg)

	case runDeletedMsg:
		if msg.err != nil {
			m.setError("delete run", msg.err)
			return m, nil
		}
		m.logger.Info("run deleted", "id", msg.id)
		m.setStatus("Run deleted")
		return m, loadRuns(m.ctx, m.repo)

	case exportedMsg:
		if msg.err != nil {
			m.setError("export runs", msg.err)
			return m, nil
		}
		m.logger.Info("runs exported", "path", msg.path, "count", msg.count)
		m.setStatus(fmt.Sprintf("Exported %d runs to %s", msg.count, msg.path))
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setError("copy summary", msg.err)
			return m, nil
		}
		m.setStatus("Summary copied to clipboard")
		return m, nil
	}

	if m.screen == screenEntry {
		return m, m.entry.update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.navigating {
		return m.handleNavKey(msg)
	}

	if m.screen == screenList && m.list.filtering {
		return m.handleFilterKey(msg)
	}

	if key.Matches(msg, m.keys.Nav) {
		m.navigating = true
		return nil
	}

	switch m.screen {
	case screenEntry:
		return m.handleEntryKey(msg)
	case screenList:
		return m.handleListKey(msg)
	case screenAnalytics:
		return m.handleAnalyticsKey(msg)
	case screenHelp:
		return m.handleHelpKey(msg)
	}
	return nil
}

// handleNavKey consumes the key following esc.
func (m *Model) handleNavKey(msg tea.KeyPressMsg) tea.Cmd {
	m.navigating = false

	switch {
	case key.Matches(msg, m.keys.Entry):
		return m.switchTo(screenEntry)
	case key.Matches(msg, m.keys.List):
		return m.switchTo(screenList)
	case key.Matches(msg, m.keys.Analytics):
		return m.switchTo(screenAnalytics)
	case key.Matches(msg, m.keys.Help):
		return m.toggleHelp()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Clear) && m.screen == screenEntry:
		m.entry.reset(m.opts.Now())
		m.clearStatus()
		return m.entry.setFocus(fieldDistance)
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.list.clearFilter()
	case "enter":
		m.list.filtering = false
	case "backspace":
		if f := m.list.filter; f != "" {
			r := []rune(f)
			m.list.setFilter(string(r[:len(r)-1]))
		}
	case "up":
		m.list.up()
	case "down":
		m.list.down()
	default:
		if msg.Text != "" {
			m.list.setFilter(m.list.filter + msg.Text)
		}
	}
	return nil
}

func (m *Model) handleEntryKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m.entry.next()
	case key.Matches(msg, m.keys.Prev):
		return m.entry.prev()
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}
	m.entry.err = nil
	m.clearStatus()
	return m.entry.update(msg)
}

func (m *Model) handleListKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		return m.toggleHelp()
	case key.Matches(msg, m.keys.Entry):
		return m.switchTo(screenEntry)
	case key.Matches(msg, m.keys.Analytics):
		return m.switchTo(screenAnalytics)
	case key.Matches(msg, m.keys.Up):
		m.list.up()
	case key.Matches(msg, m.keys.Down):
		m.list.down()
	case key.Matches(msg, m.keys.Edit):
		r, ok := m.list.selected()
		if !ok {
			return nil
		}
		m.entry.load(r)
		m.clearStatus()
		m.screen = screenEntry
		return m.entry.setFocus(fieldDistance)
	case key.Matches(msg, m.keys.Delete):
		r, ok := m.list.selected()
		if !ok {
			return nil
		}
		return deleteRun(m.ctx, m.repo, r.ID)
	case key.Matches(msg, m.keys.Filter):
		m.list.startFilter()
	case key.Matches(msg, m.keys.Export):
		if m.opts.ExportPath == "" {
			m.setStatus("No data directory configured for export")
			m.statusErr = true
			return nil
		}
		return exportRuns(m.ctx, m.repo, m.opts.ExportPath, m.opts.Now())
	}
	return nil
}

func (m *Model) handleAnalyticsKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		return m.toggleHelp()
	case key.Matches(msg, m.keys.Entry):
		return m.switchTo(screenEntry)
	case key.Matches(msg, m.keys.List):
		return m.switchTo(screenList)
	case key.Matches(msg, m.keys.Copy):
		return copyText(m.opts.Copy, summaryText(m.stats))
	case key.Matches(msg, m.keys.Refresh):
		return loadRuns(m.ctx, m.repo)
	}
	return nil
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Help):
		return m.toggleHelp()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return nil
}

// submit validates the form and stores the run.
func (m *Model) submit() tea.Cmd {
	r, err := run.FromInput(m.entry.input(), m.opts.Now())
	if err != nil {
		m.entry.err = err
		return nil
	}
	if m.entry.editing() {
		r.CreatedAt = m.entry.edit.CreatedAt
		return updateRun(m.ctx, m.repo, r)
	}
	return insertRun(m.ctx, m.repo, r)
}

func (m *Model) handleSaved(msg runSavedMsg) tea.Cmd {
	if msg.err != nil {
		if !errors.Is(msg.err, storage.ErrDuplicateRun) {
			m.logger.Error("save run", "err", msg.err)
		}
		m.entry.err = msg.err
		return nil
	}

	if msg.edited {
		m.logger.Info("run updated", "id", msg.run.ID, "date", msg.run.Date, "miles", msg.run.DistanceMiles)
		m.entry.reset(m.opts.Now())
		m.screen = screenList
		m.setStatus(fmt.Sprintf("Updated run on %s", msg.run.Date))
		return loadRuns(m.ctx, m.repo)
	}

	m.logger.Info("run logged", "date", msg.run.Date, "miles", msg.run.DistanceMiles)
	m.entry.clearAfterInsert()
	m.setStatus(fmt.Sprintf("Logged %s mi on %s", run.FormatDistance(msg.run.DistanceMiles), msg.run.Date))
	return tea.Batch(m.entry.setFocus(fieldDistance), loadRuns(m.ctx, m.repo))
}

func (m *Model) switchTo(s screen) tea.Cmd {
	m.screen = s
	m.clearStatus()
	switch s {
	case screenList, screenAnalytics:
		return loadRuns(m.ctx, m.repo)
	case screenEntry:
		return m.entry.setFocus(m.entry.focus)
	}
	return nil
}

func (m *Model) toggleHelp() tea.Cmd {
	if m.screen == screenHelp {
		m.screen = m.lastScreen
		return nil
	}
	m.lastScreen = m.screen
	m.screen = screenHelp
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(op string, err error) {
	m.logger.Error(op, "err", err)
	m.status = fmt.Sprintf("%s: %v", op, err)
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.WindowTitle = "runlog"
	return v
}

func (m *Model) render() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.tabs() + "\n\n")

	switch m.screen {
	case screenEntry:
		b.WriteString(m.entry.view())
	case screenList:
		b.WriteString(m.list.view())
	case screenAnalytics:
		b.WriteString(statsView(m.stats, m.goal))
	case screenHelp:
		b.WriteString(helpView(m.opts.DBPath))
	}
	b.WriteString("\n\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(styles.ErrorStyle.Render(m.status))
		} else {
			b.WriteString(styles.SuccessStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	if m.navigating {
		b.WriteString(styles.WarningStyle.Render("NAV") + " ")
	}
	b.WriteString(m.help.ShortHelpView(m.keys.bindings(m.screen, m.navigating)))
	return b.String()
}

func (m *Model) tabs() string {
	tabs := []screen{screenEntry, screenList, screenAnalytics}
	parts := make([]string, 0, len(tabs))
	for i, s := range tabs {
		label := fmt.Sprintf("%d %s", i+1, s)
		if s == m.screen || (m.screen == screenHelp && s == m.lastScreen) {
			parts = append(parts, styles.TabActiveStyle.Render(label))
		} else {
			parts = append(parts, styles.TabStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
