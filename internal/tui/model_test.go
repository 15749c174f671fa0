package tui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/runlog/internal/log"
	"github.com/raphi011/runlog/internal/run"
	"github.com/raphi011/runlog/internal/storage"
)

var testNow = time.Date(2026, time.October, 17, 7, 30, 0, 0, time.Local)

// fakeRepo is an in-memory Repository with the store's uniqueness rule.
type fakeRepo struct {
	runs   []run.Run
	nextID int64
	err    error
}

func (f *fakeRepo) Insert(_ context.Context, r *run.Run) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for _, existing := range f.runs {
		if existing.Date == r.Date && existing.TimeStarted == r.TimeStarted {
			return 0, storage.ErrDuplicateRun
		}
	}
	f.nextID++
	r.ID = f.nextID
	f.runs = append(f.runs, *r)
	return r.ID, nil
}

func (f *fakeRepo) All(context.Context) ([]run.Run, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]run.Run(nil), f.runs...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && run.Less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, r run.Run) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.runs {
		if f.runs[i].ID == r.ID {
			f.runs[i] = r
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.runs {
		if f.runs[i].ID == id {
			f.runs = append(f.runs[:i], f.runs[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeRepo) add(t *testing.T, date string, started string, miles float64, note string) {
	t.Helper()
	r, err := run.FromInput(run.Input{Date: date, Time: started, Distance: "1", Note: note}, testNow)
	if err != nil {
		t.Fatalf("FromInput: %v", err)
	}
	r.DistanceMiles = miles
	if _, err := f.Insert(context.Background(), &r); err != nil {
		t.Fatalf("Insert: %v", err)
	}
}

func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+q":
		return tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			r := rune(key[0])
			return tea.KeyPressMsg{Code: r, Text: key}
		}
		return tea.KeyPressMsg{}
	}
}

type testSession struct {
	t      *testing.T
	m      *Model
	repo   *fakeRepo
	copied string
	quit   bool
}

func newSession(t *testing.T, repo *fakeRepo) *testSession {
	t.Helper()
	return newSessionContext(t, context.Background(), repo)
}

func newSessionContext(t *testing.T, ctx context.Context, repo *fakeRepo) *testSession {
	t.Helper()
	if repo == nil {
		repo = &fakeRepo{}
	}
	s := &testSession{t: t, repo: repo}
	dir := t.TempDir()
	s.m = New(ctx, repo, Options{
		DataDir: dir,
		DBPath:  storage.DBPath(dir),
		Now:     func() time.Time { return testNow },
		Copy: func(text string) error {
			s.copied = text
			return nil
		},
	})
	s.run(s.m.Init())
	return s
}

// run executes cmd synchronously and feeds every resulting message back.
func (s *testSession) run(cmd tea.Cmd) {
	s.t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			s.run(c)
		}
	case tea.QuitMsg:
		s.quit = true
	case runsLoadedMsg, runSavedMsg, runDeletedMsg, exportedMsg, copiedMsg:
		_, next := s.m.Update(msg)
		s.run(next)
	}
}

func (s *testSession) press(keys ...string) {
	s.t.Helper()
	for _, k := range keys {
		_, cmd := s.m.Update(keyMsg(k))
		s.run(cmd)
	}
}

func (s *testSession) typeText(text string) {
	s.t.Helper()
	for _, r := range text {
		s.press(string(r))
	}
}

func TestNew_PrefillsEntryForm(t *testing.T) {
	s := newSession(t, nil)

	if s.m.screen != screenEntry {
		t.Errorf("screen = %v, want Quick Entry", s.m.screen)
	}
	in := s.m.entry.input()
	if in.Date != "2026-10-17" {
		t.Errorf("date = %q, want 2026-10-17", in.Date)
	}
	if in.Time != "07:30" {
		t.Errorf("time = %q, want 07:30", in.Time)
	}
	if s.m.entry.focus != fieldDistance {
		t.Errorf("focus = %d, want distance field", s.m.entry.focus)
	}
}

func TestEntry_SubmitInsertsRun(t *testing.T) {
	s := newSession(t, nil)

	s.typeText("3.5")
	s.press("tab")
	s.typeText("easy")
	s.press("enter")

	if len(s.repo.runs) != 1 {
		t.Fatalf("stored %d runs, want 1", len(s.repo.runs))
	}
	r := s.repo.runs[0]
	if r.DistanceMiles != 3.5 || r.Note != "easy" {
		t.Errorf("stored run = %+v", r)
	}
	if r.Date != run.NewDate(2026, time.October, 17) {
		t.Errorf("date = %v, want 2026-10-17", r.Date)
	}

	in := s.m.entry.input()
	if in.Distance != "" || in.Note != "" {
		t.Errorf("distance and note should be cleared, got %+v", in)
	}
	if in.Date != "2026-10-17" || in.Time != "07:30" {
		t.Errorf("date and time should be kept, got %+v", in)
	}
	if s.m.entry.focus != fieldDistance {
		t.Errorf("focus = %d, want distance field", s.m.entry.focus)
	}
	if !strings.Contains(s.m.status, "Logged 3.5 mi") {
		t.Errorf("status = %q", s.m.status)
	}
	if s.m.stats.TotalRuns != 1 {
		t.Errorf("analytics not refreshed, TotalRuns = %d", s.m.stats.TotalRuns)
	}
}

func TestEntry_ValidationErrorKeepsInput(t *testing.T) {
	tests := []struct {
		name     string
		distance string
		want     error
	}{
		{"empty", "", run.ErrDistanceRequired},
		{"not a number", "abc", run.ErrInvalidDistance},
		{"zero", "0", run.ErrDistanceNotPositive},
		{"too far", "250", run.ErrDistanceUnrealistic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, nil)
			s.typeText(tt.distance)
			s.press("enter")

			if len(s.repo.runs) != 0 {
				t.Fatalf("invalid input was stored")
			}
			if !errors.Is(s.m.entry.err, tt.want) {
				t.Errorf("err = %v, want %v", s.m.entry.err, tt.want)
			}
			if got := s.m.entry.input().Distance; got != tt.distance {
				t.Errorf("distance = %q, want %q retained", got, tt.distance)
			}
		})
	}
}

func TestEntry_TypingClearsError(t *testing.T) {
	s := newSession(t, nil)
	s.press("enter")
	if s.m.entry.err == nil {
		t.Fatal("expected an error for empty distance")
	}

	s.typeText("1")
	if s.m.entry.err != nil {
		t.Errorf("err = %v, want cleared after typing", s.m.entry.err)
	}
}

func TestEntry_DuplicateShowsError(t *testing.T) {
	repo := &fakeRepo{}
	repo.add(t, "2026-10-17", "07:30", 2, "")
	s := newSession(t, repo)

	s.typeText("4")
	s.press("enter")

	if len(repo.runs) != 1 {
		t.Errorf("stored %d runs, want 1", len(repo.runs))
	}
	if !errors.Is(s.m.entry.err, storage.ErrDuplicateRun) {
		t.Errorf("err = %v, want duplicate error", s.m.entry.err)
	}
	if s.m.entry.input().Distance != "4" {
		t.Error("input should be retained after a duplicate")
	}
}

func TestEntry_FocusCycles(t *testing.T) {
	s := newSession(t, nil)

	s.press("tab")
	if s.m.entry.focus != fieldNote {
		t.Errorf("after tab focus = %d, want note", s.m.entry.focus)
	}
	s.press("tab")
	if s.m.entry.focus != fieldDate {
		t.Errorf("tab should wrap to date, got %d", s.m.entry.focus)
	}
	s.press("shift+tab")
	if s.m.entry.focus != fieldNote {
		t.Errorf("shift+tab should wrap to note, got %d", s.m.entry.focus)
	}
	s.press("up")
	if s.m.entry.focus != fieldDistance {
		t.Errorf("up should move back to distance, got %d", s.m.entry.focus)
	}
}

func TestNavigation(t *testing.T) {
	t.Run("switches screens", func(t *testing.T) {
		s := newSession(t, nil)

		s.press("esc", "2")
		if s.m.screen != screenList {
			t.Errorf("screen = %v, want Runs", s.m.screen)
		}
		s.press("esc", "3")
		if s.m.screen != screenAnalytics {
			t.Errorf("screen = %v, want Analytics", s.m.screen)
		}
		s.press("esc", "1")
		if s.m.screen != screenEntry {
			t.Errorf("screen = %v, want Quick Entry", s.m.screen)
		}
	})

	t.Run("q types on entry but quits elsewhere", func(t *testing.T) {
		s := newSession(t, nil)
		s.press("tab")
		s.press("q")
		if s.quit {
			t.Fatal("q quit from Quick Entry")
		}
		if s.m.entry.input().Note != "q" {
			t.Errorf("note = %q, want q", s.m.entry.input().Note)
		}

		s.press("esc", "2", "q")
		if !s.quit {
			t.Error("q should quit from the run list")
		}
	})

	t.Run("ctrl+q quits anywhere", func(t *testing.T) {
		for _, k := range []string{"ctrl+q", "ctrl+c"} {
			s := newSession(t, nil)
			s.press(k)
			if !s.quit || !s.m.quitting {
				t.Errorf("%s did not quit", k)
			}
		}
	})

	t.Run("second esc clears the form", func(t *testing.T) {
		s := newSession(t, nil)
		s.typeText("5")
		s.press("esc", "esc")
		if s.m.navigating {
			t.Error("should leave navigation mode")
		}
		if got := s.m.entry.input().Distance; got != "" {
			t.Errorf("distance = %q, want cleared", got)
		}
	})

	t.Run("other key cancels navigation", func(t *testing.T) {
		s := newSession(t, nil)
		s.press("esc", "z")
		if s.m.navigating || s.m.screen != screenEntry {
			t.Errorf("navigating = %v, screen = %v", s.m.navigating, s.m.screen)
		}
		if s.m.entry.input().Distance != "" {
			t.Error("cancelling key should not be typed")
		}
	})

	t.Run("help returns to previous screen", func(t *testing.T) {
		s := newSession(t, nil)
		s.press("esc", "3", "?")
		if s.m.screen != screenHelp {
			t.Fatalf("screen = %v, want Help", s.m.screen)
		}
		if !strings.Contains(s.m.render(), "Data file") {
			t.Error("help should show the data file location")
		}
		s.press("h")
		if s.m.screen != screenAnalytics {
			t.Errorf("screen = %v, want Analytics", s.m.screen)
		}
	})
}

func seededRepo(t *testing.T) *fakeRepo {
	t.Helper()
	repo := &fakeRepo{}
	repo.add(t, "2026-10-15", "06:00", 3, "tempo")
	repo.add(t, "2026-10-16", "06:00", 2, "hills")
	repo.add(t, "2026-10-17", "06:00", 5, "long run")
	return repo
}

func TestList_EditRun(t *testing.T) {
	repo := seededRepo(t)
	s := newSession(t, repo)

	s.press("esc", "2", "down", "e")
	if s.m.screen != screenEntry || !s.m.entry.editing() {
		t.Fatalf("expected edit form, screen = %v", s.m.screen)
	}
	in := s.m.entry.input()
	if in.Date != "2026-10-16" || in.Distance != "2" || in.Note != "hills" {
		t.Fatalf("form = %+v", in)
	}
	created := s.m.entry.edit.CreatedAt

	s.press("backspace")
	s.typeText("4")
	s.press("enter")

	if s.m.screen != screenList {
		t.Errorf("screen = %v, want Runs after edit", s.m.screen)
	}
	if s.m.entry.editing() {
		t.Error("form should leave edit mode")
	}
	if len(repo.runs) != 3 {
		t.Fatalf("stored %d runs, want 3", len(repo.runs))
	}
	for _, r := range repo.runs {
		if r.Note == "hills" {
			if r.DistanceMiles != 4 {
				t.Errorf("distance = %v, want 4", r.DistanceMiles)
			}
			if !r.CreatedAt.Equal(created) {
				t.Error("edit changed CreatedAt")
			}
		}
	}
}

func TestList_DeleteClampsSelection(t *testing.T) {
	repo := seededRepo(t)
	s := newSession(t, repo)

	s.press("esc", "2", "down", "down")
	if s.m.list.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", s.m.list.cursor)
	}
	s.press("d")

	if len(repo.runs) != 2 {
		t.Fatalf("stored %d runs, want 2", len(repo.runs))
	}
	if s.m.list.cursor != 1 {
		t.Errorf("cursor = %d, want clamped to 1", s.m.list.cursor)
	}
	if r, _ := s.m.list.selected(); r.Note != "hills" {
		t.Errorf("selected = %q, want hills", r.Note)
	}
}

func TestList_DeleteFailureKeepsRuns(t *testing.T) {
	repo := seededRepo(t)
	s := newSession(t, repo)
	s.press("esc", "2")

	repo.err = errors.New("disk full")
	s.press("d")

	if len(s.m.list.runs) != 3 {
		t.Errorf("list has %d runs, want 3", len(s.m.list.runs))
	}
	if !s.m.statusErr || !strings.Contains(s.m.status, "disk full") {
		t.Errorf("status = %q", s.m.status)
	}
}

func TestList_Filter(t *testing.T) {
	s := newSession(t, seededRepo(t))

	s.press("esc", "2", "/")
	s.typeText("hil")
	if len(s.m.list.visible) != 1 {
		t.Fatalf("visible = %d, want 1", len(s.m.list.visible))
	}
	if r, _ := s.m.list.selected(); r.Note != "hills" {
		t.Errorf("selected = %q, want hills", r.Note)
	}

	s.press("backspace")
	if s.m.list.filter != "hi" {
		t.Errorf("filter = %q, want hi", s.m.list.filter)
	}

	s.press("esc")
	if s.m.list.filtering || s.m.list.filter != "" {
		t.Error("esc should clear the filter")
	}
	if len(s.m.list.visible) != 3 {
		t.Errorf("visible = %d, want 3", len(s.m.list.visible))
	}
	if s.m.navigating {
		t.Error("esc in the filter should not enter navigation mode")
	}
}

func TestList_FilterByDate(t *testing.T) {
	s := newSession(t, seededRepo(t))

	s.press("esc", "2", "/")
	s.typeText("10-15")
	s.press("enter")

	if s.m.list.filtering {
		t.Error("enter should end filter input")
	}
	if r, ok := s.m.list.selected(); !ok || r.Note != "tempo" {
		t.Errorf("selected = %+v, want tempo run", r)
	}
}

func TestList_Export(t *testing.T) {
	s := newSession(t, seededRepo(t))

	s.press("esc", "2", "x")

	path := s.m.opts.ExportPath
	if filepath.Base(path) != storage.ExportFileName {
		t.Errorf("export path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "long run") {
		t.Error("export should contain the runs")
	}
	if !strings.Contains(s.m.status, "Exported 3 runs") {
		t.Errorf("status = %q", s.m.status)
	}
}

func TestAnalytics_View(t *testing.T) {
	s := newSession(t, seededRepo(t))
	s.press("esc", "3")

	if s.m.stats.CurrentStreak != 3 {
		t.Errorf("current streak = %d, want 3", s.m.stats.CurrentStreak)
	}
	out := s.m.render()
	for _, want := range []string{"Current streak", "3 days", "Year goal", "Last 14 days", "10/17", "Monthly"} {
		if !strings.Contains(out, want) {
			t.Errorf("analytics view missing %q", want)
		}
	}
}

func TestAnalytics_CopySummary(t *testing.T) {
	s := newSession(t, seededRepo(t))
	s.press("esc", "3", "y")

	if !strings.Contains(s.copied, "Current streak: 3 days") {
		t.Errorf("copied = %q", s.copied)
	}
	if !strings.Contains(s.copied, "Total: 3 runs, 10.0 mi") {
		t.Errorf("copied = %q", s.copied)
	}
	if s.m.status != "Summary copied to clipboard" {
		t.Errorf("status = %q", s.m.status)
	}
}

func TestAnalytics_LoadErrorKeepsPreviousData(t *testing.T) {
	repo := seededRepo(t)
	s := newSession(t, repo)

	repo.err = errors.New("database is locked")
	s.press("esc", "3", "r")

	if s.m.stats.TotalRuns != 3 {
		t.Errorf("TotalRuns = %d, want previous value 3", s.m.stats.TotalRuns)
	}
	if !s.m.statusErr {
		t.Error("load failure should set an error status")
	}
}

func TestView_AltScreen(t *testing.T) {
	s := newSession(t, nil)
	v := s.m.View()
	if !v.AltScreen {
		t.Error("view should use the alternate screen")
	}
	if v.WindowTitle != "runlog" {
		t.Errorf("title = %q", v.WindowTitle)
	}
}

func TestSession_LogsToContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.New(&buf, "debug")
	if err != nil {
		t.Fatal(err)
	}
	s := newSessionContext(t, log.WithLogger(context.Background(), logger), seededRepo(t))

	s.typeText("2")
	s.press("enter")

	got := buf.String()
	for _, want := range []string{"load runs", "took=", "run logged", "component=tui"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output missing %q:\n%s", want, got)
		}
	}
}
