package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/runlog/internal/log"
	"github.com/raphi011/runlog/internal/run"
	"github.com/raphi011/runlog/internal/storage"
)

// Repository is the run store the session reads and writes.
type Repository interface {
	Insert(ctx context.Context, r *run.Run) (int64, error)
	All(ctx context.Context) ([]run.Run, error)
	Update(ctx context.Context, r run.Run) error
	Delete(ctx context.Context, id int64) error
}

type runsLoadedMsg struct {
	runs []run.Run
	err  error
}

type runSavedMsg struct {
	run    run.Run
	edited bool
	err    error
}

type runDeletedMsg struct {
	id  int64
	err error
}

type exportedMsg struct {
	path  string
	count int
	err   error
}

type copiedMsg struct {
	err error
}

func loadRuns(ctx context.Context, repo Repository) tea.Cmd {
	return func() tea.Msg {
		done := log.FromContext(ctx).Timed("load runs")
		runs, err := repo.All(ctx)
		done()
		return runsLoadedMsg{runs: runs, err: err}
	}
}

func insertRun(ctx context.Context, repo Repository, r run.Run) tea.Cmd {
	return func() tea.Msg {
		_, err := repo.Insert(ctx, &r)
		return runSavedMsg{run: r, err: err}
	}
}

func updateRun(ctx context.Context, repo Repository, r run.Run) tea.Cmd {
	return func() tea.Msg {
		err := repo.Update(ctx, r)
		return runSavedMsg{run: r, edited: true, err: err}
	}
}

func deleteRun(ctx context.Context, repo Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		return runDeletedMsg{id: id, err: repo.Delete(ctx, id)}
	}
}

func exportRuns(ctx context.Context, repo Repository, path string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		runs, err := repo.All(ctx)
		if err != nil {
			return exportedMsg{path: path, err: err}
		}
		err = storage.ExportRuns(path, runs, now)
		return exportedMsg{path: path, count: len(runs), err: err}
	}
}

func copyText(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}
