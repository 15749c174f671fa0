package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/raphi011/runlog/internal/run"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), DBFileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newRun(t *testing.T, date run.Date, hour int, miles float64, note string) run.Run {
	t.Helper()

	r, err := run.New(date, run.TimeOfDay{Hour: hour, Minute: 15, Second: 30}, miles, note)
	require.NoError(t, err)
	return r
}

func TestStore_InsertAndAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openTestStore(t)

	day := run.NewDate(2026, time.October, 10)
	older := newRun(t, day.AddDays(-1), 7, 2.5, "")
	morning := newRun(t, day, 6, 1.25, "easy")
	evening := newRun(t, day, 19, 4, "intervals")

	for _, r := range []*run.Run{&older, &morning, &evening} {
		id, err := store.Insert(ctx, r)
		require.NoError(t, err)
		require.Positive(t, id)
		require.Equal(t, id, r.ID)
	}

	runs, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// most recent first
	require.Equal(t, evening.ID, runs[0].ID)
	require.Equal(t, morning.ID, runs[1].ID)
	require.Equal(t, older.ID, runs[2].ID)

	got := runs[1]
	require.Equal(t, day, got.Date)
	require.Equal(t, run.TimeOfDay{Hour: 6, Minute: 15, Second: 30}, got.TimeStarted)
	require.InDelta(t, 1.25, got.DistanceMiles, 1e-9)
	require.Equal(t, "easy", got.Note)
	require.True(t, morning.CreatedAt.Truncate(time.Second).Equal(got.CreatedAt))

	require.Empty(t, runs[2].Note)
}

func TestStore_DuplicateDateTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openTestStore(t)

	day := run.NewDate(2026, time.October, 10)
	first := newRun(t, day, 7, 3, "")
	second := newRun(t, day, 7, 5, "same start")

	_, err := store.Insert(ctx, &first)
	require.NoError(t, err)

	_, err = store.Insert(ctx, &second)
	require.ErrorIs(t, err, ErrDuplicateRun)

	runs, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
}

func TestStore_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openTestStore(t)

	day := run.NewDate(2026, time.October, 10)
	r := newRun(t, day, 7, 3, "before")
	_, err := store.Insert(ctx, &r)
	require.NoError(t, err)

	r.DistanceMiles = 6.2
	r.Note = ""
	r.Date = day.AddDays(-2)
	require.NoError(t, store.Update(ctx, r))

	runs, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, day.AddDays(-2), runs[0].Date)
	require.InDelta(t, 6.2, runs[0].DistanceMiles, 1e-9)
	require.Empty(t, runs[0].Note)
}

func TestStore_UpdateErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openTestStore(t)

	day := run.NewDate(2026, time.October, 10)

	unsaved := newRun(t, day, 7, 3, "")
	require.ErrorIs(t, store.Update(ctx, unsaved), ErrMissingID)

	unsaved.ID = 999
	require.ErrorIs(t, store.Update(ctx, unsaved), ErrNotFound)

	a := newRun(t, day, 7, 3, "")
	b := newRun(t, day, 8, 3, "")
	_, err := store.Insert(ctx, &a)
	require.NoError(t, err)
	_, err = store.Insert(ctx, &b)
	require.NoError(t, err)

	b.TimeStarted = a.TimeStarted
	require.ErrorIs(t, store.Update(ctx, b), ErrDuplicateRun)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openTestStore(t)

	r := newRun(t, run.NewDate(2026, time.October, 10), 7, 3, "")
	_, err := store.Insert(ctx, &r)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, r.ID))
	require.ErrorIs(t, store.Delete(ctx, r.ID), ErrNotFound)

	runs, err := store.All(ctx)
	require.NoError(t, err)
	require.Empty(t, runs)
}

func TestStore_Between(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openTestStore(t)

	base := run.NewDate(2026, time.September, 28)
	for i := 0; i < 6; i++ {
		r := newRun(t, base.AddDays(i), 7, float64(i+1), "")
		_, err := store.Insert(ctx, &r)
		require.NoError(t, err)
	}

	runs, err := store.Between(ctx, base.AddDays(2), base.AddDays(4))
	require.NoError(t, err)
	require.Len(t, runs, 3)
	require.Equal(t, base.AddDays(4), runs[0].Date)
	require.Equal(t, base.AddDays(2), runs[2].Date)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), DBFileName)

	store, err := Open(ctx, path)
	require.NoError(t, err)
	r := newRun(t, run.NewDate(2026, time.October, 10), 7, 3, "persisted")
	_, err = store.Insert(ctx, &r)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// schema creation must be idempotent
	store, err = Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.Equal(t, path, store.Path())

	runs, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "persisted", runs[0].Note)
}
