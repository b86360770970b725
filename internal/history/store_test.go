package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(dbPath, migrations))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestRecordAndRecent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	store := newTestStore(t)

	base := Now()
	require.NoError(t, store.Record(ctx, "link-a", "History", base.Add(-2*time.Minute)))
	require.NoError(t, store.Record(ctx, "link-b", "Stats", base.Add(-time.Minute)))
	require.NoError(t, store.Record(ctx, "link-a", "History", base))

	visits, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 3)
	require.Equal(t, "History", visits[0].Title)
	require.Equal(t, "Stats", visits[1].Title)
	require.True(t, visits[0].SeenAt.After(visits[1].SeenAt))

	limited, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
}

func TestCountsByTitle(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	store := newTestStore(t)

	at := Now()
	require.NoError(t, store.Record(ctx, "run1-uuid", "History", at.Add(-3*time.Minute)))
	require.NoError(t, store.Record(ctx, "run2-uuid", "History", at.Add(-2*time.Minute)))
	require.NoError(t, store.Record(ctx, "run2-uuid", "Stats", at.Add(-time.Minute)))

	counts, err := store.CountsByTitle(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	// different link ids, same title, one bucket
	require.Equal(t, TitleCount{Title: "History", Visits: 2}, counts[0])
	require.Equal(t, TitleCount{Title: "Stats", Visits: 1}, counts[1])
}

func TestClear(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	store := newTestStore(t)

	require.NoError(t, store.Record(ctx, "link-a", "History", Now()))
	require.NoError(t, store.Clear(ctx))

	visits, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, visits)
}
