package demo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/lazynav/internal/history"
	"github.com/jask/lazynav/nav"
)

func newTestStore(t *testing.T) *history.Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	migrations, err := filepath.Abs(filepath.Join("..", "history", "migrations"))
	require.NoError(t, err)
	require.NoError(t, history.RunMigrations(dbPath, migrations))
	db, err := history.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return history.NewStore(db)
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHistoryScreenLoadsRecentVisits(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	store := newTestStore(t)
	require.NoError(t, store.Record(ctx, "id-1", "History", history.Now()))
	require.NoError(t, store.Record(ctx, "id-2", "Stats", history.Now().Add(time.Second)))

	s := NewHistoryScreen(ctx, store)
	cmd := s.InitScreen()
	require.NotNil(t, cmd)

	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	_, cmd, pop := s.Update(msgs[0])
	require.False(t, pop)
	require.Nil(t, cmd)

	view := ansi.Strip(s.View(60, 16))
	require.Contains(t, view, "History")
	require.Contains(t, view, "Stats")
}

func TestHistoryScreenClearReloadsEmpty(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	store := newTestStore(t)
	require.NoError(t, store.Record(ctx, "id-1", "History", history.Now()))

	s := NewHistoryScreen(ctx, store)
	for _, m := range drain(s.InitScreen()) {
		_, _, _ = s.Update(m)
	}

	_, clearCmd, pop := s.Update(keyRunes('c'))
	require.False(t, pop)
	require.NotNil(t, clearCmd)

	sawStatus := false
	pending := drain(clearCmd)
	for len(pending) > 0 {
		msg := pending[0]
		pending = pending[1:]
		if status, ok := msg.(nav.StatusMsg); ok {
			require.Equal(t, "History cleared", status.Text)
			sawStatus = true
			continue
		}
		_, next, _ := s.Update(msg)
		pending = append(pending, drain(next)...)
	}
	require.True(t, sawStatus)

	view := ansi.Strip(s.View(60, 16))
	require.Contains(t, view, "No visits recorded yet.")
}

func TestHistoryScreenEscRequestsPop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewHistoryScreen(ctx, newTestStore(t))
	_, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, pop)
}
