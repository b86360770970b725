package demo

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lazynav/internal/history"
	"github.com/jask/lazynav/nav"
	"github.com/jask/lazynav/widgets"
)

const recentVisitLimit = 50

// HistoryScreen lists the most recent link activations from the visit
// store, newest first.
type HistoryScreen struct {
	ctx     context.Context
	store   *history.Store
	visits  []history.Visit
	loaded  bool
	loadErr string
}

func NewHistoryScreen(ctx context.Context, store *history.Store) *HistoryScreen {
	return &HistoryScreen{ctx: ctx, store: store}
}

func (s *HistoryScreen) Title() string { return "History" }
func (s *HistoryScreen) Scope() string { return "screen:history" }

func (s *HistoryScreen) InitScreen() tea.Cmd { return s.loadVisits() }

func (s *HistoryScreen) loadVisits() tea.Cmd {
	return func() tea.Msg {
		visits, err := s.store.Recent(s.ctx, recentVisitLimit)
		if err != nil {
			return errMsg{err}
		}
		return visitsMsg(visits)
	}
}

func (s *HistoryScreen) clearVisits() tea.Cmd {
	return func() tea.Msg {
		if err := s.store.Clear(s.ctx); err != nil {
			return errMsg{err}
		}
		return clearedMsg{}
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (nav.Screen, tea.Cmd, bool) {
	switch typed := msg.(type) {
	case visitsMsg:
		s.visits = typed
		s.loaded = true
		s.loadErr = ""
		return s, nil, false
	case clearedMsg:
		return s, tea.Batch(s.loadVisits(), nav.StatusCmd("History cleared")), false
	case errMsg:
		s.loaded = true
		s.loadErr = typed.Error()
		return s, nav.ErrorCmd(typed), false
	case tea.KeyMsg:
		switch typed.String() {
		case "esc":
			return s, nil, true
		case "r":
			return s, s.loadVisits(), false
		case "c":
			return s, s.clearVisits(), false
		}
	}
	return s, nil, false
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	switch {
	case !s.loaded:
		b.WriteString("Loading…")
	case s.loadErr != "":
		b.WriteString("Load failed: " + s.loadErr)
	case len(s.visits) == 0:
		b.WriteString("No visits recorded yet.")
	default:
		for _, v := range s.visits {
			b.WriteString(fmt.Sprintf("%s  %s\n", v.SeenAt.Local().Format("02 Jan 15:04"), v.Title))
		}
	}
	return widgets.Box{
		Title:   "History",
		Content: strings.TrimRight(b.String(), "\n"),
		Footer:  "esc back · r reload · c clear",
		Focused: true,
	}.Render(width, height)
}
