package demo

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lazynav/internal/history"
	"github.com/jask/lazynav/nav"
	"github.com/jask/lazynav/widgets"
)

// StatsScreen aggregates visits per destination title into a table and
// a bar chart.
type StatsScreen struct {
	ctx    context.Context
	store  *history.Store
	table  table.Model
	counts []history.TitleCount
	loaded bool
}

func NewStatsScreen(ctx context.Context, store *history.Store) *StatsScreen {
	cols := []table.Column{
		{Title: "Destination", Width: 28},
		{Title: "Visits", Width: 8},
	}
	t := table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(6))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Bold(true)
	t.SetStyles(styles)
	return &StatsScreen{ctx: ctx, store: store, table: t}
}

func (s *StatsScreen) Title() string { return "Stats" }
func (s *StatsScreen) Scope() string { return "screen:stats" }

func (s *StatsScreen) InitScreen() tea.Cmd { return s.loadCounts() }

func (s *StatsScreen) loadCounts() tea.Cmd {
	return func() tea.Msg {
		counts, err := s.store.CountsByTitle(s.ctx)
		if err != nil {
			return errMsg{err}
		}
		return countsMsg(counts)
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (nav.Screen, tea.Cmd, bool) {
	switch typed := msg.(type) {
	case countsMsg:
		s.counts = typed
		s.loaded = true
		rows := make([]table.Row, 0, len(typed))
		for _, c := range typed {
			rows = append(rows, table.Row{c.Title, strconv.Itoa(c.Visits)})
		}
		s.table.SetRows(rows)
		return s, nil, false
	case errMsg:
		s.loaded = true
		return s, nav.ErrorCmd(typed), false
	case tea.KeyMsg:
		switch typed.String() {
		case "esc":
			return s, nil, true
		case "r":
			return s, s.loadCounts(), false
		}
		var cmd tea.Cmd
		s.table, cmd = s.table.Update(msg)
		return s, cmd, false
	}
	return s, nil, false
}

func (s *StatsScreen) View(width, height int) string {
	contentWidth := max(1, width-4)
	s.table.SetWidth(contentWidth)

	var b strings.Builder
	switch {
	case !s.loaded:
		b.WriteString("Loading…")
	case len(s.counts) == 0:
		b.WriteString("No visits recorded yet.")
	default:
		b.WriteString(s.table.View())
		b.WriteString("\n\n")
		chartRows := make([]widgets.BarRow, 0, len(s.counts))
		for _, c := range s.counts {
			chartRows = append(chartRows, widgets.BarRow{Label: c.Title, Value: c.Visits})
		}
		chart := widgets.BarChart{Rows: chartRows, LabelWidth: 14}
		b.WriteString(chart.Render(contentWidth, max(1, height-12)))
	}
	return widgets.Box{
		Title:   "Stats",
		Content: b.String(),
		Footer:  "esc back · r reload",
		Focused: true,
	}.Render(width, height)
}
