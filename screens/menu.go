package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lazynav/link"
	"github.com/jask/lazynav/nav"
	"github.com/jask/lazynav/widgets"
)

// Menu lists links and moves focus among them. Enter activates the
// focused link, "/" opens the finder popup, esc asks the host to pop.
type Menu struct {
	title  string
	scope  string
	links  []*link.Link
	cursor int
	picker *Picker
}

func NewMenu(title string, links ...*link.Link) *Menu {
	m := &Menu{
		title: title,
		scope: "menu:" + slug(title),
		links: links,
	}
	if len(m.links) > 0 {
		m.links[0].Focus()
	}
	return m
}

func (m *Menu) Title() string { return m.title }
func (m *Menu) Scope() string { return m.scope }

// CapturingInput reports whether the finder popup owns the keyboard.
func (m *Menu) CapturingInput() bool { return m.picker != nil }

// Links exposes the menu's links for wiring and tests.
func (m *Menu) Links() []*link.Link { return m.links }

func (m *Menu) Update(msg tea.Msg) (nav.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case nav.ScreenPoppedMsg:
		// every link checks the source against its own id
		for _, l := range m.links {
			l.Update(msg)
		}
		return m, nil, false

	case tea.KeyMsg:
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		switch msg.String() {
		case "up", "k":
			m.moveCursor(-1)
			return m, nil, false
		case "down", "j":
			m.moveCursor(1)
			return m, nil, false
		case "/":
			m.openPicker()
			return m, nil, false
		case "esc":
			return m, nil, true
		default:
			if l := m.focusedLink(); l != nil {
				if cmd := l.Update(msg); cmd != nil {
					return m, cmd, false
				}
			}
			return m, nil, false
		}
	}
	return m, nil, false
}

func (m *Menu) updatePicker(msg tea.Msg) (nav.Screen, tea.Cmd, bool) {
	result, cmd := m.picker.Update(msg)
	switch result.Action {
	case PickerCancelled:
		m.picker = nil
		return m, cmd, false
	case PickerSelected:
		m.picker = nil
		for i, l := range m.links {
			if l.ID() == result.Item.ID {
				m.setCursor(i)
				return m, l.Activate(), false
			}
		}
		return m, cmd, false
	default:
		return m, cmd, false
	}
}

func (m *Menu) View(width, height int) string {
	rows := make([]string, 0, len(m.links))
	for i, l := range m.links {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		rows = append(rows, prefix+l.View())
	}
	if len(rows) == 0 {
		rows = append(rows, "  (no links)")
	}
	base := widgets.Box{
		Title:   m.title,
		Content: strings.Join(rows, "\n"),
		Focused: m.picker == nil,
	}.Render(width, height)

	if m.picker != nil {
		popupWidth := min(44, max(24, width-8))
		return widgets.RenderPopup(base, m.picker.View(popupWidth, 8), width, height)
	}
	return base
}

func (m *Menu) focusedLink() *link.Link {
	if m.cursor < 0 || m.cursor >= len(m.links) {
		return nil
	}
	return m.links[m.cursor]
}

func (m *Menu) moveCursor(delta int) {
	m.setCursor(m.cursor + delta)
}

func (m *Menu) setCursor(idx int) {
	if len(m.links) == 0 {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(m.links)-1 {
		idx = len(m.links) - 1
	}
	if l := m.focusedLink(); l != nil {
		l.Blur()
	}
	m.cursor = idx
	m.links[m.cursor].Focus()
}

func (m *Menu) openPicker() {
	items := make([]PickerItem, 0, len(m.links))
	for _, l := range m.links {
		hint := ""
		if l.Active() {
			hint = "open"
		}
		items = append(items, PickerItem{
			ID:    l.ID(),
			Label: l.LabelText(),
			Hint:  hint,
		})
	}
	m.picker = NewPicker(items)
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "-")
}
