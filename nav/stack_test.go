package nav

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type plainScreen struct{ name string }

func (s *plainScreen) Title() string        { return s.name }
func (s *plainScreen) Scope() string        { return "screen:" + s.name }
func (s *plainScreen) View(int, int) string { return s.name }
func (s *plainScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	return s, nil, false
}

func TestStackRootNeverPops(t *testing.T) {
	var st ScreenStack
	st.Push(&plainScreen{name: "root"}, "")

	if screen, _ := st.Pop(); screen != nil {
		t.Fatalf("root should never pop")
	}
	if st.Len() != 1 {
		t.Fatalf("depth = %d, want 1", st.Len())
	}
}

func TestStackPopReturnsSource(t *testing.T) {
	var st ScreenStack
	st.Push(&plainScreen{name: "root"}, "")
	st.Push(&plainScreen{name: "child"}, "link-1")

	screen, source := st.Pop()
	if screen == nil || screen.Title() != "child" {
		t.Fatalf("pop should return the pushed screen")
	}
	if source != "link-1" {
		t.Fatalf("source = %q, want link-1", source)
	}
	if st.Top().Title() != "root" {
		t.Fatalf("root should be exposed after pop")
	}
}

func TestStackTitles(t *testing.T) {
	var st ScreenStack
	st.Push(&plainScreen{name: "root"}, "")
	st.Push(&plainScreen{name: "child"}, "x")

	titles := st.Titles()
	if len(titles) != 2 || titles[0] != "root" || titles[1] != "child" {
		t.Fatalf("titles = %v", titles)
	}
}
