package nav

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// PushScreenMsg asks the host to push a destination. Source identifies
// the component that produced the destination; it is echoed back in
// ScreenPoppedMsg when the destination is dismissed.
type PushScreenMsg struct {
	Screen Screen
	Source string
}

type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen without growing the stack. The
// replaced screen's source is notified as popped.
type ReplaceScreenMsg struct {
	Screen Screen
	Source string
}

// ScreenPoppedMsg is delivered to the newly exposed screen after a pop
// or replace, carrying the source tag of the dismissed entry.
type ScreenPoppedMsg struct {
	Source string
}

func Push(s Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// PushFrom pushes a destination tagged with the originating component's
// ID so that dismissal can be routed back to it.
func PushFrom(source string, s Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s, Source: source} }
}

func Pop() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

func Replace(s Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
