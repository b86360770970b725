package nav

import tea "github.com/charmbracelet/bubbletea"

// Screen is a navigable destination. Update returns the replacement
// screen, an optional command, and true when the screen wants to be
// popped off the stack.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Initializer is implemented by screens that need a command run when
// they are pushed.
type Initializer interface {
	InitScreen() tea.Cmd
}

// InputCapturer is implemented by screens that route keys into a text
// input. While capturing, the host must not treat unconsumed keys as
// global actions.
type InputCapturer interface {
	CapturingInput() bool
}
