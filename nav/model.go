package nav

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Model is the root Bubble Tea model. It owns the screen stack, routes
// messages to the top screen, and turns pop requests into
// ScreenPoppedMsg deliveries so that link components can reset their
// activation flags.
type Model struct {
	width     int
	height    int
	appName   string
	screens   ScreenStack
	keys      *KeyRegistry
	status    string
	statusErr bool
	quitting  bool
	log       zerolog.Logger
}

type Option func(*Model)

func WithAppName(name string) Option {
	return func(m *Model) { m.appName = name }
}

func WithLogger(log zerolog.Logger) Option {
	return func(m *Model) { m.log = log }
}

func NewModel(root Screen, keys *KeyRegistry, opts ...Option) Model {
	if keys == nil {
		keys = NewKeyRegistry(DefaultBindings())
	}
	m := Model{
		appName: "lazynav",
		keys:    keys,
		status:  "Ready",
		width:   100,
		height:  32,
		log:     zerolog.Nop(),
	}
	m.screens.Push(root, "")
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if init, ok := m.screens.Top().(Initializer); ok {
		return init.InitScreen()
	}
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return "app"
}

// Depth reports the stack depth including the root screen.
func (m Model) Depth() int {
	return m.screens.Len()
}

// Top exposes the active screen, mainly for tests and status rendering.
func (m Model) Top() Screen {
	return m.screens.Top()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		if msg.Screen == nil {
			return m, nil
		}
		m.screens.Push(msg.Screen, msg.Source)
		m.log.Debug().Str("screen", msg.Screen.Title()).Str("source", msg.Source).Int("depth", m.screens.Len()).Msg("push")
		if init, ok := msg.Screen.(Initializer); ok {
			return m, init.InitScreen()
		}
		return m, nil
	case PopScreenMsg:
		return m.popTop(nil)
	case ReplaceScreenMsg:
		if msg.Screen == nil {
			return m, nil
		}
		dismissed := m.screens.TopSource()
		m.screens.replaceTop(msg.Screen, msg.Source)
		m.log.Debug().Str("screen", msg.Screen.Title()).Msg("replace")
		cmds := make([]tea.Cmd, 0, 2)
		if dismissed != "" {
			cmds = append(cmds, poppedCmd(dismissed))
		}
		if init, ok := msg.Screen.(Initializer); ok {
			cmds = append(cmds, init.InitScreen())
		}
		return m, tea.Batch(cmds...)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		top := m.screens.Top()
		if top == nil {
			return m, nil
		}
		next, cmd, pop := top.Update(msg)
		if pop {
			return m.popTop(cmd)
		}
		if next != nil {
			m.screens.setTopScreen(next)
		}
		if cmd != nil {
			return m, cmd
		}
		if capturer, ok := m.screens.Top().(InputCapturer); ok && capturer.CapturingInput() {
			return m, nil
		}
		if m.keys.IsAction(msg, "quit", m.ActiveScope()) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			return m.popTop(cmd)
		}
		if next != nil {
			m.screens.setTopScreen(next)
		}
		return m, cmd
	}
	return m, nil
}

// popTop removes the top screen and notifies the exposed screen which
// source was dismissed, so the owning link deactivates. extra is run in
// the same batch, preserving any command the popped screen returned.
func (m Model) popTop(extra tea.Cmd) (tea.Model, tea.Cmd) {
	popped, source := m.screens.Pop()
	if popped == nil {
		if extra != nil {
			return m, extra
		}
		return m, nil
	}
	m.log.Debug().Str("screen", popped.Title()).Str("source", source).Int("depth", m.screens.Len()).Msg("pop")
	cmds := make([]tea.Cmd, 0, 2)
	if extra != nil {
		cmds = append(cmds, extra)
	}
	cmds = append(cmds, poppedCmd(source))
	return m, tea.Batch(cmds...)
}

func poppedCmd(source string) tea.Cmd {
	return func() tea.Msg { return ScreenPoppedMsg{Source: source} }
}
