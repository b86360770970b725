package link

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/lazynav/nav"
)

// Producer constructs the link's destination screen. It runs at most
// once per activation and never while the link is inactive.
type Producer func() nav.Screen

// ActivateHook observes a successful activation and may emit a
// follow-up command, for example to record the visit.
type ActivateHook func(linkID, title string) tea.Cmd

// Link binds a label to a lazily constructed destination screen.
//
// The zero value is not usable; construct with New, NewTitle, or
// NewTitleKey.
type Link struct {
	id       string
	label    LabelFunc
	producer Producer

	active bool
	dest   nav.Screen

	focused    bool
	keymap     KeyMap
	styles     Styles
	translator Translator
	locale     string
	onActivate ActivateHook
}

// Option configures a Link at construction time.
type Option func(*Link)

// WithKeyMap replaces the default activation binding.
func WithKeyMap(k KeyMap) Option {
	return func(l *Link) { l.keymap = k }
}

// WithStyles replaces the default label styles.
func WithStyles(s Styles) Option {
	return func(l *Link) { l.styles = s }
}

// WithTranslator resolves title keys through tr in the given locale.
// Links built with NewTitleKey fall back to the raw key without one.
func WithTranslator(tr Translator, locale string) Option {
	return func(l *Link) {
		l.translator = tr
		l.locale = locale
	}
}

// WithOnActivate registers a hook that runs after each activation.
func WithOnActivate(hook ActivateHook) Option {
	return func(l *Link) { l.onActivate = hook }
}

// New builds a link with an explicit label builder.
func New(producer Producer, label LabelFunc, opts ...Option) *Link {
	l := &Link{
		id:       uuid.NewString(),
		label:    label,
		producer: producer,
		keymap:   DefaultKeyMap(),
		styles:   DefaultStyles(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.label == nil {
		l.label = Title("")
	}
	return l
}

// NewTitle builds a link labeled with a fixed title. Equivalent to
// New(producer, Title(title), opts...).
func NewTitle(title string, producer Producer, opts ...Option) *Link {
	return New(producer, Title(title), opts...)
}

// NewTitleKey builds a link whose label is resolved from a message key
// through the translator supplied via WithTranslator. Without a
// translator the key itself is shown.
func NewTitleKey(msgKey string, producer Producer, opts ...Option) *Link {
	l := New(producer, nil, opts...)
	l.label = func() string {
		return resolveKey(l.translator, l.locale, msgKey)
	}
	return l
}

// ID returns the link's identity, used to match pop notifications to
// the activation that pushed the destination.
func (l *Link) ID() string { return l.id }

// Active reports whether the link currently presents its destination.
func (l *Link) Active() bool { return l.active }

// LabelText returns the current label text.
func (l *Link) LabelText() string { return l.label() }

// Focus marks the link as the current selection so it accepts the
// activation key.
func (l *Link) Focus() { l.focused = true }

// Blur removes focus.
func (l *Link) Blur() { l.focused = false }

// Focused reports whether the link has focus.
func (l *Link) Focused() bool { return l.focused }

// Activate constructs the destination and pushes it. The producer runs
// exactly once per activation; activating an already active link does
// nothing.
func (l *Link) Activate() tea.Cmd {
	if l.active || l.producer == nil {
		return nil
	}
	dest := l.producer()
	if dest == nil {
		return nil
	}
	l.active = true
	l.dest = dest

	cmds := []tea.Cmd{nav.PushFrom(l.id, dest)}
	if l.onActivate != nil {
		if cmd := l.onActivate(l.id, l.LabelText()); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Deactivate drops the constructed destination and clears the flag.
// The next activation constructs a fresh one.
func (l *Link) Deactivate() {
	l.active = false
	l.dest = nil
}

// Destination returns the screen constructed by the current
// activation. It never invokes the producer; while the link is
// inactive it reports false.
func (l *Link) Destination() (nav.Screen, bool) {
	if !l.active || l.dest == nil {
		return nil, false
	}
	return l.dest, true
}

// Update handles the activation key while focused and the pop
// notification for this link's destination.
func (l *Link) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if l.focused && key.Matches(msg, l.keymap.Activate) {
			return l.Activate()
		}
	case nav.ScreenPoppedMsg:
		if msg.Source == l.id {
			l.Deactivate()
		}
	}
	return nil
}

// View renders the label. The destination is never consulted, so
// drawing an inactive link cannot construct it.
func (l *Link) View() string {
	text := l.LabelText()
	switch {
	case l.focused:
		return l.styles.Focused.Render(text)
	case l.active:
		return l.styles.Open.Render(text)
	default:
		return l.styles.Normal.Render(text)
	}
}
