package demo

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lazynav/internal/config"
	"github.com/jask/lazynav/internal/i18n"
	"github.com/jask/lazynav/link"
	"github.com/jask/lazynav/nav"
	"github.com/jask/lazynav/widgets"
)

// SettingsScreen cycles the UI locale and persists it to the config
// file. The saved locale takes effect on the next start.
type SettingsScreen struct {
	cfg   config.Config
	tr    link.Translator
	index int
}

func NewSettingsScreen(cfg config.Config, tr link.Translator) *SettingsScreen {
	index := 0
	for i, code := range i18n.Locales() {
		if code == cfg.UI.Locale {
			index = i
			break
		}
	}
	return &SettingsScreen{cfg: cfg, tr: tr, index: index}
}

func (s *SettingsScreen) Title() string { return "Settings" }
func (s *SettingsScreen) Scope() string { return "screen:settings" }

func (s *SettingsScreen) locale() string { return i18n.Locales()[s.index] }

func (s *SettingsScreen) text(key string) string {
	if s.tr == nil {
		return key
	}
	out, err := s.tr.Translate(s.locale(), key)
	if err != nil || out == "" {
		return key
	}
	return out
}

func (s *SettingsScreen) saveLocale() tea.Cmd {
	cfg := s.cfg
	return func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			return errMsg{err}
		}
		return savedMsg{}
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (nav.Screen, tea.Cmd, bool) {
	switch typed := msg.(type) {
	case savedMsg:
		return s, nav.StatusCmd(s.text("settings.saved") + " (restart to apply)"), false
	case errMsg:
		return s, nav.ErrorCmd(typed), false
	case tea.KeyMsg:
		switch typed.String() {
		case "esc":
			return s, nil, true
		case "enter", " ":
			s.index = (s.index + 1) % len(i18n.Locales())
			s.cfg.UI.Locale = s.locale()
			return s, nil, false
		case "s":
			return s, s.saveLocale(), false
		}
	}
	return s, nil, false
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(s.text("settings.locale") + "\n\n")
	for i, code := range i18n.Locales() {
		marker := "  "
		if i == s.index {
			marker = "▶ "
		}
		b.WriteString(marker + code + "\n")
	}
	b.WriteString("\n" + s.text("menu.main") + " · " + s.text("menu.history") + " · " + s.text("menu.stats"))
	return widgets.Box{
		Title:   "Settings",
		Content: b.String(),
		Footer:  s.text("settings.hint") + " · esc back",
		Focused: true,
	}.Render(width, height)
}
