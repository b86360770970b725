package demo

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lazynav/nav"
	"github.com/jask/lazynav/widgets"
)

// AboutScreen shows the build and the resolved runtime paths.
type AboutScreen struct {
	version string
	dbPath  string
	logPath string
}

func NewAboutScreen(version, dbPath, logPath string) *AboutScreen {
	return &AboutScreen{version: version, dbPath: dbPath, logPath: logPath}
}

func (s *AboutScreen) Title() string { return "About" }
func (s *AboutScreen) Scope() string { return "screen:about" }

func (s *AboutScreen) Update(msg tea.Msg) (nav.Screen, tea.Cmd, bool) {
	if typed, ok := msg.(tea.KeyMsg); ok {
		switch typed.String() {
		case "esc", "enter":
			return s, nil, true
		}
	}
	return s, nil, false
}

func (s *AboutScreen) View(width, height int) string {
	logPath := s.logPath
	if strings.TrimSpace(logPath) == "" {
		logPath = "disabled"
	}
	lines := []string{
		"lazynav " + s.version,
		"",
		"Destinations are constructed on first open and",
		"torn down again when the screen is dismissed.",
		"",
		"visit store  " + s.dbPath,
		"debug log    " + logPath,
	}
	return widgets.Box{
		Title:   "About",
		Content: strings.Join(lines, "\n"),
		Footer:  "esc back",
		Focused: true,
	}.Render(width, height)
}
