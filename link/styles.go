package link

import "github.com/charmbracelet/lipgloss"

const (
	colorText   = lipgloss.Color("#cdd6f4")
	colorMuted  = lipgloss.Color("#a6adc8")
	colorAccent = lipgloss.Color("#89b4fa")
)

// Styles controls how the label renders in each state.
type Styles struct {
	Normal  lipgloss.Style
	Focused lipgloss.Style
	Open    lipgloss.Style
}

// DefaultStyles renders the focused label in the accent color and an
// open link's label dimmed.
func DefaultStyles() Styles {
	return Styles{
		Normal:  lipgloss.NewStyle().Foreground(colorText),
		Focused: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Open:    lipgloss.NewStyle().Foreground(colorMuted),
	}
}
