package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	boxBorder      = lipgloss.Color("#585b70")
	boxBorderFocus = lipgloss.Color("#89b4fa")
	boxTitle       = lipgloss.Color("#cdd6f4")
	boxFooter      = lipgloss.Color("#7f849c")
)

// Box draws a rounded-border panel with the title inset into the top
// rule and an optional muted footer line above the bottom rule.
type Box struct {
	Title   string
	Content string
	Footer  string
	Focused bool
}

// Render draws the box at exactly width by height cells. Content that
// does not fit is clipped.
func (b Box) Render(width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	border := boxBorder
	if b.Focused {
		border = boxBorderFocus
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(boxTitle).Bold(true)
	footerStyle := lipgloss.NewStyle().Foreground(boxFooter)

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2
	}

	top := borderStyle.Render("╭") + topRule(b.Title, innerWidth, borderStyle, titleStyle) + borderStyle.Render("╮")
	bottom := borderStyle.Render("╰") + borderStyle.Render(strings.Repeat("─", innerWidth)) + borderStyle.Render("╯")

	innerHeight := height - 2
	contentLines := strings.Split(b.Content, "\n")
	footer := strings.TrimSpace(b.Footer)
	bodyRows := innerHeight
	if footer != "" && bodyRows > 1 {
		bodyRows--
	}

	v := borderStyle.Render("│")
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < bodyRows; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = ansi.Truncate(line, contentWidth, "")
		rows = append(rows, v+" "+padANSI(line, contentWidth)+" "+v)
	}
	if footer != "" && innerHeight > bodyRows {
		line := footerStyle.Render(ansi.Truncate(footer, contentWidth, "…"))
		rows = append(rows, v+" "+padANSI(line, contentWidth)+" "+v)
	}
	rows = append(rows, bottom)

	return strings.Join(rows, "\n")
}

func topRule(title string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return borderStyle.Render(strings.Repeat("─", innerWidth))
	}
	text := " " + title + " "
	if ansi.StringWidth(text) > innerWidth {
		text = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	dashes := innerWidth - ansi.StringWidth(text)
	if dashes < 0 {
		dashes = 0
	}
	left := min(1, dashes)
	right := dashes - left
	return borderStyle.Render(strings.Repeat("─", left)) +
		titleStyle.Render(text) +
		borderStyle.Render(strings.Repeat("─", right))
}
