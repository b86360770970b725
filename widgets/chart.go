package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	barLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	barCountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// BarRow is one labeled bar.
type BarRow struct {
	Label string
	Value int
}

// BarChart renders horizontal bars scaled to the largest value.
type BarChart struct {
	Rows       []BarRow
	LabelWidth int
}

// Render draws up to height rows. Labels are clipped to LabelWidth
// cells, 12 when unset.
func (c BarChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.Rows) == 0 {
		return barCountStyle.Render("(no data)")
	}
	labelWidth := c.LabelWidth
	if labelWidth <= 0 {
		labelWidth = 12
	}
	peak := 0
	for _, row := range c.Rows {
		if row.Value > peak {
			peak = row.Value
		}
	}
	if peak <= 0 {
		peak = 1
	}

	barSpace := max(1, width-labelWidth-8)
	lines := make([]string, 0, len(c.Rows))
	for _, row := range c.Rows {
		if len(lines) >= height {
			break
		}
		cells := row.Value * barSpace / peak
		if cells < 1 && row.Value > 0 {
			cells = 1
		}
		label := padANSI(ansi.Truncate(row.Label, labelWidth, "…"), labelWidth)
		lines = append(lines, fmt.Sprintf("%s %s %s",
			barLabelStyle.Render(label),
			barStyle.Render(strings.Repeat("█", cells)),
			barCountStyle.Render(fmt.Sprintf("%d", row.Value)),
		))
	}
	return strings.Join(lines, "\n")
}
