package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var popupCardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(boxBorderFocus).
	Padding(1, 2)

// RenderPopup centers content in a bordered card over base without
// dropping the rows above and below the card. Both canvases are
// clamped to width by height cells.
func RenderPopup(base, content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := padCanvas(base, width, height)
	card := popupCardStyle.Render(content)
	cardLines := toLines(card, 0)
	cardWidth := widestLine(cardLines)
	if cardWidth <= 0 || len(cardLines) == 0 {
		return canvas
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)
	return composite(canvas, card, x, y, width, height)
}

// composite lays overlay onto base at column x, row y. Rows outside
// the canvas are ignored; base cells left and right of the overlay are
// preserved, ANSI sequences intact.
func composite(base, overlay string, x, y, width, height int) string {
	baseLines := toLines(base, height)
	overlayLines := toLines(overlay, 0)
	overlayWidth := widestLine(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padANSI(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		segment := padANSI(line, overlayWidth)
		pos := x + ansi.StringWidth(segment)
		right := cutLeft(target, pos)
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		baseLines[row] = left + segment + right
	}
	return strings.Join(baseLines, "\n")
}

func padCanvas(s string, width, height int) string {
	lines := toLines(s, height)
	for i := range lines {
		lines[i] = padANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// toLines splits s into rows. A positive height pads or clips to
// exactly that many rows; zero leaves the count alone.
func toLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func widestLine(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// cutLeft removes the leftmost cols cells, keeping any ANSI state that
// styles the remainder.
func cutLeft(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

func padANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
