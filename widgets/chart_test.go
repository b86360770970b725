package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestBarChartScalesToPeak(t *testing.T) {
	chart := BarChart{
		Rows: []BarRow{
			{Label: "History", Value: 10},
			{Label: "Stats", Value: 5},
			{Label: "About", Value: 0},
		},
		LabelWidth: 8,
	}
	lines := strings.Split(ansi.Strip(chart.Render(30, 10)), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}

	peak := strings.Count(lines[0], "█")
	half := strings.Count(lines[1], "█")
	if peak != 14 {
		t.Fatalf("peak bar = %d cells, want 14", peak)
	}
	if half != 7 {
		t.Fatalf("half bar = %d cells, want 7", half)
	}
	if strings.Count(lines[2], "█") != 0 {
		t.Fatalf("zero row should render no bar: %q", lines[2])
	}
	if !strings.Contains(lines[0], "10") {
		t.Fatalf("value missing from row: %q", lines[0])
	}
}

func TestBarChartClipsAndHandlesEmpty(t *testing.T) {
	chart := BarChart{Rows: []BarRow{{Label: "a", Value: 1}, {Label: "b", Value: 2}, {Label: "c", Value: 3}}}
	if got := len(strings.Split(chart.Render(30, 2), "\n")); got != 2 {
		t.Fatalf("line count = %d, want 2", got)
	}
	if out := ansi.Strip(BarChart{}.Render(30, 5)); !strings.Contains(out, "no data") {
		t.Fatalf("empty chart = %q", out)
	}
}
