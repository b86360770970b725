package widgets

import (
	"strings"
	"testing"
)

func TestRenderPopupKeepsBaseEdges(t *testing.T) {
	base := strings.Join([]string{
		"menu-0..............",
		"menu-1..............",
		"menu-2..............",
		"menu-3..............",
		"menu-4..............",
		"menu-5..............",
		"menu-6..............",
		"menu-7..............",
		"menu-8..............",
	}, "\n")
	out := RenderPopup(base, "Filter", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Filter") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "menu-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "menu-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}

func TestRenderPopupEmptyOnDegenerateCanvas(t *testing.T) {
	if out := RenderPopup("base", "popup", 0, 5); out != "" {
		t.Fatalf("expected empty render for zero width, got %q", out)
	}
	if out := RenderPopup("base", "popup", 5, 0); out != "" {
		t.Fatalf("expected empty render for zero height, got %q", out)
	}
}
