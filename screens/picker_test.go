package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeRunes(t *testing.T, p *Picker, s string) {
	t.Helper()
	for _, r := range s {
		res, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		if res.Action != PickerNone {
			t.Fatalf("typing %q produced action %v", r, res.Action)
		}
	}
}

func TestPickerFiltersAndRanksByPrefix(t *testing.T) {
	p := NewPicker([]PickerItem{
		{ID: "1", Label: "Settings"},
		{ID: "2", Label: "History"},
		{ID: "3", Label: "Stats"},
	})
	typeRunes(t, p, "st")

	items := p.Items()
	if len(items) != 3 {
		t.Fatalf("matches = %d, want 3", len(items))
	}
	if items[0].ID != "3" {
		t.Fatalf("prefix match should rank first, got %q", items[0].Label)
	}

	typeRunes(t, p, "q")
	if got := len(p.Items()); got != 0 {
		t.Fatalf("matches = %d after impossible query, want 0", got)
	}
}

func TestPickerCursorClampsOnRerank(t *testing.T) {
	p := NewPicker([]PickerItem{
		{ID: "1", Label: "History"},
		{ID: "2", Label: "Stats"},
		{ID: "3", Label: "Settings"},
	})
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	if p.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", p.Cursor())
	}

	typeRunes(t, p, "hi")
	item, ok := p.CurrentItem()
	if !ok || item.ID != "1" {
		t.Fatalf("cursor should land on the surviving match, got %+v", item)
	}
}

func TestPickerSelectAndCancel(t *testing.T) {
	p := NewPicker([]PickerItem{
		{ID: "1", Label: "History"},
		{ID: "2", Label: "Stats"},
	})
	res, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if res.Action != PickerSelected || res.Item.ID != "1" {
		t.Fatalf("enter should select the cursor row, got %+v", res)
	}

	res, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if res.Action != PickerCancelled {
		t.Fatalf("esc should cancel, got action %v", res.Action)
	}
}

func TestPickerEnterWithNoMatchesCancels(t *testing.T) {
	p := NewPicker(nil)
	res, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if res.Action != PickerCancelled {
		t.Fatalf("enter on empty picker should cancel, got %v", res.Action)
	}
}
