package nav

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestRegistryScopeMatching(t *testing.T) {
	r := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"q"}, Action: "quit"},
		{Keys: []string{"/"}, Action: "find", Scopes: []string{"menu:*"}},
		{Keys: []string{"c"}, Action: "clear", Scopes: []string{"screen:history"}},
	})

	if !r.IsAction(keyRunes('q'), "quit", "screen:anything") {
		t.Fatalf("unscoped binding should match every scope")
	}
	if !r.IsAction(keyRunes('/'), "find", "menu:main") {
		t.Fatalf("menu:* should match menu scopes")
	}
	if r.IsAction(keyRunes('/'), "find", "screen:history") {
		t.Fatalf("menu:* must not match screen scopes")
	}
	if !r.IsAction(keyRunes('c'), "clear", "screen:history") {
		t.Fatalf("exact scope should match")
	}
	if r.IsAction(keyRunes('c'), "clear", "screen:stats") {
		t.Fatalf("exact scope must not match a sibling")
	}
}

func TestBindingsForScope(t *testing.T) {
	r := NewKeyRegistry(DefaultBindings())
	r.Register(KeyBinding{Keys: []string{"/"}, Action: "find", Description: "find", Scopes: []string{"menu:*"}})

	if got := r.BindingsForScope("menu:tools"); len(got) != 2 {
		t.Fatalf("menu scope should see quit and find, got %d", len(got))
	}
	if got := r.BindingsForScope("screen:history"); len(got) != 1 {
		t.Fatalf("screen scope should see only quit, got %d", len(got))
	}
}
