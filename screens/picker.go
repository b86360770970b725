package screens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PickerItem is one selectable row. Search defaults to Label when
// empty.
type PickerItem struct {
	ID     string
	Label  string
	Hint   string
	Search string
}

type PickerAction int

const (
	PickerNone PickerAction = iota
	PickerMoved
	PickerSelected
	PickerCancelled
)

// PickerResult reports what a key did to the picker. Item is set only
// for PickerSelected.
type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker filters items against a typed query and ranks the matches.
// It owns the filter input; navigation uses up/down or ctrl+p/ctrl+n
// so plain letters keep going to the query.
type Picker struct {
	input    textinput.Model
	items    []PickerItem
	filtered []PickerItem
	cursor   int
}

var (
	pickerHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	pickerCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
)

func NewPicker(items []PickerItem) *Picker {
	inp := textinput.New()
	inp.Placeholder = "type to filter"
	inp.Prompt = "/ "
	inp.Focus()
	p := &Picker{input: inp}
	p.SetItems(items)
	return p
}

func (p *Picker) Query() string { return p.input.Value() }

func (p *Picker) Cursor() int { return p.cursor }

// Items returns the ranked matches for the current query.
func (p *Picker) Items() []PickerItem {
	return append([]PickerItem(nil), p.filtered...)
}

func (p *Picker) SetItems(items []PickerItem) {
	p.items = append([]PickerItem(nil), items...)
	p.rerank()
}

// CurrentItem returns the row under the cursor.
func (p *Picker) CurrentItem() (PickerItem, bool) {
	if len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	idx := p.cursor
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.filtered) {
		idx = len(p.filtered) - 1
	}
	return p.filtered[idx], true
}

// Update feeds a message to the picker. Keys it does not claim go to
// the filter input and re-rank the matches.
func (p *Picker) Update(msg tea.Msg) (PickerResult, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return PickerResult{Action: PickerCancelled}, nil
		case "enter":
			item, ok := p.CurrentItem()
			if !ok {
				return PickerResult{Action: PickerCancelled}, nil
			}
			return PickerResult{Action: PickerSelected, Item: item}, nil
		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
				return PickerResult{Action: PickerMoved}, nil
			}
			return PickerResult{Action: PickerNone}, nil
		case "down", "ctrl+n":
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
				return PickerResult{Action: PickerMoved}, nil
			}
			return PickerResult{Action: PickerNone}, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.rerank()
	return PickerResult{Action: PickerNone}, cmd
}

// View renders the input, up to maxRows matches, and a key hint, each
// line clipped to width.
func (p *Picker) View(width, maxRows int) string {
	if width < 16 {
		width = 16
	}
	if maxRows < 1 {
		maxRows = 1
	}
	lines := []string{ansi.Truncate(p.input.View(), width, ""), ""}
	if len(p.filtered) == 0 {
		lines = append(lines, pickerHintStyle.Render("  no matches"))
	}
	for i, item := range p.filtered {
		if i >= maxRows {
			lines = append(lines, pickerHintStyle.Render(fmt.Sprintf("  …%d more", len(p.filtered)-maxRows)))
			break
		}
		label := item.Label
		if item.Hint != "" {
			label += "  " + pickerHintStyle.Render(item.Hint)
		}
		row := "  " + label
		if i == p.cursor {
			row = pickerCursorStyle.Render("> ") + label
		}
		lines = append(lines, ansi.Truncate(row, width, "…"))
	}
	lines = append(lines, "", pickerHintStyle.Render("enter opens · esc closes"))
	return strings.Join(lines, "\n")
}

type rankedItem struct {
	item  PickerItem
	score int
	index int
}

func (p *Picker) rerank() {
	query := strings.TrimSpace(p.input.Value())
	ranked := make([]rankedItem, 0, len(p.items))
	for idx, item := range p.items {
		search := strings.TrimSpace(item.Search)
		if search == "" {
			search = item.Label
		}
		matched, score := rankScore(search, query)
		if !matched {
			continue
		}
		ranked = append(ranked, rankedItem{item: item, score: score, index: idx})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].index < ranked[j].index
	})

	p.filtered = p.filtered[:0]
	for _, row := range ranked {
		p.filtered = append(p.filtered, row.item)
	}
	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// rankScore gates on the query appearing as a subsequence, then ranks
// by edit-distance similarity with a bonus for prefix matches.
func rankScore(search, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	s := strings.ToUpper(search)
	q := strings.ToUpper(query)
	if !isSubsequence(s, q) {
		return false, 0
	}
	dist := levenshtein.ComputeDistance(s, q)
	longest := max(len(s), len(q))
	score := 100 - dist*100/longest
	if strings.HasPrefix(s, q) {
		score += 50
	}
	return true, score
}

func isSubsequence(s, sub string) bool {
	from := 0
	for i := 0; i < len(sub); i++ {
		found := false
		for j := from; j < len(s); j++ {
			if s[j] == sub[i] {
				from = j + 1
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
