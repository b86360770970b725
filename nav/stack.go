package nav

type stackItem struct {
	screen Screen
	source string
}

// ScreenStack holds the navigation history. The bottom entry is the root
// screen; Pop never removes it.
type ScreenStack struct {
	items []stackItem
}

func (s *ScreenStack) Push(screen Screen, source string) {
	if screen == nil {
		return
	}
	s.items = append(s.items, stackItem{screen: screen, source: source})
}

// Pop removes the top entry and returns its screen and source. The root
// entry stays put; popping at depth one returns nil.
func (s *ScreenStack) Pop() (Screen, string) {
	if len(s.items) <= 1 {
		return nil, ""
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last.screen, last.source
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1].screen
}

func (s ScreenStack) TopSource() string {
	if len(s.items) == 0 {
		return ""
	}
	return s.items[len(s.items)-1].source
}

func (s ScreenStack) Len() int {
	return len(s.items)
}

// Titles returns the title chain from root to top for breadcrumb display.
func (s ScreenStack) Titles() []string {
	out := make([]string, len(s.items))
	for i, item := range s.items {
		out[i] = item.screen.Title()
	}
	return out
}

func (s *ScreenStack) replaceTop(screen Screen, source string) {
	if len(s.items) == 0 || screen == nil {
		return
	}
	s.items[len(s.items)-1] = stackItem{screen: screen, source: source}
}

func (s *ScreenStack) setTopScreen(screen Screen) {
	if len(s.items) == 0 || screen == nil {
		return
	}
	s.items[len(s.items)-1].screen = screen
}
