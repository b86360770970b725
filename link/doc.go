// Package link provides a navigation link that defers construction of
// its destination screen until the user actually opens it.
//
// A Link renders only its label. When activated it invokes its producer
// exactly once, pushes the constructed destination through the nav
// message protocol, and keeps the result for the duration of the
// activation. When the destination is popped the link tears it down and
// returns to the label; the next activation constructs a fresh
// destination. The producer is never invoked while the link is
// inactive, no matter how often the surrounding screen re-renders.
//
//	l := link.NewTitle("History", func() nav.Screen {
//		return demo.NewHistoryScreen(store)
//	})
//	// inside the parent screen's Update:
//	cmd := l.Update(msg)
//
// Allowed here:
// - the Link component, its label builders, key map, and styles
//
// Not allowed here:
// - stack ownership or message routing (nav)
// - multi-link containers (screens)
package link
