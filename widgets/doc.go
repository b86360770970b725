// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (titled boxes, popup overlay compositor)
// - lipgloss styling and ANSI-aware measurement
//
// Not allowed here:
// - key handling, navigation state, or imports of nav, link, screens
package widgets
