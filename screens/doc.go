// Package screens contains the link-driven screens pushed onto the
// navigation stack.
//
// Allowed here:
// - screen implementations that satisfy nav.Screen (menus, the link finder)
// - screen-local presentation and key handling
//
// Not allowed here:
// - stack ownership or app-wide key registry wiring
// - low-level render primitives (widgets)
package screens
