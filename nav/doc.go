// Package nav contains the host-side navigation contracts and state
// orchestration.
//
// Allowed here:
// - the Screen contract, the screen stack, and push/pop message routing
// - the root model, scoped key registry, and shared chrome (header,
//   status bar, footer)
//
// Not allowed here:
// - concrete screen implementations (screens, internal/demo)
// - low-level widget rendering primitives (widgets)
package nav
