// Package viz is the terminal front end: the √2 and golden panels side by
// side, drawn on braille canvases, with the active rectangle sprung into
// place after every step.
//
//   - [App]: the Bubble Tea model
//   - [Canvas]: Braille-based pixel canvas
//   - [Theme]: colour schemes, cycled with t
//
// # Key Bindings
//
//	Space/Enter - Advance the focused panel
//	1 / 2       - Advance the √2 / golden panel
//	Tab, ←, →   - Switch focus
//	R           - Reset the focused panel
//	C / D / A   - Comparison, derivation and architecture overlays
//	E           - Export both panels as SVG
//	Y           - Copy the active shape as SVG
//	T           - Cycle color themes
//	?           - Show help overlay
package viz
