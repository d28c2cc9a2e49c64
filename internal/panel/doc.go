// Package panel holds the interactive state of the two proportion panels.
//
// Each [Panel] owns one [Controller], a bounded step counter that only moves
// through Advance (k → k+1, self-loop at the maximum) and Reset (any → 0).
// [Panel.Frame] recomputes the whole geometric sequence from the counter on
// every call; nothing is cached between steps.
//
// Panels are not safe for concurrent use. Front ends drive them from a
// single event loop, and the two panels share no state.
package panel
