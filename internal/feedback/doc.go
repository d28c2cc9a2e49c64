// Package feedback synthesises the short UI cues that accompany panel
// interaction: a click when an overlay opens, a swoosh on advance and a pop
// on reset.
//
// Cues are fire-and-forget. [Player.Notify] never blocks and never reports
// an error to the caller; a missing or failing audio device degrades to
// silence with a warning in the log.
package feedback
