package webvtt

import "time"

// referenceDate anchors cue timestamps so arithmetic between them only sees
// time of day. The actual date never matters for caption files.
var referenceDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Cue is a single timed caption entry. Cues are immutable once parsed and are
// consumed in file order.
type Cue struct {
	Start time.Time
	End   time.Time
	Text  string
}

// Duration returns the on-screen span of the cue in seconds.
func (c Cue) Duration() float64 {
	return c.End.Sub(c.Start).Seconds()
}
