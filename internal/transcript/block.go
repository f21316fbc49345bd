package transcript

import "time"

// Block is a reconstructed span of speech attributed to one speaker turn.
// The segmenter mutates the current block while cues continue it; once the
// next marker arrives (or the stream ends) the block is appended to the
// output and never touched again.
type Block struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration float64   `json:"duration"`
	Speaker  string    `json:"speaker"`
	Speech   string    `json:"speech"`
}
