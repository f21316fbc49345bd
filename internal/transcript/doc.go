// Package transcript reconstructs speaker-attributed speech blocks from an
// ordered caption cue sequence.
//
// The reconstruction is a single synchronous pass: each cue's text is
// normalized, lines that repeat the immediately preceding line are dropped
// (the source stream scrolls two overlapping caption lines, duplicating each
// line across consecutive cues), and a small state machine groups the
// surviving lines into blocks on ">>" speaker-change markers. Speaker labels
// found on marker lines are canonicalized through a speakers.Resolver.
//
// A block's Duration is the sum of the on-screen spans of the cues that fed
// it, not End minus Start; captions vanish during long pauses and silence
// should not count as speaking time.
package transcript
