package transcript

import (
	"strings"

	"scribe/internal/speakers"
	"scribe/internal/webvtt"
)

// speakerMarker is the hand-captioning convention for a new speaker turn.
const speakerMarker = ">>"

// lineCutset covers the noise the source pads cue text with; some streams
// terminate caption text in NUL bytes.
const lineCutset = "\r\n \x00"

// Reconstruct runs the full pipeline over an ordered cue sequence: normalize
// each cue's text, drop adjacent duplicates, and segment the remainder into
// speaker-attributed blocks using resolver for label canonicalization.
//
// Lines seen before the first marker accrue duration that is attributed to no
// block; that loss matches the observed source streams, which open with
// unattributed boilerplate, and total-duration accounting depends on it.
//
// The trailing block is finalized when the stream ends. The system this
// reimplements silently dropped the final speaker's remarks; keeping them is
// a deliberate behavior change.
func Reconstruct(cues []webvtt.Cue, resolver *speakers.Resolver) []Block {
	blocks := []Block{}
	var current Block
	active := false
	lastLine := ""

	for _, cue := range cues {
		line := strings.Trim(cue.Text, lineCutset)

		// The stream displays two overlapping scrolling lines, so each
		// line's text arrives twice in consecutive cues. Only the first
		// occurrence counts, for speech and for duration alike.
		if line == lastLine {
			continue
		}
		lastLine = line

		if strings.HasPrefix(line, speakerMarker) {
			if active {
				blocks = append(blocks, current)
			}
			current = Block{
				Start:   cue.Start,
				End:     cue.End,
				Speaker: markerSpeaker(line, resolver),
				Speech:  line,
			}
			active = true
		} else if active {
			current.Speech += " " + line
			current.End = cue.End
		}

		// The cue that opens a block contributes its own span too. Before
		// the first marker there is no block, and the time is simply lost.
		current.Duration += cue.Duration()
	}

	if active {
		blocks = append(blocks, current)
	}
	return blocks
}

// markerSpeaker extracts and canonicalizes the speaker label from a marker
// line. Markers without a separator colon identify nobody.
func markerSpeaker(line string, resolver *speakers.Resolver) string {
	rest := line[len(speakerMarker):]
	label, _, found := strings.Cut(rest, ":")
	if !found {
		return speakers.Unknown
	}
	return resolver.Resolve(strings.ToLower(strings.TrimSpace(label)))
}
