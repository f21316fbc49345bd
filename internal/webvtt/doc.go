// Package webvtt parses WebVTT caption files into ordered cue sequences.
//
// Broadcast caption files in the wild often carry header content the strict
// format does not allow, so parsing is split into two steps: Preprocess
// repairs the header by discarding everything before the first timestamped
// line, and Parse turns the repaired content into cues. Callers that only
// need a clean cue list should use ReadFile, which chains the two.
package webvtt
