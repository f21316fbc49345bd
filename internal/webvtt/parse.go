package webvtt

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timingLine matches a cue timing line, with optional cue settings after the
// end timestamp.
var timingLine = regexp.MustCompile(`^(\d\d:\d\d:\d\d\.\d\d\d)\s*-->\s*(\d\d:\d\d:\d\d\.\d\d\d)(?:[ \t].*)?$`)

// Parse converts repaired WebVTT content into an ordered cue list. Cue blocks
// are separated by blank lines; an optional identifier line may precede the
// timing line; remaining non-blank lines form the text payload. A malformed
// timing line fails the whole file, so callers never see partial results.
func Parse(content string) ([]Cue, error) {
	lines := strings.Split(content, "\n")
	for idx := range lines {
		lines[idx] = strings.TrimRight(lines[idx], "\r")
	}

	var cues []Cue
	i := 0
	if i < len(lines) && strings.HasPrefix(lines[i], "WEBVTT") {
		i++
	}
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			i++
		case strings.HasPrefix(trimmed, "NOTE") || trimmed == "STYLE" || trimmed == "REGION":
			i = skipBlock(lines, i)
		case strings.Contains(line, "-->"):
			cue, next, err := parseCue(lines, i)
			if err != nil {
				return nil, err
			}
			cues = append(cues, cue)
			i = next
		default:
			// A bare line is only legal as a cue identifier.
			if i+1 < len(lines) && strings.Contains(lines[i+1], "-->") {
				i++
				continue
			}
			return nil, fmt.Errorf("parse captions: unexpected content at line %d: %q", i+1, trimmed)
		}
	}
	return cues, nil
}

// ReadFile repairs and parses the caption file at path.
func ReadFile(path string) ([]Cue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open captions: %w", err)
	}
	defer file.Close()

	content, err := Preprocess(file)
	if err != nil {
		return nil, err
	}
	return Parse(content)
}

func parseCue(lines []string, i int) (Cue, int, error) {
	match := timingLine.FindStringSubmatch(strings.TrimSpace(lines[i]))
	if match == nil {
		return Cue{}, 0, fmt.Errorf("parse captions: malformed timing at line %d: %q", i+1, strings.TrimSpace(lines[i]))
	}
	start, err := parseTimestamp(match[1])
	if err != nil {
		return Cue{}, 0, fmt.Errorf("parse captions: line %d: %w", i+1, err)
	}
	end, err := parseTimestamp(match[2])
	if err != nil {
		return Cue{}, 0, fmt.Errorf("parse captions: line %d: %w", i+1, err)
	}

	i++
	var payload []string
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		payload = append(payload, lines[i])
		i++
	}
	return Cue{Start: start, End: end, Text: strings.Join(payload, "\n")}, i, nil
}

func skipBlock(lines []string, i int) int {
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		i++
	}
	return i
}

func parseTimestamp(value string) (time.Time, error) {
	hms, millis, ok := strings.Cut(value, ".")
	if !ok {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
	}
	parts := strings.Split(hms, ":")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(parts[0])
	minutes, errM := strconv.Atoi(parts[1])
	seconds, errS := strconv.Atoi(parts[2])
	ms, errMS := strconv.Atoi(millis)
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
	}
	if minutes > 59 || seconds > 59 {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
	}
	return referenceDate.Add(
		time.Duration(hours)*time.Hour +
			time.Duration(minutes)*time.Minute +
			time.Duration(seconds)*time.Second +
			time.Duration(ms)*time.Millisecond,
	), nil
}
