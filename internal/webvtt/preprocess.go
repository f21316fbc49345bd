package webvtt

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// timestampPrefix matches the start of a cue timing line. Only strictly
// formatted HH:MM:SS.mmm prefixes count; looser variants stay in the header.
var timestampPrefix = regexp.MustCompile(`^\d\d:\d\d:\d\d\.\d\d\d`)

// PreprocessError reports that a caption file contains no cue content.
type PreprocessError struct {
	Reason string
}

func (e *PreprocessError) Error() string {
	return "preprocess captions: " + e.Reason
}

// Preprocess repairs a caption stream whose header content does not conform
// to WebVTT. Everything before the first line with a strict HH:MM:SS.mmm
// prefix is discarded and replaced with a minimal WEBVTT header. Returns a
// *PreprocessError when no timestamped line exists before end of input.
func Preprocess(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	found := -1
	for scanner.Scan() {
		line := scanner.Text()
		if found < 0 && timestampPrefix.MatchString(line) {
			found = len(lines)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read captions: %w", err)
	}
	if found < 0 {
		return "", &PreprocessError{Reason: "no timestamp-like lines found"}
	}
	return "WEBVTT\r\n" + strings.Join(lines[found:], "\n") + "\n", nil
}
