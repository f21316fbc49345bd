// Package testsupport provides shared fixtures for caption processing tests.
package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"scribe/internal/webvtt"
)

var referenceDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// CueSpan builds a cue covering [startSec, endSec) seconds past midnight on
// the shared reference date.
func CueSpan(startSec, endSec float64, text string) webvtt.Cue {
	return webvtt.Cue{
		Start: referenceDate.Add(time.Duration(startSec * float64(time.Second))),
		End:   referenceDate.Add(time.Duration(endSec * float64(time.Second))),
		Text:  text,
	}
}

// WriteFile writes content to dir/name, creating dir if needed, and returns
// the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// WriteRoster writes a known-speaker list file, one name per line.
func WriteRoster(t *testing.T, dir string, names ...string) string {
	t.Helper()
	return WriteFile(t, dir, "known_speakers.txt", strings.Join(names, "\n")+"\n")
}

// CaptionFile assembles WebVTT content from (start, end, text) cue triples
// and writes it to dir/name. Timestamps use the HH:MM:SS.mmm form the strict
// header-repair step expects.
func CaptionFile(t *testing.T, dir, name string, cues ...[3]string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("WEBVTT\n\n")
	for _, cue := range cues {
		b.WriteString(cue[0])
		b.WriteString(" --> ")
		b.WriteString(cue[1])
		b.WriteString("\n")
		b.WriteString(cue[2])
		b.WriteString("\n\n")
	}
	return WriteFile(t, dir, name, b.String())
}
