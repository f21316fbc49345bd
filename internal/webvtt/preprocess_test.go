package webvtt

import (
	"errors"
	"strings"
	"testing"
)

func TestPreprocessStripsHeader(t *testing.T) {
	input := strings.Join([]string{
		"ST 0",
		"Language: en-US",
		"some header junk the format does not allow",
		"00:00:01.000 --> 00:00:03.000",
		"hello there",
		"",
	}, "\n")

	got, err := Preprocess(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}
	if !strings.HasPrefix(got, "WEBVTT\r\n") {
		t.Errorf("output missing synthesized header: %q", got[:20])
	}
	if strings.Contains(got, "Language:") {
		t.Error("header content survived preprocessing")
	}
	if !strings.Contains(got, "00:00:01.000 --> 00:00:03.000") {
		t.Error("first cue timing line missing from output")
	}
}

func TestPreprocessFirstLineIsTimestamp(t *testing.T) {
	input := "00:00:00.500 --> 00:00:02.000\nhi\n"
	got, err := Preprocess(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}
	if !strings.HasPrefix(got, "WEBVTT\r\n00:00:00.500") {
		t.Errorf("unexpected output prefix: %q", got[:30])
	}
}

func TestPreprocessNoTimestamps(t *testing.T) {
	input := "WEBVTT\n\njust prose, no cues\nmore prose\n"
	_, err := Preprocess(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for input without timestamped lines")
	}
	var perr *PreprocessError
	if !errors.As(err, &perr) {
		t.Errorf("error = %v, want *PreprocessError", err)
	}
}

func TestPreprocessRejectsLooseTimestamps(t *testing.T) {
	// Two-digit milliseconds must not count as cue content.
	input := "00:00:01.00 --> 00:00:02.00\nhi\n"
	if _, err := Preprocess(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for loosely formatted timestamps")
	}
}
