package batch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/config"
	"scribe/internal/logging"
	"scribe/internal/testsupport"
)

func sweepConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CaptionsDir = filepath.Join(dir, "captions")
	cfg.Paths.TranscriptsDir = filepath.Join(dir, "transcripts")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.Paths.SpeakerFile = testsupport.WriteRoster(t, dir, "smith", "jones")
	if err := os.MkdirAll(cfg.Paths.CaptionsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	return &cfg
}

func TestRunProducesTranscripts(t *testing.T) {
	cfg := sweepConfig(t)
	testsupport.CaptionFile(t, cfg.Paths.CaptionsDir, "meeting.vtt",
		[3]string{"00:00:00.000", "00:00:02.000", ">> smith: hello"},
		[3]string{"00:00:02.000", "00:00:04.000", "there"},
	)

	summary, err := Run(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.Processed != 1 || summary.Skipped != 0 || summary.Failed != 0 {
		t.Errorf("summary = %+v", summary)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Paths.TranscriptsDir, "meeting.txt"))
	if err != nil {
		t.Fatalf("transcript not written: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != ">> smith: hello there" {
		t.Errorf("transcript = %q", got)
	}
}

func TestRunSkipsExistingOutputs(t *testing.T) {
	cfg := sweepConfig(t)
	testsupport.CaptionFile(t, cfg.Paths.CaptionsDir, "meeting.vtt",
		[3]string{"00:00:00.000", "00:00:02.000", ">> smith: hello"},
	)

	if _, err := Run(cfg, logging.NewNop()); err != nil {
		t.Fatal(err)
	}

	// Truncate the transcript; a second sweep must not regenerate it.
	dest := filepath.Join(cfg.Paths.TranscriptsDir, "meeting.txt")
	if err := os.WriteFile(dest, []byte("sentinel"), 0o644); err != nil {
		t.Fatal(err)
	}

	summary, err := Run(cfg, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Skipped != 1 || summary.Processed != 0 {
		t.Errorf("summary = %+v, want the existing output skipped", summary)
	}
	data, _ := os.ReadFile(dest)
	if string(data) != "sentinel" {
		t.Error("existing transcript was overwritten")
	}
}

func TestRunContinuesPastBadFiles(t *testing.T) {
	cfg := sweepConfig(t)
	testsupport.WriteFile(t, cfg.Paths.CaptionsDir, "broken.vtt", "no cues in here\nat all\n")
	testsupport.CaptionFile(t, cfg.Paths.CaptionsDir, "good.vtt",
		[3]string{"00:00:00.000", "00:00:02.000", ">> jones: fine"},
	)

	summary, err := Run(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.Failed != 1 || summary.Processed != 1 {
		t.Errorf("summary = %+v, want one failure and one success", summary)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.TranscriptsDir, "good.txt")); err != nil {
		t.Error("good transcript missing after a failed sibling")
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.TranscriptsDir, "broken.txt")); err == nil {
		t.Error("broken caption file produced a transcript")
	}
}

func TestRunIgnoresForeignFiles(t *testing.T) {
	cfg := sweepConfig(t)
	testsupport.WriteFile(t, cfg.Paths.CaptionsDir, "notes.txt", "not captions")

	summary, err := Run(cfg, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Processed != 0 || summary.Failed != 0 || summary.Skipped != 0 {
		t.Errorf("summary = %+v, want nothing touched", summary)
	}
}

func TestRunWithoutInferSkipsRoster(t *testing.T) {
	cfg := sweepConfig(t)
	cfg.Parsing.InferSpeakers = false
	cfg.Paths.SpeakerFile = filepath.Join(t.TempDir(), "missing.txt")
	testsupport.CaptionFile(t, cfg.Paths.CaptionsDir, "meeting.vtt",
		[3]string{"00:00:00.000", "00:00:02.000", ">> smth: hi"},
	)

	if _, err := Run(cfg, logging.NewNop()); err != nil {
		t.Fatalf("Run() error = %v; roster must not be required in passthrough mode", err)
	}
}
