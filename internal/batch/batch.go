package batch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"scribe/internal/config"
	"scribe/internal/logging"
	"scribe/internal/speakers"
	"scribe/internal/textutil"
	"scribe/internal/transcript"
	"scribe/internal/webvtt"
)

const captionExt = ".vtt"

// ErrSweepActive reports that another sweep holds the destination lock.
var ErrSweepActive = errors.New("another sweep is already running")

// Summary reports what a sweep did.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
}

// Run sweeps every caption file in cfg.Paths.CaptionsDir into a transcript
// in cfg.Paths.TranscriptsDir. Each file gets its own resolver, so inferred
// corrections never leak between recordings.
func Run(cfg *config.Config, logger *slog.Logger) (Summary, error) {
	log := logging.NewComponentLogger(logger, "batch").With(
		logging.String(logging.FieldRunID, uuid.NewString()))

	roster := speakers.Roster{speakers.Unknown}
	if cfg.Parsing.InferSpeakers {
		loaded, err := speakers.LoadRoster(cfg.Paths.SpeakerFile)
		if err != nil {
			return Summary{}, err
		}
		roster = loaded
	}

	if err := os.MkdirAll(cfg.Paths.TranscriptsDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create transcripts directory: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.TranscriptsDir, ".scribe.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("lock transcripts directory: %w", err)
	}
	if !locked {
		return Summary{}, fmt.Errorf("%w against %s", ErrSweepActive, cfg.Paths.TranscriptsDir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	entries, err := os.ReadDir(cfg.Paths.CaptionsDir)
	if err != nil {
		return Summary{}, fmt.Errorf("read captions directory: %w", err)
	}

	var summary Summary
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, captionExt) {
			continue
		}

		destName := textutil.SanitizeFileName(strings.TrimSuffix(name, captionExt)) + ".txt"
		destPath := filepath.Join(cfg.Paths.TranscriptsDir, destName)
		if _, err := os.Stat(destPath); err == nil {
			summary.Skipped++
			log.Debug("transcript exists, skipping", logging.String(logging.FieldFile, name))
			continue
		}

		srcPath := filepath.Join(cfg.Paths.CaptionsDir, name)
		resolver := speakers.NewResolver(roster, cfg.Parsing.InferSpeakers)
		if err := processFile(srcPath, destPath, resolver); err != nil {
			summary.Failed++
			log.Warn("caption file skipped",
				logging.String(logging.FieldFile, name),
				logging.Error(err))
			continue
		}
		summary.Processed++
		log.Info("transcript written",
			logging.String(logging.FieldFile, name),
			logging.Int("corrections", len(resolver.Corrections())))
	}

	log.Info("sweep complete",
		logging.Int("processed", summary.Processed),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed))
	return summary, nil
}

func processFile(src, dst string, resolver *speakers.Resolver) error {
	cues, err := webvtt.ReadFile(src)
	if err != nil {
		return err
	}
	blocks := transcript.Reconstruct(cues, resolver)
	if err := os.WriteFile(dst, []byte(transcript.Text(blocks)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}
