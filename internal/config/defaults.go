package config

const (
	defaultSpeakerFile    = "~/.config/scribe/known_speakers.txt"
	defaultCaptionsDir    = "~/.local/share/scribe/captions"
	defaultTranscriptsDir = "~/.local/share/scribe/transcripts"
	defaultLogDir         = "~/.local/share/scribe/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultInferSpeakers  = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SpeakerFile:    defaultSpeakerFile,
			CaptionsDir:    defaultCaptionsDir,
			TranscriptsDir: defaultTranscriptsDir,
			LogDir:         defaultLogDir,
		},
		Parsing: Parsing{
			InferSpeakers: defaultInferSpeakers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
