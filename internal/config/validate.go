package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.SpeakerFile == "" {
		return fmt.Errorf("paths.speaker_file must be set")
	}
	if c.Paths.TranscriptsDir == "" {
		return fmt.Errorf("paths.transcripts_dir must be set")
	}
	if c.Paths.CaptionsDir == c.Paths.TranscriptsDir {
		return fmt.Errorf("paths.captions_dir and paths.transcripts_dir must differ")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
