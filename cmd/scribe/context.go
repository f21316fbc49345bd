package main

import (
	"strings"
	"sync"

	"scribe/internal/config"
	"scribe/internal/speakers"
	"scribe/internal/transcript"
	"scribe/internal/webvtt"
)

type commandContext struct {
	configFlag   *string
	speakersFlag *string
	noInferFlag  *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, speakersFlag *string, noInferFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		speakersFlag: speakersFlag,
		noInferFlag:  noInferFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) inferEnabled(cfg *config.Config) bool {
	if c.noInferFlag != nil && *c.noInferFlag {
		return false
	}
	return cfg.Parsing.InferSpeakers
}

func (c *commandContext) speakerFile(cfg *config.Config) string {
	if c.speakersFlag != nil && strings.TrimSpace(*c.speakersFlag) != "" {
		return strings.TrimSpace(*c.speakersFlag)
	}
	return cfg.Paths.SpeakerFile
}

// reconstruct runs the whole pipeline for a single caption file and returns
// the block list along with the resolver that canonicalized its speakers.
func (c *commandContext) reconstruct(captionPath string) ([]transcript.Block, *speakers.Resolver, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}

	infer := c.inferEnabled(cfg)
	roster := speakers.Roster{speakers.Unknown}
	if infer {
		roster, err = speakers.LoadRoster(c.speakerFile(cfg))
		if err != nil {
			return nil, nil, err
		}
	}

	cues, err := webvtt.ReadFile(captionPath)
	if err != nil {
		return nil, nil, err
	}

	resolver := speakers.NewResolver(roster, infer)
	return transcript.Reconstruct(cues, resolver), resolver, nil
}
