package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scribe/internal/batch"
	"scribe/internal/config"
	"scribe/internal/logging"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var srcDir string
	var dstDir string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert every caption file in a directory into transcripts",
		Long: "Batch parses every .vtt file in the captions directory into a .txt\n" +
			"transcript in the transcripts directory. Files whose transcript already\n" +
			"exists are skipped, and malformed caption files are logged and skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			// Flags override config without mutating the shared instance.
			runCfg := *cfg
			if dir := strings.TrimSpace(srcDir); dir != "" {
				if runCfg.Paths.CaptionsDir, err = config.ExpandPath(dir); err != nil {
					return err
				}
			}
			if dir := strings.TrimSpace(dstDir); dir != "" {
				if runCfg.Paths.TranscriptsDir, err = config.ExpandPath(dir); err != nil {
					return err
				}
			}
			if path := strings.TrimSpace(*ctx.speakersFlag); path != "" {
				if runCfg.Paths.SpeakerFile, err = config.ExpandPath(path); err != nil {
					return err
				}
			}
			runCfg.Parsing.InferSpeakers = ctx.inferEnabled(cfg)

			if err := runCfg.EnsureDirectories(); err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(&runCfg)
			if err != nil {
				return err
			}

			summary, err := batch.Run(&runCfg, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Processed %d, skipped %d, failed %d\n",
				summary.Processed, summary.Skipped, summary.Failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&srcDir, "src", "", "Caption source directory (overrides config)")
	cmd.Flags().StringVar(&dstDir, "dst", "", "Transcript destination directory (overrides config)")
	return cmd
}
