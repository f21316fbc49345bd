package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var speakersFlag string
	var noInferFlag bool

	ctx := newCommandContext(&configFlag, &speakersFlag, &noInferFlag)

	rootCmd := &cobra.Command{
		Use:           "scribe",
		Short:         "Reconstruct speaker-attributed transcripts from caption files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&speakersFlag, "speakers", "", "Known-speaker list file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noInferFlag, "no-infer-speakers", false, "Don't correct speaker-name typos against the known-speaker list")

	rootCmd.AddCommand(newTranscriptCommand(ctx))
	rootCmd.AddCommand(newSpeakerTimesCommand(ctx))
	rootCmd.AddCommand(newBlocksCommand(ctx))
	rootCmd.AddCommand(newBatchCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
