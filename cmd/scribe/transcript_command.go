package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scribe/internal/transcript"
)

func newTranscriptCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "transcript FILE",
		Short: "Output a reconstructed text transcript of a caption file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, _, err := ctx.reconstruct(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), transcript.Text(blocks))
			return nil
		},
	}
}
