package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scribe/internal/speakers"
	"scribe/internal/transcript"
)

const timeOfDayFormat = "15:04:05.000"

func newBlocksCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "blocks FILE",
		Short: "Output raw information about all reconstructed speech blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, resolver, err := ctx.reconstruct(args[0])
			if err != nil {
				return err
			}
			corrections := resolver.Corrections()

			if jsonOutput {
				return writeJSON(cmd, struct {
					Corrections []speakers.Correction `json:"corrections"`
					Blocks      []transcript.Block    `json:"blocks"`
				}{
					Corrections: corrections,
					Blocks:      blocks,
				})
			}

			out := cmd.OutOrStdout()
			for _, correction := range corrections {
				fmt.Fprintf(out, "Inferred %s -> %s\n", correction.Raw, correction.Canonical)
			}
			if len(corrections) > 0 {
				fmt.Fprintln(out)
			}

			rows := make([][]string, 0, len(blocks))
			for _, block := range blocks {
				rows = append(rows, []string{
					block.Start.Format(timeOfDayFormat),
					block.End.Format(timeOfDayFormat),
					strconv.FormatFloat(block.Duration, 'f', 1, 64),
					block.Speaker,
					block.Speech,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Start", "End", "Duration", "Speaker", "Speech"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output machine-readable JSON")
	return cmd
}
