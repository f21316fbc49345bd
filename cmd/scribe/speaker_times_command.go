package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"scribe/internal/speakers"
	"scribe/internal/transcript"
)

func newSpeakerTimesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "speaker-times FILE",
		Short: "Calculate approximate total speaking time for each speaker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, resolver, err := ctx.reconstruct(args[0])
			if err != nil {
				return err
			}
			times := transcript.SpeakerTimes(blocks)
			corrections := resolver.Corrections()

			if jsonOutput {
				return writeJSON(cmd, struct {
					Corrections  []speakers.Correction `json:"corrections"`
					SpeakerTimes map[string]float64    `json:"speaker_times"`
				}{
					Corrections:  corrections,
					SpeakerTimes: times,
				})
			}

			out := cmd.OutOrStdout()
			for _, correction := range corrections {
				fmt.Fprintf(out, "Inferred %s -> %s\n", correction.Raw, correction.Canonical)
			}
			if len(corrections) > 0 {
				fmt.Fprintln(out)
			}

			names := make([]string, 0, len(times))
			for name := range times {
				names = append(names, name)
			}
			collator := collate.New(language.English)
			sort.Slice(names, func(i, j int) bool {
				return collator.CompareString(names[i], names[j]) < 0
			})

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{
					name,
					strconv.FormatFloat(times[name], 'f', 1, 64),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Speaker", "Seconds"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output machine-readable JSON")
	return cmd
}
