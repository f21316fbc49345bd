package transcript

import (
	"strings"

	"github.com/samber/lo"
)

// Text renders the reconstructed transcript: block speech texts joined with
// newlines, in block order.
func Text(blocks []Block) string {
	speeches := lo.Map(blocks, func(b Block, _ int) string { return b.Speech })
	return strings.Join(speeches, "\n")
}

// SpeakerTimes totals accumulated speaking seconds per canonical speaker.
func SpeakerTimes(blocks []Block) map[string]float64 {
	grouped := lo.GroupBy(blocks, func(b Block) string { return b.Speaker })
	return lo.MapValues(grouped, func(group []Block, _ string) float64 {
		return lo.SumBy(group, func(b Block) float64 { return b.Duration })
	})
}

// TotalDuration sums accumulated duration across every block.
func TotalDuration(blocks []Block) float64 {
	return lo.SumBy(blocks, func(b Block) float64 { return b.Duration })
}
