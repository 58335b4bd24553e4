package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordyvandomselaar/design-prompts-creator/internal/artifact"
	"github.com/jordyvandomselaar/design-prompts-creator/internal/ui"
)

var formatDescriptions = map[artifact.Format]string{
	artifact.FormatDesignSystem: "Full design system: tokens, components, layout, bold factor, checklist",
	artifact.FormatSummarySpec:  "Short summary with style spec, layout sections and special components",
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List prompt template formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range artifact.Formats {
			fmt.Printf("%s  %s\n", ui.FormatBadge(f), ui.RenderMuted(formatDescriptions[f]))
		}
	},
}
