package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordyvandomselaar/design-prompts-creator/internal/ui"
	"github.com/jordyvandomselaar/design-prompts-creator/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"check"},
	Short:   "Check prompt folders for a prompt and a fresh screenshot",
	Long: `Verify that prompts/<style>/ contains prompt.md and screenshot.jpg,
and that the screenshot is not older than the prompt.

Without --style-name every folder under prompts/ is checked.
Exits non-zero if any folder fails or none are found.

Examples:
  design-prompts validate
  design-prompts validate --style-name "Retro Wave"
  design-prompts validate --repo-root ../site`,
	Args: cobra.NoArgs,
	Run:  runValidate,
}

var validateStyleName string

func init() {
	validateCmd.Flags().StringVarP(&validateStyleName, "style-name", "s", "", "Check only this style (natural name or slug)")
}

func runValidate(cmd *cobra.Command, args []string) {
	findings, err := validate.Run(repoRoot, validateStyleName)
	if err != nil {
		exitWithError(err.Error())
	}

	if ui.IsTTY {
		fmt.Println()
		fmt.Println(ui.SectionHeader("Validating Prompts"))
		fmt.Println()
	}

	failed := 0
	for _, f := range findings {
		fmt.Println(ui.FindingLine(f))
		if !f.OK() {
			failed++
		}
	}

	if ui.IsTTY {
		fmt.Println()
		fmt.Println(ui.RenderMuted(fmt.Sprintf("  %d checked, %d failed", len(findings), failed)))
		fmt.Println(ui.PageFooter())
	}

	if validate.Failed(findings) {
		os.Exit(1)
	}
}
