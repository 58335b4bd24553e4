package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordyvandomselaar/design-prompts-creator/internal/artifact"
	"github.com/jordyvandomselaar/design-prompts-creator/internal/config"
	"github.com/jordyvandomselaar/design-prompts-creator/internal/scaffold"
	"github.com/jordyvandomselaar/design-prompts-creator/internal/ui"
)

var scaffoldCmd = &cobra.Command{
	Use:     "scaffold",
	Aliases: []string{"new", "create"},
	Short:   "Create prompts/<style>/prompt.md from a template",
	Long: `Write a templated prompt for a design style.

The style name is turned into a slug and the prompt is written to
prompts/<slug>/prompt.md. Render prompts/<slug>/screenshot.jpg afterwards.

An existing prompt is never replaced unless --overwrite is passed.

Examples:
  design-prompts scaffold --format design-system --style-name "Retro Wave"
  design-prompts scaffold --format summary-spec --style-name "Swiss Grid" --include-assumptions
  design-prompts scaffold --format design-system --style-name "Retro Wave" --overwrite`,
	Args: cobra.NoArgs,
	Run:  runScaffold,
}

var (
	scaffoldFormat      string
	scaffoldStyleName   string
	scaffoldAssumptions bool
	scaffoldOverwrite   bool
	scaffoldOutput      string
)

func init() {
	scaffoldCmd.Flags().StringVarP(&scaffoldFormat, "format", "f", "", "Prompt format: design-system or summary-spec")
	scaffoldCmd.Flags().StringVarP(&scaffoldStyleName, "style-name", "s", "", "Human-readable style name (required)")
	scaffoldCmd.Flags().BoolVar(&scaffoldAssumptions, "include-assumptions", false, "Append an Assumptions section")
	scaffoldCmd.Flags().BoolVar(&scaffoldOverwrite, "overwrite", false, "Replace an existing prompt.md")
	scaffoldCmd.Flags().StringVarP(&scaffoldOutput, "output", "o", "", "Write the prompt here instead of prompts/<slug>/prompt.md (relative to --repo-root, must stay inside it)")
	scaffoldCmd.MarkFlagRequired("style-name")

	scaffoldCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(artifact.Formats))
		for _, f := range artifact.Formats {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func runScaffold(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(repoRoot)
	if err != nil {
		exitWithError(err.Error())
	}

	formatName := scaffoldFormat
	if formatName == "" {
		formatName = string(cfg.DefaultFormat)
	}
	if formatName == "" {
		exitWithError("--format is required (design-system or summary-spec)")
	}
	format, err := artifact.ParseFormat(formatName)
	if err != nil {
		exitWithError(err.Error())
	}

	includeAssumptions := cfg.IncludeAssumptions
	if cmd.Flags().Changed("include-assumptions") {
		includeAssumptions = scaffoldAssumptions
	}

	res, err := scaffold.Run(scaffold.Options{
		Format:             format,
		StyleName:          scaffoldStyleName,
		RepoRoot:           repoRoot,
		IncludeAssumptions: includeAssumptions,
		Overwrite:          scaffoldOverwrite,
		Output:             scaffoldOutput,
	})
	if err != nil {
		exitWithError(scaffoldErrorMessage(err, scaffoldStyleName))
	}

	verb := "Wrote scaffold"
	if res.Overwritten {
		verb = "Overwrote scaffold"
	}

	if ui.IsTTY {
		fmt.Println()
		fmt.Printf("  %s %s\n", ui.FormatBadge(res.Format), ui.Title.Render(scaffoldStyleName))
		fmt.Println()
		fmt.Println(ui.SuccessLine(fmt.Sprintf("%s: %s", verb, res.PromptPath)))
		fmt.Println(ui.InfoLine(fmt.Sprintf("Expected screenshot: %s", res.ScreenshotPath)))
		fmt.Println()
		fmt.Println(ui.PageFooter())
		return
	}

	fmt.Printf("%s: %s\n", verb, res.PromptPath)
	fmt.Printf("Expected screenshot: %s\n", res.ScreenshotPath)
}

// scaffoldErrorMessage turns a scaffold failure into the line shown to the user.
func scaffoldErrorMessage(err error, styleName string) string {
	var exists *scaffold.ExistsError
	switch {
	case errors.Is(err, scaffold.ErrEmptySlug):
		return fmt.Sprintf("style name %q must contain at least one letter or digit", styleName)
	case errors.As(err, &exists):
		return fmt.Sprintf("prompt already exists: %s (pass %s to replace it)", exists.Path, ui.RenderCode("--overwrite"))
	default:
		return err.Error()
	}
}
