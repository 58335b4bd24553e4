package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordyvandomselaar/design-prompts-creator/internal/logging"
	"github.com/jordyvandomselaar/design-prompts-creator/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

var (
	repoRoot string
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:   "design-prompts",
	Short: "Scaffold and validate design style prompts",
	Long: ui.Logo() + `
  Each style lives in prompts/<style-slug>/ with a prompt.md
  and a screenshot.jpg rendered from it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(debug)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&repoRoot, "repo-root", ".", "Repository root where prompts/ lives")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(scaffoldCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("design-prompts %s\n", Version)
	},
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.RenderError("Error: "+msg))
	os.Exit(1)
}
