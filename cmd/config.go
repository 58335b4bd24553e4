package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordyvandomselaar/design-prompts-creator/internal/artifact"
	"github.com/jordyvandomselaar/design-prompts-creator/internal/config"
	"github.com/jordyvandomselaar/design-prompts-creator/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage project defaults in .config/design-prompts/config.yaml",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a project config with scaffold defaults",
	Long: `Create .config/design-prompts/config.yaml under the repo root.

Examples:
  design-prompts config init --default-format summary-spec
  design-prompts config init --default-format design-system --include-assumptions`,
	Args: cobra.NoArgs,
	Run:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective project defaults",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(repoRoot)
		if err != nil {
			exitWithError(err.Error())
		}
		format := string(cfg.DefaultFormat)
		if format == "" {
			format = "(none)"
		}
		fmt.Printf("config:              %s\n", config.Path(repoRoot))
		fmt.Printf("default_format:      %s\n", format)
		fmt.Printf("include_assumptions: %t\n", cfg.IncludeAssumptions)
	},
}

var (
	configDefaultFormat string
	configAssumptions   bool
	configForce         bool
)

func init() {
	configInitCmd.Flags().StringVar(&configDefaultFormat, "default-format", "", "Format used when scaffold gets no --format")
	configInitCmd.Flags().BoolVar(&configAssumptions, "include-assumptions", false, "Append Assumptions by default")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Replace an existing config")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path := config.Path(repoRoot)
	if _, err := os.Stat(path); err == nil && !configForce {
		exitWithError(fmt.Sprintf("%s already exists (pass --force to replace it)", path))
	}

	cfg := &config.Config{IncludeAssumptions: configAssumptions}
	if configDefaultFormat != "" {
		f, err := artifact.ParseFormat(configDefaultFormat)
		if err != nil {
			exitWithError(err.Error())
		}
		cfg.DefaultFormat = f
	}

	if err := config.Save(repoRoot, cfg); err != nil {
		exitWithError(fmt.Sprintf("failed to write %s: %v", path, err))
	}
	fmt.Println(ui.SuccessLine("Created " + path))
}
