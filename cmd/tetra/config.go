package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetra/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show game configuration",
	Long: `Print game configuration.

Config files are searched in order: --config, ~/.tetra/configs/tetra.yaml,
./configs/tetra.yaml, then the built-in defaults. Files may set only the
keys they change.

Examples:
  tetra config defaults > ~/.tetra/configs/tetra.yaml
  tetra config show --config ./tetra.yaml`,
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in default config",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.GetDefaultYAML("tetra"))
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the config a game would start with",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		cfg, src, err := config.LoadTetra(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if flagDifficulty != "" {
			preset, err := config.ParsePreset(flagDifficulty)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			config.ApplyTetraPreset(&cfg, preset)
		}

		out, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("# source: %s\n%s", src, out)
	},
}

func init() {
	configShowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configShowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	configCmd.AddCommand(configDefaultsCmd)
	configCmd.AddCommand(configShowCmd)
}
