package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML.

Without flags, prints the configuration play would use after the search
order (--config, ~/.invaders/configs/invaders.yaml, ./configs/invaders.yaml,
embedded defaults). With --default, prints the embedded defaults verbatim,
comments included, as a starting point for a custom file.

Examples:
  invaders config
  invaders config --config ./my-invaders.yaml
  invaders config --default > ~/.invaders/configs/invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the embedded defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefault {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, _, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
