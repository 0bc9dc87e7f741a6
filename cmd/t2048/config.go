package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after files and T2048_* environment
variables are applied. The output is valid YAML and can be saved as
~/.t2048/config.yaml.

Examples:
  t2048 config
  T2048_GRID_SIZE=6 t2048 config
  t2048 config --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	data, err := config.Marshal(loadedConfig)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", configSource)
	_, err = out.Write(data)
	return err
}
