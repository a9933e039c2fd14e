package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/smashbing/internal/config"
)

var flagConfigFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration smashbing would run with, after the search path,
--config and --preset are applied.

Search order:
  --config <path>  ->  ~/.smashbing/smashbing.yaml  ->  ./configs/smashbing.yaml  ->  built-in defaults

Examples:
  smashbing config
  smashbing config --preset easy --format toml > smashbing.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml, toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch config.Format(flagConfigFormat) {
	case config.FormatYAML:
		var data []byte
		data, err = config.Marshal(cfg)
		if err == nil {
			_, err = os.Stdout.Write(data)
		}
	case config.FormatTOML:
		err = toml.NewEncoder(os.Stdout).Encode(cfg)
	default:
		err = fmt.Errorf("unknown format %q (want yaml or toml)", flagConfigFormat)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
