// smashbing runs the smashbing arcade simulation without a display.
//
// Usage:
//
//	smashbing simulate [script]  - Run a scripted or bot-driven game headlessly
//	smashbing layout             - Print a generated block field
//	smashbing config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - RNG seed for reproducible runs (0 = time-based)
//	--config <path>      - Custom config file (YAML or TOML)
//	--preset <name>      - Difficulty preset: easy, normal, hard
//	--log-level <level>  - debug, info, warn, error
//
// Each global flag may also come from the environment (SMASHBING_SEED,
// SMASHBING_CONFIG, SMASHBING_PRESET, SMASHBING_LOG_LEVEL) or a .env file.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/smashbing/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagPreset   string
	flagLogLevel string
)

// envFlags maps global flags to the environment variables that default them.
var envFlags = map[string]string{
	"seed":      "SMASHBING_SEED",
	"config":    "SMASHBING_CONFIG",
	"preset":    "SMASHBING_PRESET",
	"log-level": "SMASHBING_LOG_LEVEL",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "smashbing",
	Short: "Smashbing - fire a ball, smash blocks, free critters",
	Long: `Smashbing is a small physics arcade game: a ball is fired around a walled
arena to smash a grid of blocks and free the critters hidden among them.

This binary runs the simulation headlessly.

Available commands:
  simulate  - Run a game from a script or with the built-in bot
  layout    - Show a generated block field
  config    - Show the effective configuration

Examples:
  smashbing simulate --seed 42
  smashbing simulate ./scripts/opener.yaml --log-level debug
  smashbing layout --seed 7
  smashbing config --preset hard`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadDotEnv(".env"); err != nil {
			return err
		}
		return applyEnv(cmd)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)
}

// loadDotEnv loads environment defaults from path.
// A missing file is fine; a malformed one is an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// applyEnv fills global flags that were not given on the command line.
func applyEnv(cmd *cobra.Command) error {
	flags := cmd.Flags()
	for name, env := range envFlags {
		if flags.Changed(name) {
			continue
		}
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}
	return nil
}

// newLogger creates the CLI logger at the requested level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "smashbing",
		Level:           level,
	}), nil
}

// loadConfig loads the tuning and applies the --preset flag.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}
