package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/smashbing/internal/platform/headless"
)

var (
	flagTicks       int
	flagFPS         int
	flagBot         bool
	flagBotInterval int
	flagPreferExit  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [script]",
	Short: "Run a game headlessly",
	Long: `Run the simulation without a display and print a summary.

A script (YAML or TOML) sets the seed, tick budget, tick rate, preset,
bot behaviour and scripted fire commands. Without a script the built-in
bot plays for one minute of game time. Flags override script values.

Script example:
  name: opener
  seed: 42
  ticks: 1800
  bot:
    interval: 30
  fires:
    - {tick: 0, x: 12, y: 18.5}

Examples:
  smashbing simulate
  smashbing simulate --ticks 7200 --bot-interval 20
  smashbing simulate ./scripts/opener.yaml --seed 9`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", headless.DefaultTicks, "Number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagFPS, "fps", headless.DefaultTickRate, "Tick rate (ticks per simulated second)")
	simulateCmd.Flags().BoolVar(&flagBot, "bot", true, "Let the bot fire at blocks")
	simulateCmd.Flags().IntVar(&flagBotInterval, "bot-interval", headless.DefaultBotInterval, "Ticks between bot shots")
	simulateCmd.Flags().BoolVar(&flagPreferExit, "prefer-exit", false, "Bot aims for Exit instead of Reset in the menu")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	script := headless.DefaultScript()
	if len(args) == 1 {
		script, err = headless.LoadScript(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	applyScriptFlags(cmd, &script)

	// Stop cleanly on Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := headless.NewRunner(cfg, logger, headless.NewLogHandler(logger))
	sum, runErr := runner.Run(ctx, script)
	if runErr != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	printSummary(os.Stdout, sum)
	if runErr != nil {
		logger.Warn("run interrupted", "error", runErr)
	}
}

// applyScriptFlags lets explicit flags override the script.
func applyScriptFlags(cmd *cobra.Command, s *headless.Script) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		s.Seed = flagSeed
	}
	if flagPreset != "" {
		s.Preset = flagPreset
	}
	if flags.Changed("ticks") {
		s.Ticks = flagTicks
	}
	if flags.Changed("fps") {
		s.TickRate = flagFPS
	}
	if flags.Changed("bot-interval") {
		s.Bot.Interval = flagBotInterval
	}
	if flags.Changed("prefer-exit") {
		s.Bot.PreferExit = flagPreferExit
	}
	if flags.Changed("bot") && !flagBot {
		s.Bot.Interval = 0
	}
}

var (
	summaryLabel = lipgloss.NewStyle().Bold(true).Width(16)
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).MarginBottom(1)
)

// printSummary writes a human-readable run summary.
func printSummary(w io.Writer, sum headless.Summary) {
	fmt.Fprintln(w, summaryTitle.Render("Run "+sum.Name))

	line := func(label string, value any) {
		fmt.Fprintf(w, "%s%v\n", summaryLabel.Render(label), value)
	}
	line("Seed", sum.Seed)
	line("Ticks", sum.Ticks)
	line("Elapsed", sum.Elapsed.Round(time.Microsecond))
	line("Wins", sum.Wins)
	line("Resets", sum.Resets)
	line("Exited", sum.Exited)
	line("Mode", sum.Mode)
	line("Blocks left", sum.Blocks)
	line("Freed critters", sum.FreedCritters)
	line("Peak particles", sum.Particles)
	line("State hash", fmt.Sprintf("%016x", sum.Hash))

	names := make([]string, 0, len(sum.Sounds))
	for name := range sum.Sounds {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		line("Sound "+name, sum.Sounds[name])
	}
}
