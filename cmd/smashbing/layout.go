package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/smashbing/internal/config"
	"github.com/vovakirdan/smashbing/internal/core"
	"github.com/vovakirdan/smashbing/internal/smashbing"
)

var flagLayoutFormat string

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show a generated block field",
	Long: `Generate a block field with the given seed and print it.

On a terminal the field is drawn as coloured swatches, top row first, with
critters marked. Otherwise (or with --format yaml) every block is listed.

Examples:
  smashbing layout --seed 7
  smashbing layout --seed 7 --format yaml > field.yaml`,
	Args: cobra.NoArgs,
	Run:  runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&flagLayoutFormat, "format", "auto", "Output format: auto, table, yaml")
}

func runLayout(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	field := smashbing.GenerateField(cfg.Field, core.NewRand(flagSeed))

	format := flagLayoutFormat
	if format == "auto" {
		format = "yaml"
		if term.IsTerminal(int(os.Stdout.Fd())) { //#nosec G115 -- fd fits in int
			format = "table"
		}
	}

	switch format {
	case "table":
		fmt.Fprint(os.Stdout, renderField(field, cfg.Field))
	case "yaml":
		err = writeFieldYAML(os.Stdout, field)
	default:
		err = fmt.Errorf("unknown format %q (want auto, table or yaml)", format)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	layoutHeader  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	layoutCritter = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
)

// renderField draws the grid with the top row first, matching the y-up arena.
func renderField(f *smashbing.Field, fc config.FieldConfig) string {
	var b strings.Builder
	b.WriteString(layoutHeader.Render(fmt.Sprintf("%dx%d field, %d critters", fc.Cols, fc.Rows, f.CritterCount())))
	b.WriteString("\n")

	for row := fc.Rows - 1; row >= 0; row-- {
		for col := range fc.Cols {
			id := uint32(col*fc.Rows + row) //#nosec G115 -- cell index is small and non-negative
			blk, ok := f.Get(id)
			if !ok {
				b.WriteString("    ")
				continue
			}
			cell := "    "
			style := lipgloss.NewStyle().Background(lipgloss.Color(blk.Color.Hex()))
			if blk.Critter {
				cell = " () "
				style = style.Inherit(layoutCritter)
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}

type layoutBlock struct {
	ID      uint32  `yaml:"id"`
	Left    float64 `yaml:"left"`
	Bottom  float64 `yaml:"bottom"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Color   string  `yaml:"color"`
	Critter bool    `yaml:"critter,omitempty"`
}

// writeFieldYAML lists every block in id order.
func writeFieldYAML(w io.Writer, f *smashbing.Field) error {
	blocks := f.Blocks()
	out := make([]layoutBlock, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, layoutBlock{
			ID:      b.ID,
			Left:    b.Rect.Left,
			Bottom:  b.Rect.Bottom,
			Width:   b.Rect.Width(),
			Height:  b.Rect.Height(),
			Color:   b.Color.Hex(),
			Critter: b.Critter,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any{"blocks": out}); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return enc.Close()
}
