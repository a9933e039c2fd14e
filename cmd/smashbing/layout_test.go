package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/smashbing/internal/config"
	"github.com/vovakirdan/smashbing/internal/core"
	"github.com/vovakirdan/smashbing/internal/platform/headless"
	"github.com/vovakirdan/smashbing/internal/smashbing"
)

func TestWriteFieldYAML(t *testing.T) {
	cfg := config.DefaultConfig()
	field := smashbing.GenerateField(cfg.Field, core.NewRand(7))

	var buf bytes.Buffer
	if err := writeFieldYAML(&buf, field); err != nil {
		t.Fatalf("writeFieldYAML() error = %v", err)
	}

	var decoded struct {
		Blocks []layoutBlock `yaml:"blocks"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if len(decoded.Blocks) != 48 {
		t.Fatalf("blocks = %d, expected 48", len(decoded.Blocks))
	}

	critters := 0
	for _, b := range decoded.Blocks {
		if b.Critter {
			critters++
		}
		if len(b.Color) != 7 || b.Color[0] != '#' {
			t.Errorf("block %d colour = %q, expected #rrggbb", b.ID, b.Color)
		}
	}
	if critters != 7 {
		t.Errorf("critters = %d, expected 7", critters)
	}
}

func TestRenderField(t *testing.T) {
	cfg := config.DefaultConfig()
	field := smashbing.GenerateField(cfg.Field, core.NewRand(7))

	out := renderField(field, cfg.Field)
	if got := strings.Count(out, "()"); got != 7 {
		t.Errorf("critter markers = %d, expected 7", got)
	}
	if !strings.Contains(out, "6x8 field, 7 critters") {
		t.Errorf("header missing from %q", out)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, headless.Summary{
		Name:   "demo",
		Ticks:  10,
		Sounds: map[string]int{"win": 1, "bounce": 3},
	})

	out := buf.String()
	for _, want := range []string{"Run demo", "Ticks", "Sound bounce", "Sound win"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Sound bounce") > strings.Index(out, "Sound win") {
		t.Error("sounds not sorted by name")
	}
}
