// Package headless drives the smashbing simulation without a display.
// A Script supplies seed, tick budget and scripted fire commands; an optional
// Bot aims for blocks automatically. Effects are logged instead of played.
package headless

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/smashbing/internal/config"
	"github.com/vovakirdan/smashbing/internal/core"
)

// ErrInvalidScript is returned (wrapped) when a script fails validation.
var ErrInvalidScript = errors.New("headless: invalid script")

// Script defaults.
const (
	DefaultTicks       = 60 * 60 // One minute of play at the default rate
	DefaultBotInterval = 30
)

// DefaultTickRate is the host tick rate used when a script gives none.
var DefaultTickRate = core.DefaultConfig().TickRate

// Script describes one headless run.
type Script struct {
	Name     string       `yaml:"name" toml:"name"`
	Seed     int64        `yaml:"seed" toml:"seed"`
	TickRate int          `yaml:"tick_rate" toml:"tick_rate"`
	Ticks    int          `yaml:"ticks" toml:"ticks"`
	Preset   string       `yaml:"preset" toml:"preset"`
	Bot      Bot          `yaml:"bot" toml:"bot"`
	Fires    []ScriptFire `yaml:"fires" toml:"fires"`
}

// ScriptFire fires the ball at (X, Y) on the given tick.
type ScriptFire struct {
	Tick int     `yaml:"tick" toml:"tick"`
	X    float64 `yaml:"x" toml:"x"`
	Y    float64 `yaml:"y" toml:"y"`
}

// DefaultScript returns an empty run of DefaultTicks at DefaultTickRate.
func DefaultScript() Script {
	return Script{
		Name:     "default",
		TickRate: DefaultTickRate,
		Ticks:    DefaultTicks,
		Bot:      Bot{Interval: DefaultBotInterval},
	}
}

// Runtime returns the host timing and seed for the script.
func (s Script) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{TickRate: s.TickRate, Seed: s.Seed}
}

// DT returns the simulated seconds per tick.
func (s Script) DT() float64 {
	return s.Runtime().TickSeconds()
}

// FiresAt returns the scripted fires for a tick in script order.
func (s Script) FiresAt(tick int) []ScriptFire {
	var out []ScriptFire
	for _, f := range s.Fires {
		if f.Tick == tick {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks the script for values the runner cannot use.
func (s Script) Validate() error {
	var errs []error
	if s.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", s.TickRate))
	}
	if s.Ticks <= 0 {
		errs = append(errs, fmt.Errorf("ticks must be positive, got %d", s.Ticks))
	}
	if s.Bot.Interval < 0 {
		errs = append(errs, fmt.Errorf("bot.interval must not be negative, got %d", s.Bot.Interval))
	}
	if _, err := config.ParsePreset(s.Preset); err != nil {
		errs = append(errs, err)
	}
	for i, f := range s.Fires {
		if f.Tick < 0 || f.Tick >= s.Ticks {
			errs = append(errs, fmt.Errorf("fires[%d].tick %d outside [0, %d)", i, f.Tick, s.Ticks))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScript, errors.Join(errs...))
	}
	return nil
}

// ParseScript decodes a script on top of DefaultScript and validates it.
func ParseScript(data []byte, format config.Format) (Script, error) {
	s := DefaultScript()
	switch format {
	case config.FormatTOML:
		if err := toml.Unmarshal(data, &s); err != nil {
			return Script{}, fmt.Errorf("headless: toml unmarshal: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Script{}, fmt.Errorf("headless: yaml unmarshal: %w", err)
		}
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// LoadScript reads a script file. Files ending in .toml are decoded as TOML,
// everything else as YAML.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("headless: failed to read %s: %w", path, err)
	}
	s, err := ParseScript(data, config.FormatFromPath(path))
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
