//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// HostConfig controls the desktop runners.
type HostConfig struct {
	Scale    int            `toml:"scale"`
	Engine   EngineConfig   `toml:"engine"`
	Headless HeadlessConfig `toml:"headless"`

	// Keys binds handheld buttons to host keyboard keys by name,
	// e.g. a = "X". Unlisted buttons keep their default binding.
	Keys map[string]string `toml:"keys"`
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool   `toml:"enabled"`
	Hz      int    `toml:"hz"`
	Ticks   uint64 `toml:"ticks"`

	// Screenshot, when set, is written as PNG when the run ends.
	Screenshot string `toml:"screenshot"`

	Script []ScriptStep `toml:"script"`
}

// ScriptStep holds buttons (and optionally a touch point) from Tick for Hold ticks.
type ScriptStep struct {
	Tick  uint64   `toml:"tick"`
	Hold  uint64   `toml:"hold"`
	Keys  []string `toml:"keys"`
	Touch []int    `toml:"touch"`
}

// DefaultHostConfig returns the settings used when no config file is given.
func DefaultHostConfig() HostConfig {
	return HostConfig{
		Scale:  2,
		Engine: DefaultEngineConfig(),
		Headless: HeadlessConfig{
			Hz: 60,
		},
	}
}

// LoadHostConfig reads a TOML file over the defaults.
func LoadHostConfig(path string) (HostConfig, error) {
	cfg := DefaultHostConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := compileScript(cfg.Headless.Script); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

var errBadTouch = errors.New("touch must be [x, y] inside the lower screen")

type scriptEntry struct {
	from, to uint64
	keys     Keys
	touch    image.Point
}

type script []scriptEntry

func compileScript(steps []ScriptStep) (script, error) {
	out := make(script, 0, len(steps))
	for i, st := range steps {
		keys, err := ParseKeys(st.Keys)
		if err != nil {
			return nil, fmt.Errorf("script step %d: %w", i, err)
		}
		e := scriptEntry{from: st.Tick, keys: keys}
		hold := st.Hold
		if hold == 0 {
			hold = 1
		}
		e.to = st.Tick + hold

		if len(st.Touch) > 0 {
			if len(st.Touch) != 2 ||
				st.Touch[0] < 0 || st.Touch[0] >= ScreenWidth ||
				st.Touch[1] < 0 || st.Touch[1] >= ScreenHeight {
				return nil, fmt.Errorf("script step %d: %w", i, errBadTouch)
			}
			e.keys |= KeyTouch
			e.touch = image.Pt(st.Touch[0], st.Touch[1])
		}
		out = append(out, e)
	}
	return out, nil
}

// at returns the keypad state scripted for tick. Later steps win the touch point.
func (s script) at(tick uint64) (Keys, image.Point) {
	var keys Keys
	var touch image.Point
	for _, e := range s {
		if tick < e.from || tick >= e.to {
			continue
		}
		keys |= e.keys
		if e.keys&KeyTouch != 0 {
			touch = e.touch
		}
	}
	return keys, touch
}
