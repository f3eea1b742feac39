package hal

import (
	"errors"
	"fmt"
)

// Mode is how an engine scans out its bitmap.
type Mode uint8

const (
	// ModeFramebuffer displays the VRAM bank directly; the alpha bit is ignored.
	ModeFramebuffer Mode = iota + 1
	// ModeBitmapLayer composites a 16bpp background layer; pixels without bit 15 are transparent.
	ModeBitmapLayer
)

func (m Mode) String() string {
	switch m {
	case ModeFramebuffer:
		return "framebuffer"
	case ModeBitmapLayer:
		return "bitmap-layer"
	default:
		return "unknown"
	}
}

// EngineConfig selects among the fixed screen initialization recipes.
type EngineConfig struct {
	InitUpper bool `toml:"init_upper"`
	InitLower bool `toml:"init_lower"`

	// MainOnBottom routes the main engine to the lower (touch) LCD.
	MainOnBottom bool `toml:"main_on_bottom"`

	// MainFramebuffer drives the main engine in framebuffer mode from VRAM bank B
	// instead of a composited bitmap layer.
	MainFramebuffer bool `toml:"main_framebuffer"`

	MainLayer int `toml:"main_layer"`
	SubLayer  int `toml:"sub_layer"`
}

// DefaultEngineConfig initializes both screens, puts the main engine in
// framebuffer mode on the bottom LCD and uses background layer 3 elsewhere.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		InitUpper:       true,
		InitLower:       true,
		MainOnBottom:    true,
		MainFramebuffer: true,
		MainLayer:       3,
		SubLayer:        3,
	}
}

var ErrNoScreens = errors.New("engine config initializes no screen")

// Validate reports configs no recipe can satisfy.
func (c EngineConfig) Validate() error {
	if !c.InitUpper && !c.InitLower {
		return ErrNoScreens
	}
	if c.MainLayer < 0 || c.MainLayer > 3 {
		return fmt.Errorf("main layer %d out of range 0..3", c.MainLayer)
	}
	if c.SubLayer < 0 || c.SubLayer > 3 {
		return fmt.Errorf("sub layer %d out of range 0..3", c.SubLayer)
	}
	return nil
}

// ScreenRecipe describes how one LCD is brought up.
type ScreenRecipe struct {
	Position Position
	Engine   Engine
	Mode     Mode
	Layer    int
	Bank     byte
}

func (r ScreenRecipe) String() string {
	if r.Mode == ModeFramebuffer {
		return fmt.Sprintf("%s: %s engine, %s on VRAM %c", r.Position, r.Engine, r.Mode, r.Bank)
	}
	return fmt.Sprintf("%s: %s engine, %s %d on VRAM %c", r.Position, r.Engine, r.Mode, r.Layer, r.Bank)
}

// Recipes returns the screens c initializes, upper first.
func (c EngineConfig) Recipes() []ScreenRecipe {
	mainRecipe := func(pos Position) ScreenRecipe {
		if c.MainFramebuffer {
			return ScreenRecipe{Position: pos, Engine: EngineMain, Mode: ModeFramebuffer, Bank: 'B'}
		}
		return ScreenRecipe{Position: pos, Engine: EngineMain, Mode: ModeBitmapLayer, Layer: c.MainLayer, Bank: 'B'}
	}
	subRecipe := func(pos Position) ScreenRecipe {
		return ScreenRecipe{Position: pos, Engine: EngineSub, Mode: ModeBitmapLayer, Layer: c.SubLayer, Bank: 'C'}
	}

	var out []ScreenRecipe
	if c.InitUpper {
		if c.MainOnBottom {
			out = append(out, subRecipe(PositionUpper))
		} else {
			out = append(out, mainRecipe(PositionUpper))
		}
	}
	if c.InitLower {
		if c.MainOnBottom {
			out = append(out, mainRecipe(PositionLower))
		} else {
			out = append(out, subRecipe(PositionLower))
		}
	}
	return out
}
