//go:build !tinygo && cgo

package hal

import (
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var defaultBindings = map[Keys]ebiten.Key{
	KeyA:      ebiten.KeyX,
	KeyB:      ebiten.KeyZ,
	KeyX:      ebiten.KeyS,
	KeyY:      ebiten.KeyA,
	KeyL:      ebiten.KeyQ,
	KeyR:      ebiten.KeyW,
	KeyStart:  ebiten.KeyEnter,
	KeySelect: ebiten.KeyShiftRight,
	KeyUp:     ebiten.KeyArrowUp,
	KeyDown:   ebiten.KeyArrowDown,
	KeyLeft:   ebiten.KeyArrowLeft,
	KeyRight:  ebiten.KeyArrowRight,
	KeyLid:    ebiten.KeyF12,
}

// keyBindings resolves overrides (button name -> ebiten key name) over the defaults.
func keyBindings(overrides map[string]string) (map[Keys]ebiten.Key, error) {
	out := make(map[Keys]ebiten.Key, len(defaultBindings))
	for k, v := range defaultBindings {
		out[k] = v
	}
	for button, keyName := range overrides {
		b, err := ParseKey(button)
		if err != nil {
			return nil, fmt.Errorf("key binding: %w", err)
		}
		if b == KeyTouch {
			return nil, fmt.Errorf("key binding: touch is driven by the mouse")
		}
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(strings.TrimSpace(keyName))); err != nil {
			return nil, fmt.Errorf("key binding %s: %w", button, err)
		}
		out[b] = k
	}
	return out, nil
}

// pollEbiten samples the keyboard and mouse. lowerOrigin is where the lower
// screen starts in window layout coordinates.
func (in *hostInput) pollEbiten(bindings map[Keys]ebiten.Key, lowerOrigin image.Point) {
	var keys Keys
	for b, k := range bindings {
		if ebiten.IsKeyPressed(k) {
			keys |= b
		}
	}

	var touch image.Point
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p := image.Pt(x, y).Sub(lowerOrigin)
		if p.In(image.Rect(0, 0, ScreenWidth, ScreenHeight)) {
			keys |= KeyTouch
			touch = p
		}
	}
	in.set(keys, touch)
}
