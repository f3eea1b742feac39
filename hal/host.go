//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	upper  *hostScreen
	lower  *hostScreen
	input  *hostInput
}

// New returns a host HAL whose screens follow cfg's initialization recipes.
func New(cfg EngineConfig) (HAL, error) {
	return newHostHAL(cfg, os.Stdout)
}

func newHostHAL(cfg EngineConfig, logOut io.Writer) (*hostHAL, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	h := &hostHAL{
		logger: &hostLogger{w: logOut},
		input:  &hostInput{},
	}
	for _, r := range cfg.Recipes() {
		s := newHostScreen(r)
		if r.Position == PositionUpper {
			h.upper = s
		} else {
			h.lower = s
		}
		h.logger.WriteLineString("hal: " + r.String())
	}
	return h, nil
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) Keypad() Keypad { return h.input }
func (h *hostHAL) Touch() Touch   { return h.input }

// Upper and Lower must return an untyped nil for a missing screen.
func (h *hostHAL) Upper() Screen {
	if h.upper == nil {
		return nil
	}
	return h.upper
}

func (h *hostHAL) Lower() Screen {
	if h.lower == nil {
		return nil
	}
	return h.lower
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostInput is the keypad register and touch sample the runners drive each tick.
type hostInput struct {
	keys  Keys
	touch image.Point
}

func (in *hostInput) Current() Keys     { return in.keys }
func (in *hostInput) Read() image.Point { return in.touch }

func (in *hostInput) set(keys Keys, touch image.Point) {
	in.keys = keys
	if keys&KeyTouch != 0 {
		in.touch = touch
	}
}
