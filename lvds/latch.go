package lvds

import (
	"image"

	"ndsgui/hal"
)

// Latch accumulates raw input between toolkit polls.
//
// Buttons are merged every tick and only removed when a poll consumes them,
// so a press shorter than the poll interval is still seen. Buttons no poll
// recognizes (Start, Select, Lid) are never removed.
type Latch struct {
	buttons ButtonSet
	touch   image.Point
}

// Sample merges the keypad register and, while the touchscreen is held,
// replaces the touch position with the new reading.
func (l *Latch) Sample(keys hal.Keys, touch image.Point) {
	pressed := ButtonSet(keys)
	l.buttons = l.buttons.Merge(pressed)
	if pressed.Has(ButtonTouch) {
		l.touch = touch
	}
}

// Buttons returns the latched buttons.
func (l *Latch) Buttons() ButtonSet { return l.buttons }

// Touch returns the latest touch reading.
func (l *Latch) Touch() image.Point { return l.touch }

func (l *Latch) remove(s ButtonSet) {
	l.buttons = l.buttons.Remove(s)
}
