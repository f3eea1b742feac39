package lvds

import "ndsgui/hal"

// ButtonSet is a set of physical inputs, one bit per keypad register bit.
type ButtonSet uint16

const (
	ButtonA      = ButtonSet(hal.KeyA)
	ButtonB      = ButtonSet(hal.KeyB)
	ButtonSelect = ButtonSet(hal.KeySelect)
	ButtonStart  = ButtonSet(hal.KeyStart)
	ButtonRight  = ButtonSet(hal.KeyRight)
	ButtonLeft   = ButtonSet(hal.KeyLeft)
	ButtonUp     = ButtonSet(hal.KeyUp)
	ButtonDown   = ButtonSet(hal.KeyDown)
	ButtonR      = ButtonSet(hal.KeyR)
	ButtonL      = ButtonSet(hal.KeyL)
	ButtonX      = ButtonSet(hal.KeyX)
	ButtonY      = ButtonSet(hal.KeyY)
	ButtonTouch  = ButtonSet(hal.KeyTouch)
	ButtonLid    = ButtonSet(hal.KeyLid)
)

// UsedButtons are the ten buttons the keypad device consumes.
const UsedButtons = ButtonLeft | ButtonRight | ButtonUp | ButtonDown |
	ButtonL | ButtonR | ButtonA | ButtonB | ButtonX | ButtonY

// Merge returns s with every button of o added.
func (s ButtonSet) Merge(o ButtonSet) ButtonSet { return s | o }

// ContainsAny reports whether s and o share a button.
func (s ButtonSet) ContainsAny(o ButtonSet) bool { return s&o != 0 }

// Remove returns s without the buttons of o. Buttons outside o are untouched.
func (s ButtonSet) Remove(o ButtonSet) ButtonSet { return s &^ o }

// Has reports whether every button of b is in s.
func (s ButtonSet) Has(b ButtonSet) bool { return s&b == b }

func (s ButtonSet) String() string { return hal.Keys(s).String() }
