package lvds

import (
	"fmt"

	"ndsgui/gui"

	"tinygo.org/x/drivers"
)

// Orientation is how the handheld is held.
type Orientation uint8

const (
	// Horizontal is the default, hinge horizontal, upper screen on top.
	Horizontal Orientation = iota
	// RotatedLeft holds the device vertically with the upper screen on the left.
	RotatedLeft
	// RotatedRight holds the device vertically with the upper screen on the right.
	RotatedRight

	orientationCount
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case RotatedLeft:
		return "rotated-left"
	case RotatedRight:
		return "rotated-right"
	default:
		return fmt.Sprintf("orientation(%d)", uint8(o))
	}
}

// Valid reports whether o is one of the three orientations.
func (o Orientation) Valid() bool { return o < orientationCount }

// Next cycles Horizontal -> RotatedLeft -> RotatedRight -> Horizontal.
func (o Orientation) Next() Orientation {
	return (o + 1) % orientationCount
}

// keyMapping binds one physical button to a logical key.
type keyMapping struct {
	button ButtonSet
	key    gui.Key
}

// orientationMode is everything that changes with orientation. The flush and
// keypad paths look it up on every call.
type orientationMode struct {
	rotation drivers.Rotation

	// offset maps a logical pixel to its index in the 256x256 surface.
	offset func(x, y int) int

	// keymap is in priority order: the first latched button wins.
	keymap [10]keyMapping
}

var modes = [orientationCount]orientationMode{
	Horizontal: {
		rotation: drivers.Rotation0,
		offset:   func(x, y int) int { return y*256 + x },
		keymap: [10]keyMapping{
			{ButtonLeft, gui.KeyLeft},
			{ButtonRight, gui.KeyRight},
			{ButtonUp, gui.KeyUp},
			{ButtonDown, gui.KeyDown},
			{ButtonL, gui.KeyPrev},
			{ButtonR, gui.KeyNext},
			{ButtonA, gui.KeyEnter},
			{ButtonB, gui.KeyEsc},
			{ButtonX, gui.KeyHome},
			{ButtonY, gui.KeyBackspace},
		},
	},
	RotatedLeft: {
		rotation: drivers.Rotation270,
		offset:   func(x, y int) int { return x*256 + (255 - y) },
		keymap: [10]keyMapping{
			{ButtonLeft, gui.KeyDown},
			{ButtonRight, gui.KeyUp},
			{ButtonUp, gui.KeyPrev},
			{ButtonDown, gui.KeyNext},
			{ButtonL, gui.KeyEnter},
			{ButtonR, gui.KeyEnter},
			{ButtonA, gui.KeyEsc},
			{ButtonB, gui.KeyEnter},
			{ButtonX, gui.KeyLeft},
			{ButtonY, gui.KeyRight},
		},
	},
	RotatedRight: {
		rotation: drivers.Rotation90,
		offset:   func(x, y int) int { return (191-x)*256 + y },
		keymap: [10]keyMapping{
			{ButtonB, gui.KeyPrev},
			{ButtonX, gui.KeyNext},
			{ButtonY, gui.KeyUp},
			{ButtonA, gui.KeyDown},
			{ButtonR, gui.KeyEnter},
			{ButtonL, gui.KeyEnter},
			{ButtonUp, gui.KeyEnter},
			{ButtonLeft, gui.KeyEsc},
			{ButtonDown, gui.KeyLeft},
			{ButtonRight, gui.KeyRight},
		},
	},
}

// resolve returns the logical key for the highest-priority button in s.
func (m *orientationMode) resolve(s ButtonSet) (gui.Key, bool) {
	for _, km := range m.keymap {
		if s.Has(km.button) {
			return km.key, true
		}
	}
	return 0, false
}

// ParseOrientation accepts the names printed by String.
func ParseOrientation(s string) (Orientation, error) {
	for o := Horizontal; o < orientationCount; o++ {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("lvds: unknown orientation %q", s)
}
