// Package gui is a small retained-mode toolkit: displays that render widgets
// into a 16bpp buffer and hand dirty areas to a flush callback, and input
// devices polled through read callbacks, all driven by a cooperative timer
// handler.
package gui

import (
	"image"

	"tinygo.org/x/drivers"
)

// Key is a logical key delivered by keypad input devices.
type Key uint32

const (
	KeyUp        Key = 17
	KeyDown      Key = 18
	KeyRight     Key = 19
	KeyLeft      Key = 20
	KeyEsc       Key = 27
	KeyDel       Key = 127
	KeyBackspace Key = 8
	KeyEnter     Key = 10
	KeyNext      Key = 9
	KeyPrev      Key = 11
	KeyHome      Key = 2
	KeyEnd       Key = 3
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyEsc:
		return "esc"
	case KeyDel:
		return "del"
	case KeyBackspace:
		return "backspace"
	case KeyEnter:
		return "enter"
	case KeyNext:
		return "next"
	case KeyPrev:
		return "prev"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case 0:
		return "none"
	default:
		return string(rune(k))
	}
}

// IndevState is the pressed/released state reported by a read callback.
type IndevState uint8

const (
	Released IndevState = iota
	Pressed
)

// IndevData is filled by read callbacks.
type IndevData struct {
	State IndevState
	Point image.Point
	Key   Key
}

// IndevType selects how an input device's data is interpreted.
type IndevType uint8

const (
	IndevPointer IndevType = iota + 1
	IndevKeypad
)

// FlushFunc presents area of px (row stride BufferStride) and must call
// d.FlushReady once the buffer may be reused.
type FlushFunc func(d *Display, area Area, px []uint16)

// ReadFunc fills data with the device's current state.
type ReadFunc func(in *Indev, data *IndevData)

const (
	// BufferStride is the row stride of every render buffer, in pixels.
	BufferStride = 256

	// DefaultRefreshPeriod is how often displays and input devices are serviced, in ms.
	DefaultRefreshPeriod = 33
)

// Toolkit owns displays, input devices and the timer list.
type Toolkit struct {
	tick  func() uint32
	sched scheduler

	displays     []*Display
	indevs       []*Indev
	defDisplay   *Display
	defaultGroup *Group
}

// New returns an empty toolkit whose clock reads zero until SetTickFunc.
func New() *Toolkit {
	return &Toolkit{}
}

// SetTickFunc installs the millisecond clock the timers run against.
func (tk *Toolkit) SetTickFunc(f func() uint32) { tk.tick = f }

// Tick returns the current time in ms.
func (tk *Toolkit) Tick() uint32 {
	if tk.tick == nil {
		return 0
	}
	return tk.tick()
}

// Handler runs every timer whose period has elapsed. Call it periodically.
func (tk *Toolkit) Handler() {
	tk.sched.run(tk.Tick())
}

// NewTimer registers fn to run every period ms.
func (tk *Toolkit) NewTimer(period uint32, fn func()) *Timer {
	return tk.sched.add(period, tk.Tick(), fn)
}

// Displays returns the displays in creation order.
func (tk *Toolkit) Displays() []*Display { return tk.displays }

// DefaultDisplay is the display new pointer devices attach to.
func (tk *Toolkit) DefaultDisplay() *Display { return tk.defDisplay }

func (tk *Toolkit) SetDefaultDisplay(d *Display) { tk.defDisplay = d }

// DefaultGroup is the group new keypad devices attach to.
func (tk *Toolkit) DefaultGroup() *Group { return tk.defaultGroup }

func (tk *Toolkit) SetDefaultGroup(g *Group) { tk.defaultGroup = g }

// rotatedSize returns the logical size of a w x h panel under r.
func rotatedSize(w, h int16, r drivers.Rotation) (int16, int16) {
	if r == drivers.Rotation90 || r == drivers.Rotation270 {
		return h, w
	}
	return w, h
}
