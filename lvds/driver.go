// Package lvds binds the handheld's two screens, keypad and touchscreen to
// the gui toolkit.
//
// A Driver is created once at startup and owns all adapter state: the display
// surfaces, the active orientation, the input latch and the vblank counter.
// Every method must be called from the single loop that calls Update.
package lvds

import (
	"fmt"

	"ndsgui/gui"
	"ndsgui/hal"
)

// SurfaceID names a physical screen.
type SurfaceID uint8

const (
	Upper SurfaceID = iota
	Lower
)

func (id SurfaceID) String() string {
	if id == Lower {
		return "lower"
	}
	return "upper"
}

// Surface is the hardware bitmap of one screen: 256x192 visible pixels in a
// 256x256 ARGB1555 buffer.
type Surface struct {
	id  SurfaceID
	pix []uint16
}

// NewSurface wraps pix, which must hold at least 256*256 pixels.
func NewSurface(id SurfaceID, pix []uint16) *Surface {
	return &Surface{id: id, pix: pix}
}

func (s *Surface) ID() SurfaceID     { return s.id }
func (s *Surface) Pixels() []uint16 { return s.pix }

// Driver is the adapter context.
type Driver struct {
	log    hal.Logger
	keypad hal.Keypad
	touch  hal.Touch

	surfaces [2]*Surface
	displays [2]*gui.Display

	orientation Orientation
	latch       Latch
	ticks       uint32

	tk      *gui.Toolkit
	pointer *gui.Indev
	keys    *gui.Indev
	group   *gui.Group
}

// New takes ownership of the HAL's screens and input. The orientation starts
// Horizontal.
func New(h hal.HAL) *Driver {
	d := &Driver{
		log:    h.Logger(),
		keypad: h.Keypad(),
		touch:  h.Touch(),
	}
	if s := h.Upper(); s != nil {
		d.surfaces[Upper] = NewSurface(Upper, s.Pixels())
	}
	if s := h.Lower(); s != nil {
		d.surfaces[Lower] = NewSurface(Lower, s.Pixels())
	}
	return d
}

// Attach registers the driver with tk: the tick source, one display per
// present surface, the touchscreen as a pointer on the lower display and the
// keypad in a new default focus group.
func (d *Driver) Attach(tk *gui.Toolkit) {
	d.tk = tk
	tk.SetTickFunc(d.Millis)

	for id, s := range d.surfaces {
		if s == nil {
			continue
		}
		sid := SurfaceID(id)
		disp := tk.NewDisplay(hal.ScreenWidth, hal.ScreenHeight, make([]uint16, gui.BufferStride*gui.BufferStride))
		disp.SetFlushFunc(func(gd *gui.Display, area gui.Area, px []uint16) {
			d.Flush(sid, gd, area, px)
		})
		disp.SetRotation(modes[d.orientation].rotation)
		d.displays[id] = disp
	}

	if lower := d.displays[Lower]; lower != nil {
		tk.SetDefaultDisplay(lower)
		d.pointer = tk.NewIndev(gui.IndevPointer, d.ReadPointer)
	}

	d.group = tk.NewGroup()
	tk.SetDefaultGroup(d.group)
	d.keys = tk.NewIndev(gui.IndevKeypad, d.ReadKeypad)
	d.keys.SetGroup(d.group)

	d.logf("lvds: attached (upper=%t lower=%t, %s)", d.displays[Upper] != nil, d.displays[Lower] != nil, d.orientation)
}

// Update runs once per vblank: latch input, count the tick, then let the
// toolkit run its timers.
func (d *Driver) Update() {
	keys := d.keypad.Current()
	touch := d.latch.touch
	if keys&hal.KeyTouch != 0 {
		touch = d.touch.Read()
	}
	d.latch.Sample(keys, touch)
	d.ticks++
	if d.tk != nil {
		d.tk.Handler()
	}
}

// Ticks returns the number of Update calls so far.
func (d *Driver) Ticks() uint32 { return d.ticks }

// Millis converts the vblank count to milliseconds at 1000/60 ms per tick
// (t*16 + t*2/3), not 18 ms per tick. Tick 0 is 0 ms.
func (d *Driver) Millis() uint32 { return ticksToMillis(d.ticks) }

func ticksToMillis(t uint32) uint32 {
	if t == 0 {
		return 0
	}
	return t<<4 + (t<<1)/3
}

// Orientation returns the active orientation.
func (d *Driver) Orientation() Orientation { return d.orientation }

// SetOrientation switches the pixel transform and key table together and
// updates the rotation of every attached display. Screens without a display
// are skipped.
func (d *Driver) SetOrientation(o Orientation) {
	if !o.Valid() {
		d.logf("lvds: ignoring invalid %s", o)
		return
	}
	d.orientation = o
	for id, disp := range d.displays {
		if disp == nil || d.surfaces[id] == nil {
			continue
		}
		disp.SetRotation(modes[o].rotation)
	}
	d.logf("lvds: orientation %s", o)
}

// Latch returns the input latch.
func (d *Driver) Latch() *Latch { return &d.latch }

// Surface returns the surface for id, or nil if its screen is not initialized.
func (d *Driver) Surface(id SurfaceID) *Surface { return d.surfaces[id] }

// Display returns the toolkit display bound to id, or nil.
func (d *Driver) Display(id SurfaceID) *gui.Display { return d.displays[id] }

func (d *Driver) UpperDisplay() *gui.Display { return d.displays[Upper] }
func (d *Driver) LowerDisplay() *gui.Display { return d.displays[Lower] }

// KeypadGroup is the focus group the keypad drives.
func (d *Driver) KeypadGroup() *gui.Group { return d.group }

// KeypadIndev and PointerIndev return the registered input devices; the
// pointer is nil without a lower screen.
func (d *Driver) KeypadIndev() *gui.Indev  { return d.keys }
func (d *Driver) PointerIndev() *gui.Indev { return d.pointer }

func (d *Driver) logf(format string, args ...any) {
	if d.log == nil {
		return
	}
	d.log.WriteLineString(fmt.Sprintf(format, args...))
}
