package app

import (
	"errors"
	"image/color"

	"ndsgui/gui"
	"ndsgui/hal"
	"ndsgui/internal/buildinfo"
	"ndsgui/lvds"
)

// ErrQuit is returned by the step function once Start is pressed.
var ErrQuit = errors.New("app: quit requested")

// Config selects the demo's starting state.
type Config struct {
	Orientation lvds.Orientation
}

var lowerBackground = color.RGBA{R: 0x43, G: 0x34, B: 0x6b, A: 0xFF}

type demo struct {
	h   hal.HAL
	drv *lvds.Driver
	tk  *gui.Toolkit

	log    *gui.Console
	status *gui.Console
	rotate *gui.Button
	clear  *gui.Button
}

// New builds the demo with the default config and returns its per-vblank step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	d := newDemo(h, cfg)
	return guardStep(h, d.step)
}

func newDemo(h hal.HAL, cfg Config) *demo {
	d := &demo{
		h:   h,
		drv: lvds.New(h),
		tk:  gui.New(),
	}
	d.drv.Attach(d.tk)

	if up := d.drv.UpperDisplay(); up != nil {
		d.log = gui.NewConsole(up, fullArea(up))
	}
	if low := d.drv.LowerDisplay(); low != nil {
		low.SetBackground(lowerBackground)
		d.rotate = gui.NewButton(low, gui.Area{}, "rotate", d.rotateNext)
		d.clear = gui.NewButton(low, gui.Area{}, "clear", d.clearLog)
		d.status = gui.NewConsole(low, fullArea(low))

		g := d.drv.KeypadGroup()
		g.Add(d.rotate)
		g.Add(d.clear)
	}

	if in := d.drv.KeypadIndev(); in != nil {
		in.SetListener(func(data gui.IndevData) {
			d.logf("key %s", data.Key)
		})
	}
	if in := d.drv.PointerIndev(); in != nil {
		in.SetListener(func(data gui.IndevData) {
			d.logf("touch %d,%d", data.Point.X, data.Point.Y)
		})
	}

	if cfg.Orientation != lvds.Horizontal {
		d.drv.SetOrientation(cfg.Orientation)
	}
	d.layout()

	d.logf("ndsgui %s", buildinfo.String())
	d.statusf("%s", d.drv.Orientation())
	return d
}

// layout places widgets for the current logical display sizes.
func (d *demo) layout() {
	if up := d.drv.UpperDisplay(); up != nil && d.log != nil {
		d.log.SetBounds(fullArea(up))
	}
	low := d.drv.LowerDisplay()
	if low == nil {
		return
	}
	w, h := low.Size()
	const pad, btnH int16 = 8, 24
	btnW := (w - 3*pad) / 2
	d.rotate.SetBounds(gui.AreaXYWH(pad, pad, btnW, btnH))
	d.clear.SetBounds(gui.AreaXYWH(2*pad+btnW, pad, btnW, btnH))
	top := 2*pad + btnH
	d.status.SetBounds(gui.AreaXYWH(pad, top, w-2*pad, h-top-pad))
}

func (d *demo) rotateNext() {
	d.drv.SetOrientation(d.drv.Orientation().Next())
	d.layout()
	d.statusf("%s", d.drv.Orientation())
	d.logf("orientation %s", d.drv.Orientation())
}

func (d *demo) clearLog() {
	if d.log != nil {
		d.log.Clear()
	}
	d.statusf("cleared")
}

func fullArea(disp *gui.Display) gui.Area {
	w, h := disp.Size()
	return gui.AreaXYWH(0, 0, w, h)
}

func (d *demo) step() error {
	d.drv.Update()
	if d.h.Keypad().Current()&hal.KeyStart != 0 {
		return ErrQuit
	}
	return nil
}

func (d *demo) logf(format string, args ...any) {
	if d.log != nil {
		d.log.Printf(format+"\n", args...)
	}
}

func (d *demo) statusf(format string, args ...any) {
	if d.status != nil {
		d.status.Printf(format+"\n", args...)
	}
}
