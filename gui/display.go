package gui

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// Widget is anything a display can render.
type Widget interface {
	Bounds() Area
	Draw(c *Canvas)
}

// Display renders its widgets into a render buffer in logical (rotated)
// coordinates and hands dirty areas to its flush callback.
type Display struct {
	tk     *Toolkit
	hres   int16
	vres   int16
	rot    drivers.Rotation
	buf    []uint16
	flush  FlushFunc
	bg     uint16
	timer  *Timer
	widget []Widget

	dirty    Area
	hasDirty bool
	flushing bool
}

// NewDisplay creates a hres x vres display rendering into buf, which must
// hold BufferStride*BufferStride pixels so every rotation fits.
func (tk *Toolkit) NewDisplay(hres, vres int16, buf []uint16) *Display {
	d := &Display{
		tk:   tk,
		hres: hres,
		vres: vres,
		buf:  buf,
	}
	d.timer = tk.NewTimer(DefaultRefreshPeriod, d.Refresh)
	tk.displays = append(tk.displays, d)
	if tk.defDisplay == nil {
		tk.defDisplay = d
	}
	d.InvalidateAll()
	return d
}

// Size returns the logical resolution under the current rotation.
func (d *Display) Size() (w, h int16) { return rotatedSize(d.hres, d.vres, d.rot) }

func (d *Display) Rotation() drivers.Rotation { return d.rot }

// SetRotation updates the rotation metadata and schedules a full redraw.
// Any pending dirty area is dropped: it was in the old logical space.
func (d *Display) SetRotation(r drivers.Rotation) {
	if r == d.rot {
		return
	}
	d.rot = r
	d.hasDirty = false
	d.InvalidateAll()
}

func (d *Display) SetFlushFunc(f FlushFunc) { d.flush = f }

// SetBackground sets the color behind all widgets.
func (d *Display) SetBackground(c color.RGBA) {
	d.bg = Color16(c)
	d.InvalidateAll()
}

// Buffer exposes the render buffer.
func (d *Display) Buffer() []uint16 { return d.buf }

// RefreshTimer is the timer driving Refresh.
func (d *Display) RefreshTimer() *Timer { return d.timer }

// Add places w on the display, above earlier widgets.
func (d *Display) Add(w Widget) {
	d.widget = append(d.widget, w)
	d.Invalidate(w.Bounds())
}

// Widgets returns the widgets bottom to top.
func (d *Display) Widgets() []Widget { return d.widget }

// Invalidate marks a as needing a redraw.
func (d *Display) Invalidate(a Area) {
	w, h := d.Size()
	a = a.Intersect(Area{X2: w - 1, Y2: h - 1})
	if a.Empty() {
		return
	}
	if d.hasDirty {
		d.dirty = d.dirty.Union(a)
	} else {
		d.dirty = a
		d.hasDirty = true
	}
}

func (d *Display) InvalidateAll() {
	w, h := d.Size()
	d.Invalidate(Area{X2: w - 1, Y2: h - 1})
}

// Flushing reports whether a flush is waiting for FlushReady.
func (d *Display) Flushing() bool { return d.flushing }

// FlushReady tells the display the last flushed area has been presented.
func (d *Display) FlushReady() { d.flushing = false }

// Refresh redraws and flushes the dirty area, unless a flush is still pending.
func (d *Display) Refresh() {
	if d.flushing || !d.hasDirty {
		return
	}
	area := d.dirty
	d.hasDirty = false

	c := &Canvas{buf: d.buf, clip: area}
	c.Fill(area, d.bg)
	for _, w := range d.widget {
		wa := w.Bounds().Intersect(area)
		if wa.Empty() {
			continue
		}
		c.clip = wa
		w.Draw(c)
	}

	if d.flush == nil {
		return
	}
	d.flushing = true
	d.flush(d, area, d.buf)
}

// hit returns the topmost widget under p.
func (d *Display) hit(p image.Point) Widget {
	for i := len(d.widget) - 1; i >= 0; i-- {
		if d.widget[i].Bounds().Contains(p) {
			return d.widget[i]
		}
	}
	return nil
}

// toLogical maps a point in panel coordinates to the rotated logical space.
func (d *Display) toLogical(p image.Point) image.Point {
	hmax, vmax := int(d.hres)-1, int(d.vres)-1
	switch d.rot {
	case drivers.Rotation90:
		return image.Pt(vmax-p.Y, p.X)
	case drivers.Rotation180:
		return image.Pt(hmax-p.X, vmax-p.Y)
	case drivers.Rotation270:
		return image.Pt(p.Y, hmax-p.X)
	default:
		return p
	}
}
