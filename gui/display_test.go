package gui

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/drivers"
)

type flushRecord struct {
	areas []Area
	ready bool
}

func newTestDisplay(t *testing.T) (*Toolkit, *Display, *flushRecord, *uint32) {
	t.Helper()
	now := uint32(0)
	tk := New()
	tk.SetTickFunc(func() uint32 { return now })
	d := tk.NewDisplay(256, 192, make([]uint16, BufferStride*BufferStride))
	rec := &flushRecord{ready: true}
	d.SetFlushFunc(func(d *Display, area Area, px []uint16) {
		rec.areas = append(rec.areas, area)
		if rec.ready {
			d.FlushReady()
		}
	})
	return tk, d, rec, &now
}

func TestAreaOps(t *testing.T) {
	a := AreaXYWH(10, 10, 5, 5)
	assert.Equal(t, Area{10, 10, 14, 14}, a)
	assert.Equal(t, int16(5), a.Width())
	assert.True(t, a.Contains(image.Pt(14, 14)))
	assert.False(t, a.Contains(image.Pt(15, 14)))

	assert.True(t, a.Intersect(AreaXYWH(20, 20, 2, 2)).Empty())
	assert.Equal(t, Area{10, 10, 21, 21}, a.Union(AreaXYWH(20, 20, 2, 2)))
	assert.Equal(t, a, Area{X1: 1, X2: 0}.Union(a))
	assert.Equal(t, image.Rect(10, 10, 15, 15), a.Rect())
}

func TestColor16Layout(t *testing.T) {
	assert.Equal(t, uint16(0x001F), Color16(color.RGBA{R: 0xFF}))
	assert.Equal(t, uint16(0x07E0), Color16(color.RGBA{G: 0xFF}))
	assert.Equal(t, uint16(0xF800), Color16(color.RGBA{B: 0xFF}))
}

func TestTimerPeriod(t *testing.T) {
	now := uint32(0)
	tk := New()
	tk.SetTickFunc(func() uint32 { return now })

	runs := 0
	tm := tk.NewTimer(10, func() { runs++ })

	for now = 0; now <= 35; now++ {
		tk.Handler()
	}
	assert.Equal(t, 3, runs)

	tm.Pause()
	now = 100
	tk.Handler()
	assert.Equal(t, 3, runs)
}

func TestDisplayFirstRefreshFlushesWholeScreen(t *testing.T) {
	_, d, rec, _ := newTestDisplay(t)
	d.SetBackground(color.RGBA{R: 0xFF})

	d.Refresh()
	require.Len(t, rec.areas, 1)
	assert.Equal(t, Area{0, 0, 255, 191}, rec.areas[0])
	assert.Equal(t, uint16(0x001F), d.Buffer()[191*BufferStride+255])
	assert.False(t, d.Flushing())

	d.Refresh()
	assert.Len(t, rec.areas, 1, "nothing dirty, no flush")
}

func TestDisplayWaitsForFlushReady(t *testing.T) {
	_, d, rec, _ := newTestDisplay(t)
	rec.ready = false

	d.Refresh()
	require.True(t, d.Flushing())

	d.Invalidate(AreaXYWH(0, 0, 4, 4))
	d.Refresh()
	assert.Len(t, rec.areas, 1, "refresh must wait for FlushReady")

	d.FlushReady()
	d.Refresh()
	require.Len(t, rec.areas, 2)
	assert.Equal(t, AreaXYWH(0, 0, 4, 4), rec.areas[1])
}

func TestDisplayRotationSwapsSize(t *testing.T) {
	_, d, rec, _ := newTestDisplay(t)
	d.Refresh()

	d.SetRotation(drivers.Rotation90)
	w, h := d.Size()
	assert.Equal(t, int16(192), w)
	assert.Equal(t, int16(256), h)

	d.Refresh()
	require.Len(t, rec.areas, 2)
	assert.Equal(t, Area{0, 0, 191, 255}, rec.areas[1])

	d.Invalidate(Area{X1: 100, Y1: 250, X2: 300, Y2: 300})
	d.Refresh()
	assert.Equal(t, Area{100, 250, 191, 255}, rec.areas[2], "invalidation clipped to logical size")
}

func TestRotationDropsPendingArea(t *testing.T) {
	for _, r := range []drivers.Rotation{drivers.Rotation90, drivers.Rotation270} {
		_, d, rec, _ := newTestDisplay(t)
		d.Invalidate(Area{X1: 200, Y1: 100, X2: 255, Y2: 191})

		d.SetRotation(r)
		d.Refresh()

		require.Len(t, rec.areas, 1)
		w, h := d.Size()
		assert.Equal(t, Area{0, 0, w - 1, h - 1}, rec.areas[0])
		assert.Equal(t, Area{0, 0, 191, 255}, rec.areas[0])
	}
}

func TestToLogicalInvertsPanelMapping(t *testing.T) {
	_, d, _, _ := newTestDisplay(t)

	d.SetRotation(drivers.Rotation90)
	// Logical (x, y) lands on panel column y, row 191-x.
	assert.Equal(t, image.Pt(191-20, 10), d.toLogical(image.Pt(10, 20)))

	d.SetRotation(drivers.Rotation270)
	// Logical (x, y) lands on panel column 255-y, row x.
	assert.Equal(t, image.Pt(20, 255-10), d.toLogical(image.Pt(10, 20)))

	d.SetRotation(drivers.Rotation0)
	assert.Equal(t, image.Pt(10, 20), d.toLogical(image.Pt(10, 20)))
}

func TestHandlerDrivesRefresh(t *testing.T) {
	tk, _, rec, now := newTestDisplay(t)

	*now = DefaultRefreshPeriod - 1
	tk.Handler()
	assert.Empty(t, rec.areas)

	*now = DefaultRefreshPeriod
	tk.Handler()
	assert.Len(t, rec.areas, 1)
}
