package lvds

import (
	"image"
	"image/color"
	"testing"

	"ndsgui/gui"
	"ndsgui/hal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/drivers"
)

type fakeScreen struct {
	pos hal.Position
	pix []uint16
}

func (s *fakeScreen) Position() hal.Position  { return s.pos }
func (s *fakeScreen) Engine() hal.Engine      { return hal.EngineMain }
func (s *fakeScreen) Format() hal.PixelFormat { return hal.PixelFormatARGB1555 }
func (s *fakeScreen) Pixels() []uint16        { return s.pix }

type fakeLogger struct{ lines []string }

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type fakeHAL struct {
	log   fakeLogger
	upper *fakeScreen
	lower *fakeScreen
	keys  hal.Keys
	touch image.Point
}

func newFakeHAL(upper, lower bool) *fakeHAL {
	h := &fakeHAL{}
	if upper {
		h.upper = &fakeScreen{pos: hal.PositionUpper, pix: make([]uint16, 256*256)}
	}
	if lower {
		h.lower = &fakeScreen{pos: hal.PositionLower, pix: make([]uint16, 256*256)}
	}
	return h
}

func (h *fakeHAL) Logger() hal.Logger { return &h.log }
func (h *fakeHAL) Keypad() hal.Keypad { return h }
func (h *fakeHAL) Touch() hal.Touch   { return h }
func (h *fakeHAL) Current() hal.Keys  { return h.keys }
func (h *fakeHAL) Read() image.Point  { return h.touch }

func (h *fakeHAL) Upper() hal.Screen {
	if h.upper == nil {
		return nil
	}
	return h.upper
}

func (h *fakeHAL) Lower() hal.Screen {
	if h.lower == nil {
		return nil
	}
	return h.lower
}

// recordingReady checks the surface at the moment the ready signal fires.
type recordingReady struct {
	calls  int
	onCall func()
}

func (r *recordingReady) FlushReady() {
	r.calls++
	if r.onCall != nil {
		r.onCall()
	}
}

func TestConvertColorAllInputs(t *testing.T) {
	for i := 0; i <= 0xFFFF; i++ {
		in := uint16(i)
		out := ConvertColor(in)
		require.NotZero(t, out&0x8000, "alpha bit for %#04x", in)
		require.Equal(t, in&31, out>>10&31, "red for %#04x", in)
		require.Equal(t, (in>>6)&31, out>>5&31, "green for %#04x", in)
		require.Equal(t, (in>>11)&31, out&31, "blue for %#04x", in)
		require.Equal(t, out, ConvertColor(in^0x20), "low green bit ignored for %#04x", in)
	}
}

func TestConvertColorPureGreen(t *testing.T) {
	out := ConvertColor(0b0_00000_111111_00000)
	assert.Equal(t, uint16(0x83E0), out)
	assert.Equal(t, uint16(0), out>>10&31)
	assert.Equal(t, uint16(31), out>>5&31)
	assert.Equal(t, uint16(0), out&31)
}

func TestTransformsAreInjective(t *testing.T) {
	for o := Horizontal; o < orientationCount; o++ {
		w, h := 256, 192
		if o != Horizontal {
			w, h = 192, 256
		}
		seen := make(map[int]bool, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				off := modes[o].offset(x, y)
				require.GreaterOrEqual(t, off, 0, "%s (%d,%d)", o, x, y)
				require.Less(t, off/256, 192, "%s (%d,%d) outside visible rows", o, x, y)
				require.False(t, seen[off], "%s (%d,%d) collides", o, x, y)
				seen[off] = true
			}
		}
		assert.Len(t, seen, 256*192, o.String())
	}
}

func TestFlushWritesBeforeReady(t *testing.T) {
	h := newFakeHAL(true, true)
	d := New(h)

	px := make([]uint16, 256*256)
	area := gui.Area{X1: 3, Y1: 4, X2: 40, Y2: 20}
	for y := area.Y1; y <= area.Y2; y++ {
		for x := area.X1; x <= area.X2; x++ {
			px[int(y)*256+int(x)] = uint16(x) ^ uint16(y)<<8
		}
	}

	r := &recordingReady{}
	r.onCall = func() {
		for y := int(area.Y1); y <= int(area.Y2); y++ {
			for x := int(area.X1); x <= int(area.X2); x++ {
				require.Equal(t, ConvertColor(px[y*256+x]), h.upper.pix[y*256+x], "pixel (%d,%d) at ready", x, y)
			}
		}
	}
	d.Flush(Upper, r, area, px)
	assert.Equal(t, 1, r.calls)
	assert.Zero(t, h.upper.pix[0], "outside the dirty area untouched")
	assert.Zero(t, h.lower.pix[4*256+3], "other surface untouched")
}

func TestFlushRotated(t *testing.T) {
	h := newFakeHAL(true, true)
	d := New(h)
	px := make([]uint16, 256*256)
	px[5*256+7] = 0x07E0
	area := gui.Area{X1: 7, Y1: 5, X2: 7, Y2: 5}
	r := &recordingReady{}

	d.SetOrientation(RotatedRight)
	d.Flush(Lower, r, area, px)
	assert.Equal(t, uint16(0x83E0), h.lower.pix[(191-7)*256+5])

	d.SetOrientation(RotatedLeft)
	d.Flush(Lower, r, area, px)
	assert.Equal(t, uint16(0x83E0), h.lower.pix[7*256+(255-5)])
	assert.Equal(t, 2, r.calls)
}

func TestFlushUnboundSurfaceOnlySignals(t *testing.T) {
	d := New(newFakeHAL(false, true))
	r := &recordingReady{}
	d.Flush(Upper, r, gui.Area{X2: 10, Y2: 10}, make([]uint16, 256*256))
	assert.Equal(t, 1, r.calls)
}

func TestLatchMergesAcrossTicks(t *testing.T) {
	h := newFakeHAL(true, true)
	d := New(h)

	h.keys = hal.KeyA
	d.Update()
	h.keys = 0
	d.Update()

	var data gui.IndevData
	d.ReadKeypad(nil, &data)
	assert.Equal(t, gui.Pressed, data.State)
	assert.Equal(t, gui.KeyEnter, data.Key)

	d.ReadKeypad(nil, &data)
	assert.Equal(t, gui.Released, data.State, "consumed by the first poll")
}

func TestKeyPriorityPerOrientation(t *testing.T) {
	cases := []struct {
		o    Orientation
		want gui.Key
	}{
		{Horizontal, gui.KeyLeft},
		{RotatedLeft, gui.KeyDown},
		{RotatedRight, gui.KeyEsc},
	}
	for _, tc := range cases {
		t.Run(tc.o.String(), func(t *testing.T) {
			h := newFakeHAL(true, true)
			d := New(h)
			d.SetOrientation(tc.o)

			h.keys = hal.KeyLeft | hal.KeyRight
			d.Update()

			var data gui.IndevData
			d.ReadKeypad(nil, &data)
			assert.Equal(t, gui.Pressed, data.State)
			assert.Equal(t, tc.want, data.Key)
			assert.False(t, d.Latch().Buttons().ContainsAny(UsedButtons), "both buttons consumed")
		})
	}
}

func TestRotatedRightPriorityOrder(t *testing.T) {
	d := New(newFakeHAL(true, true))
	d.SetOrientation(RotatedRight)
	// B outranks every d-pad button in this table.
	d.latch.Sample(hal.KeyB|hal.KeyUp|hal.KeyLeft, image.Point{})

	var data gui.IndevData
	d.ReadKeypad(nil, &data)
	assert.Equal(t, gui.KeyPrev, data.Key)
}

func TestKeyTables(t *testing.T) {
	want := map[Orientation]map[ButtonSet]gui.Key{
		Horizontal: {
			ButtonLeft: gui.KeyLeft, ButtonRight: gui.KeyRight, ButtonUp: gui.KeyUp, ButtonDown: gui.KeyDown,
			ButtonL: gui.KeyPrev, ButtonR: gui.KeyNext, ButtonA: gui.KeyEnter, ButtonB: gui.KeyEsc,
			ButtonX: gui.KeyHome, ButtonY: gui.KeyBackspace,
		},
		RotatedLeft: {
			ButtonLeft: gui.KeyDown, ButtonRight: gui.KeyUp, ButtonUp: gui.KeyPrev, ButtonDown: gui.KeyNext,
			ButtonL: gui.KeyEnter, ButtonR: gui.KeyEnter, ButtonA: gui.KeyEsc, ButtonB: gui.KeyEnter,
			ButtonX: gui.KeyLeft, ButtonY: gui.KeyRight,
		},
		RotatedRight: {
			ButtonB: gui.KeyPrev, ButtonX: gui.KeyNext, ButtonY: gui.KeyUp, ButtonA: gui.KeyDown,
			ButtonR: gui.KeyEnter, ButtonL: gui.KeyEnter, ButtonUp: gui.KeyEnter, ButtonLeft: gui.KeyEsc,
			ButtonDown: gui.KeyLeft, ButtonRight: gui.KeyRight,
		},
	}
	for o, table := range want {
		require.Len(t, table, 10)
		for b, k := range table {
			got, ok := modes[o].resolve(b)
			require.True(t, ok, "%s %s", o, b)
			assert.Equal(t, k, got, "%s %s", o, b)
		}
	}
}

func TestUnrecognizedButtonsPersist(t *testing.T) {
	h := newFakeHAL(true, true)
	d := New(h)

	h.keys = hal.KeyStart | hal.KeyA
	d.Update()

	var data gui.IndevData
	d.ReadKeypad(nil, &data)
	assert.Equal(t, gui.Pressed, data.State)
	d.ReadPointer(nil, &data)
	assert.Equal(t, gui.Released, data.State)

	assert.Equal(t, ButtonStart, d.Latch().Buttons())

	d.ReadKeypad(nil, &data)
	assert.Equal(t, gui.Released, data.State, "start alone is not a keypad key")
	assert.Equal(t, ButtonStart, d.Latch().Buttons())
}

func TestPointerClearsOnlyTouch(t *testing.T) {
	h := newFakeHAL(true, true)
	d := New(h)

	h.keys = hal.KeyTouch | hal.KeyB
	h.touch = image.Pt(12, 34)
	d.Update()

	var data gui.IndevData
	d.ReadPointer(nil, &data)
	assert.Equal(t, gui.Pressed, data.State)
	assert.Equal(t, image.Pt(12, 34), data.Point)
	assert.Equal(t, ButtonB, d.Latch().Buttons())

	h.keys = 0
	d.Update()
	d.ReadPointer(nil, &data)
	assert.Equal(t, gui.Released, data.State)
}

func TestButtonSetOps(t *testing.T) {
	s := ButtonA.Merge(ButtonStart)
	assert.True(t, s.Has(ButtonA))
	assert.True(t, s.ContainsAny(UsedButtons))
	assert.Equal(t, ButtonStart, s.Remove(UsedButtons))
	assert.False(t, ButtonStart.ContainsAny(UsedButtons))
	assert.Equal(t, "a+start", s.String())
}

func TestTicksAndMillis(t *testing.T) {
	d := New(newFakeHAL(true, true))
	assert.Zero(t, d.Millis())

	prev := d.Millis()
	for i := uint32(1); i <= 600; i++ {
		d.Update()
		require.Equal(t, i, d.Ticks())
		require.GreaterOrEqual(t, d.Millis(), prev)
		prev = d.Millis()
	}
	assert.Equal(t, uint32(10000), d.Millis())
	assert.Equal(t, uint32(50), ticksToMillis(3))
}

func TestSetOrientationInvalidIgnored(t *testing.T) {
	h := newFakeHAL(true, true)
	d := New(h)
	d.SetOrientation(RotatedLeft)
	d.SetOrientation(Orientation(7))
	assert.Equal(t, RotatedLeft, d.Orientation())
	assert.Contains(t, h.log.lines[len(h.log.lines)-1], "invalid")
}

func TestOrientationCycle(t *testing.T) {
	assert.Equal(t, RotatedLeft, Horizontal.Next())
	assert.Equal(t, RotatedRight, RotatedLeft.Next())
	assert.Equal(t, Horizontal, RotatedRight.Next())
}

func TestAttachedOrientationIsConsistent(t *testing.T) {
	h := newFakeHAL(true, true)
	d := New(h)
	tk := gui.New()
	d.Attach(tk)

	require.NotNil(t, d.UpperDisplay())
	require.NotNil(t, d.LowerDisplay())
	require.NotNil(t, d.PointerIndev())
	assert.Equal(t, d.LowerDisplay(), tk.DefaultDisplay())
	assert.Equal(t, d.KeypadGroup(), d.KeypadIndev().Group())

	d.UpperDisplay().SetBackground(color.RGBA{G: 0xFF, A: 0xFF})
	d.SetOrientation(RotatedRight)
	for _, disp := range []*gui.Display{d.UpperDisplay(), d.LowerDisplay()} {
		assert.Equal(t, drivers.Rotation(drivers.Rotation90), disp.Rotation())
	}

	var keys []gui.Key
	d.KeypadIndev().SetListener(func(data gui.IndevData) { keys = append(keys, data.Key) })
	h.keys = hal.KeyA

	// Two vblanks reach the 33 ms refresh and read period.
	d.Update()
	d.Update()

	// Logical (0, 0) of a RotatedRight display lands on row 191, column 0.
	assert.Equal(t, uint16(0x83E0), h.upper.pix[191*256])
	assert.Equal(t, []gui.Key{gui.KeyDown}, keys)
	assert.False(t, d.UpperDisplay().Flushing())
}

func TestRotateBeforeFirstRefreshStaysVisible(t *testing.T) {
	for _, o := range []Orientation{RotatedLeft, RotatedRight} {
		t.Run(o.String(), func(t *testing.T) {
			h := newFakeHAL(true, true)
			d := New(h)
			d.Attach(gui.New())
			d.UpperDisplay().SetBackground(color.RGBA{G: 0xFF, A: 0xFF})
			d.SetOrientation(o)

			require.NotPanics(t, func() {
				for i := 0; i < 4; i++ {
					d.Update()
				}
			})

			for i, px := range h.upper.pix[:192*256] {
				if px != 0x83E0 {
					t.Fatalf("visible pixel %d = %#04x, want 0x83e0", i, px)
				}
			}
			for i, px := range h.upper.pix[192*256:] {
				if px != 0 {
					t.Fatalf("hidden pixel %d written: %#04x", 192*256+i, px)
				}
			}
		})
	}
}

func TestAttachWithoutLowerScreen(t *testing.T) {
	h := newFakeHAL(true, false)
	d := New(h)
	d.Attach(gui.New())

	assert.Nil(t, d.LowerDisplay())
	assert.Nil(t, d.PointerIndev())
	assert.NotNil(t, d.KeypadIndev())

	d.SetOrientation(RotatedLeft)
	assert.Equal(t, drivers.Rotation(drivers.Rotation270), d.UpperDisplay().Rotation())
}

func TestParseOrientation(t *testing.T) {
	for o := Horizontal; o < orientationCount; o++ {
		got, err := ParseOrientation(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	_, err := ParseOrientation("upside-down")
	assert.Error(t, err)
}
