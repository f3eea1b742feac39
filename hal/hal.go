package hal

import "image"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Screen geometry. Both engines drive a 256x192 LCD from a 256x256 16bpp bitmap.
const (
	ScreenWidth  = 256
	ScreenHeight = 192
	BitmapStride = 256
	BitmapRows   = 256
)

// PixelFormat defines the bitmap pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatARGB1555 is 16bpp: arrrrrgggggbbbbb, bit 15 marks the pixel visible.
	PixelFormatARGB1555 PixelFormat = iota + 1
)

// Engine identifies one of the two 2D graphics engines.
type Engine uint8

const (
	EngineMain Engine = iota
	EngineSub
)

func (e Engine) String() string {
	switch e {
	case EngineMain:
		return "main"
	case EngineSub:
		return "sub"
	default:
		return "unknown"
	}
}

// Position is the physical location of an LCD.
type Position uint8

const (
	PositionUpper Position = iota
	PositionLower
)

func (p Position) String() string {
	if p == PositionLower {
		return "lower"
	}
	return "upper"
}

// Screen is the hardware-visible bitmap of one LCD.
//
// Pixels returns the full BitmapStride*BitmapRows backing store; only the first
// ScreenHeight rows are scanned out.
type Screen interface {
	Position() Position
	Engine() Engine
	Format() PixelFormat
	Pixels() []uint16
}

// Keys is the raw keypad register: one bit per physical input.
type Keys uint16

const (
	KeyA Keys = 1 << iota
	KeyB
	KeySelect
	KeyStart
	KeyRight
	KeyLeft
	KeyUp
	KeyDown
	KeyR
	KeyL
	KeyX
	KeyY
	KeyTouch
	KeyLid
)

// Keypad samples the current keypad register.
type Keypad interface {
	Current() Keys
}

// Touch reads the touchscreen position in lower-screen pixels.
//
// The result is only meaningful while KeyTouch is held.
type Touch interface {
	Read() image.Point
}

// HAL provides the only contact point between the adapter and the hardware.
//
// Upper and Lower return nil for a screen the engine config left uninitialized.
type HAL interface {
	Logger() Logger
	Upper() Screen
	Lower() Screen
	Keypad() Keypad
	Touch() Touch
}
