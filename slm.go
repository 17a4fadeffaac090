// Package slm drives HDSLM spatial light modulators through the vendor display library.
//
// A [Device] wraps the loaded library. Every method forwards to one library entry point and
// turns a failing return code into a [*CallError]. The library is not known to be reentrant,
// so a Device must not be used from more than one goroutine at a time.
//
//	dev, err := slm.Open(nil)
//	if err != nil {
//		return err
//	}
//	defer dev.Close()
//
//	if err = dev.OpenWindow(slm.DefaultScreen); err != nil {
//		return err
//	}
//	return dev.DisplayGrayscale(slm.DefaultScreen, 512, slm.Depth10)
package slm

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/text/encoding"
	"periph.io/x/conn/v3/gpio"
)

var debug bool

func init() {
	debug = os.Getenv("SLM_DEBUG") != ""
}

// Errors
var (
	ErrNativeCall = errors.New("slm: native call failed")
	ErrDepth      = errors.New("slm: unsupported bit depth")
	ErrPath       = errors.New("slm: invalid path")
	ErrRotation   = errors.New("slm: unsupported rotation")
)

// ScreenIndex identifies a display attached to the host, starting at 1.
type ScreenIndex uint32

// DefaultScreen is the first secondary display, where an SLM is usually attached.
const DefaultScreen ScreenIndex = 1

// Depth is the number of bits per phase level.
type Depth uint8

// Supported depths.
const (
	// Depth8 shows levels 0-255 as an 8-bit grayscale bitmap.
	Depth8 Depth = 8

	// Depth10 shows levels 0-1023, split over the RGB channels of a color bitmap.
	Depth10 Depth = 10
)

// Flag is the encoding flag passed to the library, 2 to the power of the depth.
func (d Depth) Flag() uint32 {
	return 1 << uint(d)
}

// MaxLevel is the largest level that can be shown at this depth.
func (d Depth) MaxLevel() uint16 {
	return uint16(d.Flag() - 1)
}

// Valid returns ErrDepth for depths the library does not support.
func (d Depth) Valid() error {
	switch d {
	case Depth8, Depth10:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrDepth, d)
	}
}

func (d Depth) String() string {
	return fmt.Sprintf("%d-bit", uint8(d))
}

// Bitmap is an opaque bitmap handle (HBITMAP) owned by the caller.
type Bitmap uintptr

// Library is the entry point surface of the display library. Each method returns the raw
// return code of the call.
//
// *dll.Library implements Library for the real display library.
type Library interface {
	String() string
	DispOpen(screen uint32) int32
	DispClose(screen uint32) int32
	DispInfo(screen uint32, width, height *uint16) int32
	DispData(screen uint32, width, height uint16, flag uint32, data *uint16) int32
	DispDataSingle(screen uint32, width, height uint16, flag uint32, data *float32) int32
	DispDataDouble(screen uint32, width, height uint16, flag uint32, data *float64) int32
	DispGrayScale(screen, flag uint32, gray uint16) int32
	DispBMP(screen, flag uint32, bitmap uintptr) int32
	DispReadImage(screen, flag uint32, path string) int32
	DispReadImageA(screen, flag uint32, path []byte) int32
	DispReadCSV(screen, flag uint32, path string) int32
	DispReadCSVA(screen, flag uint32, path []byte) int32
	SetOffset(screen uint32, x, y uint16) int32
	GetOffset(screen uint32, x, y *uint16) int32
}

// Config is the device configuration.
type Config struct {
	// Library is the path of the display library, leave empty for the platform default.
	Library string

	// Screen is the window closed when the Device is closed.
	Screen ScreenIndex

	// NarrowEncoding converts paths passed to the narrow (byte string) entry points. Paths are
	// passed as UTF-8 if nil.
	NarrowEncoding encoding.Encoding

	// Trigger pin, pulsed high after every successful display call.
	Trigger gpio.PinOut

	// TriggerWidth is the duration of the trigger pulse.
	TriggerWidth time.Duration
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Screen:       DefaultScreen,
	TriggerWidth: time.Millisecond,
}
