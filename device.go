package slm

import (
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/slm/dll"
	"github.com/BeatGlow/slm/phase"
)

// Device is a handle to the display library.
type Device struct {
	lib          Library
	screen       ScreenIndex
	encoding     encoding.Encoding
	trigger      gpio.PinOut
	triggerWidth time.Duration
}

// Open loads the display library and returns a Device. If config is nil, DefaultConfig is
// used.
//
// The library stays loaded for the lifetime of the process. Close only closes the window.
func Open(config *Config) (*Device, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	lib, err := dll.Open(config.Library)
	if err != nil {
		return nil, err
	}

	return New(lib, config), nil
}

// New returns a Device using an already loaded library.
func New(lib Library, config *Config) *Device {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	d := &Device{
		lib:          lib,
		screen:       config.Screen,
		encoding:     config.NarrowEncoding,
		trigger:      config.Trigger,
		triggerWidth: config.TriggerWidth,
	}
	if d.screen == 0 {
		d.screen = DefaultConfig.Screen
	}
	if d.trigger == gpio.INVALID {
		d.trigger = nil
	}
	if d.trigger != nil && d.triggerWidth <= 0 {
		d.triggerWidth = DefaultConfig.TriggerWidth
	}
	return d
}

func (d *Device) String() string {
	return fmt.Sprintf("SLM device using %s", d.lib)
}

// Close closes the window on the configured screen.
func (d *Device) Close() error {
	return d.CloseWindow(d.screen)
}

// OpenWindow opens the display window on screen.
func (d *Device) OpenWindow(screen ScreenIndex) error {
	return check(dll.ProcOpen, d.lib.DispOpen(uint32(screen)), false, msgOpen)
}

// CloseWindow closes the display window on screen.
func (d *Device) CloseWindow(screen ScreenIndex) error {
	// The library returns nonzero when the window was closed.
	return check(dll.ProcClose, d.lib.DispClose(uint32(screen)), true, msgClose)
}

// Size returns the window size of screen in pixels.
func (d *Device) Size(screen ScreenIndex) (width, height uint16, err error) {
	err = check(dll.ProcInfo, d.lib.DispInfo(uint32(screen), &width, &height), false, msgInfo)
	return
}

// DisplayData shows a grid of levels. The grid is x-major, see [phase.Grid].
func (d *Device) DisplayData(screen ScreenIndex, g *phase.Grid[uint16], depth Depth) error {
	if err := validate(g, depth); err != nil {
		return err
	}
	code := d.lib.DispData(uint32(screen), uint16(g.Width), uint16(g.Height), depth.Flag(), first(g.Pix))
	return d.displayed(check(dll.ProcData, code, false, msgDisplay))
}

// DisplayInts shows w by h integer levels stored x-major. Levels are narrowed to 16 bits.
func (d *Device) DisplayInts(screen ScreenIndex, w, h int, levels []int, depth Depth) error {
	g, err := phase.NarrowInts(w, h, levels)
	if err != nil {
		return err
	}
	return d.DisplayData(screen, g, depth)
}

// DisplaySingle shows a grid of single precision levels, which the library rounds.
func (d *Device) DisplaySingle(screen ScreenIndex, g *phase.Grid[float32], depth Depth) error {
	if err := validate(g, depth); err != nil {
		return err
	}
	code := d.lib.DispDataSingle(uint32(screen), uint16(g.Width), uint16(g.Height), depth.Flag(), first(g.Pix))
	// Inverted like SLM_Disp_Close.
	return d.displayed(check(dll.ProcDataSingle, code, true, msgDisplay))
}

// DisplayDouble shows a grid of double precision levels, which the library rounds.
func (d *Device) DisplayDouble(screen ScreenIndex, g *phase.Grid[float64], depth Depth) error {
	if err := validate(g, depth); err != nil {
		return err
	}
	code := d.lib.DispDataDouble(uint32(screen), uint16(g.Width), uint16(g.Height), depth.Flag(), first(g.Pix))
	return d.displayed(check(dll.ProcDataDouble, code, false, msgDisplay))
}

// DisplayGrayscale fills the screen with a single level. At 8 bits, levels above 255 show
// as black.
func (d *Device) DisplayGrayscale(screen ScreenIndex, level uint16, depth Depth) error {
	if err := depth.Valid(); err != nil {
		return err
	}
	code := d.lib.DispGrayScale(uint32(screen), depth.Flag(), level)
	return d.displayed(check(dll.ProcGrayScale, code, false, msgDisplay))
}

// DisplayBitmap shows a bitmap handle.
//
// Deprecated: the library does not implement this call, use DisplayImageFile or DisplayData.
func (d *Device) DisplayBitmap(screen ScreenIndex, bitmap Bitmap, depth Depth) error {
	if err := depth.Valid(); err != nil {
		return err
	}
	code := d.lib.DispBMP(uint32(screen), depth.Flag(), uintptr(bitmap))
	return d.displayed(check(dll.ProcBMP, code, false, msgDisplay))
}

// DisplayImageFile shows a PNG or BMP file, the path is passed as a wide string.
func (d *Device) DisplayImageFile(screen ScreenIndex, path string, depth Depth) error {
	if err := validatePath(path, depth); err != nil {
		return err
	}
	code := d.lib.DispReadImage(uint32(screen), depth.Flag(), path)
	return d.displayed(check(dll.ProcReadImage, code, false, msgDisplay))
}

// DisplayImageFileA shows a PNG or BMP file, the path is passed as a byte string.
func (d *Device) DisplayImageFileA(screen ScreenIndex, path string, depth Depth) error {
	b, err := d.narrow(path, depth)
	if err != nil {
		return err
	}
	code := d.lib.DispReadImageA(uint32(screen), depth.Flag(), b)
	return d.displayed(check(dll.ProcReadImageA, code, false, msgDisplay))
}

// DisplayCSVFile shows a CSV file of levels, the path is passed as a wide string.
func (d *Device) DisplayCSVFile(screen ScreenIndex, path string, depth Depth) error {
	if err := validatePath(path, depth); err != nil {
		return err
	}
	code := d.lib.DispReadCSV(uint32(screen), depth.Flag(), path)
	return d.displayed(check(dll.ProcReadCSV, code, false, msgDisplay))
}

// DisplayCSVFileA shows a CSV file of levels, the path is passed as a byte string.
//
// Deprecated: the library does not implement this call, use DisplayCSVFile.
func (d *Device) DisplayCSVFileA(screen ScreenIndex, path string, depth Depth) error {
	b, err := d.narrow(path, depth)
	if err != nil {
		return err
	}
	code := d.lib.DispReadCSVA(uint32(screen), depth.Flag(), b)
	return d.displayed(check(dll.ProcReadCSVA, code, false, msgDisplay))
}

// SetOffset moves the image on screen by (x, y) pixels. The offset applies to the next display
// call, not to what is currently shown.
func (d *Device) SetOffset(screen ScreenIndex, x, y uint16) error {
	return check(dll.ProcSetOffset, d.lib.SetOffset(uint32(screen), x, y), false, msgSetOffset)
}

// Offset returns the offset of screen.
func (d *Device) Offset(screen ScreenIndex) (x, y uint16, err error) {
	err = check(dll.ProcGetOffset, d.lib.GetOffset(uint32(screen), &x, &y), false, msgGetOffset)
	return
}

// displayed pulses the trigger after a successful display call.
func (d *Device) displayed(err error) error {
	if err != nil || d.trigger == nil {
		return err
	}
	if err = d.trigger.Out(gpio.High); err != nil {
		return fmt.Errorf("slm: trigger %s: %w", d.trigger, err)
	}
	time.Sleep(d.triggerWidth)
	if err = d.trigger.Out(gpio.Low); err != nil {
		return fmt.Errorf("slm: trigger %s: %w", d.trigger, err)
	}
	return nil
}

// narrow encodes path as a NUL terminated byte string.
func (d *Device) narrow(path string, depth Depth) ([]byte, error) {
	if err := validatePath(path, depth); err != nil {
		return nil, err
	}

	b := []byte(path)
	if d.encoding != nil {
		var err error
		if b, err = d.encoding.NewEncoder().Bytes(b); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrPath, path, err)
		}
	}
	return append(b, 0), nil
}

func validate[T phase.Sample](g *phase.Grid[T], depth Depth) error {
	if err := depth.Valid(); err != nil {
		return err
	}
	return g.Validate()
}

func validatePath(path string, depth Depth) error {
	if err := depth.Valid(); err != nil {
		return err
	}
	if strings.IndexByte(path, 0) >= 0 {
		return fmt.Errorf("%w: %q", ErrPath, path)
	}
	return nil
}

// first returns a pointer to the first sample, or nil for an empty grid.
func first[T phase.Sample](pix []T) *T {
	if len(pix) == 0 {
		return nil
	}
	return &pix[0]
}

func logf(format string, args ...any) {
	log.Printf("slm: "+format, args...)
}
