package slm

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/slm/draw"
	"github.com/BeatGlow/slm/phase"
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Display is a frame buffered SLM screen.
type Display interface {
	// Close the display window.
	Close() error

	// Clear the display buffer.
	Clear()

	// At returns the color of the pixel at (x, y).
	At(x, y int) color.Color

	// Set the pixel color at (x, y).
	Set(x, y int, c color.Color)

	// Bounds is the display bounding box (dimensions).
	Bounds() image.Rectangle

	// ColorModel used by the display.
	ColorModel() color.Model

	// Show opens or closes the display window.
	Show(bool) error

	// SetRotation adjusts the pixel rotation.
	SetRotation(Rotation) error

	// Refresh sends the buffer to the display.
	Refresh() error
}

var (
	_ Display        = (*Screen)(nil)
	_ display.Drawer = (*Screen)(nil)
)

// Screen is a frame buffer the size of an SLM window.
type Screen struct {
	*phase.Image
	dev      *Device
	index    ScreenIndex
	depth    Depth
	rotation Rotation
}

// Screen returns a frame buffer for the window on screen. The buffer has the size the library
// reports for the window, so the window should be opened first.
func (d *Device) Screen(index ScreenIndex, depth Depth) (*Screen, error) {
	if err := depth.Valid(); err != nil {
		return nil, err
	}

	w, h, err := d.Size(index)
	if err != nil {
		return nil, err
	}

	return &Screen{
		Image: phase.NewImage(int(w), int(h), int(depth)),
		dev:   d,
		index: index,
		depth: depth,
	}, nil
}

func (s *Screen) String() string {
	size := s.Bounds().Size()
	return fmt.Sprintf("SLM screen %d %dx%d %s", s.index, size.X, size.Y, s.depth)
}

// Depth of the levels in the buffer.
func (s *Screen) Depth() Depth {
	return s.depth
}

// Close the display window.
func (s *Screen) Close() error {
	return s.Halt()
}

// Halt closes the display window.
func (s *Screen) Halt() error {
	return s.dev.CloseWindow(s.index)
}

// Show opens or closes the display window.
func (s *Screen) Show(show bool) error {
	if show {
		return s.dev.OpenWindow(s.index)
	}
	return s.dev.CloseWindow(s.index)
}

// SetRotation adjusts the pixel rotation. Rotating by 90° or 270° requires a square screen.
func (s *Screen) SetRotation(rotation Rotation) error {
	rotation %= 4
	if rotation == Rotate90 || rotation == Rotate270 {
		if size := s.Bounds().Size(); size.X != size.Y {
			return fmt.Errorf("%w: %s on %dx%d screen", ErrRotation, rotation, size.X, size.Y)
		}
	}
	s.rotation = rotation
	return nil
}

// Refresh sends the buffer to the display.
func (s *Screen) Refresh() error {
	return s.dev.DisplayData(s.index, s.grid(), s.depth)
}

// Draw src onto the buffer at r and refresh the display.
func (s *Screen) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(s.Image, r, src, sp, draw.Src)
	return s.Refresh()
}

func (s *Screen) grid() *phase.Grid[uint16] {
	if s.rotation == NoRotation {
		return s.Image.Grid()
	}

	var (
		size = s.Bounds().Size()
		w, h = size.X, size.Y
		g    = phase.NewGrid[uint16](w, h)
	)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := s.Pix[s.PixOffset(x, y)]
			switch s.rotation {
			case Rotate90:
				g.Set(h-1-y, x, v)
			case Rotate180:
				g.Set(w-1-x, h-1-y, v)
			case Rotate270:
				g.Set(y, w-1-x, v)
			}
		}
	}
	return g
}
