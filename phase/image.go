package phase

import (
	"image"
	"image/color"
)

// Image is a frame buffer of phase levels.
type Image struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the levels, row-major.
	Pix []uint16

	// Stride is the Pix stride (in samples) between vertically adjacent pixels.
	Stride int

	// Bits is the level depth.
	Bits int
}

// NewImage returns a blank image with the given depth.
func NewImage(w, h, bits int) *Image {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &Image{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]uint16, w*h),
		Stride: w,
		Bits:   bits,
	}
}

func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Image) ColorModel() color.Model {
	return Model(p.Bits)
}

// PixOffset returns the index of the level at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Level{V: p.Pix[p.PixOffset(x, y)], Bits: uint8(p.Bits)}
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = p.ColorModel().Convert(c).(Level).V
}

// LevelAt returns the raw level at (x, y), or 0 if out of bounds.
func (p *Image) LevelAt(x, y int) uint16 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return 0
	}
	return p.Pix[p.PixOffset(x, y)]
}

// SetLevel stores a raw level at (x, y), wrapping it to the image depth.
func (p *Image) SetLevel(x, y int, v uint16) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = v & MaxLevel(p.Bits)
}

// Clear the image.
func (p *Image) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0
	}
}

// Fill the image with a single color.
func (p *Image) Fill(c color.Color) {
	v := p.ColorModel().Convert(c).(Level).V
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// Grid returns the levels in the transposed order used by the display library.
func (p *Image) Grid() *Grid[uint16] {
	var (
		size = p.Rect.Size()
		g    = NewGrid[uint16](size.X, size.Y)
	)
	for y := 0; y < size.Y; y++ {
		row := p.Pix[y*p.Stride : y*p.Stride+size.X]
		for x, v := range row {
			g.Pix[x*size.Y+y] = v
		}
	}
	return g
}
