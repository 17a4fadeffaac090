package phase

import (
	"errors"
	"fmt"
	"math"
)

// ErrGridSize is returned when a grid does not match its declared dimensions.
var ErrGridSize = errors.New("phase: grid size mismatch")

// Sample types accepted by the native display library.
type Sample interface {
	~uint16 | ~float32 | ~float64
}

// Grid is a width by height block of samples.
//
// Samples are stored x-major: sample (x, y) is Pix[x*Height+y]. This is the transposed order
// the display library reads its input buffer in.
type Grid[T Sample] struct {
	Width  int
	Height int
	Pix    []T
}

// NewGrid allocates a zeroed grid.
func NewGrid[T Sample](w, h int) *Grid[T] {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &Grid[T]{
		Width:  w,
		Height: h,
		Pix:    make([]T, w*h),
	}
}

// Offset returns the index of sample (x, y) in Pix.
func (g *Grid[T]) Offset(x, y int) int {
	return x*g.Height + y
}

// In reports whether (x, y) is inside the grid.
func (g *Grid[T]) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns sample (x, y), or the zero value if it is out of bounds.
func (g *Grid[T]) At(x, y int) T {
	if !g.In(x, y) {
		var zero T
		return zero
	}
	return g.Pix[g.Offset(x, y)]
}

// Set sample (x, y), out of bounds writes are ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.In(x, y) {
		return
	}
	g.Pix[g.Offset(x, y)] = v
}

// Fill sets every sample to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.Pix {
		g.Pix[i] = v
	}
}

// Validate checks that the grid dimensions are representable by the display library and
// match the number of samples.
func (g *Grid[T]) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrGridSize)
	}
	if g.Width < 0 || g.Height < 0 || g.Width > math.MaxUint16 || g.Height > math.MaxUint16 {
		return fmt.Errorf("%w: %dx%d out of range", ErrGridSize, g.Width, g.Height)
	}
	if n := g.Width * g.Height; len(g.Pix) != n {
		return fmt.Errorf("%w: %dx%d needs %d samples, got %d", ErrGridSize, g.Width, g.Height, n, len(g.Pix))
	}
	return nil
}

// NarrowInts copies v (x-major, like Grid.Pix) into a new uint16 grid. Values outside the
// uint16 range wrap around.
func NarrowInts(w, h int, v []int) (*Grid[uint16], error) {
	if w < 0 || h < 0 || len(v) != w*h {
		return nil, fmt.Errorf("%w: %dx%d needs %d samples, got %d", ErrGridSize, w, h, w*h, len(v))
	}
	g := &Grid[uint16]{
		Width:  w,
		Height: h,
		Pix:    make([]uint16, len(v)),
	}
	for i, s := range v {
		g.Pix[i] = uint16(s)
	}
	return g, nil
}

// Transpose converts row-major samples (row y at v[y*w:(y+1)*w]) into a grid.
func Transpose[T Sample](w, h int, v []T) (*Grid[T], error) {
	if w < 0 || h < 0 || len(v) != w*h {
		return nil, fmt.Errorf("%w: %dx%d needs %d samples, got %d", ErrGridSize, w, h, w*h, len(v))
	}
	g := NewGrid[T](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Pix[x*h+y] = v[y*w+x]
		}
	}
	return g, nil
}
