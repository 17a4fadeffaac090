// Package pattern generates common SLM phase patterns.
//
// Patterns write levels into a [phase.Image]. Phase wraps at the level count of the image, so
// a full 2π cycle spans levels 0 to 2^bits-1.
package pattern

import (
	"image"
	"image/color"
	"math"

	"github.com/BeatGlow/slm/draw"
	"github.com/BeatGlow/slm/phase"
)

// Constant sets every pixel to level.
func Constant(dst *phase.Image, level uint16) {
	level &= phase.MaxLevel(dst.Bits)
	for i := range dst.Pix {
		dst.Pix[i] = level
	}
}

// Grating draws a blazed grating with a period in pixels, with the phase ramp rising along
// angle (radians, counter clock wise from the x axis).
func Grating(dst *phase.Image, period, angle float64) {
	if period == 0 {
		Constant(dst, 0)
		return
	}
	cos, sin := math.Cos(angle)/period, math.Sin(angle)/period
	each(dst, func(x, y float64) float64 {
		return x*cos - y*sin
	})
}

// Checker draws a checkerboard of size by size pixel squares, alternating between level 0 and
// a half wave (π) phase shift.
func Checker(dst *phase.Image, size int) {
	if size <= 0 {
		size = 1
	}
	var (
		b    = dst.Bounds()
		half = (phase.MaxLevel(dst.Bits) + 1) / 2
	)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if ((x-b.Min.X)/size+(y-b.Min.Y)/size)%2 == 0 {
				dst.SetLevel(x, y, 0)
			} else {
				dst.SetLevel(x, y, half)
			}
		}
	}
}

// Vortex draws a spiral phase plate with the given topological charge, centered on the image.
func Vortex(dst *phase.Image, charge int) {
	cx, cy := center(dst.Bounds())
	each(dst, func(x, y float64) float64 {
		return float64(charge) * math.Atan2(cy-y, x-cx) / (2 * math.Pi)
	})
}

// Lens draws a Fresnel lens centered on the image. Radius is the radius in pixels of the first
// Fresnel zone; zone n ends at radius·√n.
func Lens(dst *phase.Image, radius float64) {
	if radius == 0 {
		Constant(dst, 0)
		return
	}
	cx, cy := center(dst.Bounds())
	r2 := radius * radius
	each(dst, func(x, y float64) float64 {
		dx, dy := x-cx, y-cy
		return (dx*dx + dy*dy) / r2
	})
}

// Crosshair draws a border and a cross through the center of the image, for alignment.
func Crosshair(dst *phase.Image, c color.Color) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	mx, my := b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2
	draw.Rectangle(dst, b, c)
	draw.Line(dst, image.Pt(mx, b.Min.Y), image.Pt(mx, b.Max.Y-1), c)
	draw.Line(dst, image.Pt(b.Min.X, my), image.Pt(b.Max.X-1, my), c)
}

func center(b image.Rectangle) (x, y float64) {
	return float64(b.Min.X) + float64(b.Dx()-1)/2, float64(b.Min.Y) + float64(b.Dy()-1)/2
}

// each sets every pixel to the level for f(x, y), where f returns phase in cycles.
func each(dst *phase.Image, f func(x, y float64) float64) {
	var (
		b      = dst.Bounds()
		levels = float64(phase.MaxLevel(dst.Bits)) + 1
	)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cycles := f(float64(x), float64(y))
			frac := cycles - math.Floor(cycles)
			dst.SetLevel(x, y, uint16(frac*levels))
		}
	}
}
