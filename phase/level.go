package phase

import "image/color"

// Supported level depths.
const (
	Bits8  = 8
	Bits10 = 10
)

// Models for the supported depths.
var (
	Level8Model  color.Model = levelModel(Bits8)
	Level10Model color.Model = levelModel(Bits10)
)

// Model returns the level color model for the given bit depth. Depths other than 8 bits are
// treated as 10 bits.
func Model(bits int) color.Model {
	if bits == Bits8 {
		return Level8Model
	}
	return Level10Model
}

// MaxLevel is the largest level that can be represented with bits.
func MaxLevel(bits int) uint16 {
	return uint16(1)<<uint(bits) - 1
}

// Level is a phase level with an explicit bit depth.
type Level struct {
	V    uint16
	Bits uint8
}

// RGBA maps the level onto a gray ramp, 0 is black and the maximum level is white.
func (c Level) RGBA() (r, g, b, a uint32) {
	max := uint32(MaxLevel(int(c.Bits)))
	if max == 0 {
		return 0, 0, 0, 0xffff
	}
	v := uint32(c.V)
	if v > max {
		v = max
	}
	y := (v*0xffff + max/2) / max
	return y, y, y, 0xffff
}

type levelModel uint8

func (m levelModel) Convert(c color.Color) color.Color {
	if l, ok := c.(Level); ok && l.Bits == uint8(m) {
		return l
	}
	return Level{V: luminanceLevel(c, int(m)), Bits: uint8(m)}
}

// luminanceLevel converts a color to a level, using the same luminance coefficients as
// color.Gray16Model.
func luminanceLevel(c color.Color, bits int) uint16 {
	r, g, b, _ := c.RGBA()
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	max := uint32(MaxLevel(bits))
	return uint16((y*max + 0x7fff) / 0xffff)
}
