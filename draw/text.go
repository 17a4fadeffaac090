package draw

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var (
	defaultFont     *truetype.Font
	defaultFontErr  error
	defaultFontOnce sync.Once
)

// DefaultFont returns the Go Regular font.
func DefaultFont() (*truetype.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = truetype.Parse(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// Text draws s with its baseline starting at pt, using font at size points (72 DPI, so one
// point is one pixel). If font is nil, the DefaultFont is used. It returns the point where the
// text ends.
func Text(dst Image, pt image.Point, font *truetype.Font, size float64, s string, c color.Color) (image.Point, error) {
	if font == nil {
		var err error
		if font, err = DefaultFont(); err != nil {
			return pt, err
		}
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(font)
	ctx.SetFontSize(size)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))

	end, err := ctx.DrawString(s, freetype.Pt(pt.X, pt.Y))
	if err != nil {
		return pt, err
	}
	return image.Pt(end.X.Round(), end.Y.Round()), nil
}

// TextWidth returns the advance width of s in pixels.
func TextWidth(font *truetype.Font, size float64, s string) (int, error) {
	if font == nil {
		var err error
		if font, err = DefaultFont(); err != nil {
			return 0, err
		}
	}

	face := truetype.NewFace(font, &truetype.Options{
		Size: size,
		DPI:  72,
	})
	defer face.Close()

	var width fixed.Int26_6
	for _, r := range s {
		if advance, ok := face.GlyphAdvance(r); ok {
			width += advance
		}
	}
	return width.Round(), nil
}
