package phase

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func testGradient() image.Image {
	i := image.NewGray(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		i.SetGray(x, 0, color.Gray{Y: uint8(x * 0x55)})
		i.SetGray(x, 1, color.Gray{Y: 0xff})
	}
	return i
}

func TestDecode(t *testing.T) {
	encoders := map[string]func(*bytes.Buffer, image.Image) error{
		"png": func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) },
		"bmp": func(b *bytes.Buffer, i image.Image) error { return bmp.Encode(b, i) },
	}
	for name, encode := range encoders {
		t.Run(name, func(it *testing.T) {
			var b bytes.Buffer
			if err := encode(&b, testGradient()); err != nil {
				it.Fatal(err)
			}
			i, err := Decode(&b, Bits8)
			if err != nil {
				it.Fatal(err)
			}
			if size := i.Bounds().Size(); !size.Eq(image.Pt(4, 2)) {
				it.Fatalf("expected 4x2 image, got %s", size)
			}
			for x := 0; x < 4; x++ {
				if v, want := i.LevelAt(x, 0), uint16(x*0x55); v != want {
					it.Errorf("pixel (%d,0): expected level %d, got %d", x, want, v)
				}
				if v := i.LevelAt(x, 1); v != 0xff {
					it.Errorf("pixel (%d,1): expected level 255, got %d", x, v)
				}
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode(strings.NewReader("not an image"), Bits10); err == nil {
		t.Error("expected error")
	}
}

func TestReadCSV(t *testing.T) {
	g, err := ReadCSV(strings.NewReader("1, 2, 3\n4,5,6\n"))
	if err != nil {
		t.Fatal(err)
	}
	if g.Width != 3 || g.Height != 2 {
		t.Fatalf("expected 3x2 grid, got %dx%d", g.Width, g.Height)
	}
	if v := g.At(2, 1); v != 6 {
		t.Errorf("expected sample (2,1) to be 6, got %d", v)
	}
	if v := g.At(1, 0); v != 2 {
		t.Errorf("expected sample (1,0) to be 2, got %d", v)
	}
}

func TestReadCSVInvalid(t *testing.T) {
	tests := []struct {
		Name string
		Data string
	}{
		{"ragged", "1,2\n3\n"},
		{"not-a-number", "1,x\n"},
		{"negative", "-1\n"},
		{"overflow", "70000\n"},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			if _, err := ReadCSV(strings.NewReader(test.Data)); !errors.Is(err, ErrCSV) {
				it.Errorf("expected ErrCSV, got %v", err)
			}
		})
	}
}

func TestReadCSVEmpty(t *testing.T) {
	g, err := ReadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Pix) != 0 {
		t.Errorf("expected empty grid, got %d samples", len(g.Pix))
	}
}
