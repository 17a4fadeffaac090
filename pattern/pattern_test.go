package pattern

import (
	"image/color"
	"testing"

	"github.com/BeatGlow/slm/phase"
)

func TestConstant(t *testing.T) {
	dst := phase.NewImage(4, 4, phase.Bits8)
	Constant(dst, 0x1ff)
	for i, v := range dst.Pix {
		if v != 0xff {
			t.Fatalf("pixel %d: expected level 255, got %d", i, v)
		}
	}
}

func TestGrating(t *testing.T) {
	dst := phase.NewImage(8, 2, phase.Bits8)
	Grating(dst, 4, 0)
	want := []uint16{0, 64, 128, 192, 0, 64, 128, 192}
	for y := 0; y < 2; y++ {
		for x, v := range want {
			if l := dst.LevelAt(x, y); l != v {
				t.Errorf("pixel (%d,%d): expected level %d, got %d", x, y, v, l)
			}
		}
	}

	Grating(dst, 0, 0)
	for i, v := range dst.Pix {
		if v != 0 {
			t.Fatalf("pixel %d: expected flat phase for zero period, got %d", i, v)
		}
	}
}

func TestChecker(t *testing.T) {
	dst := phase.NewImage(4, 4, phase.Bits8)
	Checker(dst, 2)
	tests := []struct {
		X, Y int
		Want uint16
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2, 0, 128},
		{0, 3, 128},
		{3, 3, 0},
	}
	for _, test := range tests {
		if v := dst.LevelAt(test.X, test.Y); v != test.Want {
			t.Errorf("pixel (%d,%d): expected level %d, got %d", test.X, test.Y, test.Want, v)
		}
	}
}

func TestVortex(t *testing.T) {
	dst := phase.NewImage(3, 3, phase.Bits10)
	Vortex(dst, 1)
	tests := []struct {
		Name string
		X, Y int
		Want uint16
	}{
		{"right", 2, 1, 0},
		{"up", 1, 0, 256},
		{"left", 0, 1, 512},
		{"down", 1, 2, 768},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			if v := dst.LevelAt(test.X, test.Y); v != test.Want {
				it.Errorf("pixel (%d,%d): expected level %d, got %d", test.X, test.Y, test.Want, v)
			}
		})
	}
}

func TestLens(t *testing.T) {
	dst := phase.NewImage(5, 5, phase.Bits8)
	Lens(dst, 2)
	if v := dst.LevelAt(2, 2); v != 0 {
		t.Errorf("expected center level 0, got %d", v)
	}
	if v := dst.LevelAt(3, 2); v != 64 {
		t.Errorf("expected level 64 at r=1, got %d", v)
	}
	if v := dst.LevelAt(4, 2); v != 0 {
		t.Errorf("expected zone boundary at r=2, got %d", v)
	}
}

func TestCrosshair(t *testing.T) {
	dst := phase.NewImage(5, 5, phase.Bits8)
	Crosshair(dst, color.White)
	for _, p := range [][2]int{{0, 0}, {4, 4}, {2, 2}, {2, 0}, {0, 2}} {
		if v := dst.LevelAt(p[0], p[1]); v != 0xff {
			t.Errorf("pixel %v: expected level 255, got %d", p, v)
		}
	}
	if v := dst.LevelAt(1, 1); v != 0 {
		t.Errorf("expected pixel (1,1) to be unset, got %d", v)
	}
}
