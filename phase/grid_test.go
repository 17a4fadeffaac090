package phase

import (
	"errors"
	"math"
	"testing"
)

func TestGrid(t *testing.T) {
	g := NewGrid[float64](4, 3)
	if err := g.Validate(); err != nil {
		t.Fatalf("expected valid grid, got %v", err)
	}
	g.Set(2, 1, 0.5)
	if v := g.Pix[2*3+1]; v != 0.5 {
		t.Errorf("expected x-major storage, got %v at offset %d", v, g.Offset(2, 1))
	}
	if v := g.At(2, 1); v != 0.5 {
		t.Errorf("expected 0.5, got %v", v)
	}
	g.Set(4, 0, 1)
	if v := g.At(4, 0); v != 0 {
		t.Errorf("expected out of bounds sample 0, got %v", v)
	}
	g.Fill(2)
	for i, v := range g.Pix {
		if v != 2 {
			t.Fatalf("sample %d: expected 2, got %v", i, v)
		}
	}
}

func TestGridValidate(t *testing.T) {
	tests := []struct {
		Name string
		Grid *Grid[uint16]
	}{
		{"nil", nil},
		{"short", &Grid[uint16]{Width: 2, Height: 2, Pix: make([]uint16, 3)}},
		{"long", &Grid[uint16]{Width: 2, Height: 2, Pix: make([]uint16, 5)}},
		{"wide", &Grid[uint16]{Width: math.MaxUint16 + 1, Height: 0}},
		{"negative", &Grid[uint16]{Width: -1, Height: -1, Pix: make([]uint16, 1)}},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			if err := test.Grid.Validate(); !errors.Is(err, ErrGridSize) {
				it.Errorf("expected ErrGridSize, got %v", err)
			}
		})
	}
}

func TestNarrowInts(t *testing.T) {
	g, err := NarrowInts(2, 2, []int{0, 1023, 65536 + 7, -1})
	if err != nil {
		t.Fatal(err)
	}
	want := []uint16{0, 1023, 7, 0xffff}
	for i, v := range want {
		if g.Pix[i] != v {
			t.Errorf("sample %d: expected %d, got %d", i, v, g.Pix[i])
		}
	}

	if _, err = NarrowInts(2, 2, []int{1}); !errors.Is(err, ErrGridSize) {
		t.Errorf("expected ErrGridSize, got %v", err)
	}
}

func TestTranspose(t *testing.T) {
	g, err := Transpose(3, 2, []float32{
		1, 2, 3,
		4, 5, 6,
	})
	if err != nil {
		t.Fatal(err)
	}
	if g.At(2, 0) != 3 || g.At(0, 1) != 4 {
		t.Errorf("unexpected grid %v", g.Pix)
	}
	if _, err = Transpose(3, 3, []float32{1}); !errors.Is(err, ErrGridSize) {
		t.Errorf("expected ErrGridSize, got %v", err)
	}
}
