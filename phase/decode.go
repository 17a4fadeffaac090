package phase

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/png" // PNG decoder
	"io"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder
)

// ErrCSV is returned for malformed CSV level files.
var ErrCSV = errors.New("phase: invalid CSV")

// Decode a PNG or BMP image into a phase image with the given depth. Pixel luminance is mapped
// linearly onto the level range.
func Decode(r io.Reader, bits int) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("phase: decode: %w", err)
	}
	if debug {
		logf("decoded %s image %s", format, src.Bounds().Size())
	}
	return FromImage(src, bits), nil
}

// FromImage converts any image into a phase image with the given depth. The result always
// starts at the origin.
func FromImage(src image.Image, bits int) *Image {
	b := src.Bounds()
	dst := NewImage(b.Dx(), b.Dy(), bits)
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return dst
}

// ReadCSV reads a CSV file of integer levels. Each record is one row (y), each field one
// column (x). All rows must have the same number of fields.
func ReadCSV(r io.Reader) (*Grid[uint16], error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		rows  []uint16
		width = -1
		line  int
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCSV, err)
		}
		line++
		if width < 0 {
			width = len(record)
		}
		// FieldsPerRecord is fixed by the first record, the reader already enforces width.
		for x, field := range record {
			v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 16)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %v", ErrCSV, line, x+1, err)
			}
			rows = append(rows, uint16(v))
		}
	}
	if width < 0 {
		return NewGrid[uint16](0, 0), nil
	}
	return Transpose(width, line, rows)
}
