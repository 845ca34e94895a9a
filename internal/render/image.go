// Package render turns automaton state into grayscale pixels: images of whole
// spacetime fields for export and RGBA buffers for the interactive viewer.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"tri-ca/internal/automaton"
)

// Options controls how a field is rasterised.
type Options struct {
	// Scale is the edge length in pixels of one cell. Zero means 1.
	Scale  int
	Invert bool
}

// Image rasterises field with one row per time step and one column per cell.
func Image(field automaton.Field, opts Options) (*image.Gray, error) {
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return nil, fmt.Errorf("render: scale %d must be positive", opts.Scale)
	}
	if len(field) == 0 || len(field[0]) == 0 {
		return nil, errors.New("render: empty field")
	}
	width := len(field[0])
	img := image.NewGray(image.Rect(0, 0, width*scale, len(field)*scale))
	for t, row := range field {
		if len(row) != width {
			return nil, fmt.Errorf("render: row %d has %d cells, want %d", t, len(row), width)
		}
		for x, v := range row {
			c := Gray(v, opts.Invert)
			for dy := 0; dy < scale; dy++ {
				off := img.PixOffset(x*scale, t*scale+dy)
				for dx := 0; dx < scale; dx++ {
					img.Pix[off+dx] = c.Y
				}
			}
		}
	}
	return img, nil
}

// WritePNG encodes field as a grayscale PNG.
func WritePNG(w io.Writer, field automaton.Field, opts Options) error {
	img, err := Image(field, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
