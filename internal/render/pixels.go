package render

import "image/color"

// grayLevels maps cell values 0, 1 and 2 to intensities. Like matplotlib's
// Greys colormap, higher states are darker.
var grayLevels = [3]uint8{255, 128, 0}

// Gray returns the grayscale color for a cell value. Values above 2 are drawn
// as 2. With invert set, 0 is black and 2 is white.
func Gray(v uint8, invert bool) color.Gray {
	if v > 2 {
		v = 2
	}
	y := grayLevels[v]
	if invert {
		y = 255 - y
	}
	return color.Gray{Y: y}
}

// fillGrayRGBA converts ternary cell data into opaque RGBA pixels in buf.
func fillGrayRGBA(buf []byte, cells []uint8, invert bool) {
	for i, c := range cells {
		y := Gray(c, invert).Y
		base := i * 4
		buf[base+0] = y
		buf[base+1] = y
		buf[base+2] = y
		buf[base+3] = 0xff
	}
}
