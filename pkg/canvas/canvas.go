package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-raytracer-primitives/pkg/core"
)

// Canvas is a fixed-size, row-major buffer of colors.
// Cell (row r, column c) lives at index r*width + c.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// New allocates a width x height canvas with every pixel black.
// A zero dimension gives an empty canvas; negative dimensions panic.
func New(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("canvas: negative dimensions %dx%d", width, height))
	}
	// core.Color's zero value is black
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Row returns a mutable view over the pixels of row r. Writes through the
// view update the canvas. The view's capacity ends at the row boundary so
// append cannot spill into the next row. Panics if r is out of range.
func (c *Canvas) Row(r int) []core.Color {
	if r < 0 || r >= c.height {
		panic(fmt.Sprintf("canvas: row index %d out of range [0,%d)", r, c.height))
	}
	start := r * c.width
	end := start + c.width
	return c.pixels[start:end:end]
}

// PixelAt returns the color at column x, row y
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.Row(y)[x]
}

// WritePixel sets the color at column x, row y
func (c *Canvas) WritePixel(x, y int, pixel core.Color) {
	c.Row(y)[x] = pixel
}

// Pixels returns the row-major backing sequence of the canvas.
// The slice aliases the canvas; callers exporting images should only read it.
func (c *Canvas) Pixels() []core.Color {
	return c.pixels
}

// Fill sets every pixel to the given color
func (c *Canvas) Fill(pixel core.Color) {
	for i := range c.pixels {
		c.pixels[i] = pixel
	}
}

// ColorModel implements image.Image
func (c *Canvas) ColorModel() color.Model {
	return color.RGBA64Model
}

// Bounds implements image.Image
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements image.Image. Out-of-bounds coordinates return transparent
// black, as required by the image.Image contract.
func (c *Canvas) At(x, y int) color.Color {
	if !image.Pt(x, y).In(c.Bounds()) {
		return color.RGBA64{}
	}
	return c.pixels[y*c.width+x]
}
