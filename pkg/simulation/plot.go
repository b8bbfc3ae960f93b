package simulation

import (
	"image"
	"math"
	"strings"

	"golang.org/x/image/draw"

	"github.com/df07/go-raytracer-primitives/pkg/canvas"
	"github.com/df07/go-raytracer-primitives/pkg/core"
)

// previewRamp orders glyphs from empty to dense
const previewRamp = " .:-=+*#%@"

// Plot draws each trajectory position onto the canvas. World x maps to the
// column and world y to the row counted up from the bottom edge. Positions
// outside the canvas are skipped. Returns the number of pixels written.
func Plot(c *canvas.Canvas, traj Trajectory, color core.Color) int {
	written := 0
	for _, p := range traj.Positions {
		x := int(math.Round(p.X()))
		y := c.Height() - 1 - int(math.Round(p.Y()))
		if x < 0 || x >= c.Width() || y < 0 || y >= c.Height() {
			continue
		}
		c.WritePixel(x, y, color)
		written++
	}
	return written
}

// Preview downsamples img to cols x rows cells and renders each cell as a
// glyph whose density follows the cell's brightness relative to the
// brightest cell.
func Preview(img image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 || img.Bounds().Empty() {
		return ""
	}

	gray := image.NewGray(image.Rect(0, 0, cols, rows))
	draw.CatmullRom.Scale(gray, gray.Bounds(), img, img.Bounds(), draw.Src, nil)

	var peak uint8
	for _, v := range gray.Pix {
		peak = max(peak, v)
	}

	var sb strings.Builder
	sb.Grow((cols + 1) * rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			idx := 0
			if peak > 0 {
				idx = int(gray.GrayAt(x, y).Y) * (len(previewRamp) - 1) / int(peak)
			}
			sb.WriteByte(previewRamp[idx])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
