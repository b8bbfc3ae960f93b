package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGB triple. Channels are not clamped, so values outside
// [0,1] are valid intermediates.
type Color struct {
	r, g, b float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{r, g, b}
}

// ColorFromColorful converts a go-colorful color into a Color
func ColorFromColorful(c colorful.Color) Color {
	return Color{c.R, c.G, c.B}
}

func Black() Color { return Color{0, 0, 0} }
func White() Color { return Color{1, 1, 1} }
func Red() Color   { return Color{1, 0, 0} }
func Green() Color { return Color{0, 1, 0} }
func Blue() Color  { return Color{0, 0, 1} }

func (c Color) R() float64 { return c.r }
func (c Color) G() float64 { return c.g }
func (c Color) B() float64 { return c.b }

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.r + other.r, c.g + other.g, c.b + other.b}
}

// Subtract returns the channel-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.r - other.r, c.g - other.g, c.b - other.b}
}

// Scale multiplies every channel by k
func (c Color) Scale(k float64) Color {
	return Color{c.r * k, c.g * k, c.b * k}
}

// Multiply returns the Hadamard product, used to blend light and surface colors
func (c Color) Multiply(other Color) Color {
	return Color{c.r * other.r, c.g * other.g, c.b * other.b}
}

// Equal reports whether every channel differs by less than Epsilon
func (c Color) Equal(other Color) bool {
	return approxEqual(c.r, other.r) && approxEqual(c.g, other.g) && approxEqual(c.b, other.b)
}

// Colorful returns the color as a go-colorful value, unclamped
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.r, G: c.g, B: c.b}
}

// RGBA implements image/color.Color. Channels are clamped to [0,1] here
// only; the stored values are left untouched.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.Colorful().Clamped().RGBA()
}

// Hex returns the clamped color as a #rrggbb string
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%g, %g, %g)", c.r, c.g, c.b)
}
