package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-raytracer-primitives/pkg/core"
)

func TestNew_InitialisedBlack(t *testing.T) {
	c := New(10, 20)

	if c.Width() != 10 || c.Height() != 20 {
		t.Fatalf("Expected 10x20 canvas, got %dx%d", c.Width(), c.Height())
	}
	if len(c.Pixels()) != 200 {
		t.Fatalf("Expected 200 pixels, got %d", len(c.Pixels()))
	}
	for i, p := range c.Pixels() {
		if !p.Equal(core.Black()) {
			t.Fatalf("Expected pixel %d to be black, got %v", i, p)
		}
	}
}

func TestNew_ZeroDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.width, tt.height)
			if len(c.Pixels()) != 0 {
				t.Errorf("Expected empty canvas, got %d pixels", len(c.Pixels()))
			}
			if !c.Bounds().Empty() {
				t.Errorf("Expected empty bounds, got %v", c.Bounds())
			}
		})
	}
}

func TestRow_WriteThroughView(t *testing.T) {
	c := New(10, 20)
	red := core.NewColor(1, 0, 0)

	c.Row(2)[3] = red

	if diff := cmp.Diff(red, c.Row(2)[3]); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	for i, p := range c.Pixels() {
		if i == 2*10+3 {
			continue
		}
		if !p.Equal(core.Black()) {
			t.Errorf("Expected pixel %d to remain black, got %v", i, p)
		}
	}
}

func TestRow_Layout(t *testing.T) {
	c := New(4, 3)
	for y := 0; y < c.Height(); y++ {
		row := c.Row(y)
		if len(row) != 4 || cap(row) != 4 {
			t.Fatalf("Expected row of len/cap 4, got %d/%d", len(row), cap(row))
		}
		for x := range row {
			row[x] = core.NewColor(float64(x), float64(y), 0)
		}
	}

	// Row-major: flat index r*width + c
	pixels := c.Pixels()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := core.NewColor(float64(x), float64(y), 0)
			if !pixels[y*4+x].Equal(want) {
				t.Errorf("Expected %v at index %d, got %v", want, y*4+x, pixels[y*4+x])
			}
		}
	}
}

func TestRow_AppendDoesNotSpill(t *testing.T) {
	c := New(2, 2)
	row := c.Row(0)
	_ = append(row, core.White())

	if !c.PixelAt(0, 1).Equal(core.Black()) {
		t.Errorf("Expected append on row 0 to leave row 1 untouched, got %v", c.PixelAt(0, 1))
	}
}

func TestOutOfRange_Panics(t *testing.T) {
	tests := []struct {
		name string
		op   func()
	}{
		{"row past height", func() { New(10, 20).Row(20) }},
		{"negative row", func() { New(10, 20).Row(-1) }},
		{"column past width", func() { New(10, 20).Row(0)[10] = core.White() }},
		{"row on zero width canvas", func() { New(0, 5).Row(5) }},
		{"row on zero height canvas", func() { New(5, 0).Row(0) }},
		{"write pixel out of range", func() { New(3, 3).WritePixel(3, 0, core.White()) }},
		{"negative dimensions", func() { New(-1, -1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic")
				}
			}()
			tt.op()
		})
	}
}

func TestPixelAccessors(t *testing.T) {
	c := New(10, 20)
	green := core.Green()

	c.WritePixel(3, 2, green)

	if !c.PixelAt(3, 2).Equal(green) {
		t.Errorf("Expected %v, got %v", green, c.PixelAt(3, 2))
	}
	if !c.Row(2)[3].Equal(green) {
		t.Errorf("Expected row view to see %v, got %v", green, c.Row(2)[3])
	}
}

func TestFill(t *testing.T) {
	c := New(3, 2)
	c.Fill(core.White())
	for i, p := range c.Pixels() {
		if !p.Equal(core.White()) {
			t.Errorf("Expected pixel %d to be white, got %v", i, p)
		}
	}
}

func TestImage(t *testing.T) {
	c := New(4, 2)
	c.WritePixel(1, 1, core.NewColor(2, 0.5, -1))

	var img image.Image = c
	if img.Bounds() != image.Rect(0, 0, 4, 2) {
		t.Errorf("Expected bounds (0,0)-(4,2), got %v", img.Bounds())
	}

	got := color.RGBA64Model.Convert(img.At(1, 1)).(color.RGBA64)
	want := color.RGBA64{R: 0xffff, G: 0x8000, B: 0, A: 0xffff}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if got := img.At(5, 5); got != (color.RGBA64{}) {
		t.Errorf("Expected transparent black outside bounds, got %v", got)
	}
}
