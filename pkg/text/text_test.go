package text

import (
	"testing"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/rendering"
)

func TestMeasureText(t *testing.T) {
	f := NewBitmapFace()
	tests := []struct {
		s     string
		scale int
		w, h  int
	}{
		{"", 1, 0, 13},
		{"A", 1, 7, 13},
		{"HELLO", 1, 35, 13},
		{"HELLO", 2, 70, 26},
		{"AB\nABCD", 1, 28, 26},
		{"X", 0, 7, 13},
	}
	for _, tt := range tests {
		w, h := f.MeasureText(tt.s, tt.scale)
		if w != tt.w || h != tt.h {
			t.Errorf("MeasureText(%q, %d) = (%d, %d), want (%d, %d)", tt.s, tt.scale, w, h, tt.w, tt.h)
		}
	}
}

func TestRasterizeGlyph(t *testing.T) {
	f := NewBitmapFace()
	mask, adv := f.RasterizeGlyph('H', 3)
	if adv != 21 {
		t.Errorf("advance = %d, want 21", adv)
	}
	if b := mask.Bounds(); b.Dx() != 21 || b.Dy() != 39 {
		t.Errorf("mask bounds = %v, want 21x39", b)
	}
	covered := 0
	for _, a := range mask.Pix {
		if a != 0 {
			covered++
		}
	}
	if covered == 0 || covered%9 != 0 {
		t.Errorf("scaled coverage should be a multiple of 9 pixels, got %d", covered)
	}

	again, _ := f.RasterizeGlyph('H', 3)
	if again != mask {
		t.Error("glyphs should be cached")
	}

	space, _ := f.RasterizeGlyph(' ', 1)
	for _, a := range space.Pix {
		if a != 0 {
			t.Fatal("space should have no coverage")
		}
	}
}

func TestRasterizeGlyph_Fallback(t *testing.T) {
	f := NewBitmapFace()
	_, adv := f.RasterizeGlyph('\U0001F600', 1)
	if adv != 7 {
		t.Errorf("fallback advance = %d, want 7", adv)
	}
}

func TestDraw(t *testing.T) {
	c := rendering.NewCanvas(40, 30)
	Draw(c, nil, "I\nI", 2, 2, 1, graphics.White)

	top, bottom := 0, 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.GetPixel(x, y) == graphics.White {
				if y < 15 {
					top++
				} else {
					bottom++
				}
			}
		}
	}
	if top == 0 || top != bottom {
		t.Errorf("expected identical glyphs on both lines, got %d and %d pixels", top, bottom)
	}

	blank := rendering.NewCanvas(10, 10)
	Draw(blank, nil, "I", 0, 0, 1, graphics.Transparent)
	for _, px := range blank.Buffer() {
		if px != 0 {
			t.Fatal("transparent text should not draw")
		}
	}
}
