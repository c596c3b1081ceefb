package graphics

import (
	"image/color"
	"math"
	"testing"
)

func TestColorChannels(t *testing.T) {
	c := Color(0x80112233)
	r, g, b, a := c.Channels()
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x80 {
		t.Errorf("Channels() = %x %x %x %x", r, g, b, a)
	}
	if RGB(0xFF, 0, 0) != Red {
		t.Errorf("RGB(255,0,0) = %v, want %v", RGB(0xFF, 0, 0), Red)
	}
	if Red != 0xFFFF0000 {
		t.Errorf("Red = %v, want 0xFFFF0000", Red)
	}
}

func TestWithAlpha(t *testing.T) {
	if got := Red.WithAlpha(0); got != 0x00FF0000 {
		t.Errorf("WithAlpha(0) = %v", got)
	}
	if got := Red.WithAlpha8(0x7F); got != 0x7FFF0000 {
		t.Errorf("WithAlpha8(0x7F) = %v", got)
	}
	if got := Blue.WithAlpha(2); got != Blue {
		t.Errorf("WithAlpha clamps: got %v", got)
	}
}

func TestBlendIdempotent(t *testing.T) {
	colors := []Color{Transparent, Black, White, Red, 0x80123456, 0x01FEDCBA}
	alphas := []float64{-1, 0, 0.1, 0.333, 0.5, 0.99, 1, 7}
	for _, c := range colors {
		for _, a := range alphas {
			if got := Blend(c, c, a); got != c {
				t.Errorf("Blend(%v, %v, %v) = %v", c, c, a, got)
			}
		}
	}
}

func TestBlendEndpoints(t *testing.T) {
	if got := Blend(Black, White, 0); got != Black {
		t.Errorf("alpha 0 = %v, want bg", got)
	}
	if got := Blend(Black, White, 1); got != White {
		t.Errorf("alpha 1 = %v, want fg", got)
	}
	if got := Blend(Black, White, 0.5); got != 0xFF808080 {
		t.Errorf("alpha 0.5 = %v, want 0xFF808080", got)
	}
}

func TestOver(t *testing.T) {
	tests := []struct {
		name     string
		dst, src Color
		want     Color
	}{
		{"opaque src wins", Blue, Red, Red},
		{"transparent src keeps dst", Blue, Transparent, Blue},
		{"half red over opaque black", Black, Red.WithAlpha8(0x80), 0xFF800000},
		{"onto transparent keeps src color", Transparent, Red.WithAlpha8(0x80), 0x80FF0000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Over(tt.dst, tt.src); got != tt.want {
				t.Errorf("Over(%v, %v) = %v, want %v", tt.dst, tt.src, got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", Red, false},
		{"#80FF0000", 0x80FF0000, false},
		{"0xFF00FF00", Green, false},
		{" 0x0000ff ", Blue, false},
		{"#12345", 0, true},
		{"nope", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorModelInterop(t *testing.T) {
	var c color.Color = Color(0xFF102030)
	if got := FromColor(c); got != 0xFF102030 {
		t.Errorf("FromColor round trip = %v", got)
	}
	if got := FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 4}); got != 0x04010203 {
		t.Errorf("FromColor(NRGBA) = %v", got)
	}
}

func TestRectOps(t *testing.T) {
	r := RectXYWH(10, 10, 20, 10)
	if !r.Contains(10, 10) || r.Contains(30, 10) || r.Contains(10, 20) {
		t.Error("Contains should be half-open")
	}
	got := r.Intersect(RectXYWH(25, 0, 100, 15))
	if want := RectXYWH(25, 10, 5, 5); got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}
	if !r.Intersect(RectXYWH(100, 100, 1, 1)).Empty() {
		t.Error("disjoint intersect should be empty")
	}
	if got := r.Inset(15, 0, 15, 0); got.Width != 0 {
		t.Errorf("Inset should clamp width at 0, got %d", got.Width)
	}
}

func TestRectExtremeEdges(t *testing.T) {
	canvas := RectXYWH(0, 0, 10, 10)
	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"past max", RectXYWH(5, 5, math.MaxInt, math.MaxInt), RectXYWH(5, 5, 5, 5)},
		{"from min", RectXYWH(math.MinInt, 2, math.MaxInt, 3), Rect{}},
		{"covers all", RectXYWH(-1<<40, -1<<40, math.MaxInt, math.MaxInt), canvas},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Intersect(canvas); got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
		})
	}
	if got := RectXYWH(1, 1, math.MaxInt, 1).Right(); got != math.MaxInt {
		t.Errorf("Right = %d, want saturated MaxInt", got)
	}
}
