// Package graphics holds Fern's value types: the packed 0xAARRGGBB Color,
// its blending helpers and named palette, and integer Point, Size and Rect.
package graphics
