package layout

// EdgeInsets holds padding on each side of a box.
type EdgeInsets struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// EdgeInsetsAll returns equal insets on every side.
func EdgeInsetsAll(v int) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// EdgeInsetsSymmetric returns horizontal insets on left/right and vertical
// insets on top/bottom.
func EdgeInsetsSymmetric(horizontal, vertical int) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly returns insets with each side given explicitly.
func EdgeInsetsOnly(left, top, right, bottom int) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() int {
	return e.Top + e.Bottom
}
