package widgets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/layout"
	ferntest "github.com/go-fern/fern/pkg/testing"
	"github.com/go-fern/fern/pkg/widgets"
)

func recordErrors(t *testing.T) *ferntest.Recorder {
	t.Helper()
	rec := &ferntest.Recorder{}
	errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return rec
}

func probe(name string, w, h int) *ferntest.Probe {
	return ferntest.NewProbe(name, 0, 0, w, h)
}

func tight(w, h int) layout.Constraints {
	return layout.Tight(graphics.Size{Width: w, Height: h})
}

func loose(w, h int) layout.Constraints {
	return layout.Loose(graphics.Size{Width: w, Height: h})
}

func positions(ws ...core.Widget) []graphics.Point {
	out := make([]graphics.Point, len(ws))
	for i, w := range ws {
		out[i] = w.Bounds().Origin()
	}
	return out
}

func TestPadding(t *testing.T) {
	child := probe("child", 0, 0)
	p := widgets.PaddingOf(layout.EdgeInsetsAll(10), child)

	size := p.Layout(tight(140, 90))

	if size != (graphics.Size{Width: 140, Height: 90}) {
		t.Errorf("padding size = %v, want 140x90", size)
	}
	if got, want := child.LastConstraints(), tight(120, 70); got != want {
		t.Errorf("child constraints = %v, want %v", got, want)
	}
	if got := child.Bounds(); got != graphics.RectXYWH(10, 10, 120, 70) {
		t.Errorf("child bounds = %v", got)
	}
}

func TestPadding_WrapsLooseChild(t *testing.T) {
	child := probe("child", 30, 20)
	p := widgets.PaddingOf(layout.EdgeInsetsOnly(1, 2, 3, 4), child)
	if got := p.Layout(loose(200, 200)); got != (graphics.Size{Width: 34, Height: 26}) {
		t.Errorf("size = %v, want 34x26", got)
	}
	if got := child.Bounds().Origin(); got != graphics.Pt(1, 2) {
		t.Errorf("child origin = %v", got)
	}
}

func TestExpanded_SplitsByFlex(t *testing.T) {
	a := widgets.ExpandedOf(1, probe("a", 0, 0))
	b := widgets.ExpandedOf(3, probe("b", 0, 0))
	row := widgets.NewRow(a, b)

	row.Layout(tight(400, 50))

	if a.Bounds().Width != 100 || b.Bounds().Width != 300 {
		t.Errorf("widths = %d, %d; want 100, 300", a.Bounds().Width, b.Bounds().Width)
	}
	if diff := cmp.Diff([]graphics.Point{{X: 0}, {X: 100}}, positions(a, b)); diff != "" {
		t.Errorf("positions (-want +got):\n%s", diff)
	}
	if got := a.Child().(*ferntest.Probe).LastConstraints(); got != tight(100, 50) {
		t.Errorf("expanded child constraints = %v, want tight 100x50", got)
	}
}

func TestExpanded_ZeroFlexBesideWeighted(t *testing.T) {
	zero := widgets.ExpandedOf(0, probe("zero", 0, 0))
	two := widgets.ExpandedOf(2, probe("two", 0, 0))
	row := widgets.NewRow(zero, two)

	row.Layout(tight(400, 50))

	if zero.Bounds().Width != 0 || two.Bounds().Width != 400 {
		t.Errorf("widths = %d, %d; want 0, 400", zero.Bounds().Width, two.Bounds().Width)
	}
	if got := two.Bounds().X; got != 0 {
		t.Errorf("weighted child x = %d, want 0", got)
	}
}

func TestExpanded_AllZeroFlexSplitsEvenly(t *testing.T) {
	a := widgets.ExpandedOf(0, probe("a", 0, 0))
	b := widgets.ExpandedOf(-3, probe("b", 0, 0))
	row := widgets.NewRow(a, b)

	row.Layout(tight(400, 50))

	if a.Bounds().Width != 200 || b.Bounds().Width != 200 {
		t.Errorf("widths = %d, %d; want 200, 200", a.Bounds().Width, b.Bounds().Width)
	}
}

func TestExpanded_Spacer(t *testing.T) {
	left := probe("left", 20, 10)
	right := probe("right", 20, 10)
	row := widgets.NewRow(left, widgets.NewSpacer(1), right)
	row.Layout(tight(100, 10))
	if got := right.Bounds().X; got != 80 {
		t.Errorf("spacer should push right to x=80, got %d", got)
	}
}

func TestFlex_Overconstrained(t *testing.T) {
	rec := recordErrors(t)
	fixed := probe("fixed", 150, 10)
	flexible := widgets.ExpandedOf(1, probe("flex", 0, 0))
	row := widgets.NewRow(fixed, flexible)

	row.Layout(tight(100, 10))
	if got := flexible.Bounds().Width; got != 0 {
		t.Errorf("flex child width = %d, want 0", got)
	}

	row.MarkNeedsLayout()
	row.Layout(tight(100, 10))

	errs := rec.Errors()
	if len(errs) != 1 {
		t.Fatalf("reported %d layout errors, want exactly 1", len(errs))
	}
	if errs[0].Kind != errors.KindLayout || !errors.Is(errs[0], errors.ErrOverflow) {
		t.Errorf("error = %v, want layout overflow", errs[0])
	}
}

func TestFlex_OverflowWithoutFlexChildren(t *testing.T) {
	rec := recordErrors(t)
	col := widgets.NewColumn(probe("a", 10, 60), probe("b", 10, 60))
	col.Layout(tight(10, 100))
	if len(rec.Errors()) != 1 || !errors.Is(rec.Errors()[0], errors.ErrOverflow) {
		t.Errorf("errors = %v, want one overflow", rec.Errors())
	}
}

func TestFlex_UnboundedFlex(t *testing.T) {
	rec := recordErrors(t)
	flexible := widgets.ExpandedOf(2, probe("flex", 0, 0))
	row := widgets.RowOf(layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentStart, layout.MainAxisSizeMin,
		probe("fixed", 30, 10), flexible)
	unbounded := layout.Constraints{MaxWidth: layout.Unbounded, MaxHeight: 10}

	size := row.Layout(unbounded)
	row.MarkNeedsLayout()
	row.Layout(unbounded)

	if flexible.Bounds().Width != 0 {
		t.Errorf("flex child width = %d, want 0", flexible.Bounds().Width)
	}
	if size.Width != 30 {
		t.Errorf("row width = %d, want 30", size.Width)
	}
	errs := rec.Errors()
	if len(errs) != 1 || !errors.Is(errs[0], errors.ErrUnboundedFlex) {
		t.Errorf("errors = %v, want one unbounded-flex warning", errs)
	}
}

func TestFlex_MainAxisAlignment(t *testing.T) {
	tests := []struct {
		align layout.MainAxisAlignment
		want  []int
	}{
		{layout.MainAxisAlignmentStart, []int{0, 10}},
		{layout.MainAxisAlignmentEnd, []int{80, 90}},
		{layout.MainAxisAlignmentCenter, []int{40, 50}},
		{layout.MainAxisAlignmentSpaceBetween, []int{0, 90}},
		{layout.MainAxisAlignmentSpaceAround, []int{20, 70}},
		{layout.MainAxisAlignmentSpaceEvenly, []int{26, 62}},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			a, b := probe("a", 10, 10), probe("b", 10, 10)
			row := widgets.RowOf(tt.align, layout.CrossAxisAlignmentStart, layout.MainAxisSizeMax, a, b)
			row.Layout(loose(100, 10))
			got := []int{a.Bounds().X, b.Bounds().X}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("x positions (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlex_CrossAxisAlignment(t *testing.T) {
	tests := []struct {
		align     layout.CrossAxisAlignment
		wantX     int
		wantWidth int
	}{
		{layout.CrossAxisAlignmentStart, 0, 20},
		{layout.CrossAxisAlignmentCenter, 30, 20},
		{layout.CrossAxisAlignmentEnd, 60, 20},
		{layout.CrossAxisAlignmentStretch, 0, 200},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			narrow := probe("narrow", 20, 10)
			wide := probe("wide", 80, 10)
			col := widgets.ColumnOf(layout.MainAxisAlignmentStart, tt.align, layout.MainAxisSizeMin, narrow, wide)
			col.Layout(loose(200, 200))
			if got := narrow.Bounds(); got.X != tt.wantX || got.Width != tt.wantWidth {
				t.Errorf("narrow child = %v, want x=%d width=%d", got, tt.wantX, tt.wantWidth)
			}
		})
	}
}

func TestFlex_MainAxisSize(t *testing.T) {
	minCol := widgets.ColumnOf(layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentStart, layout.MainAxisSizeMin,
		probe("a", 10, 10), probe("b", 10, 15))
	if got := minCol.Layout(loose(100, 100)); got != (graphics.Size{Width: 10, Height: 25}) {
		t.Errorf("min column = %v, want 10x25", got)
	}
	maxCol := widgets.NewColumn(probe("a", 10, 10))
	if got := maxCol.Layout(loose(100, 100)); got.Height != 100 {
		t.Errorf("max column height = %d, want 100", got.Height)
	}
}

func TestFlex_EmptyAndHidden(t *testing.T) {
	if got := widgets.NewColumn().Layout(loose(100, 100)); !got.IsZero() {
		t.Errorf("empty column = %v, want zero", got)
	}

	a, hidden, b := probe("a", 10, 10), probe("hidden", 10, 10), probe("b", 10, 10)
	hidden.SetVisible(false)
	col := widgets.ColumnOf(layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentStart, layout.MainAxisSizeMin, a, hidden, b)
	if got := col.Layout(loose(100, 100)); got.Height != 20 {
		t.Errorf("hidden child should take no space, height = %d", got.Height)
	}
	if b.Bounds().Y != 10 {
		t.Errorf("b.Y = %d, want 10", b.Bounds().Y)
	}
}

func TestFlex_Spacing(t *testing.T) {
	a, b, c := probe("a", 10, 10), probe("b", 10, 10), probe("c", 10, 10)
	row := widgets.RowOf(layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentStart, layout.MainAxisSizeMin, a, b, c)
	row.SetSpacing(5)
	if got := row.Layout(loose(100, 10)); got.Width != 40 {
		t.Errorf("row width = %d, want 40", got.Width)
	}
	if diff := cmp.Diff([]int{0, 15, 30}, []int{a.Bounds().X, b.Bounds().X, c.Bounds().X}); diff != "" {
		t.Errorf("x positions (-want +got):\n%s", diff)
	}
}

func TestSetPositionMovesSubtree(t *testing.T) {
	leaf := probe("leaf", 10, 10)
	tree := widgets.PaddingOf(layout.EdgeInsetsAll(5), widgets.NewColumn(probe("top", 10, 10), leaf))
	tree.Layout(loose(100, 100))
	if got := leaf.Bounds().Origin(); got != graphics.Pt(5, 15) {
		t.Fatalf("leaf origin = %v, want (5,15)", got)
	}

	tree.SetPosition(50, 20)
	if got := leaf.Bounds().Origin(); got != graphics.Pt(55, 35) {
		t.Errorf("after move leaf origin = %v, want (55,35)", got)
	}
}

func TestCenter(t *testing.T) {
	child := probe("child", 20, 10)
	c := widgets.CenterOf(child)
	if got := c.Layout(tight(200, 100)); got != (graphics.Size{Width: 200, Height: 100}) {
		t.Errorf("center size = %v", got)
	}
	if got := child.Bounds(); got != graphics.RectXYWH(90, 45, 20, 10) {
		t.Errorf("child = %v, want centred 20x10 at (90,45)", got)
	}

	zero := probe("zero", 0, 0)
	widgets.CenterOf(zero).Layout(tight(50, 50))
	if !zero.Bounds().Size().IsZero() {
		t.Errorf("zero-size child should stay zero, got %v", zero.Bounds().Size())
	}
}

func TestSizedBox(t *testing.T) {
	child := probe("child", 5, 5)
	box := widgets.SizedBoxOf(50, 20, child)
	if got := box.Layout(loose(100, 100)); got != (graphics.Size{Width: 50, Height: 20}) {
		t.Errorf("sized box = %v", got)
	}
	if got := child.LastConstraints(); got != tight(50, 20) {
		t.Errorf("child constraints = %v", got)
	}
	if got := widgets.VSpace(12).Layout(loose(100, 100)); got != (graphics.Size{Height: 12}) {
		t.Errorf("VSpace = %v", got)
	}
	if got := widgets.HSpace(7).Layout(loose(100, 100)); got != (graphics.Size{Width: 7}) {
		t.Errorf("HSpace = %v", got)
	}
}

func TestContainer_Sizing(t *testing.T) {
	fill := widgets.NewContainer(graphics.Black, 0, 0, 0, 0, nil)
	if got := fill.Layout(loose(300, 200)); got != (graphics.Size{Width: 300, Height: 200}) {
		t.Errorf("unsized container = %v, want to fill 300x200", got)
	}

	child := probe("child", 30, 40)
	fixedWidth := widgets.NewContainer(graphics.Black, 0, 0, 100, 0, child)
	if got := fixedWidth.Layout(layout.Constraints{MaxWidth: 500, MaxHeight: layout.Unbounded}); got != (graphics.Size{Width: 100, Height: 40}) {
		t.Errorf("container = %v, want 100 wide wrapping 40 high", got)
	}
}

func TestTreeErrors(t *testing.T) {
	outer := widgets.NewColumn()
	inner := widgets.NewRow()
	if err := outer.AddChild(inner); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		err   error
		cause error
	}{
		{"nil", outer.AddChild(nil), errors.ErrNilChild},
		{"self", outer.AddChild(outer), errors.ErrSelfAttach},
		{"already attached", widgets.NewColumn().AddChild(inner), errors.ErrAlreadyAttached},
		{"single child slot", widgets.CenterOf(nil).SetChild(inner), errors.ErrAlreadyAttached},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var te *errors.TreeError
			if !errors.As(tt.err, &te) || !errors.Is(tt.err, tt.cause) {
				t.Errorf("err = %v, want TreeError wrapping %v", tt.err, tt.cause)
			}
		})
	}
	if got := len(outer.Children()); got != 1 {
		t.Errorf("rejected attaches must not add children, have %d", got)
	}
}

func TestTreeErrors_Cycle(t *testing.T) {
	a := widgets.NewColumn()
	b := widgets.NewColumn()
	if err := a.AddChild(b); err != nil {
		t.Fatal(err)
	}
	// a has no parent, so attaching it below b only fails on the cycle.
	err := b.AddChild(a)
	if !errors.Is(err, errors.ErrCycle) {
		t.Errorf("err = %v, want ErrCycle", err)
	}
	if a.Parent() != nil {
		t.Error("rejected attach must not change the parent")
	}
}

func TestRemoveChild(t *testing.T) {
	child := probe("child", 10, 10)
	col := widgets.NewColumn(child)
	if !col.RemoveChild(child) {
		t.Fatal("RemoveChild should report success")
	}
	if child.Parent() != nil {
		t.Error("removed child should be detached")
	}
	if col.RemoveChild(child) {
		t.Error("second RemoveChild should report false")
	}
	if err := widgets.NewRow().AddChild(child); err != nil {
		t.Errorf("detached child should be attachable again: %v", err)
	}
}

func TestColumnOfPanicsOnBadChild(t *testing.T) {
	shared := probe("shared", 1, 1)
	widgets.NewColumn(shared)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, errors.ErrAlreadyAttached) {
			t.Errorf("panic = %v, want TreeError wrapping ErrAlreadyAttached", r)
		}
	}()
	widgets.ColumnOf(layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentStart, layout.MainAxisSizeMax, shared)
}

func TestLayoutCache(t *testing.T) {
	child := probe("child", 10, 10)
	col := widgets.NewColumn(child)
	col.Layout(loose(100, 100))
	col.Layout(loose(100, 100))
	if child.Layouts != 1 {
		t.Errorf("clean relayout should be cached, child laid out %d times", child.Layouts)
	}
	child.SetSize(20, 20)
	if !col.NeedsLayout() {
		t.Fatal("resizing a child should dirty the parent")
	}
	col.Layout(loose(100, 100))
	if child.Layouts != 2 || child.Bounds().Width != 20 {
		t.Errorf("dirty relayout: layouts=%d width=%d", child.Layouts, child.Bounds().Width)
	}
}
