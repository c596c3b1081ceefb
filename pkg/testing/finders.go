package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-fern/fern/pkg/core"
)

// Finder locates widgets in the tree.
type Finder interface {
	// Evaluate returns every match under roots in depth-first paint order.
	Evaluate(roots []core.Widget) []core.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []core.Widget
	finder  Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if there is none.
func (r FinderResult) First() core.Widget {
	if len(r.widgets) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.describe()))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil.
func (r FinderResult) FirstOrNil() core.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.Widget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.widgets), r.describe()))
	}
	return r.widgets[index]
}

// All returns every match.
func (r FinderResult) All() []core.Widget { return r.widgets }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.widgets) }

// Exists reports whether anything matched.
func (r FinderResult) Exists() bool { return len(r.widgets) > 0 }

// textOf extracts the visible text of widgets that carry one: Text and
// TextInput expose Text, Button exposes Label.
func textOf(w core.Widget) (string, bool) {
	switch v := w.(type) {
	case interface{ Text() string }:
		return v.Text(), true
	case interface{ Label() string }:
		return v.Label(), true
	}
	return "", false
}

type typeFinder struct {
	widgetType reflect.Type
}

func (f *typeFinder) Evaluate(roots []core.Widget) []core.Widget {
	return collectMatches(roots, func(w core.Widget) bool {
		return reflect.TypeOf(w) == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.widgetType)
}

// ByType matches widgets whose dynamic type is T.
func ByType[T core.Widget]() Finder {
	return &typeFinder{widgetType: reflect.TypeFor[T]()}
}

type textFinder struct {
	text     string
	contains bool
}

func (f *textFinder) Evaluate(roots []core.Widget) []core.Widget {
	return collectMatches(roots, func(w core.Widget) bool {
		s, ok := textOf(w)
		if !ok {
			return false
		}
		if f.contains {
			return strings.Contains(s, f.text)
		}
		return s == f.text
	})
}

func (f *textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText matches Text, TextInput, and Button widgets whose text or label
// equals text exactly.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// ByTextContaining matches widgets whose text or label contains substring.
func ByTextContaining(substring string) Finder {
	return &textFinder{text: substring, contains: true}
}

type widgetFinder struct {
	target core.Widget
}

func (f *widgetFinder) Evaluate(roots []core.Widget) []core.Widget {
	return collectMatches(roots, func(w core.Widget) bool { return w == f.target })
}

func (f *widgetFinder) Description() string {
	return fmt.Sprintf("ByWidget(%s)", core.Describe(f.target))
}

// ByWidget matches a specific widget instance.
func ByWidget(w core.Widget) Finder {
	return &widgetFinder{target: w}
}

type predicateFinder struct {
	desc string
	fn   func(core.Widget) bool
}

func (f *predicateFinder) Evaluate(roots []core.Widget) []core.Widget {
	return collectMatches(roots, f.fn)
}

func (f *predicateFinder) Description() string {
	return fmt.Sprintf("ByPredicate(%s)", f.desc)
}

// ByPredicate matches widgets for which fn returns true.
func ByPredicate(desc string, fn func(core.Widget) bool) Finder {
	return &predicateFinder{desc: desc, fn: fn}
}

type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(roots []core.Widget) []core.Widget {
	var out []core.Widget
	seen := make(map[core.Widget]bool)
	for _, ancestor := range f.of.Evaluate(roots) {
		for _, m := range f.matching.Evaluate(core.ChildrenOf(ancestor)) {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant matches widgets found by matching strictly below any widget
// found by of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func collectMatches(roots []core.Widget, predicate func(core.Widget) bool) []core.Widget {
	var out []core.Widget
	for _, root := range roots {
		core.Walk(root, func(w core.Widget, _ int) bool {
			if predicate(w) {
				out = append(out, w)
			}
			return true
		})
	}
	return out
}
