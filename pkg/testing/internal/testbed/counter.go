// Package testbed provides composite widgets used by the harness tests.
package testbed

import (
	"strconv"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/widgets"
)

// Counter is a column with a count label above an increment button.
type Counter struct {
	*widgets.Flex
	Label  *widgets.Text
	Button *widgets.Button
	count  int
}

// NewCounter returns a counter starting at initial.
func NewCounter(initial int) *Counter {
	c := &Counter{count: initial}
	c.Label = widgets.NewText(0, 0, strconv.Itoa(initial), 2, graphics.White)
	c.Button = widgets.ButtonOf("ADD", c.increment)
	c.Flex = widgets.ColumnOf(layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentStart, layout.MainAxisSizeMin,
		c.Label, widgets.VSpace(10), c.Button)
	return c
}

func (c *Counter) increment() {
	c.count++
	c.Label.SetText(strconv.Itoa(c.count))
}

// Count returns the current value.
func (c *Counter) Count() int { return c.count }
