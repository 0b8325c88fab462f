package polykit

import (
	"github.com/polykit/polykit/breakpoint"
	"github.com/polykit/polykit/responsive"
)

// Container width caps per width class, after the usual web container
// scale. At the base class content spans the full width.
var containerWidths = map[breakpoint.Breakpoint]Value{
	breakpoint.Base: Percent(100),
	breakpoint.SM:   Fixed(540),
	breakpoint.MD:   Fixed(720),
	breakpoint.LG:   Fixed(960),
	breakpoint.XL:   Fixed(1140),
}

// Container centers its content in a width-capped column. Narrow
// viewports get the full width; wider classes cap the content and
// center the slack, keeping line lengths readable as the host grows.
type Container struct {
	*Flex
	item *FlexItem
}

// NewContainer wraps content in a centered, width-capped container.
func NewContainer(content Widget, opts ...Option) *Container {
	f := New(append([]Option{
		WithJustify(JustifyCenter),
		WithAlign(AlignStretch),
	}, opts...)...)
	c := &Container{Flex: f}
	c.item = f.AddItem(content, WithShrink(1))
	c.item.SetBasis(responsive.Map(containerWidths))
	return c
}

// Item returns the single content item, for per-class overrides.
func (c *Container) Item() *FlexItem {
	return c.item
}
