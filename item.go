package polykit

import (
	"github.com/polykit/polykit/breakpoint"
	"github.com/polykit/polykit/errs"
	"github.com/polykit/polykit/internal/layout"
	"github.com/polykit/polykit/responsive"
)

// Property names used in the per-item resolver.
const (
	propGrow      = "grow"
	propShrink    = "shrink"
	propBasis     = "basis"
	propOrder     = "order"
	propAlignSelf = "alignSelf"
)

// FlexItem binds one child widget to its flex properties. Items are
// created by [Flex.AddItem] and removed by [Flex.RemoveItem]; the
// container keeps them in insertion order, and the order property
// affects visual placement only.
//
// Every property is responsive: it can be a single value or vary by
// width class. Mutating a property re-runs the owning container's
// layout.
type FlexItem struct {
	widget Widget
	res    *responsive.Resolver
	owner  *Flex
}

func newFlexItem(owner *Flex, w Widget) *FlexItem {
	return &FlexItem{
		widget: w,
		res: responsive.New(
			responsive.WithWidth(owner.size.Width),
			responsive.WithLogger(owner.logger),
		),
		owner: owner,
	}
}

// Widget returns the wrapped child widget.
func (it *FlexItem) Widget() Widget {
	return it.widget
}

// SetGrow sets the item's share of positive free space.
// Negative entries are treated as zero during layout.
func (it *FlexItem) SetGrow(v responsive.Value[float64]) {
	responsive.Set(it.res, propGrow, v)
	it.owner.relayout()
}

// Grow returns the grow factor resolved at the current width.
func (it *FlexItem) Grow() float64 {
	return responsive.Get(it.res, propGrow, 0.0)
}

// SetShrink sets the item's share of overflow.
// Negative entries are treated as zero during layout.
func (it *FlexItem) SetShrink(v responsive.Value[float64]) {
	responsive.Set(it.res, propShrink, v)
	it.owner.relayout()
}

// Shrink returns the shrink factor resolved at the current width.
func (it *FlexItem) Shrink() float64 {
	return responsive.Get(it.res, propShrink, 1.0)
}

// SetBasis sets the item's preferred main size.
func (it *FlexItem) SetBasis(v responsive.Value[Value]) {
	responsive.Set(it.res, propBasis, v)
	it.owner.relayout()
}

// SetBasisString parses a dimension string ("auto", "120", "37.5%") and
// sets it as the basis. A malformed string sets auto and returns an
// INVALID_BASIS error.
func (it *FlexItem) SetBasisString(s string) error {
	v, err := layout.ParseValue(s)
	it.SetBasis(responsive.Fixed(v))
	if err != nil {
		err = errs.Wrap(errs.ErrCodeInvalidBasis, err, "basis %q", s)
		it.owner.reportConfigError(propBasis, err)
		return err
	}
	delete(it.owner.warned, propBasis)
	return nil
}

// Basis returns the basis resolved at the current width.
func (it *FlexItem) Basis() Value {
	return responsive.Get(it.res, propBasis, Auto())
}

// SetOrder sets the item's visual ordering key. Items with equal order
// keep their insertion order.
func (it *FlexItem) SetOrder(v responsive.Value[int]) {
	responsive.Set(it.res, propOrder, v)
	it.owner.relayout()
}

// Order returns the ordering key resolved at the current width.
func (it *FlexItem) Order() int {
	return responsive.Get(it.res, propOrder, 0)
}

// SetAlignSelf overrides the container's align mode for this item. An
// undefined entry rejects with an INVALID_ALIGN error and leaves the
// previous configuration in place.
func (it *FlexItem) SetAlignSelf(v responsive.Value[Align]) error {
	if err := v.Validate(validAlign); err != nil {
		it.owner.reportConfigError(propAlignSelf, err)
		return err
	}
	responsive.Set(it.res, propAlignSelf, v)
	delete(it.owner.warned, propAlignSelf)
	it.owner.relayout()
	return nil
}

// AlignSelf returns the item's align override at the current width, and
// whether one applies.
func (it *FlexItem) AlignSelf() (Align, bool) {
	return responsive.Lookup[Align](it.res, propAlignSelf)
}

// engineItem resolves the item's properties into the engine's Item form.
func (it *FlexItem) engineItem() layout.Item {
	ei := layout.DefaultItem()
	ei.Grow = it.Grow()
	ei.Shrink = it.Shrink()
	ei.Basis = it.Basis()
	ei.Order = it.Order()
	if a, ok := it.AlignSelf(); ok {
		ei.AlignSelf = &a
	}
	if it.widget != nil {
		w, h := it.widget.IntrinsicSize()
		ei.Intrinsic = layout.Size{Width: w, Height: h}
	}
	return ei
}

// engineItemAt is engineItem at an explicit width class, probing the
// resolver without touching its cache.
func (it *FlexItem) engineItemAt(bp breakpoint.Breakpoint) layout.Item {
	ei := layout.DefaultItem()
	ei.Grow = responsive.GetAt(it.res, propGrow, bp, 0.0)
	ei.Shrink = responsive.GetAt(it.res, propShrink, bp, 1.0)
	ei.Basis = responsive.GetAt(it.res, propBasis, bp, layout.Auto())
	ei.Order = responsive.GetAt(it.res, propOrder, bp, 0)
	if a, ok := responsive.LookupAt[layout.Align](it.res, propAlignSelf, bp); ok {
		ei.AlignSelf = &a
	}
	if it.widget != nil {
		w, h := it.widget.IntrinsicSize()
		ei.Intrinsic = layout.Size{Width: w, Height: h}
	}
	return ei
}

// setWidth updates the item resolver for a container resize.
func (it *FlexItem) setWidth(w float64) {
	it.res.SetWidth(w)
	it.res.InvalidateAll()
}
