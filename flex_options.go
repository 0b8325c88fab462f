package polykit

import (
	"github.com/charmbracelet/log"

	"github.com/polykit/polykit/responsive"
)

// Option configures a Flex at construction time.
type Option func(*Flex)

// ItemOption configures a FlexItem as it is added.
type ItemOption func(*FlexItem)

// Scalar options cover the common case; responsive per-class values go
// through the setters with responsive.Map. An option carrying an
// undefined enum value is dropped and logged, like the setter it wraps.

// --- Container Options ---

// WithDirection sets the main axis.
func WithDirection(d Direction) Option {
	return func(f *Flex) {
		_ = f.SetDirection(responsive.Fixed(d))
	}
}

// WithWrap sets the line breaking mode.
func WithWrap(w Wrap) Option {
	return func(f *Flex) {
		_ = f.SetWrap(responsive.Fixed(w))
	}
}

// WithJustify sets the main-axis distribution.
func WithJustify(j Justify) Option {
	return func(f *Flex) {
		_ = f.SetJustify(responsive.Fixed(j))
	}
}

// WithAlign sets the cross-axis alignment.
func WithAlign(a Align) Option {
	return func(f *Flex) {
		_ = f.SetAlign(responsive.Fixed(a))
	}
}

// WithGap sets the spacing between adjacent items and lines.
func WithGap(gap float64) Option {
	return func(f *Flex) {
		f.SetGap(responsive.Fixed(gap))
	}
}

// --- Host Integration Options ---

// WithPlaceFunc sets the callback that receives each item's geometry
// after a layout pass.
func WithPlaceFunc(place PlaceFunc) Option {
	return func(f *Flex) {
		f.place = place
	}
}

// WithLogger sets the logger for rejected configuration and property
// type mismatch reports.
func WithLogger(logger *log.Logger) Option {
	return func(f *Flex) {
		f.logger = logger
		f.res.SetLogger(logger)
	}
}

// --- Item Options ---

// WithGrow sets the item's share of positive free space.
func WithGrow(grow float64) ItemOption {
	return func(it *FlexItem) {
		it.SetGrow(responsive.Fixed(grow))
	}
}

// WithShrink sets the item's share of overflow.
func WithShrink(shrink float64) ItemOption {
	return func(it *FlexItem) {
		it.SetShrink(responsive.Fixed(shrink))
	}
}

// WithBasis sets the item's preferred main size.
func WithBasis(v Value) ItemOption {
	return func(it *FlexItem) {
		it.SetBasis(responsive.Fixed(v))
	}
}

// WithBasisString parses a dimension string ("auto", "120", "37.5%")
// and sets it as the basis. Malformed strings fall back to auto.
func WithBasisString(s string) ItemOption {
	return func(it *FlexItem) {
		_ = it.SetBasisString(s)
	}
}

// WithOrder sets the item's visual ordering key.
func WithOrder(order int) ItemOption {
	return func(it *FlexItem) {
		it.SetOrder(responsive.Fixed(order))
	}
}

// WithAlignSelf overrides the container's alignment for this item.
func WithAlignSelf(a Align) ItemOption {
	return func(it *FlexItem) {
		_ = it.SetAlignSelf(responsive.Fixed(a))
	}
}
