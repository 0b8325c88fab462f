package polykit

import (
	"github.com/charmbracelet/log"

	"github.com/polykit/polykit/breakpoint"
	"github.com/polykit/polykit/internal/layout"
	"github.com/polykit/polykit/responsive"
)

// Container property names in the resolver.
const (
	propDirection = "direction"
	propWrap      = "wrap"
	propJustify   = "justify"
	propAlign     = "align"
	propGap       = "gap"
)

// Flex arranges child widgets along one axis with flexbox semantics:
// direction, wrapping, justification, alignment, gap, and per-item
// grow/shrink/basis/order. Every property is responsive, so a container
// can be a row on wide viewports and a column on narrow ones without
// the host tracking widths itself.
//
// A Flex holds no geometry until the first OnResize. Each OnResize (and
// each configuration change after it) runs one synchronous layout pass
// and reports the result through the place callback.
//
// Flex is confined to a single goroutine, matching the event loops it
// is driven from. The resolvers underneath are independently locked.
type Flex struct {
	res   *responsive.Resolver
	items []*FlexItem

	size  Size
	sized bool

	place  PlaceFunc
	logger *log.Logger
	warned map[string]bool

	placements []Placement
}

// New creates an empty container with the default configuration: row
// direction, no wrapping, start justification, stretch alignment, zero
// gap.
func New(opts ...Option) *Flex {
	f := &Flex{
		logger: log.Default(),
		warned: make(map[string]bool),
	}
	f.res = responsive.New(responsive.WithLogger(f.logger))
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AddItem wraps a widget in a FlexItem, appends it to the container and
// re-runs layout. Later items follow earlier ones; equal order keys keep
// this insertion order.
func (f *Flex) AddItem(w Widget, opts ...ItemOption) *FlexItem {
	it := newFlexItem(f, w)
	for _, opt := range opts {
		opt(it)
	}
	f.items = append(f.items, it)
	f.relayout()
	return it
}

// RemoveItem detaches the first item wrapping the given widget and
// re-runs layout. The remaining items keep their insertion order. It
// reports whether a matching item was found.
func (f *Flex) RemoveItem(w Widget) bool {
	for i, it := range f.items {
		if it.widget == w {
			f.items = append(f.items[:i], f.items[i+1:]...)
			f.relayout()
			return true
		}
	}
	return false
}

// Items returns the items in insertion order. The slice is a copy.
func (f *Flex) Items() []*FlexItem {
	out := make([]*FlexItem, len(f.items))
	copy(out, f.items)
	return out
}

// Len returns the number of items.
func (f *Flex) Len() int {
	return len(f.items)
}

// OnResize records the container's new geometry and runs one
// synchronous layout pass. Cached property resolutions are dropped
// first, on the container and on every item, then each item is placed
// through the place callback.
func (f *Flex) OnResize(width, height float64) {
	f.size = Size{Width: width, Height: height}
	f.sized = true
	f.res.SetWidth(width)
	f.res.InvalidateAll()
	for _, it := range f.items {
		it.setWidth(width)
	}
	f.relayout()
}

// Size returns the container geometry from the last OnResize.
func (f *Flex) Size() Size {
	return f.size
}

// Breakpoint returns the width class of the container's current width.
func (f *Flex) Breakpoint() breakpoint.Breakpoint {
	return f.res.Breakpoint()
}

// Layout returns the most recent placements, one per item in insertion
// order. The slice is a copy.
func (f *Flex) Layout() []Placement {
	out := make([]Placement, len(f.placements))
	copy(out, f.placements)
	return out
}

// TargetSize reports the extent the container's content would occupy
// inside the given available size, without mutating any state.
// Ratio-constrained wrappers use it to pre-measure before committing to
// a resize.
//
// Property resolution probes the width class of availableWidth; the
// current width, caches and placements stay untouched. Justification
// and alignment are normalized to start so the answer measures content,
// not placement.
func (f *Flex) TargetSize(availableWidth, availableHeight float64) (w, h float64) {
	bp := breakpoint.ForWidth(availableWidth)
	cfg := f.configAt(bp)
	cfg.Justify = JustifyStart
	cfg.AlignItems = AlignStart

	eng := make([]layout.Item, len(f.items))
	for i, it := range f.items {
		eng[i] = it.engineItemAt(bp)
	}
	avail := layout.Size{Width: availableWidth, Height: availableHeight}
	for _, p := range layout.Flow(cfg, avail, eng) {
		w = max(w, p.Right())
		h = max(h, p.Bottom())
	}
	return w, h
}

// IntrinsicSize reports the container's preferred size from its items'
// intrinsic sizes, letting a Flex be the child of another Flex.
func (f *Flex) IntrinsicSize() (width, height float64) {
	eng := make([]layout.Item, len(f.items))
	for i, it := range f.items {
		eng[i] = it.engineItem()
	}
	s := layout.Measure(f.config(), eng)
	return s.Width, s.Height
}

// relayout recomputes placements and fires the place callback for every
// item. Nothing happens before the first OnResize, since there is no
// geometry to lay out against.
func (f *Flex) relayout() {
	if !f.sized {
		return
	}
	eng := make([]layout.Item, len(f.items))
	for i, it := range f.items {
		eng[i] = it.engineItem()
	}
	f.placements = layout.Flow(f.config(), f.size, eng)
	if f.place == nil {
		return
	}
	for i, it := range f.items {
		p := f.placements[i]
		f.place(it.widget, p.X, p.Y, p.Width, p.Height)
	}
}

// config resolves the container configuration at the current width.
func (f *Flex) config() Config {
	cfg := layout.DefaultConfig()
	cfg.Direction = responsive.Get(f.res, propDirection, cfg.Direction)
	cfg.Wrap = responsive.Get(f.res, propWrap, cfg.Wrap)
	cfg.Justify = responsive.Get(f.res, propJustify, cfg.Justify)
	cfg.AlignItems = responsive.Get(f.res, propAlign, cfg.AlignItems)
	cfg.Gap = responsive.Get(f.res, propGap, cfg.Gap)
	return cfg
}

// configAt resolves the configuration at an explicit width class
// without touching the cache.
func (f *Flex) configAt(bp breakpoint.Breakpoint) Config {
	cfg := layout.DefaultConfig()
	cfg.Direction = responsive.GetAt(f.res, propDirection, bp, cfg.Direction)
	cfg.Wrap = responsive.GetAt(f.res, propWrap, bp, cfg.Wrap)
	cfg.Justify = responsive.GetAt(f.res, propJustify, bp, cfg.Justify)
	cfg.AlignItems = responsive.GetAt(f.res, propAlign, bp, cfg.AlignItems)
	cfg.Gap = responsive.GetAt(f.res, propGap, bp, cfg.Gap)
	return cfg
}

// reportConfigError logs a rejected configuration once per property.
func (f *Flex) reportConfigError(prop string, err error) {
	if f.warned[prop] {
		return
	}
	f.warned[prop] = true
	if f.logger != nil {
		f.logger.Warn("invalid flex configuration rejected",
			"property", prop,
			"err", err)
	}
}
