// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package polykit

import "github.com/polykit/polykit/internal/layout"

// Direction specifies the main axis for laying out items.
type Direction = layout.Direction

const (
	Row           = layout.Row
	RowReverse    = layout.RowReverse
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
)

// Wrap specifies whether items may flow onto additional lines.
type Wrap = layout.Wrap

const (
	NoWrap      = layout.NoWrap
	WrapLines   = layout.WrapLines
	WrapReverse = layout.WrapReverse
)

// Justify specifies how items are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how items are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart    = layout.AlignStart
	AlignEnd      = layout.AlignEnd
	AlignCenter   = layout.AlignCenter
	AlignStretch  = layout.AlignStretch
	AlignBaseline = layout.AlignBaseline
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Config holds the container-level layout properties.
type Config = layout.Config

// Rect represents a rectangle in layout units.
type Rect = layout.Rect

// Size represents a width/height pair in layout units.
type Size = layout.Size

// Placement holds the computed geometry for one item.
type Placement = layout.Placement

// Fixed creates a Value with an absolute length in layout units.
func Fixed(n float64) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// ParseValue parses "auto", a bare length, or a percentage string.
// Malformed input yields Auto along with the error.
func ParseValue(s string) (Value, error) {
	return layout.ParseValue(s)
}

// ParseDirection converts a CSS-style name ("row", "column-reverse") to
// a Direction.
func ParseDirection(s string) (Direction, error) {
	return layout.ParseDirection(s)
}

// ParseWrap converts a CSS-style name ("nowrap", "wrap") to a Wrap mode.
func ParseWrap(s string) (Wrap, error) {
	return layout.ParseWrap(s)
}

// ParseJustify converts a CSS-style name ("center", "space-between") to
// a Justify mode.
func ParseJustify(s string) (Justify, error) {
	return layout.ParseJustify(s)
}

// ParseAlign converts a CSS-style name ("stretch", "baseline") to an
// Align mode.
func ParseAlign(s string) (Align, error) {
	return layout.ParseAlign(s)
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return layout.DefaultConfig()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// Flow runs one layout pass over free-standing items without a
// container. Most callers use [Flex] instead; Flow is the escape hatch
// for hosts that manage their own item state.
func Flow(cfg Config, container Size, items []layout.Item) []Placement {
	return layout.Flow(cfg, container, items)
}

// Measure returns the single-line content size of the given items.
func Measure(cfg Config, items []layout.Item) Size {
	return layout.Measure(cfg, items)
}

// Item describes one flex participant for direct Flow calls.
type Item = layout.Item

// DefaultItem returns an Item with default flex values.
func DefaultItem() Item {
	return layout.DefaultItem()
}
