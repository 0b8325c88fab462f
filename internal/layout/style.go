package layout

import "fmt"

// Direction specifies the main axis for laying out items.
type Direction uint8

const (
	Row           Direction = iota // Items flow left-to-right
	RowReverse                     // Items flow right-to-left
	Column                         // Items flow top-to-bottom
	ColumnReverse                  // Items flow bottom-to-top
)

// IsRow returns true when the main axis is horizontal.
func (d Direction) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse returns true when items flow against the axis direction.
func (d Direction) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// Valid returns true for a defined Direction constant.
func (d Direction) Valid() bool {
	return d <= ColumnReverse
}

// String returns the CSS-style name of the direction.
func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case RowReverse:
		return "row-reverse"
	case Column:
		return "column"
	case ColumnReverse:
		return "column-reverse"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// ParseDirection converts a CSS-style name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "row":
		return Row, nil
	case "row-reverse":
		return RowReverse, nil
	case "column":
		return Column, nil
	case "column-reverse":
		return ColumnReverse, nil
	default:
		return Row, fmt.Errorf("unknown direction %q", s)
	}
}

// Wrap specifies whether items may flow onto additional lines.
type Wrap uint8

const (
	NoWrap      Wrap = iota // Single line, items shrink to fit
	WrapLines               // Break onto new lines as needed
	WrapReverse             // Like WrapLines with lines stacked in reverse
)

// Valid returns true for a defined Wrap constant.
func (w Wrap) Valid() bool {
	return w <= WrapReverse
}

// String returns the CSS-style name of the wrap mode.
func (w Wrap) String() string {
	switch w {
	case NoWrap:
		return "nowrap"
	case WrapLines:
		return "wrap"
	case WrapReverse:
		return "wrap-reverse"
	default:
		return fmt.Sprintf("wrap(%d)", uint8(w))
	}
}

// ParseWrap converts a CSS-style name to a Wrap mode.
func ParseWrap(s string) (Wrap, error) {
	switch s {
	case "nowrap":
		return NoWrap, nil
	case "wrap":
		return WrapLines, nil
	case "wrap-reverse":
		return WrapReverse, nil
	default:
		return NoWrap, fmt.Errorf("unknown wrap mode %q", s)
	}
}

// Justify specifies how items are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center items
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Half-size space at edges, full between
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Valid returns true for a defined Justify constant.
func (j Justify) Valid() bool {
	return j <= JustifySpaceEvenly
}

// String returns the CSS-style name of the justify mode.
func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "start"
	case JustifyEnd:
		return "end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	default:
		return fmt.Sprintf("justify(%d)", uint8(j))
	}
}

// ParseJustify converts a CSS-style name to a Justify mode.
func ParseJustify(s string) (Justify, error) {
	switch s {
	case "start":
		return JustifyStart, nil
	case "end":
		return JustifyEnd, nil
	case "center":
		return JustifyCenter, nil
	case "space-between":
		return JustifySpaceBetween, nil
	case "space-around":
		return JustifySpaceAround, nil
	case "space-evenly":
		return JustifySpaceEvenly, nil
	default:
		return JustifyStart, fmt.Errorf("unknown justify mode %q", s)
	}
}

// Align specifies how items are positioned on the cross axis.
type Align uint8

const (
	AlignStart    Align = iota // Align to start of cross axis
	AlignEnd                   // Align to end of cross axis
	AlignCenter                // Center on cross axis
	AlignStretch               // Stretch to fill the line
	AlignBaseline              // Text baseline alignment; positions as start
)

// Valid returns true for a defined Align constant.
func (a Align) Valid() bool {
	return a <= AlignBaseline
}

// String returns the CSS-style name of the align mode.
func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	case AlignStretch:
		return "stretch"
	case AlignBaseline:
		return "baseline"
	default:
		return fmt.Sprintf("align(%d)", uint8(a))
	}
}

// ParseAlign converts a CSS-style name to an Align mode.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "start":
		return AlignStart, nil
	case "end":
		return AlignEnd, nil
	case "center":
		return AlignCenter, nil
	case "stretch":
		return AlignStretch, nil
	case "baseline":
		return AlignBaseline, nil
	default:
		return AlignStart, fmt.Errorf("unknown align mode %q", s)
	}
}

// Config contains the container-level layout properties.
type Config struct {
	Direction  Direction
	Wrap       Wrap
	Justify    Justify
	AlignItems Align
	Gap        float64 // Space between adjacent items and between lines
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Direction:  Row,
		Wrap:       NoWrap,
		Justify:    JustifyStart,
		AlignItems: AlignStretch,
	}
}
