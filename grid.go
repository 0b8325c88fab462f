package polykit

import (
	"math"

	"github.com/polykit/polykit/errs"
	"github.com/polykit/polykit/responsive"
)

// GridColumns is the number of columns a grid row divides into.
const GridColumns = 12

// Grid is a 12-column row grid built on a wrapping Flex. Each child
// spans a number of columns per width class; spans on one row that
// exceed twelve columns wrap onto the next row. The classic responsive
// pattern is full-width cells at the base class and narrower spans as
// the viewport grows:
//
//	g := NewGrid()
//	g.AddCol(chart, responsive.Map(map[breakpoint.Breakpoint]int{
//		breakpoint.Base: 12,
//		breakpoint.MD:   6,
//		breakpoint.LG:   4,
//	}))
//
// Offsets are plain spacer cells: AddOffset inserts an empty span.
//
// A container gap narrows each row's capacity, so a fully packed
// twelve-span row wraps early under WithGap. When exact packing
// matters, keep the gap at zero and build gutters into the cells, for
// example with Box padding.
type Grid struct {
	*Flex
}

// NewGrid creates an empty grid. Options pass through to the underlying
// container; direction and wrap are preset and should not be overridden.
func NewGrid(opts ...Option) *Grid {
	f := New(append([]Option{
		WithDirection(Row),
		WithWrap(WrapLines),
		WithAlign(AlignStretch),
	}, opts...)...)
	return &Grid{Flex: f}
}

// AddCol places a widget spanning the given number of grid columns per
// width class. An unset span fills the row. Spans outside 1..12 reject
// with an INVALID_SPAN error and add nothing.
func (g *Grid) AddCol(w Widget, span responsive.Value[int]) (*FlexItem, error) {
	if !span.IsSet() {
		span = responsive.Fixed(GridColumns)
	}
	if err := span.Validate(validSpan); err != nil {
		g.reportConfigError("span", err)
		return nil, err
	}
	it := g.AddItem(w, WithShrink(0))
	it.SetBasis(responsive.Convert(span, spanBasis))
	return it, nil
}

// AddOffset inserts an empty cell spanning the given columns, shifting
// whatever follows it on the row.
func (g *Grid) AddOffset(span responsive.Value[int]) (*FlexItem, error) {
	return g.AddCol(Spacer{}, span)
}

func validSpan(n int) error {
	if n < 1 || n > GridColumns {
		return errs.New(errs.ErrCodeInvalidSpan, "span %d outside 1..%d", n, GridColumns)
	}
	return nil
}

// spanBasis converts a span to a percent basis. Percents are floored
// at four decimals so a fully packed row sums within the row width
// instead of wrapping on the float residue.
func spanBasis(n int) Value {
	return Percent(math.Floor(float64(n)*100/GridColumns*1e4) / 1e4)
}
