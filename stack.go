package polykit

import (
	"github.com/polykit/polykit/responsive"
	"github.com/polykit/polykit/theme"
)

// Stack is a one-axis Flex for the common row or column case. HStack
// and VStack pick the axis; everything else is the embedded container.
//
// Spacing between children follows the gap. An explicit SetSpacing
// pins it; DefaultSpacing fills it in only while nothing was pinned,
// which is how theme application avoids clobbering caller choices.
type Stack struct {
	*Flex
}

// HStack creates a horizontal stack.
func HStack(opts ...Option) *Stack {
	return newStack(Row, opts)
}

// VStack creates a vertical stack.
func VStack(opts ...Option) *Stack {
	return newStack(Column, opts)
}

func newStack(d Direction, opts []Option) *Stack {
	f := New(append([]Option{WithDirection(d)}, opts...)...)
	return &Stack{Flex: f}
}

// SetSpacing pins the distance between children.
func (s *Stack) SetSpacing(v responsive.Value[float64]) {
	s.SetGap(v)
}

// Spacing returns the spacing resolved at the current width.
func (s *Stack) Spacing() float64 {
	return s.Gap()
}

// DefaultSpacing applies a spacing only when none was set directly,
// through SetSpacing, SetGap or a construction option.
func (s *Stack) DefaultSpacing(spacing float64) {
	if s.res.IsSet(propGap) {
		return
	}
	s.SetGap(responsive.Fixed(spacing))
}

// ApplyThemeSpacing adopts the theme's medium spacing as the gap,
// keeping any spacing the caller already chose.
func (s *Stack) ApplyThemeSpacing(th *theme.Theme) {
	s.DefaultSpacing(th.Spacing.MD)
}
