package polykit

// Spacer is an invisible widget with no intrinsic size. Given a grow
// factor it soaks up free space, pushing its neighbors apart; with a
// fixed basis it inserts a rigid gap.
type Spacer struct{}

// IntrinsicSize implements Widget.
func (Spacer) IntrinsicSize() (width, height float64) {
	return 0, 0
}

// AddSpacer appends a growing spacer to the container.
func (f *Flex) AddSpacer(grow float64) *FlexItem {
	return f.AddItem(Spacer{}, WithGrow(grow), WithShrink(0))
}

// AddFixedSpacer appends a rigid spacer of the given main size.
func (f *Flex) AddFixedSpacer(size float64) *FlexItem {
	return f.AddItem(Spacer{}, WithBasis(Fixed(size)), WithShrink(0))
}
