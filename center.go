package polykit

// Centered wraps a single widget in a container that positions it in
// the middle of the available area on both axes.
func Centered(content Widget) *Flex {
	f := New(WithJustify(JustifyCenter), WithAlign(AlignCenter))
	f.AddItem(content)
	return f
}
