package polykit

// Widget is the minimal surface a child must expose to participate in
// layout: its natural content size in layout units. The engine never
// draws widgets; hosts receive geometry through a PlaceFunc or an
// adapter and apply it themselves.
type Widget interface {
	// IntrinsicSize returns the widget's natural width and height.
	// Used for auto bases on the main axis and for cross-axis sizing
	// under non-stretch alignment.
	IntrinsicSize() (width, height float64)
}

// Renderer is implemented by widgets that can draw themselves as a
// block of text at a concrete cell size. The render helpers skip
// widgets that only implement Widget.
type Renderer interface {
	Widget
	// Render returns the widget's content sized to the given cell box.
	Render(width, height int) string
}

// PlaceFunc receives the computed geometry for one widget after a
// layout pass. Coordinates are relative to the container origin, in
// layout units.
type PlaceFunc func(w Widget, x, y, width, height float64)

// FixedWidget is a Widget with nothing but a constant intrinsic size.
// Useful as a placeholder and in tests.
type FixedWidget struct {
	W, H float64
}

// IntrinsicSize returns the configured size.
func (f FixedWidget) IntrinsicSize() (float64, float64) {
	return f.W, f.H
}

// Scale wraps a widget so its intrinsic size is multiplied by factor.
// Adapters use it to let cell-measured widgets participate in layouts
// that run at several units per cell. Unscale recovers the original.
func Scale(w Widget, factor float64) Widget {
	if factor == 1 {
		return w
	}
	return scaledWidget{inner: w, factor: factor}
}

// Unscale returns the widget originally passed to Scale, or w itself
// when it was never wrapped.
func Unscale(w Widget) Widget {
	if s, ok := w.(scaledWidget); ok {
		return s.inner
	}
	return w
}

type scaledWidget struct {
	inner  Widget
	factor float64
}

func (s scaledWidget) IntrinsicSize() (width, height float64) {
	width, height = s.inner.IntrinsicSize()
	return width * s.factor, height * s.factor
}

// Render delegates to the wrapped widget. Sizes arrive in cells, which
// the inner widget already speaks.
func (s scaledWidget) Render(width, height int) string {
	if r, ok := s.inner.(Renderer); ok {
		return r.Render(width, height)
	}
	return ""
}
