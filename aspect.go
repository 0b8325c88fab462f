package polykit

// AspectRatio constrains a content container to a fixed width:height
// ratio. It owns no geometry itself; the host asks Fit for the ratio
// box inside the available area and resizes the content to it.
type AspectRatio struct {
	content *Flex
	ratio   float64
}

// NewAspectRatio wraps a container in a ratio constraint. The ratio is
// width over height; non-positive values fall back to 1.
func NewAspectRatio(content *Flex, ratio float64) *AspectRatio {
	if ratio <= 0 {
		ratio = 1
	}
	return &AspectRatio{content: content, ratio: ratio}
}

// Content returns the constrained container.
func (a *AspectRatio) Content() *Flex {
	return a.content
}

// Ratio returns the width over height ratio.
func (a *AspectRatio) Ratio() float64 {
	return a.ratio
}

// Fit returns the largest width x height box with the configured ratio
// that fits inside the available area. Non-positive available space
// collapses to zero.
func (a *AspectRatio) Fit(availableWidth, availableHeight float64) (w, h float64) {
	if availableWidth <= 0 || availableHeight <= 0 {
		return 0, 0
	}
	w = availableWidth
	h = w / a.ratio
	if h > availableHeight {
		h = availableHeight
		w = h * a.ratio
	}
	return w, h
}

// Overflows reports whether the content would need more room than the
// ratio box offers inside the available area. It probes the content's
// target size without mutating it.
func (a *AspectRatio) Overflows(availableWidth, availableHeight float64) bool {
	w, h := a.Fit(availableWidth, availableHeight)
	cw, ch := a.content.TargetSize(w, h)
	return cw > w || ch > h
}

// Resize fits the ratio box into the available area and resizes the
// content container to it.
func (a *AspectRatio) Resize(availableWidth, availableHeight float64) {
	w, h := a.Fit(availableWidth, availableHeight)
	a.content.OnResize(w, h)
}
