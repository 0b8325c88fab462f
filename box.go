package polykit

import (
	"github.com/charmbracelet/lipgloss"
)

// Box frames a single child widget with a lipgloss border and padding.
// Its intrinsic size is the child's plus the frame, so auto bases
// account for the chrome.
type Box struct {
	child Widget
	style lipgloss.Style
}

// NewBox wraps a child in a rounded border. The child may be nil for a
// purely decorative block.
func NewBox(child Widget) *Box {
	return &Box{
		child: child,
		style: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
}

// SetStyle replaces the frame style. Border and padding changes alter
// the intrinsic size.
func (b *Box) SetStyle(style lipgloss.Style) {
	b.style = style
}

// Style returns the current frame style.
func (b *Box) Style() lipgloss.Style {
	return b.style
}

// Child returns the wrapped widget, if any.
func (b *Box) Child() Widget {
	return b.child
}

// IntrinsicSize implements Widget.
func (b *Box) IntrinsicSize() (width, height float64) {
	var cw, ch float64
	if b.child != nil {
		cw, ch = b.child.IntrinsicSize()
	}
	return cw + float64(b.style.GetHorizontalFrameSize()),
		ch + float64(b.style.GetVerticalFrameSize())
}

// Render implements Renderer.
func (b *Box) Render(width, height int) string {
	innerW := width - b.style.GetHorizontalFrameSize()
	innerH := height - b.style.GetVerticalFrameSize()
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	var content string
	if r, ok := b.child.(Renderer); ok {
		content = r.Render(innerW, innerH)
	}
	// Style width spans content plus padding; the border sits outside it.
	return b.style.
		Width(width - b.style.GetHorizontalBorderSize() - b.style.GetHorizontalMargins()).
		Height(height - b.style.GetVerticalBorderSize() - b.style.GetVerticalMargins()).
		MaxWidth(width).
		MaxHeight(height).
		Render(content)
}
