package polykit

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Label is a styled text widget. Its intrinsic size is the text's cell
// footprint: the widest line by display width, one unit of height per
// line. Wide runes count double, combining marks count zero, so CJK
// text measures correctly.
type Label struct {
	text  string
	style lipgloss.Style
}

// NewLabel creates a label with the default (unstyled) look.
func NewLabel(text string) *Label {
	return &Label{text: text, style: lipgloss.NewStyle()}
}

// SetText replaces the label text. The host re-runs layout if the
// intrinsic size matters to it.
func (l *Label) SetText(text string) {
	l.text = text
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetStyle replaces the lipgloss style applied when rendering.
func (l *Label) SetStyle(style lipgloss.Style) {
	l.style = style
}

// Style returns the current lipgloss style.
func (l *Label) Style() lipgloss.Style {
	return l.style
}

// IntrinsicSize implements Widget.
func (l *Label) IntrinsicSize() (width, height float64) {
	var w int
	lines := strings.Split(l.text, "\n")
	for _, line := range lines {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	return float64(w), float64(len(lines))
}

// Render implements Renderer.
func (l *Label) Render(width, height int) string {
	return l.style.
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Render(l.text)
}
