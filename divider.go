package polykit

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider draws a rule across its placed area. A horizontal divider is
// one unit tall and stretches along the row; give it grow so it spans
// the free space, or rely on align stretch across the cross axis.
type Divider struct {
	// Vertical flips the rule to run top to bottom.
	Vertical bool
	// Rune overrides the line character. Zero picks a box-drawing rune
	// matching the orientation.
	Rune  rune
	Style lipgloss.Style
}

// IntrinsicSize implements Widget.
func (d Divider) IntrinsicSize() (width, height float64) {
	if d.Vertical {
		return 1, 0
	}
	return 0, 1
}

// Render implements Renderer.
func (d Divider) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	r := d.Rune
	if r == 0 {
		if d.Vertical {
			r = '│'
		} else {
			r = '─'
		}
	}
	line := strings.Repeat(string(r), width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = line
	}
	return d.Style.Render(strings.Join(rows, "\n"))
}
