package polykit

import (
	"github.com/polykit/polykit/theme"
)

// NewPaper frames a child as a themed surface panel. It is a Box whose
// style follows the theme's border and colors; restyle it with
// SetStyle(th.Panel(true)) to show focus.
func NewPaper(child Widget, th *theme.Theme) *Box {
	b := NewBox(child)
	b.SetStyle(th.Panel(false))
	return b
}
