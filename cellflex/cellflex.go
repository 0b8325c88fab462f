// Package cellflex hosts a polykit container on a tcell screen.
//
// Like the bubbletea adapter, it bridges terminal cells and layout
// units with a units-per-cell scale. Items draw through the CellPainter
// interface when they can paint cells natively, falling back to the
// plain-text form of polykit.Renderer widgets.
package cellflex

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/polykit/polykit"
)

// DefaultUnitsPerCell matches the bubbletea adapter's scale.
const DefaultUnitsPerCell = 8.0

// CellPainter is implemented by widgets that draw themselves onto a
// tcell screen. Paint receives the widget's placed cell rectangle.
type CellPainter interface {
	polykit.Widget
	Paint(screen tcell.Screen, x, y, width, height int)
}

// CellRect is one item's placement quantized to screen cells.
type CellRect struct {
	X, Y, Width, Height int
}

// Host drives a container from tcell events and draws its items.
type Host struct {
	flex  *polykit.Flex
	scale float64
	style tcell.Style
}

// Option configures a Host.
type Option func(*Host)

// WithUnitsPerCell overrides the cell-to-unit scale.
func WithUnitsPerCell(scale float64) Option {
	return func(h *Host) {
		if scale > 0 {
			h.scale = scale
		}
	}
}

// WithStyle sets the style used for plain-text item content.
func WithStyle(style tcell.Style) Option {
	return func(h *Host) {
		h.style = style
	}
}

// NewHost wraps a container for tcell hosting.
func NewHost(f *polykit.Flex, opts ...Option) *Host {
	h := &Host{flex: f, scale: DefaultUnitsPerCell, style: tcell.StyleDefault}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Flex returns the hosted container.
func (h *Host) Flex() *polykit.Flex {
	return h.flex
}

// Add wraps a cell-measured widget so its intrinsic size speaks layout
// units, then adds it to the container.
func (h *Host) Add(w polykit.Widget, opts ...polykit.ItemOption) *polykit.FlexItem {
	return h.flex.AddItem(polykit.Scale(w, h.scale), opts...)
}

// Resize lays the container out for a screen geometry in cells.
func (h *Host) Resize(cols, rows int) {
	h.flex.OnResize(float64(cols)*h.scale, float64(rows)*h.scale)
}

// HandleEvent reacts to screen events. It consumes resize events and
// reports whether the event was handled.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	if resize, ok := ev.(*tcell.EventResize); ok {
		h.Resize(resize.Size())
		return true
	}
	return false
}

// Rects returns the current placements quantized to screen cells, one
// per item in insertion order.
func (h *Host) Rects() []CellRect {
	pls := h.flex.Layout()
	out := make([]CellRect, len(pls))
	for i, p := range pls {
		out[i] = CellRect{
			X:      toCells(p.X, h.scale),
			Y:      toCells(p.Y, h.scale),
			Width:  toCells(p.Width, h.scale),
			Height: toCells(p.Height, h.scale),
		}
	}
	return out
}

// Draw paints every item onto the screen at its placed rectangle,
// clipped to the screen bounds. CellPainter widgets paint themselves;
// Renderer widgets contribute their plain-text content rune by rune;
// anything else leaves its area untouched. Call screen.Show afterwards.
func (h *Host) Draw(screen tcell.Screen) {
	cols, rows := screen.Size()
	bounds := polykit.NewRect(0, 0, float64(cols)*h.scale, float64(rows)*h.scale)
	items := h.flex.Items()

	for i, p := range h.flex.Layout() {
		clipped := p.Intersect(bounds)
		if clipped.IsEmpty() {
			continue
		}
		r := CellRect{
			X:      toCells(clipped.X, h.scale),
			Y:      toCells(clipped.Y, h.scale),
			Width:  toCells(clipped.Width, h.scale),
			Height: toCells(clipped.Height, h.scale),
		}
		if r.Width <= 0 || r.Height <= 0 {
			continue
		}
		w := polykit.Unscale(items[i].Widget())
		if painter, ok := w.(CellPainter); ok {
			painter.Paint(screen, r.X, r.Y, r.Width, r.Height)
			continue
		}
		if rend, ok := w.(polykit.Renderer); ok {
			h.drawText(screen, r, rend.Render(r.Width, r.Height))
		}
	}
}

// drawText paints plain text into a cell rectangle, clipping at the
// edges and advancing double-width runes correctly.
func (h *Host) drawText(screen tcell.Screen, r CellRect, text string) {
	for dy, line := range strings.Split(text, "\n") {
		if dy >= r.Height {
			break
		}
		x := r.X
		for _, rn := range line {
			w := runewidth.RuneWidth(rn)
			if w == 0 {
				continue
			}
			if x+w > r.X+r.Width {
				break
			}
			screen.SetContent(x, r.Y+dy, rn, nil, h.style)
			x += w
		}
	}
}

func toCells(v, scale float64) int {
	return int(math.Round(v / scale))
}
