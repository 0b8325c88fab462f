// Package teaflex hosts a polykit container inside a bubbletea program.
//
// The adapter bridges two unit systems: bubbletea reports terminal
// cells, while containers lay out in abstract units so breakpoints
// have room to vary. Model multiplies incoming sizes by a units-per-cell
// scale, wraps added widgets so their cell-measured intrinsic sizes
// speak units, and divides back down when rendering the view.
package teaflex

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/polykit/polykit"
	"github.com/polykit/polykit/breakpoint"
)

// DefaultUnitsPerCell maps terminal cells onto layout units. Eight
// units per cell spreads common terminal sizes across the width
// classes: 80 columns resolves as sm, 100 as md, 125 as lg, 150 as xl.
const DefaultUnitsPerCell = 8.0

// Model hosts one Flex container as a bubbletea sub-model. Embed it in
// a parent model and forward WindowSizeMsg, or run it standalone.
type Model struct {
	flex  *polykit.Flex
	scale float64

	width, height int
}

// Option configures a Model.
type Option func(*Model)

// WithUnitsPerCell overrides the cell-to-unit scale.
func WithUnitsPerCell(scale float64) Option {
	return func(m *Model) {
		if scale > 0 {
			m.scale = scale
		}
	}
}

// NewModel wraps a container for bubbletea hosting.
func NewModel(f *polykit.Flex, opts ...Option) Model {
	m := Model{flex: f, scale: DefaultUnitsPerCell}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Flex returns the hosted container.
func (m Model) Flex() *polykit.Flex {
	return m.flex
}

// Breakpoint returns the container's current width class.
func (m Model) Breakpoint() breakpoint.Breakpoint {
	return m.flex.Breakpoint()
}

// Add wraps a cell-measured widget so its intrinsic size speaks layout
// units, then adds it to the container.
func (m Model) Add(w polykit.Widget, opts ...polykit.ItemOption) *polykit.FlexItem {
	return m.flex.AddItem(polykit.Scale(w, m.scale), opts...)
}

// SetSize resizes the container from a cell geometry. Update calls it
// on WindowSizeMsg; parents that split the screen call it directly.
func (m *Model) SetSize(cols, rows int) {
	m.width, m.height = cols, rows
	m.flex.OnResize(float64(cols)*m.scale, float64(rows)*m.scale)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return polykit.Render(m.flex, polykit.WithCellScale(m.scale))
}

// Unwrap recovers the widget originally passed to Add. Widgets added
// straight to the container come back unchanged.
func Unwrap(w polykit.Widget) polykit.Widget {
	return polykit.Unscale(w)
}
