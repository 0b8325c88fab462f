package teaflex

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/polykit/polykit"
	"github.com/polykit/polykit/breakpoint"
)

func TestModel_WindowSizeDrivesContainer(t *testing.T) {
	f := polykit.New()
	m := NewModel(f)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	size := f.Size()
	if size.Width != 800 || size.Height != 240 {
		t.Errorf("container size = %vx%v, want 800x240 at 8 units per cell",
			size.Width, size.Height)
	}
	if got := m.Breakpoint(); got != breakpoint.MD {
		t.Errorf("Breakpoint() = %v, want MD for a 100-column terminal", got)
	}
}

func TestModel_CustomScale(t *testing.T) {
	f := polykit.New()
	m := NewModel(f, WithUnitsPerCell(1))

	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if got := f.Size().Width; got != 80 {
		t.Errorf("container width = %v at scale 1, want 80", got)
	}
	if got := m.Breakpoint(); got != breakpoint.Base {
		t.Errorf("Breakpoint() = %v, want Base at scale 1", got)
	}
}

func TestModel_AddScalesIntrinsics(t *testing.T) {
	f := polykit.New()
	m := NewModel(f)
	m.Add(polykit.NewLabel("hello"))

	w, h := f.Items()[0].Widget().IntrinsicSize()
	if w != 40 || h != 8 {
		t.Errorf("wrapped intrinsic = (%v, %v), want (40, 8)", w, h)
	}
}

func TestModel_ViewRendersInCells(t *testing.T) {
	f := polykit.New(polykit.WithAlign(polykit.AlignStart))
	m := NewModel(f)
	m.Add(polykit.NewLabel("hi"))
	m.SetSize(10, 1)

	view := m.View()
	if !strings.Contains(view, "hi") {
		t.Errorf("View() = %q, want the label text", view)
	}
	if strings.Contains(view, "\n") {
		t.Errorf("View() = %q, want a single line for a one-row host", view)
	}
}

func TestUnwrap(t *testing.T) {
	f := polykit.New()
	m := NewModel(f)
	label := polykit.NewLabel("x")
	m.Add(label)

	wrapped := f.Items()[0].Widget()
	if wrapped == polykit.Widget(label) {
		t.Fatal("Add should wrap the widget")
	}
	if got := Unwrap(wrapped); got != polykit.Widget(label) {
		t.Error("Unwrap should recover the original widget")
	}
	if got := Unwrap(label); got != polykit.Widget(label) {
		t.Error("Unwrap of an unwrapped widget should be identity")
	}
}

func TestModel_InitIsQuiet(t *testing.T) {
	m := NewModel(polykit.New())
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should schedule nothing")
	}
}
