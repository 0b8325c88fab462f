package cellflex

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/polykit/polykit"
	"github.com/polykit/polykit/breakpoint"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	screen.SetSize(cols, rows)
	return screen
}

func TestHost_ResizeDrivesBreakpoints(t *testing.T) {
	f := polykit.New()
	h := NewHost(f)

	h.Resize(100, 30)
	if got := f.Breakpoint(); got != breakpoint.MD {
		t.Errorf("Breakpoint() = %v, want MD for 100 columns", got)
	}
	if got := f.Size().Width; got != 800 {
		t.Errorf("container width = %v, want 800", got)
	}
}

func TestHost_HandleEventConsumesResize(t *testing.T) {
	f := polykit.New()
	h := NewHost(f, WithUnitsPerCell(1))

	if !h.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("HandleEvent(resize) = false, want true")
	}
	if got := f.Size().Width; got != 80 {
		t.Errorf("container width = %v after resize event, want 80", got)
	}

	if h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("HandleEvent(key) = true, want false")
	}
}

func TestHost_RectsQuantizePlacements(t *testing.T) {
	f := polykit.New(polykit.WithGap(8))
	h := NewHost(f)
	h.Add(polykit.FixedWidget{W: 4, H: 1})
	h.Add(polykit.FixedWidget{W: 4, H: 1})
	h.Resize(20, 3)

	rects := h.Rects()
	if len(rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(rects))
	}
	want := []CellRect{
		{X: 0, Y: 0, Width: 4, Height: 3},
		{X: 5, Y: 0, Width: 4, Height: 3},
	}
	for i, r := range rects {
		if r != want[i] {
			t.Errorf("rect %d = %+v, want %+v", i, r, want[i])
		}
	}
}

func TestHost_DrawPaintsRendererText(t *testing.T) {
	screen := newTestScreen(t, 10, 2)

	f := polykit.New(polykit.WithAlign(polykit.AlignStart))
	h := NewHost(f)
	h.Add(polykit.NewLabel("hi"))
	h.Resize(10, 2)
	h.Draw(screen)

	r0, _, _, _ := screen.GetContent(0, 0)
	r1, _, _, _ := screen.GetContent(1, 0)
	if r0 != 'h' || r1 != 'i' {
		t.Errorf("screen content = %q%q, want \"hi\"", r0, r1)
	}
}

type probePainter struct {
	polykit.FixedWidget
	x, y, w, h int
	calls      int
}

func (p *probePainter) Paint(_ tcell.Screen, x, y, width, height int) {
	p.x, p.y, p.w, p.h = x, y, width, height
	p.calls++
}

func TestHost_DrawPrefersCellPainter(t *testing.T) {
	screen := newTestScreen(t, 20, 3)

	f := polykit.New()
	h := NewHost(f, WithUnitsPerCell(1))
	painter := &probePainter{FixedWidget: polykit.FixedWidget{W: 6, H: 3}}
	h.Add(painter)
	h.Resize(20, 3)
	h.Draw(screen)

	if painter.calls != 1 {
		t.Fatalf("Paint called %d times, want 1", painter.calls)
	}
	if painter.x != 0 || painter.y != 0 || painter.w != 6 || painter.h != 3 {
		t.Errorf("Paint rect = (%d, %d, %d, %d), want (0, 0, 6, 3)",
			painter.x, painter.y, painter.w, painter.h)
	}
}

func TestHost_DrawClipsAtRect(t *testing.T) {
	screen := newTestScreen(t, 4, 1)

	f := polykit.New(polykit.WithAlign(polykit.AlignStart))
	h := NewHost(f, WithUnitsPerCell(1))
	f.AddItem(polykit.NewLabel("abcdef"), polykit.WithBasis(polykit.Fixed(3)), polykit.WithShrink(0))
	h.Resize(4, 1)
	h.Draw(screen)

	r3, _, _, _ := screen.GetContent(3, 0)
	if r3 != ' ' {
		t.Errorf("cell past the item rect = %q, want blank", r3)
	}
}
