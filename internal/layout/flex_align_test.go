package layout

import "testing"

func TestFlow_AlignModes(t *testing.T) {
	// Single line spans the full 100-unit cross axis; item is 40 tall.
	tests := map[string]struct {
		align      Align
		wantY      float64
		wantHeight float64
	}{
		"stretch fills the line":      {align: AlignStretch, wantY: 0, wantHeight: 100},
		"start keeps natural size":    {align: AlignStart, wantY: 0, wantHeight: 40},
		"baseline positions as start": {align: AlignBaseline, wantY: 0, wantHeight: 40},
		"center offsets by half":      {align: AlignCenter, wantY: 30, wantHeight: 40},
		"end offsets to the bottom":   {align: AlignEnd, wantY: 60, wantHeight: 40},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.AlignItems = tt.align

			it := item(Fixed(50), 0, 1)
			it.Intrinsic = Size{Width: 50, Height: 40}

			got := Flow(cfg, Size{Width: 200, Height: 100}, []Item{it})
			if !approx(got[0].Rect.Y, tt.wantY) {
				t.Errorf("y = %.3f, want %.3f", got[0].Rect.Y, tt.wantY)
			}
			if !approx(got[0].Rect.Height, tt.wantHeight) {
				t.Errorf("height = %.3f, want %.3f", got[0].Rect.Height, tt.wantHeight)
			}
		})
	}
}

func TestFlow_AlignSelfOverridesContainer(t *testing.T) {
	cfg := DefaultConfig() // AlignStretch

	end := AlignEnd
	first := item(Fixed(50), 0, 1)
	first.Intrinsic = Size{Width: 50, Height: 40}
	second := item(Fixed(50), 0, 1)
	second.Intrinsic = Size{Width: 50, Height: 40}
	second.AlignSelf = &end

	got := Flow(cfg, Size{Width: 200, Height: 100}, []Item{first, second})

	checkRect(t, "stretched", got[0].Rect, Rect{X: 0, Y: 0, Width: 50, Height: 100})
	checkRect(t, "self-end", got[1].Rect, Rect{X: 50, Y: 60, Width: 50, Height: 40})
}

func TestFlow_AlignInColumnUsesHorizontalCross(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Direction = Column
	cfg.AlignItems = AlignEnd

	it := item(Fixed(30), 0, 1)
	it.Intrinsic = Size{Width: 60, Height: 30}

	got := Flow(cfg, Size{Width: 200, Height: 100}, []Item{it})

	// Cross axis is horizontal in a column: end pushes to the right edge.
	checkRect(t, "item0", got[0].Rect, Rect{X: 140, Y: 0, Width: 60, Height: 30})
}

func TestFlow_CenterTallerThanLineOverflowsEvenly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AlignItems = AlignCenter

	it := item(Fixed(50), 0, 1)
	it.Intrinsic = Size{Width: 50, Height: 140}

	got := Flow(cfg, Size{Width: 200, Height: 100}, []Item{it})

	// Item is taller than the container: centering yields a negative
	// offset rather than clamping, so overflow is symmetric.
	if !approx(got[0].Rect.Y, -20) {
		t.Errorf("y = %.3f, want -20", got[0].Rect.Y)
	}
	if !approx(got[0].Rect.Height, 140) {
		t.Errorf("height = %.3f, want 140", got[0].Rect.Height)
	}
}
