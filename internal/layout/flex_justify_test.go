package layout

import "testing"

func TestFlow_JustifyModes(t *testing.T) {
	// Three items of 80 in a 400-wide container: free space = 160.
	tests := map[string]struct {
		justify Justify
		wantX   [3]float64
	}{
		"start packs left": {
			justify: JustifyStart,
			wantX:   [3]float64{0, 80, 160},
		},
		"end packs right": {
			justify: JustifyEnd,
			wantX:   [3]float64{160, 240, 320},
		},
		"center splits free space": {
			justify: JustifyCenter,
			wantX:   [3]float64{80, 160, 240},
		},
		"space-between pins edges": {
			justify: JustifySpaceBetween,
			wantX:   [3]float64{0, 160, 320},
		},
		"space-around half gaps at edges": {
			justify: JustifySpaceAround,
			wantX:   [3]float64{160.0 / 6, 160.0/6 + 80 + 160.0/3, 160.0/6 + 160 + 2*160.0/3},
		},
		"space-evenly equal slots": {
			justify: JustifySpaceEvenly,
			wantX:   [3]float64{40, 160, 280},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Justify = tt.justify

			items := []Item{
				item(Fixed(80), 0, 1),
				item(Fixed(80), 0, 1),
				item(Fixed(80), 0, 1),
			}
			got := Flow(cfg, Size{Width: 400, Height: 20}, items)

			for i, want := range tt.wantX {
				if !approx(got[i].Rect.X, want) {
					t.Errorf("item %d x = %.3f, want %.3f", i, got[i].Rect.X, want)
				}
				if !approx(got[i].Rect.Width, 80) {
					t.Errorf("item %d width = %.3f, want 80", i, got[i].Rect.Width)
				}
			}
		})
	}
}

func TestFlow_JustifyCenterWithGap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Justify = JustifyCenter
	cfg.Gap = 8

	items := []Item{
		item(Fixed(100), 0, 1),
		item(Fixed(100), 0, 1),
	}
	got := Flow(cfg, Size{Width: 400, Height: 20}, items)

	// free = 400 - (100+100+8) = 192, half on each side
	if !approx(got[0].Rect.X, 96) {
		t.Errorf("item0 x = %.3f, want 96", got[0].Rect.X)
	}
	if !approx(got[1].Rect.X, 204) {
		t.Errorf("item1 x = %.3f, want 204", got[1].Rect.X)
	}
}

func TestFlow_JustifySingleItem(t *testing.T) {
	tests := map[string]struct {
		justify Justify
		wantX   float64
	}{
		"space-between behaves like start": {justify: JustifySpaceBetween, wantX: 0},
		"end uses all free space":          {justify: JustifyEnd, wantX: 300},
		"space-around centers":             {justify: JustifySpaceAround, wantX: 150},
		"space-evenly centers":             {justify: JustifySpaceEvenly, wantX: 150},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Justify = tt.justify

			got := Flow(cfg, Size{Width: 400, Height: 20}, []Item{item(Fixed(100), 0, 1)})
			if !approx(got[0].Rect.X, tt.wantX) {
				t.Errorf("x = %.3f, want %.3f", got[0].Rect.X, tt.wantX)
			}
		})
	}
}

func TestFlow_JustifyIgnoredWhenGrown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Justify = JustifyEnd

	items := []Item{
		item(Fixed(100), 1, 1),
		item(Fixed(100), 0, 1),
	}
	got := Flow(cfg, Size{Width: 400, Height: 20}, items)

	// The grower absorbs all free space, so justify has nothing to move.
	if !approx(got[0].Rect.X, 0) {
		t.Errorf("item0 x = %.3f, want 0", got[0].Rect.X)
	}
	if !approx(got[0].Rect.Width, 300) {
		t.Errorf("item0 width = %.3f, want 300", got[0].Rect.Width)
	}
}

func TestFlow_JustifyWithOverflowPacksAtStart(t *testing.T) {
	for _, justify := range []Justify{JustifyEnd, JustifyCenter, JustifySpaceEvenly} {
		cfg := DefaultConfig()
		cfg.Justify = justify

		items := []Item{
			item(Fixed(300), 0, 0),
			item(Fixed(300), 0, 0),
		}
		got := Flow(cfg, Size{Width: 400, Height: 20}, items)

		if !approx(got[0].Rect.X, 0) {
			t.Errorf("%v with overflow: item0 x = %.3f, want 0", justify, got[0].Rect.X)
		}
		if !approx(got[1].Rect.X, 300) {
			t.Errorf("%v with overflow: item1 x = %.3f, want 300", justify, got[1].Rect.X)
		}
	}
}
