package book

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/polykit/polykit"
	"github.com/polykit/polykit/breakpoint"
	"github.com/polykit/polykit/responsive"
	"github.com/polykit/polykit/theme"
)

// UnitScale is the units-per-cell factor the built-in stories assume.
// It matches the adapters' default, so browsers render stories with
// polykit.WithCellScale(UnitScale) and text measures correctly.
const UnitScale = 8.0

// Builtin returns the stock registry: one story per component plus the
// flex behavior demos.
func Builtin() *Registry {
	r := NewRegistry()
	for _, s := range builtinStories() {
		// Static data; names are unique by construction.
		_ = r.Add(s)
	}
	return r
}

// text wraps a styled label so it measures in layout units.
func text(style lipgloss.Style, s string) polykit.Widget {
	l := polykit.NewLabel(s)
	l.SetStyle(style)
	return polykit.Scale(l, UnitScale)
}

// card wraps a label in a themed panel, measured in layout units.
func card(th *theme.Theme, s string) polykit.Widget {
	return polykit.Scale(polykit.NewPaper(polykit.NewLabel(s), th), UnitScale)
}

func builtinStories() []Story {
	return []Story{
		{
			Name:  "justify",
			Group: "layout",
			Notes: "Main-axis distribution. Each row runs the same three items\n" +
				"under a different justify mode; extra space moves between and\n" +
				"around them accordingly.\n\n" +
				"    row.SetJustify(responsive.Fixed(polykit.JustifySpaceBetween))\n",
			Build: func(th *theme.Theme, width float64) *polykit.Flex {
				root := polykit.New(
					polykit.WithDirection(polykit.Column),
					polykit.WithGap(th.Spacing.LG),
					polykit.WithAlign(polykit.AlignStretch),
				)
				modes := []struct {
					name string
					mode polykit.Justify
				}{
					{"start", polykit.JustifyStart},
					{"end", polykit.JustifyEnd},
					{"center", polykit.JustifyCenter},
					{"space-between", polykit.JustifySpaceBetween},
					{"space-around", polykit.JustifySpaceAround},
					{"space-evenly", polykit.JustifySpaceEvenly},
				}
				for _, m := range modes {
					root.AddItem(text(th.Subtle(), m.name))
					root.AddItem(justifyRow(m.mode))
				}
				return root
			},
		},
		{
			Name:  "wrap",
			Group: "layout",
			Notes: "Line breaking. Fixed-basis cards that refuse to shrink flow\n" +
				"onto new lines as the viewport narrows.\n\n" +
				"    f := polykit.New(polykit.WithWrap(polykit.WrapLines))\n",
			Build: func(th *theme.Theme, width float64) *polykit.Flex {
				root := polykit.New(
					polykit.WithWrap(polykit.WrapLines),
					polykit.WithGap(th.Spacing.LG),
				)
				for i := 1; i <= 8; i++ {
					root.AddItem(card(th, fmt.Sprintf("card %d", i)),
						polykit.WithShrink(0),
						polykit.WithBasis(polykit.Fixed(160)),
					)
				}
				return root
			},
		},
		{
			Name:  "grow",
			Group: "layout",
			Notes: "Free space splits in proportion to each item's grow factor.\n" +
				"All three start from a zero basis, so their widths are pure\n" +
				"ratios: 1x, 2x, 3x.\n",
			Build: func(th *theme.Theme, width float64) *polykit.Flex {
				root := polykit.New(polykit.WithGap(th.Spacing.LG))
				for _, g := range []float64{1, 2, 3} {
					root.AddItem(card(th, fmt.Sprintf("%gx", g)),
						polykit.WithGrow(g),
						polykit.WithBasis(polykit.Fixed(0)),
					)
				}
				return root
			},
		},
		{
			Name:  "order",
			Group: "layout",
			Notes: "Visual order is a responsive property. The first card jumps\n" +
				"to the end of the row at the md breakpoint and wider; reported\n" +
				"geometry stays in insertion order.\n",
			Build: func(th *theme.Theme, width float64) *polykit.Flex {
				root := polykit.New(
					polykit.WithGap(th.Spacing.LG),
					polykit.WithAlign(polykit.AlignStart),
				)
				first := root.AddItem(card(th, "first"), polykit.WithShrink(0))
				root.AddItem(card(th, "second"), polykit.WithShrink(0))
				root.AddItem(card(th, "third"), polykit.WithShrink(0))
				first.SetOrder(responsive.Map(map[breakpoint.Breakpoint]int{
					breakpoint.Base: 0,
					breakpoint.MD:   9,
				}))
				return root
			},
		},
		{
			Name:  "direction",
			Group: "layout",
			Notes: "The main axis itself can respond to width: a column below\n" +
				"md, a row from md up.\n\n" +
				"    f.SetDirection(responsive.Map(map[breakpoint.Breakpoint]polykit.Direction{\n" +
				"        breakpoint.Base: polykit.Column,\n" +
				"        breakpoint.MD:   polykit.Row,\n" +
				"    }))\n",
			Build: func(th *theme.Theme, width float64) *polykit.Flex {
				root := polykit.New(
					polykit.WithGap(th.Spacing.LG),
					polykit.WithAlign(polykit.AlignStart),
				)
				_ = root.SetDirection(responsive.Map(map[breakpoint.Breakpoint]polykit.Direction{
					breakpoint.Base: polykit.Column,
					breakpoint.MD:   polykit.Row,
				}))
				for _, s := range []string{"nav", "content", "aside"} {
					root.AddItem(card(th, s), polykit.WithShrink(0))
				}
				return root
			},
		},
		{
			Name:  "label",
			Group: "components",
			Notes: "Label renders styled text and measures itself from its\n" +
				"longest line. Styles come straight from theme tokens.\n",
			Build: func(th *theme.Theme, width float64) *polykit.Flex {
				root := polykit.New(
					polykit.WithDirection(polykit.Column),
					polykit.WithGap(th.Spacing.LG),
					polykit.WithAlign(polykit.AlignStart),
				)
				root.AddItem(text(th.Title(), "Title label"))
				root.AddItem(text(th.Body(), "Body label"))
				root.AddItem(text(th.Subtle(), "Subtle label"))
				root.AddItem(text(th.Badge(th.Colors.Primary), "BADGE"))
				return root
			},
		},
		{
			Name:  "box",
			Group: "components",
			Notes: "Box draws a lipgloss frame around a child and accounts for\n" +
				"the frame in its intrinsic size. Panel styles come from the\n" +
				"theme; any lipgloss style works.\n",
			Build: func(th *theme.Theme, width float64) *polykit.Flex {
				root := polykit.New(
					polykit.WithGap(th.Spacing.XL),
					polykit.WithAlign(polykit.AlignStart),
				)
				plain := polykit.NewBox(polykit.NewLabel("panel"))
				plain.SetStyle(th.Panel(false))
				focused := polykit.NewBox(polykit.NewLabel("focused"))
				focused.SetStyle(th.Panel(true))
				padded := polykit.NewBox(polykit.NewLabel("padded"))
				padded.SetStyle(lipgloss.NewStyle().
					Border(th.BorderStyle()).
					BorderForeground(lipgloss.Color(th.Colors.Muted)).
					Padding(0, 2))
				for _, b := range []*polykit.Box{plain, focused, padded} {
					root.AddItem(polykit.Scale(b, UnitScale), polykit.WithShrink(0))
				}
				return root
			},
		},
		{
			Name:  "stack",
			Group: "components",
			Notes: "HStack with theme spacing, a vertical divider, and a growing\n" +
				"spacer pushing the badge to the far edge. The navbar shape.\n",
			Build: func(th *theme.Theme, width float64) *polykit.Flex {
				s := polykit.HStack()
				s.ApplyThemeSpacing(th)
				s.AddItem(text(th.Title(), "polykit"))
				s.AddItem(polykit.Scale(polykit.Divider{Vertical: true}, UnitScale),
					polykit.WithShrink(0))
				s.AddItem(text(th.Body(), "docs"))
				s.AddItem(text(th.Body(), "stories"))
				s.AddSpacer(1)
				s.AddItem(text(th.Badge(th.Colors.Success), "v1"))
				return s.Flex
			},
		},
		{
			Name:  "grid",
			Group: "components",
			Notes: "Twelve-column grid with responsive spans: full width below\n" +
				"md, half width from md, quarter width from xl.\n\n" +
				"    g.AddCol(w, responsive.Map(map[breakpoint.Breakpoint]int{\n" +
				"        breakpoint.Base: 12, breakpoint.MD: 6, breakpoint.XL: 3,\n" +
				"    }))\n",
			Build: func(th *theme.Theme, width float64) *polykit.Flex {
				g := polykit.NewGrid()
				span := responsive.Map(map[breakpoint.Breakpoint]int{
					breakpoint.Base: 12,
					breakpoint.MD:   6,
					breakpoint.XL:   3,
				})
				for i := 1; i <= 4; i++ {
					_, _ = g.AddCol(card(th, fmt.Sprintf("col %d", i)), span)
				}
				return g.Flex
			},
		},
		{
			Name:  "container",
			Group: "components",
			Notes: "Container caps content width per breakpoint and centers it,\n" +
				"full-bleed below sm. Resize across 576/768/992/1200 to watch\n" +
				"the cap move.\n",
			Build: func(th *theme.Theme, width float64) *polykit.Flex {
				c := polykit.NewContainer(card(th, "capped content"))
				return c.Flex
			},
		},
		{
			Name:  "aspect",
			Group: "components",
			Notes: "AspectRatio fits a ratio box inside a window, letting the\n" +
				"constrained side win. The rows below report Fit for a 16:9\n" +
				"region at several window sizes.\n",
			Build: func(th *theme.Theme, width float64) *polykit.Flex {
				a := polykit.NewAspectRatio(polykit.New(), 16.0/9)
				root := polykit.New(
					polykit.WithDirection(polykit.Column),
					polykit.WithGap(th.Spacing.SM),
					polykit.WithAlign(polykit.AlignStart),
				)
				root.AddItem(text(th.Title(), "16:9 fits"))
				for _, win := range [][2]float64{{320, 600}, {800, 300}, {1200, 400}} {
					w, h := a.Fit(win[0], win[1])
					root.AddItem(text(th.Body(),
						fmt.Sprintf("window %.0fx%.0f -> %.0fx%.0f", win[0], win[1], w, h)))
				}
				return root
			},
		},
		{
			Name:  "paper",
			Group: "components",
			Notes: "Paper is a Box pre-styled with the theme's panel look.\n",
			Build: func(th *theme.Theme, width float64) *polykit.Flex {
				root := polykit.New(
					polykit.WithDirection(polykit.Column),
					polykit.WithGap(th.Spacing.LG),
					polykit.WithAlign(polykit.AlignStart),
				)
				root.AddItem(card(th, "standard panel"))
				elevated := polykit.NewPaper(polykit.NewLabel("focused panel"), th)
				elevated.SetStyle(th.Panel(true))
				root.AddItem(polykit.Scale(elevated, UnitScale))
				return root
			},
		},
		{
			Name:  "center",
			Group: "components",
			Notes: "Centered is the shortest path to putting one widget in the\n" +
				"middle of a region.\n",
			Build: func(th *theme.Theme, width float64) *polykit.Flex {
				return polykit.Centered(text(th.Badge(th.Colors.Primary), "CENTERED"))
			},
		},
	}
}

// justifyRow builds one cell-scale demo row for a justify mode.
func justifyRow(mode polykit.Justify) polykit.Widget {
	row := polykit.New(
		polykit.WithJustify(mode),
		polykit.WithAlign(polykit.AlignStart),
	)
	for _, s := range []string{"[a]", "[b]", "[c]"} {
		row.AddItem(polykit.NewLabel(s), polykit.WithShrink(0))
	}
	return polykit.Scale(row, UnitScale)
}
