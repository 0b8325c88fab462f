package polykit

import (
	"math"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// RenderOption configures Render.
type RenderOption func(*renderConfig)

type renderConfig struct {
	scale float64
}

// WithCellScale sets how many layout units make up one terminal cell.
// Placements are divided by the scale and rounded to whole cells before
// compositing. The default scale is 1.
func WithCellScale(unitsPerCell float64) RenderOption {
	return func(rc *renderConfig) {
		if unitsPerCell > 0 {
			rc.scale = unitsPerCell
		}
	}
}

// Render composites the container's current layout into a single
// string. Items whose widget implements Renderer draw their own content
// at their placed size; any other widget occupies blank space. Sizes
// are quantized to whole cells, so neighboring items can drift by one
// cell relative to the exact unit geometry.
//
// Content that the layout pushed to negative coordinates starts at the
// edge instead.
func Render(f *Flex, opts ...RenderOption) string {
	rc := renderConfig{scale: 1}
	for _, opt := range opts {
		opt(&rc)
	}

	pls := f.Layout()
	if len(pls) == 0 {
		return ""
	}

	boxes := make([]cellBox, len(pls))
	for i, p := range pls {
		boxes[i] = cellBox{
			x:    toCells(p.X, rc.scale),
			y:    toCells(p.Y, rc.scale),
			w:    toCells(p.Width, rc.scale),
			h:    toCells(p.Height, rc.scale),
			line: p.Line,
			item: f.items[i],
		}
	}

	if f.Direction().IsRow() {
		return renderRowLines(boxes)
	}
	return renderColumnLines(boxes)
}

// Render implements Renderer, so containers nest visually: the
// container lays itself out fresh at the given cell box, one unit per
// cell, and composites its items. Responsive values inside resolve
// against the box width, so a nested container classifies by its own
// placed size rather than the host viewport.
func (f *Flex) Render(width, height int) string {
	f.OnResize(float64(width), float64(height))
	return Render(f)
}

// cellBox is one item's placement quantized to terminal cells.
type cellBox struct {
	x, y, w, h int
	line       int
	item       *FlexItem
}

// view renders the box's widget sized to exactly w x h cells.
func (b cellBox) view() string {
	if b.w <= 0 || b.h <= 0 {
		return ""
	}
	frame := lipgloss.NewStyle().
		Width(b.w).
		Height(b.h).
		MaxWidth(b.w).
		MaxHeight(b.h)
	if r, ok := b.item.widget.(Renderer); ok {
		return frame.Render(r.Render(b.w, b.h))
	}
	return frame.Render("")
}

// renderRowLines composites row-direction lines: items join
// horizontally inside each line, lines stack vertically.
func renderRowLines(boxes []cellBox) string {
	lines := groupByLine(boxes)
	sort.SliceStable(lines, func(i, j int) bool {
		return lineTop(lines[i]) < lineTop(lines[j])
	})

	var blocks []string
	cursor := 0
	for _, members := range lines {
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].x < members[j].x
		})
		top := lineTop(members)
		bottom := top
		var parts []string
		at := 0
		for _, b := range members {
			if pad := b.x - at; pad > 0 {
				parts = append(parts, lipgloss.NewStyle().Width(pad).Render(""))
				at += pad
			}
			parts = append(parts, lipgloss.NewStyle().PaddingTop(max(0, b.y-top)).Render(b.view()))
			at += b.w
			if b.y+b.h > bottom {
				bottom = b.y + b.h
			}
		}
		block := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		if gap := top - cursor; gap > 0 {
			blocks = append(blocks, lipgloss.NewStyle().Height(gap).Render(""))
		}
		blocks = append(blocks, block)
		cursor = bottom
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// renderColumnLines is the transpose: items join vertically inside each
// line, lines stack horizontally.
func renderColumnLines(boxes []cellBox) string {
	lines := groupByLine(boxes)
	sort.SliceStable(lines, func(i, j int) bool {
		return lineLeft(lines[i]) < lineLeft(lines[j])
	})

	var blocks []string
	cursor := 0
	for _, members := range lines {
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].y < members[j].y
		})
		left := lineLeft(members)
		right := left
		var parts []string
		at := 0
		for _, b := range members {
			if pad := b.y - at; pad > 0 {
				parts = append(parts, lipgloss.NewStyle().Height(pad).Render(""))
				at += pad
			}
			parts = append(parts, lipgloss.NewStyle().PaddingLeft(max(0, b.x-left)).Render(b.view()))
			at += b.h
			if b.x+b.w > right {
				right = b.x + b.w
			}
		}
		block := lipgloss.JoinVertical(lipgloss.Left, parts...)
		if gap := left - cursor; gap > 0 {
			blocks = append(blocks, lipgloss.NewStyle().Width(gap).Render(""))
		}
		blocks = append(blocks, block)
		cursor = right
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// groupByLine buckets boxes by line index, in index order so ties in
// the later position sorts stay deterministic.
func groupByLine(boxes []cellBox) [][]cellBox {
	byLine := make(map[int][]cellBox)
	var keys []int
	for _, b := range boxes {
		if _, ok := byLine[b.line]; !ok {
			keys = append(keys, b.line)
		}
		byLine[b.line] = append(byLine[b.line], b)
	}
	sort.Ints(keys)
	out := make([][]cellBox, 0, len(keys))
	for _, k := range keys {
		out = append(out, byLine[k])
	}
	return out
}

func lineTop(members []cellBox) int {
	top := members[0].y
	for _, b := range members[1:] {
		if b.y < top {
			top = b.y
		}
	}
	return max(0, top)
}

func lineLeft(members []cellBox) int {
	left := members[0].x
	for _, b := range members[1:] {
		if b.x < left {
			left = b.x
		}
	}
	return max(0, left)
}

func toCells(v, scale float64) int {
	return int(math.Round(v / scale))
}
