package layout

import "sort"

// Item describes one flex participant handed to Flow.
type Item struct {
	Order     int     // Visual ordering key; ties keep insertion order
	Grow      float64 // Share of positive free space
	Shrink    float64 // Share of overflow, weighted by base size
	Basis     Value   // Preferred main size; Auto falls back to Intrinsic
	AlignSelf *Align  // Override the container's AlignItems (nil = inherit)
	Intrinsic Size    // Content size used for auto basis and cross sizing
}

// DefaultItem returns an Item with sensible defaults.
func DefaultItem() Item {
	return Item{
		Shrink: 1,
		Basis:  Auto(),
	}
}

// Placement is the computed geometry for one item. The embedded Rect is
// the item's box relative to the container origin.
type Placement struct {
	Rect

	// Line is the index of the flex line the item landed on, counted in
	// flow order even when WrapReverse stacks lines in reverse.
	Line int
}

// flexItem holds intermediate calculation state for one item.
// This is scratch space per Flow call, not retained.
type flexItem struct {
	index     int // Position in the caller's slice
	order     int
	base      float64
	main      float64
	mainPos   float64
	cross     float64
	crossPos  float64
	intrCross float64
	grow      float64
	shrink    float64
	align     Align
}

// Flow arranges items inside a container of the given size and returns
// one Placement per item, in the order the items were passed.
//
// The algorithm works one flex line at a time: items are placed in
// visual order, broken into lines when wrapping is on, grown or shrunk
// to fit the main axis, distributed by the justify mode, and finally
// aligned within their line on the cross axis.
func Flow(cfg Config, container Size, items []Item) []Placement {
	placements := make([]Placement, len(items))
	if len(items) == 0 {
		return placements
	}

	if cfg.Gap < 0 {
		cfg.Gap = 0
	}
	container.Width = max(0, container.Width)
	container.Height = max(0, container.Height)

	isRow := cfg.Direction.IsRow()
	mainSize := container.Width
	crossSize := container.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: resolve base sizes and per-item flex state.
	scratch := make([]flexItem, len(items))
	for i, it := range items {
		s := &scratch[i]
		s.index = i
		s.order = it.Order

		intrMain := it.Intrinsic.Width
		s.intrCross = it.Intrinsic.Height
		if !isRow {
			intrMain = it.Intrinsic.Height
			s.intrCross = it.Intrinsic.Width
		}

		s.base = it.Basis.Resolve(mainSize, intrMain)
		s.grow = max(0, it.Grow)
		s.shrink = max(0, it.Shrink)
		s.align = cfg.AlignItems
		if it.AlignSelf != nil {
			s.align = *it.AlignSelf
		}
	}

	// Phase 2: establish visual order. The sort is stable so items with
	// equal Order keep their insertion order.
	sort.SliceStable(scratch, func(i, j int) bool {
		return scratch[i].order < scratch[j].order
	})

	// Phase 3: break into lines.
	lines := breakLines(cfg, mainSize, scratch)

	// Phase 4: flex and justify each line along the main axis.
	for _, line := range lines {
		flexLine(cfg, mainSize, line)
	}

	// Phase 5: size lines on the cross axis and stack them.
	crosses := lineCrossSizes(lines, crossSize)
	starts := lineStarts(cfg, crosses)

	// Phase 6: align items within their line and emit rects.
	for li, line := range lines {
		for i := range line {
			s := &line[i]

			switch s.align {
			case AlignStretch:
				s.cross = crosses[li]
				s.crossPos = 0
			case AlignEnd:
				s.cross = s.intrCross
				s.crossPos = crosses[li] - s.cross
			case AlignCenter:
				s.cross = s.intrCross
				s.crossPos = (crosses[li] - s.cross) / 2
			default: // AlignStart, AlignBaseline
				s.cross = s.intrCross
				s.crossPos = 0
			}

			mainPos := s.mainPos
			if cfg.Direction.IsReverse() {
				mainPos = mainSize - s.mainPos - s.main
			}

			var rect Rect
			if isRow {
				rect = Rect{X: mainPos, Y: starts[li] + s.crossPos, Width: s.main, Height: s.cross}
			} else {
				rect = Rect{X: starts[li] + s.crossPos, Y: mainPos, Width: s.cross, Height: s.main}
			}
			placements[s.index] = Placement{Rect: rect, Line: li}
		}
	}

	return placements
}

// Measure returns the size the items would occupy laid out on a single
// line at their base sizes, before any growing or shrinking. Percentage
// bases resolve against zero space and so contribute nothing.
func Measure(cfg Config, items []Item) Size {
	if len(items) == 0 {
		return Size{}
	}

	gap := max(0, cfg.Gap)
	isRow := cfg.Direction.IsRow()

	main := gap * float64(len(items)-1)
	cross := 0.0
	for _, it := range items {
		intrMain := it.Intrinsic.Width
		intrCross := it.Intrinsic.Height
		if !isRow {
			intrMain, intrCross = intrCross, intrMain
		}
		main += it.Basis.Resolve(0, intrMain)
		cross = max(cross, intrCross)
	}

	if isRow {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// breakLines splits items into flex lines. The scratch slice is already
// in visual order, so every line is a contiguous sub-slice of it. A line
// is never left empty: an item that exceeds the container on its own
// still occupies one line.
func breakLines(cfg Config, mainSize float64, scratch []flexItem) [][]flexItem {
	if cfg.Wrap == NoWrap {
		return [][]flexItem{scratch}
	}

	var lines [][]flexItem
	start := 0
	used := 0.0
	for i := range scratch {
		need := scratch[i].base
		if i > start && used+cfg.Gap+need > mainSize {
			lines = append(lines, scratch[start:i])
			start = i
			used = 0
		}
		if i > start {
			used += cfg.Gap
		}
		used += need
	}
	return append(lines, scratch[start:])
}

// flexLine resolves final main sizes for one line and positions its
// items from the line start. Positive free space goes to items by grow
// weight; overflow is removed by shrink weight scaled by base size, and
// no item shrinks below zero.
func flexLine(cfg Config, mainSize float64, line []flexItem) {
	totalBase := 0.0
	totalGrow := 0.0
	totalScaled := 0.0
	for i := range line {
		totalBase += line[i].base
		totalGrow += line[i].grow
		totalScaled += line[i].shrink * line[i].base
	}

	totalGap := cfg.Gap * float64(len(line)-1)
	free := mainSize - totalBase - totalGap

	switch {
	case free > 0 && totalGrow > 0:
		for i := range line {
			line[i].main = line[i].base + free*line[i].grow/totalGrow
		}
	case free < 0 && totalScaled > 0:
		deficit := -free
		for i := range line {
			reduction := deficit * line[i].shrink * line[i].base / totalScaled
			line[i].main = max(0, line[i].base-reduction)
		}
	default:
		for i := range line {
			line[i].main = line[i].base
		}
	}

	// Justify whatever space is left after flexing.
	used := totalGap
	for i := range line {
		used += line[i].main
	}
	free = max(0, mainSize-used)

	pos := calculateJustifyOffset(cfg.Justify, free, len(line))
	spacing := calculateJustifySpacing(cfg.Justify, free, len(line))
	for i := range line {
		line[i].mainPos = pos
		pos += line[i].main + cfg.Gap + spacing
	}
}

// calculateJustifyOffset returns the initial offset for positioning items
// based on the justify mode and available free space.
func calculateJustifyOffset(justify Justify, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / float64(itemCount*2)
	case JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between items
// based on the justify mode and available free space.
func calculateJustifySpacing(justify Justify, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / float64(itemCount-1)
	case JustifySpaceAround:
		return freeSpace / float64(itemCount)
	case JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default:
		return 0
	}
}

// lineCrossSizes returns the cross-axis extent of each line. A single
// line spans the full container; with multiple lines each takes its
// tallest item.
func lineCrossSizes(lines [][]flexItem, crossSize float64) []float64 {
	crosses := make([]float64, len(lines))
	if len(lines) == 1 {
		crosses[0] = crossSize
		return crosses
	}

	for li, line := range lines {
		tallest := 0.0
		for i := range line {
			tallest = max(tallest, line[i].intrCross)
		}
		crosses[li] = tallest
	}
	return crosses
}

// lineStarts stacks lines along the cross axis separated by the gap,
// last line first when wrapping in reverse.
func lineStarts(cfg Config, crosses []float64) []float64 {
	starts := make([]float64, len(crosses))
	pos := 0.0
	if cfg.Wrap == WrapReverse {
		for i := len(crosses) - 1; i >= 0; i-- {
			starts[i] = pos
			pos += crosses[i] + cfg.Gap
		}
		return starts
	}

	for i := range crosses {
		starts[i] = pos
		pos += crosses[i] + cfg.Gap
	}
	return starts
}
