// Package export renders container geometry to SVG wireframes. A
// snapshot shows each item's placed rectangle at one viewport size;
// the batch form writes one snapshot per stock viewport width, which
// makes breakpoint behavior reviewable outside a terminal.
package export

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/sync/errgroup"

	"github.com/polykit/polykit"
	"github.com/polykit/polykit/errs"
)

// Viewports are the stock preview widths, in layout units, spanning
// every width class.
var Viewports = []float64{320, 576, 768, 992, 1200, 1440}

// SnapshotOptions configures a wireframe snapshot.
type SnapshotOptions struct {
	// Title is drawn above the frame. Empty omits it.
	Title string
	// ShowLabels draws each item's index and size inside its rectangle.
	ShowLabels bool
}

const (
	frameStyle = "fill:none;stroke:#666;stroke-width:1"
	itemStyle  = "fill:#e8eefc;stroke:#3b66c4;stroke-width:1;fill-opacity:0.7"
	labelStyle = "font-family:monospace;font-size:11px;fill:#222"
)

// WriteSVG draws the container's current layout as an SVG wireframe.
// The container must have been sized with OnResize first.
func WriteSVG(w io.Writer, f *polykit.Flex, opts SnapshotOptions) error {
	size := f.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return errs.New(errs.ErrCodeExportFailed, "container has no geometry to export")
	}

	const margin = 10
	top := margin
	if opts.Title != "" {
		top += 16
	}

	canvas := svg.New(w)
	canvas.Start(px(size.Width)+2*margin, px(size.Height)+top+margin)
	if opts.Title != "" {
		canvas.Text(margin, margin+10, opts.Title, labelStyle)
	}
	canvas.Rect(margin, top, px(size.Width), px(size.Height), frameStyle)

	for i, p := range f.Layout() {
		// Spacers and collapsed items have no area to draw.
		if p.IsEmpty() {
			continue
		}
		x := margin + px(p.X)
		y := top + px(p.Y)
		canvas.Rect(x, y, px(p.Width), px(p.Height), itemStyle)
		if opts.ShowLabels {
			label := fmt.Sprintf("%d: %gx%g", i, p.Width, p.Height)
			canvas.Text(x+4, y+14, label, labelStyle)
		}
	}
	canvas.End()
	return nil
}

// SaveSVG writes a wireframe snapshot to a file.
func SaveSVG(path string, f *polykit.Flex, opts SnapshotOptions) error {
	out, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeExportFailed, err, "creating %s", path)
	}
	defer out.Close()

	if err := WriteSVG(out, f, opts); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return errs.Wrap(errs.ErrCodeExportFailed, err, "writing %s", path)
	}
	return nil
}

// ExportViewports builds a fresh layout per width, sizes it, and
// writes one labeled snapshot per width into dir, concurrently. The
// factory runs once per goroutine, so containers are never shared.
// Files are named <name>-<width>w.svg; an empty name uses "layout".
// An empty width list uses the stock Viewports.
func ExportViewports(ctx context.Context, dir, name string, height float64, build func(width float64) *polykit.Flex, widths ...float64) error {
	if name == "" {
		name = "layout"
	}
	if len(widths) == 0 {
		widths = Viewports
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, width := range widths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f := build(width)
			f.OnResize(width, height)
			path := filepath.Join(dir, fmt.Sprintf("%s-%dw.svg", name, int(width)))
			return SaveSVG(path, f, SnapshotOptions{
				Title:      fmt.Sprintf("%s / %gw / %s", name, width, f.Breakpoint()),
				ShowLabels: true,
			})
		})
	}
	return g.Wait()
}

func px(v float64) int {
	return int(math.Round(v))
}
