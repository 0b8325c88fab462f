package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/polykit/polykit"
	"github.com/polykit/polykit/book"
	"github.com/polykit/polykit/errs"
	"github.com/polykit/polykit/export"
	"github.com/polykit/polykit/theme"
)

type exportOpts struct {
	out       string
	themePath string
	width     float64
	height    float64
	all       bool
}

// newExportCmd creates the export command. A named story is exported at
// every stock viewport width; --all exports the whole registry at one
// width instead.
func newExportCmd(state *appState) *cobra.Command {
	var opts exportOpts
	cmd := &cobra.Command{
		Use:   "export [story]",
		Short: "Export story wireframes as SVG",
		Long: `Write SVG wireframes of story layouts: each item's placed rectangle,
labeled with its index and size. Naming a story exports it at every
stock viewport width; --all exports every story at a single width.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.all && len(args) == 0 {
				return errs.New(errs.ErrCodeStoryNotFound, "name a story or pass --all")
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runExport(cmd.Context(), state, name, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "wireframes", "output directory")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "theme TOML file (overrides config)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "viewport width in layout units for --all (default: terminal width, else 992)")
	cmd.Flags().Float64Var(&opts.height, "height", 480, "viewport height in layout units")
	cmd.Flags().BoolVar(&opts.all, "all", false, "export every story at one width")
	return cmd
}

func runExport(ctx context.Context, state *appState, name string, opts exportOpts) error {
	logger := loggerFromContext(ctx)

	cfg := state.cfg
	if opts.themePath != "" {
		cfg.Theme = opts.themePath
	}
	th := theme.Default()
	if cfg.Theme != "" {
		loaded, err := theme.Load(cfg.Theme)
		if err != nil {
			return err
		}
		th = loaded
	}

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return errs.Wrap(errs.ErrCodeExportFailed, err, "creating %s", opts.out)
	}

	registry := book.Builtin()
	if opts.all {
		width := opts.width
		if width <= 0 {
			width = detectWidth(cfg.UnitScale)
		}
		return exportAll(ctx, logger, registry, th, opts.out, width, opts.height)
	}

	story, err := registry.Get(name)
	if err != nil {
		return err
	}
	prog := newProgress(logger)
	err = export.ExportViewports(ctx, opts.out, story.Name, opts.height, func(width float64) *polykit.Flex {
		return story.Build(th, width)
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Exported %q at %d widths to %s", story.Name, len(export.Viewports), opts.out))
	return nil
}

// exportAll writes one wireframe per story, concurrently. Every story
// builds its own container inside its goroutine, so nothing layout-
// related is shared.
func exportAll(ctx context.Context, logger *log.Logger, registry *book.Registry, th *theme.Theme, dir string, width, height float64) error {
	prog := newProgress(logger)
	stories := registry.All()

	g, ctx := errgroup.WithContext(ctx)
	for _, story := range stories {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f := story.Build(th, width)
			f.OnResize(width, height)
			path := filepath.Join(dir, fmt.Sprintf("%s-%dw.svg", story.Name, int(width)))
			logger.Debug("exporting story", "story", story.Name, "path", path)
			return export.SaveSVG(path, f, export.SnapshotOptions{
				Title:      fmt.Sprintf("%s / %gw / %s", story.Name, width, f.Breakpoint()),
				ShowLabels: true,
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Exported %d stories at %.0fw to %s", len(stories), width, dir))
	return nil
}

// detectWidth sizes the export viewport from the terminal when stdout
// is a TTY, otherwise falls back to the md default.
func detectWidth(scale float64) float64 {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
			return float64(cols) * scale
		}
	}
	return 992
}
