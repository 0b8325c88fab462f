package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/polykit/polykit/theme"
)

type browseOpts struct {
	themePath string
	width     float64
	scale     float64
}

// newBrowseCmd creates the browse command, the interactive story
// browser. It is also what a bare polybook invocation runs.
func newBrowseCmd(state *appState) *cobra.Command {
	var opts browseOpts
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse stories interactively",
		Long: `Open the story browser: pick a story on the left, watch it laid out at
a simulated viewport width on the right. Cycle viewport presets with v,
nudge with + and -, read notes with n.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), state, opts)
		},
	}
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "theme TOML file (overrides config)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "initial viewport width in layout units")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "layout units per terminal cell")
	return cmd
}

func runBrowse(ctx context.Context, state *appState, opts browseOpts) error {
	logger := loggerFromContext(ctx)

	cfg := state.cfg
	if opts.themePath != "" {
		cfg.Theme = opts.themePath
	}
	if opts.width > 0 {
		cfg.Viewport = opts.width
	}
	if opts.scale > 0 {
		cfg.UnitScale = opts.scale
	}

	th := theme.Default()
	if cfg.Theme != "" {
		loaded, err := theme.Load(cfg.Theme)
		if err != nil {
			return err
		}
		th = loaded
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var themes <-chan *theme.Theme
	if cfg.Theme != "" {
		ch, err := theme.Watch(watchCtx, cfg.Theme)
		if err != nil {
			logger.Warn("theme hot reload disabled", "err", err)
		} else {
			themes = ch
		}
	}

	logger.Debug("starting browser", "viewport", cfg.Viewport, "scale", cfg.UnitScale, "theme", th.Name)
	p := tea.NewProgram(newBrowser(cfg, logger, th, themes), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
