package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// appState carries the loaded configuration from the persistent pre-run
// into the subcommands.
type appState struct {
	cfg Config
}

// Execute runs the polybook CLI. A bare invocation opens the browser;
// subcommands cover exporting wireframes and validating themes.
//
// Logging goes to stderr at the configured level; --verbose forces
// debug. The logger is attached to the context and retrieved by
// commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)
	state := &appState{cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:   "polybook",
		Short: "polybook browses and exports polykit layout stories",
		Long: `polybook is the component browser for polykit. It previews the story
registry at simulated viewport widths, hot-reloads themes, and exports
layout wireframes as SVG.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			state.cfg = cfg

			level, err := parseLogLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), state, browseOpts{})
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("polybook %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to polybook.toml")

	root.AddCommand(newBrowseCmd(state))
	root.AddCommand(newExportCmd(state))
	root.AddCommand(newThemesCmd(state))

	return root.ExecuteContext(ctx)
}
