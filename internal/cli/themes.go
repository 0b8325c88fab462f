package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polykit/polykit/errs"
	"github.com/polykit/polykit/theme"
)

// newThemesCmd creates the themes command. With no arguments it prints
// the active theme's tokens; given paths it loads and validates each
// file, failing if any is invalid.
func newThemesCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "themes [file...]",
		Short: "List or validate theme files",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if len(args) == 0 {
				if state.cfg.Theme == "" {
					printTheme(cmd, theme.Default(), "built-in")
					return nil
				}
				args = []string{state.cfg.Theme}
			}

			failed := 0
			for _, path := range args {
				th, err := theme.Load(path)
				if err != nil {
					failed++
					logger.Error("invalid theme", "path", path, "err", err)
					continue
				}
				printTheme(cmd, th, path)
			}
			if failed > 0 {
				return errs.New(errs.ErrCodeInvalidTheme, "%d of %d theme files failed validation", failed, len(args))
			}
			return nil
		},
	}
}

func printTheme(cmd *cobra.Command, th *theme.Theme, origin string) {
	out := cmd.OutOrStdout()
	c, s := th.Colors, th.Spacing
	fmt.Fprintf(out, "%s (%s)\n", th.Name, origin)
	fmt.Fprintf(out, "  border  %s\n", th.Border)
	fmt.Fprintf(out, "  colors  primary %s  secondary %s  text %s  muted %s\n", c.Primary, c.Secondary, c.Text, c.Muted)
	fmt.Fprintf(out, "          surface %s  success %s  warning %s  danger %s\n", c.Surface, c.Success, c.Warning, c.Danger)
	fmt.Fprintf(out, "  spacing xs=%g sm=%g md=%g lg=%g xl=%g\n", s.XS, s.SM, s.MD, s.LG, s.XL)
}
