// Package theme carries the visual tokens shared by polykit widgets:
// colors, a spacing scale, and a border style. Themes load from TOML
// files and can be hot-reloaded with Watch, so a running host restyles
// without redrawing logic changes.
package theme

import (
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/polykit/polykit/errs"
)

// Theme is one complete set of visual tokens. Zero fields fall back to
// the default theme's values when loading from a file.
type Theme struct {
	Name    string  `toml:"name"`
	Colors  Colors  `toml:"colors"`
	Spacing Spacing `toml:"spacing"`
	Border  string  `toml:"border"`
}

// Colors are hex color tokens ("#RGB" or "#RRGGBB").
type Colors struct {
	Primary   string `toml:"primary"`
	Secondary string `toml:"secondary"`
	Text      string `toml:"text"`
	Muted     string `toml:"muted"`
	Surface   string `toml:"surface"`
	Success   string `toml:"success"`
	Warning   string `toml:"warning"`
	Danger    string `toml:"danger"`
}

// Spacing is the gap scale in layout units.
type Spacing struct {
	XS float64 `toml:"xs"`
	SM float64 `toml:"sm"`
	MD float64 `toml:"md"`
	LG float64 `toml:"lg"`
	XL float64 `toml:"xl"`
}

// Border style names accepted by Theme.Border.
var borders = map[string]lipgloss.Border{
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
	"hidden":  lipgloss.HiddenBorder(),
}

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			Primary:   "#7D56F4",
			Secondary: "#5A7BD6",
			Text:      "#FAFAFA",
			Muted:     "#6C6C76",
			Surface:   "#2D2D3A",
			Success:   "#43BF6D",
			Warning:   "#D9A343",
			Danger:    "#ED567A",
		},
		Spacing: Spacing{XS: 1, SM: 2, MD: 4, LG: 8, XL: 16},
		Border:  "rounded",
	}
}

// Decode parses theme TOML, merging the tokens onto the default theme
// and validating the result.
func Decode(data []byte) (*Theme, error) {
	t := Default()
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidTheme, err, "parsing theme")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads a theme from a TOML file. Tokens absent from the file keep
// the default theme's values. The result is validated before being
// returned.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "reading theme %s", path)
	}
	return Decode(data)
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks every token: colors must be hex, spacing must not be
// negative, the border style must be a known name.
func (t *Theme) Validate() error {
	for _, c := range []struct {
		name, value string
	}{
		{"primary", t.Colors.Primary},
		{"secondary", t.Colors.Secondary},
		{"text", t.Colors.Text},
		{"muted", t.Colors.Muted},
		{"surface", t.Colors.Surface},
		{"success", t.Colors.Success},
		{"warning", t.Colors.Warning},
		{"danger", t.Colors.Danger},
	} {
		if !hexColor.MatchString(c.value) {
			return errs.New(errs.ErrCodeInvalidTheme, "color %s: %q is not a hex color", c.name, c.value)
		}
	}
	for _, s := range []struct {
		name  string
		value float64
	}{
		{"xs", t.Spacing.XS},
		{"sm", t.Spacing.SM},
		{"md", t.Spacing.MD},
		{"lg", t.Spacing.LG},
		{"xl", t.Spacing.XL},
	} {
		if s.value < 0 {
			return errs.New(errs.ErrCodeInvalidTheme, "spacing %s: %v is negative", s.name, s.value)
		}
	}
	if _, ok := borders[t.Border]; !ok {
		return errs.New(errs.ErrCodeInvalidTheme, "unknown border style %q", t.Border)
	}
	return nil
}

// BorderStyle returns the lipgloss border for the configured name.
// Unknown names render as a normal border; Validate catches them first.
func (t *Theme) BorderStyle() lipgloss.Border {
	if b, ok := borders[t.Border]; ok {
		return b
	}
	return lipgloss.NormalBorder()
}

// Title is the style for headings.
func (t *Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Colors.Primary))
}

// Body is the style for regular text.
func (t *Theme) Body() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Colors.Text))
}

// Subtle is the style for secondary text.
func (t *Theme) Subtle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Colors.Muted))
}

// Panel frames a surface. The focused variant highlights the border
// with the primary color.
func (t *Theme) Panel(focused bool) lipgloss.Style {
	border := lipgloss.Color(t.Colors.Muted)
	if focused {
		border = lipgloss.Color(t.Colors.Primary)
	}
	return lipgloss.NewStyle().
		Border(t.BorderStyle()).
		BorderForeground(border)
}

// Badge renders short status text on a colored background.
func (t *Theme) Badge(background string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Colors.Text)).
		Background(lipgloss.Color(background)).
		Padding(0, 1)
}
