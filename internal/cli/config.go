package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/polykit/polykit/book"
	"github.com/polykit/polykit/errs"
)

// defaultConfigPath is probed when --config is not given. A missing
// file at this path is not an error.
const defaultConfigPath = "polybook.toml"

// Config is the polybook configuration, loaded from polybook.toml.
type Config struct {
	// Theme is the path to a theme TOML file. Empty uses the built-in
	// default theme and disables hot reload.
	Theme string `toml:"theme"`
	// Viewport is the initial simulated viewport width in layout units.
	Viewport float64 `toml:"viewport"`
	// UnitScale is how many layout units make up one terminal cell.
	UnitScale float64 `toml:"unit_scale"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Viewport:  992,
		UnitScale: book.UnitScale,
		LogLevel:  "info",
	}
}

// loadConfig reads a config file over the defaults. When required is
// false a missing file yields the defaults.
func loadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, errs.Wrap(errs.ErrCodeFileNotFound, err, "reading config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parsing config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Viewport <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "viewport must be positive, got %g", c.Viewport)
	}
	if c.UnitScale <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "unit_scale must be positive, got %g", c.UnitScale)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// parseLogLevel maps a config level name to a charm log level. An empty
// name means info.
func parseLogLevel(s string) (log.Level, error) {
	switch s {
	case "", "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, errs.New(errs.ErrCodeInvalidConfig, "unknown log level %q", s)
	}
}
