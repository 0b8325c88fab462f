package cli

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/polykit/polykit/errs"
)

func TestLoadConfig_ReadsAllFields(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("testdata", "polybook.toml"), true)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Theme != "themes/ocean.toml" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "themes/ocean.toml")
	}
	if cfg.Viewport != 768 {
		t.Errorf("Viewport = %g, want 768", cfg.Viewport)
	}
	if cfg.UnitScale != 4 {
		t.Errorf("UnitScale = %g, want 4", cfg.UnitScale)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("testdata", "partial.toml"), true)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	def := DefaultConfig()
	if cfg.Viewport != 1200 {
		t.Errorf("Viewport = %g, want 1200", cfg.Viewport)
	}
	if cfg.UnitScale != def.UnitScale {
		t.Errorf("UnitScale = %g, want default %g", cfg.UnitScale, def.UnitScale)
	}
	if cfg.LogLevel != def.LogLevel {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, def.LogLevel)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := loadConfig(path, false)
	if err != nil {
		t.Errorf("optional missing file: err = %v, want nil", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("optional missing file: cfg = %+v, want defaults", cfg)
	}

	if _, err := loadConfig(path, true); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("required missing file: err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadConfig_InvalidFiles(t *testing.T) {
	tests := map[string]struct {
		file string
		code errs.Code
	}{
		"malformed toml": {file: "broken.toml", code: errs.ErrCodeInvalidConfig},
		"bad log level":  {file: "badlevel.toml", code: errs.ErrCodeInvalidConfig},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(filepath.Join("testdata", tt.file), true)
			if !errs.Is(err, tt.code) {
				t.Errorf("err = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestConfig_ValidateRejectsNonPositiveSizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Viewport = 0
	if err := cfg.validate(); !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("zero viewport: err = %v, want INVALID_CONFIG", err)
	}

	cfg = DefaultConfig()
	cfg.UnitScale = -1
	if err := cfg.validate(); !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("negative unit scale: err = %v, want INVALID_CONFIG", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		"empty is info": {in: "", want: log.InfoLevel},
		"debug":         {in: "debug", want: log.DebugLevel},
		"warn":          {in: "warn", want: log.WarnLevel},
		"error":         {in: "error", want: log.ErrorLevel},
		"unknown":       {in: "loud", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}
