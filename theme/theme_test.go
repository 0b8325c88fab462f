package theme

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/polykit/polykit/errs"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestLoadMergesOntoDefault(t *testing.T) {
	th, err := Load(filepath.Join("testdata", "ocean.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if th.Name != "ocean" {
		t.Errorf("Name = %q, want %q", th.Name, "ocean")
	}
	if th.Colors.Primary != "#1B9AAA" {
		t.Errorf("Colors.Primary = %q, want %q", th.Colors.Primary, "#1B9AAA")
	}
	if th.Border != "double" {
		t.Errorf("Border = %q, want %q", th.Border, "double")
	}
	if th.Spacing.MD != 6 {
		t.Errorf("Spacing.MD = %v, want 6", th.Spacing.MD)
	}

	// Tokens the file omits keep the default values.
	def := Default()
	if th.Colors.Text != def.Colors.Text {
		t.Errorf("Colors.Text = %q, want default %q", th.Colors.Text, def.Colors.Text)
	}
	if th.Spacing.XS != def.Spacing.XS {
		t.Errorf("Spacing.XS = %v, want default %v", th.Spacing.XS, def.Spacing.XS)
	}
}

func TestDecodeMergesOntoDefault(t *testing.T) {
	th, err := Decode([]byte("name = \"inline\"\n"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if th.Name != "inline" {
		t.Errorf("Name = %q, want %q", th.Name, "inline")
	}
	if th.Border != Default().Border {
		t.Errorf("Border = %q, want default %q", th.Border, Default().Border)
	}
}

func TestDecodeRejectsInvalidTokens(t *testing.T) {
	_, err := Decode([]byte("border = \"wavy\"\n"))
	if err == nil {
		t.Fatal("Decode(unknown border) should fail")
	}
	if !errs.Is(err, errs.ErrCodeInvalidTheme) {
		t.Errorf("error code = %q, want %q", errs.GetCode(err), errs.ErrCodeInvalidTheme)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.toml"))
	if err == nil {
		t.Fatal("Load(missing) should fail")
	}
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("error code = %q, want %q", errs.GetCode(err), errs.ErrCodeFileNotFound)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "broken.toml"))
	if err == nil {
		t.Fatal("Load(broken) should fail")
	}
	if !errs.Is(err, errs.ErrCodeInvalidTheme) {
		t.Errorf("error code = %q, want %q", errs.GetCode(err), errs.ErrCodeInvalidTheme)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := map[string]func(*Theme){
		"non-hex color":      func(th *Theme) { th.Colors.Primary = "purple" },
		"empty color":        func(th *Theme) { th.Colors.Danger = "" },
		"negative spacing":   func(th *Theme) { th.Spacing.LG = -1 },
		"unknown border":     func(th *Theme) { th.Border = "wavy" },
		"short invalid hex":  func(th *Theme) { th.Colors.Text = "#12" },
		"hex without prefix": func(th *Theme) { th.Colors.Muted = "AABBCC" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			th := Default()
			mutate(th)
			err := th.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errs.Is(err, errs.ErrCodeInvalidTheme) {
				t.Errorf("error code = %q, want %q", errs.GetCode(err), errs.ErrCodeInvalidTheme)
			}
		})
	}
}

func TestValidateAcceptsShortHex(t *testing.T) {
	th := Default()
	th.Colors.Primary = "#ABC"
	if err := th.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for #ABC", err)
	}
}

func TestWatchEmitsInitialTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	writeTheme(t, path, "first")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	select {
	case th := <-out:
		if th.Name != "first" {
			t.Errorf("Name = %q, want %q", th.Name, "first")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for initial theme")
	}
}

func TestWatchEmitsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	writeTheme(t, path, "first")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	select {
	case <-out:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for initial theme")
	}

	writeTheme(t, path, "second")

	select {
	case th := <-out:
		if th.Name != "second" {
			t.Errorf("Name = %q, want %q", th.Name, "second")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for rewritten theme")
	}
}

func TestWatchSkipsInvalidWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	writeTheme(t, path, "first")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	select {
	case <-out:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for initial theme")
	}

	if err := os.WriteFile(path, []byte("border = \"wavy\"\n"), 0o600); err != nil {
		t.Fatalf("writing invalid theme: %v", err)
	}
	writeTheme(t, path, "third")

	select {
	case th := <-out:
		if th.Name != "third" {
			t.Errorf("Name = %q, want %q (invalid write skipped)", th.Name, "third")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for valid theme after invalid write")
	}
}

func TestWatchSkipsTruncatedSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	writeTheme(t, path, "first")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	select {
	case <-out:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for initial theme")
	}

	// A truncating save leaves the file empty until the content lands.
	// The empty state must not surface as a default theme.
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("truncating theme file: %v", err)
	}
	writeTheme(t, path, "second")

	select {
	case th := <-out:
		if th.Name != "second" {
			t.Errorf("Name = %q, want %q (empty write skipped)", th.Name, "second")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for theme after truncation")
	}
}

func TestWatchMissingFile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := Watch(ctx, filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Watch(missing) should fail")
	}
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("error code = %q, want %q", errs.GetCode(err), errs.ErrCodeFileNotFound)
	}
}

func writeTheme(t *testing.T, path, name string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("name = \""+name+"\"\n"), 0o600); err != nil {
		t.Fatalf("writing theme file: %v", err)
	}
}
