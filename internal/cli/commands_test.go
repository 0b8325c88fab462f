package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/polykit/polykit/book"
	"github.com/polykit/polykit/errs"
	"github.com/polykit/polykit/export"
)

func quietContext() context.Context {
	return withLogger(context.Background(), log.New(io.Discard))
}

func TestRunExport_SingleStoryAcrossViewports(t *testing.T) {
	dir := t.TempDir()
	state := &appState{cfg: DefaultConfig()}

	err := runExport(quietContext(), state, "grid", exportOpts{out: dir, height: 300})
	if err != nil {
		t.Fatalf("runExport: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(export.Viewports) {
		t.Fatalf("wrote %d files, want %d", len(entries), len(export.Viewports))
	}
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "grid-") {
			t.Errorf("file %q not named after the story", e.Name())
		}
	}
}

func TestRunExport_AllStoriesAtOneWidth(t *testing.T) {
	dir := t.TempDir()
	state := &appState{cfg: DefaultConfig()}

	err := runExport(quietContext(), state, "", exportOpts{out: dir, height: 300, width: 800, all: true})
	if err != nil {
		t.Fatalf("runExport --all: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := book.Builtin().Len(); len(entries) != want {
		t.Errorf("wrote %d files, want one per story (%d)", len(entries), want)
	}
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), "-800w.svg") {
			t.Errorf("file %q missing width suffix", e.Name())
		}
	}
}

func TestRunExport_UnknownStory(t *testing.T) {
	state := &appState{cfg: DefaultConfig()}

	err := runExport(quietContext(), state, "nope", exportOpts{out: t.TempDir(), height: 300})
	if !errs.Is(err, errs.ErrCodeStoryNotFound) {
		t.Errorf("err = %v, want STORY_NOT_FOUND", err)
	}
}

func TestThemesCmd_PrintsBuiltinTheme(t *testing.T) {
	cmd := newThemesCmd(&appState{cfg: DefaultConfig()})
	cmd.SilenceUsage = true
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("themes: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "default (built-in)") {
		t.Errorf("output missing theme header:\n%s", out)
	}
	if !strings.Contains(out, "#7D56F4") {
		t.Errorf("output missing primary color:\n%s", out)
	}
}

func TestThemesCmd_FailsOnBrokenTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("name = [oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newThemesCmd(&appState{cfg: DefaultConfig()})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{path})
	cmd.SetContext(quietContext())

	if err := cmd.Execute(); !errs.Is(err, errs.ErrCodeInvalidTheme) {
		t.Errorf("err = %v, want INVALID_THEME", err)
	}
}
