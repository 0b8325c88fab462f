package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/polykit/polykit"
	"github.com/polykit/polykit/errs"
)

func demoLayout() *polykit.Flex {
	f := polykit.New(polykit.WithGap(10))
	f.AddItem(polykit.FixedWidget{W: 100, H: 40}, polykit.WithShrink(0))
	f.AddItem(polykit.FixedWidget{W: 60, H: 40}, polykit.WithGrow(1))
	return f
}

func buildDemo(width float64) *polykit.Flex {
	return demoLayout()
}

func TestWriteSVG_DrawsFrameAndItems(t *testing.T) {
	f := demoLayout()
	f.OnResize(400, 40)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, f, SnapshotOptions{Title: "demo", ShowLabels: true}); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"<svg", "</svg>", "<rect", "demo"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// One frame rect plus one per item.
	if got := strings.Count(out, "<rect"); got != 3 {
		t.Errorf("rect count = %d, want 3", got)
	}
}

func TestWriteSVG_UnsizedContainerFails(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSVG(&buf, demoLayout(), SnapshotOptions{})
	if !errs.Is(err, errs.ErrCodeExportFailed) {
		t.Fatalf("err = %v, want EXPORT_FAILED", err)
	}
}

func TestSaveSVG_WritesFile(t *testing.T) {
	f := demoLayout()
	f.OnResize(600, 40)

	path := filepath.Join(t.TempDir(), "layout.svg")
	if err := SaveSVG(path, f, SnapshotOptions{}); err != nil {
		t.Fatalf("SaveSVG: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported file is empty")
	}
}

func TestExportViewports_WritesOnePerWidth(t *testing.T) {
	dir := t.TempDir()
	if err := ExportViewports(context.Background(), dir, "demo", 40, buildDemo, 320, 992); err != nil {
		t.Fatalf("ExportViewports: %v", err)
	}

	for _, name := range []string{"demo-320w.svg", "demo-992w.svg"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestExportViewports_DefaultsToStockWidths(t *testing.T) {
	dir := t.TempDir()
	if err := ExportViewports(context.Background(), dir, "", 40, buildDemo); err != nil {
		t.Fatalf("ExportViewports: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(Viewports) {
		t.Errorf("wrote %d files, want %d", len(entries), len(Viewports))
	}
}

func TestExportViewports_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := ExportViewports(ctx, t.TempDir(), "demo", 40, buildDemo); err == nil {
		t.Error("expected error from canceled context")
	}
}
