package annotation

import (
	"context"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tripplexbns-code/ainiform-sub000/internal/imaging"
)

func annotateTestImage(t *testing.T) (*imaging.ImageCache, *Document) {
	t.Helper()
	cache := imaging.NewImageCache()
	path := writeTestPNG(t, color.RGBA{20, 30, 90, 255}, true)
	doc := New(cache, nil).Annotate(context.Background(), path)
	if !doc.Ok() {
		t.Fatalf("annotation failed: %s", doc.Error)
	}
	return cache, doc
}

func TestRender_ExplicitOutputPath(t *testing.T) {
	cache, doc := annotateTestImage(t)
	out := filepath.Join(t.TempDir(), "annotated.jpg")

	got := Render(cache, doc, out)

	if got != out {
		t.Fatalf("output path: got %s, want %s", got, out)
	}

	f, err := os.Open(got)
	if err != nil {
		t.Fatalf("annotated image missing: %v", err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("annotated image is not a valid JPEG: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("annotated image bounds: got %v, want 64x64", img.Bounds())
	}
}

func TestRender_DefaultOutputPath(t *testing.T) {
	cache, doc := annotateTestImage(t)

	got := Render(cache, doc, "")

	want := strings.TrimSuffix(doc.ImagePath, ".png") + "_annotated.jpg"
	if got != want {
		t.Fatalf("output path: got %s, want %s", got, want)
	}
	if _, err := os.Stat(got); err != nil {
		t.Errorf("annotated image missing: %v", err)
	}
}

func TestRender_SaveFailureReturnsOriginal(t *testing.T) {
	cache, doc := annotateTestImage(t)

	got := Render(cache, doc, "/nonexistent-dir/annotated.jpg")

	if got != doc.ImagePath {
		t.Errorf("got %s, want the original path %s", got, doc.ImagePath)
	}
}

func TestRender_FailedDocument(t *testing.T) {
	cache := imaging.NewImageCache()
	doc := &Document{Error: "failed to load", ImagePath: "/broken.png"}

	if got := Render(cache, doc, ""); got != "/broken.png" {
		t.Errorf("got %s, want the original path", got)
	}
	if got := Render(cache, nil, ""); got != "" {
		t.Errorf("got %s, want empty for a nil document", got)
	}
}
