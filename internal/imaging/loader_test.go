package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createInMemoryImage creates a solid-color RGBA test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// writeTestPNG writes a solid-color PNG into a temp dir and returns its path
func writeTestPNG(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, createInMemoryImage(width, height, c)); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return path
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	path := writeTestPNG(t, 40, 30, color.RGBA{255, 0, 0, 255})

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Second load returns the cached copy even after the file is gone
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}
	cached, err := cache.Load(path)
	if err != nil {
		t.Fatalf("cached Load failed: %v", err)
	}
	if cached != img {
		t.Error("expected the cached image instance")
	}
}

func TestImageCache_LoadMissing(t *testing.T) {
	cache := NewImageCache()

	if _, err := cache.Load("/nonexistent/image.png"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestImageCache_EvictAndClear(t *testing.T) {
	cache := NewImageCache()
	path := writeTestPNG(t, 10, 10, color.RGBA{0, 255, 0, 255})

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}

	// After eviction the load must hit the disk and fail
	if _, err := cache.Load(path); err == nil {
		t.Error("expected error after eviction")
	}

	cache.Clear()
	if _, err := cache.Load(path); err == nil {
		t.Error("expected error after clear")
	}
}

func TestGetDimensions(t *testing.T) {
	tests := []struct {
		name         string
		img          image.Image
		wantChannels int
	}{
		{"rgba", image.NewRGBA(image.Rect(0, 0, 20, 10)), 4},
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 20, 10)), 4},
		{"gray", image.NewGray(image.Rect(0, 0, 20, 10)), 1},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 20, 10), image.YCbCrSubsampleRatio420), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims := GetDimensions(tt.img)
			if dims.Width != 20 || dims.Height != 10 {
				t.Errorf("dimensions: got %dx%d, want 20x10", dims.Width, dims.Height)
			}
			if dims.Channels != tt.wantChannels {
				t.Errorf("channels: got %d, want %d", dims.Channels, tt.wantChannels)
			}
		})
	}
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewImageCache()
	path := writeTestPNG(t, 64, 48, color.RGBA{0, 0, 255, 255})

	info, err := LoadImageInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 64 || info.Height != 48 {
		t.Errorf("dimensions: got %dx%d, want 64x48", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Error("file size should be positive")
	}
}
