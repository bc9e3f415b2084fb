package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// createEdgeTestImage creates an image with a clear vertical edge: the left
// half black, the right half white.
func createEdgeTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				img.Set(x, y, color.RGBA{0, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
	return img
}

func TestGrayMatrix(t *testing.T) {
	tests := []struct {
		name string
		c    color.RGBA
		want float64
	}{
		{"black", color.RGBA{0, 0, 0, 255}, 0},
		{"white", color.RGBA{255, 255, 255, 255}, 255},
		{"pure red", color.RGBA{255, 0, 0, 255}, 0.299 * 255},
		{"pure green", color.RGBA{0, 255, 0, 255}, 0.587 * 255},
		{"pure blue", color.RGBA{0, 0, 255, 255}, 0.114 * 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gray := GrayMatrix(createInMemoryImage(4, 3, tt.c))

			if len(gray) != 3 || len(gray[0]) != 4 {
				t.Fatalf("matrix shape: got %dx%d, want 3x4", len(gray), len(gray[0]))
			}
			if math.Abs(gray[1][2]-tt.want) > 0.5 {
				t.Errorf("gray value: got %f, want %f", gray[1][2], tt.want)
			}
		})
	}
}

func TestGradient_FlatImage(t *testing.T) {
	gray := GrayMatrix(createInMemoryImage(20, 20, color.RGBA{128, 128, 128, 255}))

	magnitude, direction := Gradient(gray)

	if len(magnitude) != 20 || len(direction) != 20 {
		t.Fatalf("unexpected output shape")
	}
	// Allow float residue from the kernel accumulation
	for y := range magnitude {
		for x := range magnitude[y] {
			if magnitude[y][x] > 1e-9 {
				t.Fatalf("flat image gradient at (%d,%d): got %g, want ~0", x, y, magnitude[y][x])
			}
		}
	}
}

func TestGradient_VerticalEdge(t *testing.T) {
	gray := GrayMatrix(createEdgeTestImage(20, 20))

	magnitude, _ := Gradient(gray)

	// The columns either side of the edge must carry a strong gradient
	mid := 10
	if magnitude[10][mid-1] == 0 && magnitude[10][mid] == 0 {
		t.Error("expected non-zero gradient at the edge")
	}
	// Far from the edge the gradient is zero
	if magnitude[10][2] > 1e-9 {
		t.Errorf("gradient far from edge: got %g, want ~0", magnitude[10][2])
	}
}

func TestCannyEdges_FlatImage(t *testing.T) {
	gray := GrayMatrix(createInMemoryImage(50, 50, color.RGBA{128, 128, 128, 255}))

	edges := CannyEdges(gray, 50, 150)

	if density := EdgeDensity(edges); density != 0 {
		t.Errorf("flat image edge density: got %f, want 0", density)
	}
}

func TestCannyEdges_VerticalEdge(t *testing.T) {
	gray := GrayMatrix(createEdgeTestImage(50, 50))

	edges := CannyEdges(gray, 50, 150)

	density := EdgeDensity(edges)
	if density == 0 {
		t.Fatal("expected edges in an image with a strong vertical boundary")
	}
	// The edge is a thin vertical band; density must stay well below 20%
	if density > 0.2 {
		t.Errorf("edge density: got %f, want a thin edge band", density)
	}

	// Edge pixels cluster around the middle column
	foundNearMiddle := false
	for y := 5; y < 45; y++ {
		for x := 20; x < 30; x++ {
			if edges[y][x] {
				foundNearMiddle = true
			}
		}
	}
	if !foundNearMiddle {
		t.Error("expected edge pixels near the middle column")
	}
}

func TestEdgeDensity_Empty(t *testing.T) {
	if d := EdgeDensity(nil); d != 0 {
		t.Errorf("empty mask density: got %f, want 0", d)
	}
}

func TestEdgeDensity_Counts(t *testing.T) {
	mask := [][]bool{
		{true, false},
		{false, true},
	}
	if d := EdgeDensity(mask); d != 0.5 {
		t.Errorf("density: got %f, want 0.5", d)
	}
}
