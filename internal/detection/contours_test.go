package detection

import (
	"image"
	"image/color"
	"testing"
)

// createMask builds a binary mask with white rectangles on black
func createMask(width, height int, rects ...image.Rectangle) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, width, height))
	for _, r := range rects {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				mask.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return mask
}

func TestFindContours_SingleSquare(t *testing.T) {
	mask := createMask(50, 50, image.Rect(10, 10, 30, 30))

	contours := FindContours(mask, 1)

	if len(contours) != 1 {
		t.Fatalf("contour count: got %d, want 1", len(contours))
	}

	c := contours[0]
	if c.Area != 400 {
		t.Errorf("Area: got %f, want 400", c.Area)
	}
	if c.Bounds != image.Rect(10, 10, 30, 30) {
		t.Errorf("Bounds: got %v, want (10,10)-(30,30)", c.Bounds)
	}
	if c.AspectRatio() != 1.0 {
		t.Errorf("AspectRatio: got %f, want 1.0", c.AspectRatio())
	}
	// 20x20 square boundary: 4*20 - 4 corners counted once = 76
	if c.Perimeter != 76 {
		t.Errorf("Perimeter: got %f, want 76", c.Perimeter)
	}
}

func TestFindContours_MultipleComponents(t *testing.T) {
	mask := createMask(60, 60,
		image.Rect(5, 5, 15, 15),
		image.Rect(40, 40, 55, 50),
	)

	contours := FindContours(mask, 1)

	if len(contours) != 2 {
		t.Fatalf("contour count: got %d, want 2", len(contours))
	}
}

func TestFindContours_MinSizeFilter(t *testing.T) {
	mask := createMask(40, 40,
		image.Rect(5, 5, 7, 7),    // 4 px, filtered
		image.Rect(20, 20, 30, 30), // 100 px, kept
	)

	contours := FindContours(mask, 10)

	if len(contours) != 1 {
		t.Fatalf("contour count: got %d, want 1", len(contours))
	}
	if contours[0].Area != 100 {
		t.Errorf("Area: got %f, want 100", contours[0].Area)
	}
}

func TestFindContours_DiagonalConnectivity(t *testing.T) {
	// Two pixels touching only diagonally form one 8-connected component
	mask := image.NewGray(image.Rect(0, 0, 10, 10))
	mask.SetGray(3, 3, color.Gray{Y: 255})
	mask.SetGray(4, 4, color.Gray{Y: 255})

	contours := FindContours(mask, 1)

	if len(contours) != 1 {
		t.Fatalf("contour count: got %d, want 1 (8-connected)", len(contours))
	}
	if contours[0].Area != 2 {
		t.Errorf("Area: got %f, want 2", contours[0].Area)
	}
}

func TestFindContours_EmptyMask(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 20, 20))

	if contours := FindContours(mask, 1); len(contours) != 0 {
		t.Errorf("contour count: got %d, want 0", len(contours))
	}
}

func TestLargestContour(t *testing.T) {
	mask := createMask(60, 60,
		image.Rect(5, 5, 10, 10),   // 25 px
		image.Rect(20, 20, 40, 40), // 400 px
		image.Rect(50, 50, 55, 58), // 40 px
	)

	contours := FindContours(mask, 1)
	largest, ok := LargestContour(contours)

	if !ok {
		t.Fatal("expected a largest contour")
	}
	if largest.Area != 400 {
		t.Errorf("Area: got %f, want 400", largest.Area)
	}
}

func TestLargestContour_Empty(t *testing.T) {
	if _, ok := LargestContour(nil); ok {
		t.Error("expected no contour for empty slice")
	}
}
