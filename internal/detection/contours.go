package detection

import (
	"image"
)

// Contour is a connected component of foreground pixels in a binary mask.
//
// Area is the number of pixels in the component and Perimeter the number of
// component pixels that touch a background pixel (or the image border), which
// approximates the boundary length for the circularity metric.
type Contour struct {
	Points    []image.Point
	Area      float64
	Perimeter float64
	Bounds    image.Rectangle
}

// AspectRatio returns width/height of the contour's bounding box, or 0 when
// the height is 0.
func (c Contour) AspectRatio() float64 {
	w := c.Bounds.Dx()
	h := c.Bounds.Dy()
	if h == 0 {
		return 0
	}
	return float64(w) / float64(h)
}

// FindContours finds connected components of foreground (white) pixels in a
// binary mask.
//
// Connectivity is 8-connected. Components smaller than minSize pixels are
// discarded as noise. The returned contours carry their pixel area, boundary
// perimeter, and bounding box.
func FindContours(mask *image.Gray, minSize int) []Contour {
	bounds := mask.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	foreground := func(x, y int) bool {
		if x < 0 || x >= width || y < 0 || y >= height {
			return false
		}
		return mask.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y >= 128
	}

	var contours []Contour
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !foreground(x, y) || visited[y][x] {
				continue
			}
			points := floodFill(foreground, visited, x, y, width, height)
			if len(points) < minSize {
				continue
			}
			contours = append(contours, summarize(points, foreground))
		}
	}
	return contours
}

// floodFill collects the connected component containing (startX, startY).
//
// Uses a stack-based approach (not recursive) to avoid stack overflow on
// large components. Uses 8-connectivity (includes diagonal neighbors).
func floodFill(foreground func(x, y int) bool, visited [][]bool, startX, startY, width, height int) []image.Point {
	var points []image.Point
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !foreground(p.X, p.Y) {
			continue
		}

		visited[p.Y][p.X] = true
		points = append(points, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return points
}

// summarize computes area, perimeter and bounding box for a component.
func summarize(points []image.Point, foreground func(x, y int) bool) Contour {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	perimeter := 0

	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}

		// 4-connected boundary test
		if !foreground(p.X-1, p.Y) || !foreground(p.X+1, p.Y) ||
			!foreground(p.X, p.Y-1) || !foreground(p.X, p.Y+1) {
			perimeter++
		}
	}

	return Contour{
		Points:    points,
		Area:      float64(len(points)),
		Perimeter: float64(perimeter),
		Bounds:    image.Rect(minX, minY, maxX+1, maxY+1),
	}
}

// LargestContour returns the contour with the greatest area, or false when
// the slice is empty.
func LargestContour(contours []Contour) (Contour, bool) {
	if len(contours) == 0 {
		return Contour{}, false
	}
	largest := contours[0]
	for _, c := range contours[1:] {
		if c.Area > largest.Area {
			largest = c
		}
	}
	return largest, true
}
