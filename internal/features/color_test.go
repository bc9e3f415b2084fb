package features

import (
	"image"
	"image/color"
	"math"
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

// createQuadrantImage creates an image with a different solid color per quadrant
func createQuadrantImage(size int, colors [4]color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	mid := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			idx := 0
			if x >= mid {
				idx++
			}
			if y >= mid {
				idx += 2
			}
			img.Set(x, y, colors[idx])
		}
	}
	return img
}

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestColors_SolidBlue(t *testing.T) {
	img := createInMemoryImage(32, 32, color.RGBA{0, 0, 200, 255})

	feats, err := Colors(img)
	if err != nil {
		t.Fatalf("Colors failed: %v", err)
	}
	if !feats.Ok() {
		t.Fatalf("features error: %s", feats.Error)
	}

	// BGR order: blue first
	wantBGR := []float64{200, 0, 0}
	for i, want := range wantBGR {
		if !approxEqual(feats.MeanBGR[i], want, 0.5) {
			t.Errorf("MeanBGR[%d]: got %f, want %f", i, feats.MeanBGR[i], want)
		}
		if feats.StdBGR[i] != 0 {
			t.Errorf("StdBGR[%d]: got %f, want 0", i, feats.StdBGR[i])
		}
	}

	// Hue 240 degrees maps to 120 on the 0-180 scale; full saturation
	if !approxEqual(feats.MeanHSV[0], 120, 1) {
		t.Errorf("MeanHSV[0]: got %f, want 120", feats.MeanHSV[0])
	}
	if !approxEqual(feats.MeanHSV[1], 255, 1) {
		t.Errorf("MeanHSV[1]: got %f, want 255", feats.MeanHSV[1])
	}
	if !approxEqual(feats.MeanHSV[2], 200, 1) {
		t.Errorf("MeanHSV[2]: got %f, want 200", feats.MeanHSV[2])
	}

	if feats.DominantColors == nil {
		t.Error("DominantColors should never be nil")
	}
}

func TestAnalyzeColors_SolidRed(t *testing.T) {
	img := createInMemoryImage(32, 32, color.RGBA{255, 0, 0, 255})

	analysis, err := AnalyzeColors(img)
	if err != nil {
		t.Fatalf("AnalyzeColors failed: %v", err)
	}
	if !analysis.Ok() {
		t.Fatalf("analysis error: %s", analysis.Error)
	}

	wantBGR := []float64{0, 0, 255}
	for i, want := range wantBGR {
		if !approxEqual(analysis.ColorSpaces.BGRMeans[i], want, 0.5) {
			t.Errorf("BGRMeans[%d]: got %f, want %f", i, analysis.ColorSpaces.BGRMeans[i], want)
		}
	}

	if analysis.ColorHarmony.HueVariety != 1 {
		t.Errorf("HueVariety: got %d, want 1", analysis.ColorHarmony.HueVariety)
	}
	if analysis.ColorHarmony.ColorTemperature != "warm" {
		t.Errorf("ColorTemperature: got %s, want warm", analysis.ColorHarmony.ColorTemperature)
	}
	if analysis.ColorHarmony.SaturationBalance != 0 {
		t.Errorf("SaturationBalance: got %f, want 0", analysis.ColorHarmony.SaturationBalance)
	}

	if analysis.ColorPattern.TotalColors != 1 {
		t.Errorf("TotalColors: got %d, want 1", analysis.ColorPattern.TotalColors)
	}
	if analysis.ColorPattern.DominantColorRatio != 1 {
		t.Errorf("DominantColorRatio: got %f, want 1", analysis.ColorPattern.DominantColorRatio)
	}
}

func TestAnalyzeColors_Temperature(t *testing.T) {
	tests := []struct {
		name string
		c    color.RGBA
		want string
	}{
		{"red is warm", color.RGBA{255, 0, 0, 255}, "warm"},
		{"green is cool", color.RGBA{0, 255, 0, 255}, "cool"},
		{"blue is cool", color.RGBA{0, 0, 255, 255}, "cool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := AnalyzeColors(createInMemoryImage(16, 16, tt.c))
			if err != nil {
				t.Fatalf("AnalyzeColors failed: %v", err)
			}
			if analysis.ColorHarmony.ColorTemperature != tt.want {
				t.Errorf("ColorTemperature: got %s, want %s", analysis.ColorHarmony.ColorTemperature, tt.want)
			}
		})
	}
}

func TestAnalyzeColors_Consistency(t *testing.T) {
	uniform := createInMemoryImage(32, 32, color.RGBA{60, 90, 120, 255})
	patchy := createQuadrantImage(32, [4]color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 255, 0, 255},
	})

	uniformAnalysis, err := AnalyzeColors(uniform)
	if err != nil {
		t.Fatalf("AnalyzeColors failed: %v", err)
	}
	patchyAnalysis, err := AnalyzeColors(patchy)
	if err != nil {
		t.Fatalf("AnalyzeColors failed: %v", err)
	}

	if uniformAnalysis.ColorConsistency.RegionsAnalyzed != 4 {
		t.Errorf("RegionsAnalyzed: got %d, want 4", uniformAnalysis.ColorConsistency.RegionsAnalyzed)
	}
	if !approxEqual(uniformAnalysis.ColorConsistency.ConsistencyScore, 1.0, 1e-9) {
		t.Errorf("uniform consistency: got %f, want 1.0", uniformAnalysis.ColorConsistency.ConsistencyScore)
	}
	if patchyAnalysis.ColorConsistency.ConsistencyScore >= uniformAnalysis.ColorConsistency.ConsistencyScore {
		t.Errorf("patchy image should be less consistent: %f >= %f",
			patchyAnalysis.ColorConsistency.ConsistencyScore,
			uniformAnalysis.ColorConsistency.ConsistencyScore)
	}
	if patchyAnalysis.ColorConsistency.ColorVariation <= 0 {
		t.Error("patchy image should have positive color variation")
	}
}

func TestChannelStats_Entropy(t *testing.T) {
	// A two-color image spreads mass over two histogram bins
	img := createQuadrantImage(32, [4]color.RGBA{
		{255, 0, 0, 255},
		{255, 0, 0, 255},
		{0, 0, 255, 255},
		{0, 0, 255, 255},
	})

	analysis, err := AnalyzeColors(img)
	if err != nil {
		t.Fatalf("AnalyzeColors failed: %v", err)
	}

	if analysis.ColorPattern.TotalColors != 2 {
		t.Errorf("TotalColors: got %d, want 2", analysis.ColorPattern.TotalColors)
	}
	if !approxEqual(analysis.ColorPattern.DominantColorRatio, 0.5, 1e-9) {
		t.Errorf("DominantColorRatio: got %f, want 0.5", analysis.ColorPattern.DominantColorRatio)
	}
}
