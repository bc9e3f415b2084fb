package features

import (
	"image"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/tripplexbns-code/ainiform-sub000/internal/imaging"
)

// LBP parameters: 8 sample points on a radius-3 circle, uniform method,
// histogrammed into 10 bins over [0,10).
//
// lbpEpsilon absorbs bilinear-interpolation rounding so that flat regions
// threshold as "neighbor equals center" instead of leaking into the
// non-uniform bin.
const (
	lbpRadius  = 3.0
	lbpPoints  = 8
	lbpBins    = 10
	lbpEpsilon = 1e-6
)

// GLCM parameters: 256 gray levels, symmetric + normalized, evaluated at
// three distances and four angles. Property vectors are flattened
// distance-major (d=1 angles 0..135, then d=2, then d=3).
var (
	glcmDistances = []int{1, 2, 3}
	glcmAngles    = []float64{0, 45, 90, 135}
)

// TextureFeatures is the generic texture sub-bundle: an LBP histogram plus
// five GLCM properties, one value per distance x angle combination.
type TextureFeatures struct {
	LBPHistogram      []float64 `json:"lbp_histogram"`
	GLCMContrast      []float64 `json:"glcm_contrast"`
	GLCMDissimilarity []float64 `json:"glcm_dissimilarity"`
	GLCMHomogeneity   []float64 `json:"glcm_homogeneity"`
	GLCMEnergy        []float64 `json:"glcm_energy"`
	GLCMCorrelation   []float64 `json:"glcm_correlation"`
	Error             string    `json:"error,omitempty"`
}

// Ok reports whether texture extraction succeeded.
func (f *TextureFeatures) Ok() bool {
	return f != nil && f.Error == ""
}

// FabricFeatures is the uniform-specific texture summary persisted as the
// uniform_features document section.
type FabricFeatures struct {
	FabricTextureLBP   []float64 `json:"fabric_texture_lbp"`
	PatternEdgeDensity float64   `json:"pattern_edge_density"`
	FabricSmoothness   float64   `json:"fabric_smoothness"`
	TextureComplexity  float64   `json:"texture_complexity"`
	Error              string    `json:"error,omitempty"`
}

// Ok reports whether fabric feature extraction succeeded.
func (f *FabricFeatures) Ok() bool {
	return f != nil && f.Error == ""
}

// Texture extracts the generic texture sub-bundle from an image.
func Texture(img image.Image) (*TextureFeatures, error) {
	gray := imaging.GrayMatrix(img)

	levels := quantize(gray)
	contrast, dissimilarity, homogeneity, energy, correlation := glcmProperties(levels)

	return &TextureFeatures{
		LBPHistogram:      LBPHistogram(gray),
		GLCMContrast:      contrast,
		GLCMDissimilarity: dissimilarity,
		GLCMHomogeneity:   homogeneity,
		GLCMEnergy:        energy,
		GLCMCorrelation:   correlation,
	}, nil
}

// Fabric extracts the uniform-specific fabric summary: weave texture via LBP,
// print/pattern presence via Canny edge density, and smoothness/complexity
// from the Sobel gradient field.
func Fabric(img image.Image) (*FabricFeatures, error) {
	gray := imaging.GrayMatrix(img)

	edges := imaging.CannyEdges(gray, 50, 150)
	magnitude, _ := imaging.Gradient(gray)

	flat := flatten(magnitude)
	meanMag := stat.Mean(flat, nil)
	stdMag := stat.PopStdDev(flat, nil)

	return &FabricFeatures{
		FabricTextureLBP:   LBPHistogram(gray),
		PatternEdgeDensity: imaging.EdgeDensity(edges),
		FabricSmoothness:   1.0 / (1.0 + meanMag),
		TextureComplexity:  stdMag,
	}, nil
}

// LBPHistogram computes a uniform local binary pattern over the grayscale
// matrix and returns its density-normalized 10-bin histogram.
//
// For each pixel, 8 points on a radius-3 circle are sampled with bilinear
// interpolation and thresholded against the center. Patterns with at most two
// 0/1 transitions are "uniform" and coded by their popcount (0..8); all other
// patterns share the code 9.
func LBPHistogram(gray [][]float64) []float64 {
	height := len(gray)
	if height == 0 {
		return make([]float64, lbpBins)
	}
	width := len(gray[0])

	hist := make([]float64, lbpBins)
	total := 0.0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			center := gray[y][x]

			var bits [lbpPoints]int
			for k := 0; k < lbpPoints; k++ {
				angle := 2 * math.Pi * float64(k) / lbpPoints
				sx := float64(x) + lbpRadius*math.Cos(angle)
				sy := float64(y) - lbpRadius*math.Sin(angle)
				if bilinear(gray, sx, sy, width, height) >= center-lbpEpsilon {
					bits[k] = 1
				}
			}

			transitions := 0
			ones := 0
			for k := 0; k < lbpPoints; k++ {
				ones += bits[k]
				if bits[k] != bits[(k+1)%lbpPoints] {
					transitions++
				}
			}

			code := lbpPoints + 1 // non-uniform
			if transitions <= 2 {
				code = ones
			}
			if code < lbpBins {
				hist[code]++
			}
			total++
		}
	}

	if total > 0 {
		for i := range hist {
			hist[i] /= total
		}
	}
	return hist
}

// bilinear samples the grayscale matrix at a fractional coordinate, clamping
// to the image border.
func bilinear(gray [][]float64, x, y float64, width, height int) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	at := func(px, py int) float64 {
		if px < 0 {
			px = 0
		}
		if px >= width {
			px = width - 1
		}
		if py < 0 {
			py = 0
		}
		if py >= height {
			py = height - 1
		}
		return gray[py][px]
	}

	top := at(x0, y0)*(1-fx) + at(x0+1, y0)*fx
	bottom := at(x0, y0+1)*(1-fx) + at(x0+1, y0+1)*fx
	return top*(1-fy) + bottom*fy
}

// quantize rounds a grayscale matrix to integer levels 0..255.
func quantize(gray [][]float64) [][]int {
	levels := make([][]int, len(gray))
	for y, row := range gray {
		levels[y] = make([]int, len(row))
		for x, v := range row {
			l := int(math.Round(v))
			if l < 0 {
				l = 0
			}
			if l > 255 {
				l = 255
			}
			levels[y][x] = l
		}
	}
	return levels
}

// glcmProperties computes the five named GLCM properties for every
// distance x angle combination.
func glcmProperties(levels [][]int) (contrast, dissimilarity, homogeneity, energy, correlation []float64) {
	for _, d := range glcmDistances {
		for _, angle := range glcmAngles {
			p := cooccurrence(levels, d, angle)
			c, ds, h, e, r := glcmProps(p)
			contrast = append(contrast, c)
			dissimilarity = append(dissimilarity, ds)
			homogeneity = append(homogeneity, h)
			energy = append(energy, e)
			correlation = append(correlation, r)
		}
	}
	return contrast, dissimilarity, homogeneity, energy, correlation
}

// cooccurrence builds a symmetric, normalized 256x256 co-occurrence matrix
// for one distance/angle offset.
func cooccurrence(levels [][]int, distance int, angleDeg float64) []float64 {
	height := len(levels)
	if height == 0 {
		return nil
	}
	width := len(levels[0])

	rad := angleDeg * math.Pi / 180
	dRow := -int(math.Round(float64(distance) * math.Sin(rad)))
	dCol := int(math.Round(float64(distance) * math.Cos(rad)))

	p := make([]float64, 256*256)
	total := 0.0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ny := y + dRow
			nx := x + dCol
			if ny < 0 || ny >= height || nx < 0 || nx >= width {
				continue
			}
			i := levels[y][x]
			j := levels[ny][nx]
			p[i*256+j]++
			p[j*256+i]++ // symmetric
			total += 2
		}
	}

	if total > 0 {
		for k := range p {
			p[k] /= total
		}
	}
	return p
}

// glcmProps extracts contrast, dissimilarity, homogeneity, energy and
// correlation from a normalized co-occurrence matrix. Correlation is 1 for
// constant images (zero variance), matching the usual convention.
func glcmProps(p []float64) (contrast, dissimilarity, homogeneity, energy, correlation float64) {
	if len(p) == 0 {
		return 0, 0, 0, 0, 1
	}

	var meanI float64
	for i := 0; i < 256; i++ {
		rowSum := 0.0
		for j := 0; j < 256; j++ {
			rowSum += p[i*256+j]
		}
		meanI += float64(i) * rowSum
	}

	var varI float64
	asm := 0.0
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			v := p[i*256+j]
			if v == 0 {
				continue
			}
			diff := float64(i - j)
			contrast += v * diff * diff
			dissimilarity += v * math.Abs(diff)
			homogeneity += v / (1 + diff*diff)
			asm += v * v
			varI += v * (float64(i) - meanI) * (float64(i) - meanI)
		}
	}
	energy = math.Sqrt(asm)

	if varI == 0 {
		correlation = 1
		return contrast, dissimilarity, homogeneity, energy, correlation
	}
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			v := p[i*256+j]
			if v == 0 {
				continue
			}
			correlation += v * (float64(i) - meanI) * (float64(j) - meanI) / varI
		}
	}
	return contrast, dissimilarity, homogeneity, energy, correlation
}

// flatten concatenates matrix rows into one slice.
func flatten(m [][]float64) []float64 {
	if len(m) == 0 {
		return nil
	}
	out := make([]float64, 0, len(m)*len(m[0]))
	for _, row := range m {
		out = append(out, row...)
	}
	return out
}
