package features

import (
	"image"
	"math"
	"sort"

	"github.com/EdlinOrg/prominentcolor"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"

	"github.com/tripplexbns-code/ainiform-sub000/internal/imaging"
)

// Channel value conventions follow OpenCV scales so that stored documents and
// signatures stay comparable with historical records: BGR channels 0-255,
// hue 0-180, saturation/value 0-255, L 0-255, a/b offset by 128.

// ColorFeatures is the generic color sub-bundle: per-channel statistics plus
// dominant color clusters (k=5).
type ColorFeatures struct {
	MeanBGR        []float64 `json:"mean_bgr"`
	StdBGR         []float64 `json:"std_bgr"`
	MeanHSV        []float64 `json:"mean_hsv"`
	StdHSV         []float64 `json:"std_hsv"`
	DominantColors [][]int   `json:"dominant_colors"`
	Error          string    `json:"error,omitempty"`
}

// Ok reports whether color feature extraction succeeded.
func (f *ColorFeatures) Ok() bool {
	return f != nil && f.Error == ""
}

// ColorSpaces holds per-space channel means for the uniform color analysis.
type ColorSpaces struct {
	BGRMeans []float64 `json:"bgr_means"`
	HSVMeans []float64 `json:"hsv_means"`
	LABMeans []float64 `json:"lab_means"`
}

// ColorHarmony summarizes hue and saturation relationships.
type ColorHarmony struct {
	HueVariety        int     `json:"hue_variety"`
	SaturationBalance float64 `json:"saturation_balance"`
	ColorTemperature  string  `json:"color_temperature"`
	WarmCoolRatio     float64 `json:"warm_cool_ratio"`
}

// ColorPattern summarizes the color distribution over an 8x8x8 BGR histogram.
type ColorPattern struct {
	TotalColors        int     `json:"total_colors"`
	ColorEntropy       float64 `json:"color_entropy"`
	DominantColorRatio float64 `json:"dominant_color_ratio"`
}

// ColorConsistency scores how uniform the coloring is across image quadrants.
type ColorConsistency struct {
	ConsistencyScore float64 `json:"consistency_score"`
	ColorVariation   float64 `json:"color_variation"`
	RegionsAnalyzed  int     `json:"regions_analyzed"`
}

// ColorAnalysis is the uniform-specific color section of an annotation
// document (k=8 dominant colors, harmony, pattern, consistency, and channel
// means in three color spaces).
type ColorAnalysis struct {
	PrimaryColors    [][]int          `json:"primary_colors"`
	ColorHarmony     ColorHarmony     `json:"color_harmony"`
	ColorPattern     ColorPattern     `json:"color_pattern"`
	ColorConsistency ColorConsistency `json:"color_consistency"`
	ColorSpaces      ColorSpaces      `json:"color_spaces"`
	Error            string           `json:"error,omitempty"`
}

// Ok reports whether uniform color analysis succeeded.
func (a *ColorAnalysis) Ok() bool {
	return a != nil && a.Error == ""
}

// Colors extracts the generic color sub-bundle: BGR and HSV channel
// statistics plus the top 5 dominant colors.
func Colors(img image.Image) (*ColorFeatures, error) {
	meanBGR, stdBGR, meanHSV, stdHSV, _ := channelStats(img)

	return &ColorFeatures{
		MeanBGR:        meanBGR,
		StdBGR:         stdBGR,
		MeanHSV:        meanHSV,
		StdHSV:         stdHSV,
		DominantColors: DominantColors(img, 5),
	}, nil
}

// AnalyzeColors performs the uniform-specific color analysis.
func AnalyzeColors(img image.Image) (*ColorAnalysis, error) {
	meanBGR, _, meanHSV, _, meanLAB := channelStats(img)

	return &ColorAnalysis{
		PrimaryColors:    DominantColors(img, 8),
		ColorHarmony:     analyzeHarmony(img),
		ColorPattern:     analyzePattern(img),
		ColorConsistency: analyzeConsistency(img),
		ColorSpaces: ColorSpaces{
			BGRMeans: meanBGR,
			HSVMeans: meanHSV,
			LABMeans: meanLAB,
		},
	}, nil
}

// DominantColors clusters the image's pixels with k-means and returns up to k
// cluster centers as BGR triples, sorted by cluster population descending.
// Returns an empty slice when clustering fails (e.g. degenerate palettes).
func DominantColors(img image.Image, k int) [][]int {
	items, err := prominentcolor.KmeansWithAll(k, img,
		prominentcolor.ArgumentNoCropping, prominentcolor.DefaultSize, nil)
	if err != nil {
		return [][]int{}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Cnt > items[j].Cnt })

	colors := make([][]int, 0, len(items))
	for _, item := range items {
		colors = append(colors, []int{int(item.Color.B), int(item.Color.G), int(item.Color.R)})
	}
	return colors
}

// channelStats accumulates per-channel means and standard deviations over the
// whole image in BGR, HSV and LAB spaces.
func channelStats(img image.Image) (meanBGR, stdBGR, meanHSV, stdHSV, meanLAB []float64) {
	bounds := img.Bounds()
	n := float64(bounds.Dx() * bounds.Dy())
	if n == 0 {
		zero := []float64{0, 0, 0}
		return zero, zero, zero, zero, zero
	}

	var sumBGR, sqBGR, sumHSV, sqHSV, sumLAB [3]float64

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rf := float64(r >> 8)
			gf := float64(g >> 8)
			bf := float64(b >> 8)

			bgr := [3]float64{bf, gf, rf}

			c := colorful.Color{R: rf / 255, G: gf / 255, B: bf / 255}
			h, s, v := c.Hsv()
			hsv := [3]float64{h / 2, s * 255, v * 255}

			l, la, lb := c.Lab()
			lab := [3]float64{l * 255, la*128 + 128, lb*128 + 128}

			for i := 0; i < 3; i++ {
				sumBGR[i] += bgr[i]
				sqBGR[i] += bgr[i] * bgr[i]
				sumHSV[i] += hsv[i]
				sqHSV[i] += hsv[i] * hsv[i]
				sumLAB[i] += lab[i]
			}
		}
	}

	meanBGR = make([]float64, 3)
	stdBGR = make([]float64, 3)
	meanHSV = make([]float64, 3)
	stdHSV = make([]float64, 3)
	meanLAB = make([]float64, 3)
	for i := 0; i < 3; i++ {
		meanBGR[i] = sumBGR[i] / n
		stdBGR[i] = popStd(sumBGR[i], sqBGR[i], n)
		meanHSV[i] = sumHSV[i] / n
		stdHSV[i] = popStd(sumHSV[i], sqHSV[i], n)
		meanLAB[i] = sumLAB[i] / n
	}
	return meanBGR, stdBGR, meanHSV, stdHSV, meanLAB
}

// popStd computes a population standard deviation from running sums.
// Clamps tiny negative variances caused by float rounding.
func popStd(sum, sumSq, n float64) float64 {
	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// analyzeHarmony computes hue variety, saturation balance and warm/cool
// temperature over the HSV channels.
//
// Warm hues are those below 30 or above 150 on the 0-180 hue scale (reds,
// oranges, magentas); the rest count as cool.
func analyzeHarmony(img image.Image) ColorHarmony {
	bounds := img.Bounds()

	hues := make(map[int]struct{})
	var saturations []float64
	warm, cool := 0, 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := colorful.Color{
				R: float64(r>>8) / 255,
				G: float64(g>>8) / 255,
				B: float64(b>>8) / 255,
			}
			h, s, _ := c.Hsv()
			hue := int(h / 2)
			hues[hue] = struct{}{}
			saturations = append(saturations, s*255)

			if hue < 30 || hue > 150 {
				warm++
			} else {
				cool++
			}
		}
	}

	balance := 0.0
	if len(saturations) > 0 {
		balance = stat.PopStdDev(saturations, nil)
	}

	temperature := "cool"
	if warm > cool {
		temperature = "warm"
	}

	return ColorHarmony{
		HueVariety:        len(hues),
		SaturationBalance: balance,
		ColorTemperature:  temperature,
		WarmCoolRatio:     float64(warm) / (float64(cool) + 1e-6),
	}
}

// analyzePattern computes distribution metrics over an 8x8x8 BGR histogram
// (32-value-wide bins per channel).
func analyzePattern(img image.Image) ColorPattern {
	bounds := img.Bounds()

	var hist [8 * 8 * 8]float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			bi := int(b>>8) / 32
			gi := int(g>>8) / 32
			ri := int(r>>8) / 32
			hist[bi*64+gi*8+ri]++
		}
	}

	total := 0.0
	maxBin := 0.0
	nonEmpty := 0
	entropy := 0.0
	for _, count := range hist {
		total += count
		if count > 0 {
			nonEmpty++
		}
		if count > maxBin {
			maxBin = count
		}
		entropy += -count * math.Log2(count+1e-10)
	}

	ratio := 0.0
	if total > 0 {
		ratio = maxBin / total
	}

	return ColorPattern{
		TotalColors:        nonEmpty,
		ColorEntropy:       entropy,
		DominantColorRatio: ratio,
	}
}

// analyzeConsistency compares mean BGR colors across the four image
// quadrants; low variation means a consistently colored uniform.
func analyzeConsistency(img image.Image) ColorConsistency {
	quadrants := imaging.Quadrants(img)

	regionMeans := make([][]float64, 0, len(quadrants))
	for _, q := range quadrants {
		mean, _, _, _, _ := channelStats(q)
		regionMeans = append(regionMeans, mean)
	}

	if len(regionMeans) <= 1 {
		return ColorConsistency{
			ConsistencyScore: 1.0,
			ColorVariation:   0.0,
			RegionsAnalyzed:  len(regionMeans),
		}
	}

	// per-channel stddev across region means, then averaged
	variation := 0.0
	for ch := 0; ch < 3; ch++ {
		vals := make([]float64, len(regionMeans))
		for i, m := range regionMeans {
			vals[i] = m[ch]
		}
		variation += stat.PopStdDev(vals, nil)
	}
	variation /= 3

	return ColorConsistency{
		ConsistencyScore: 1.0 / (1.0 + variation),
		ColorVariation:   variation,
		RegionsAnalyzed:  len(regionMeans),
	}
}
