package annotation

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"path/filepath"
	"strings"

	disimaging "github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tripplexbns-code/ainiform-sub000/internal/imaging"
)

// Annotation overlay palette: red components, green logos, blue text regions,
// black-on-white summary panel.
var (
	detectionColor = color.NRGBA{R: 255, A: 255}
	logoColor      = color.NRGBA{G: 200, A: 255}
	textColor      = color.NRGBA{B: 255, A: 255}
	panelColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 230}
	panelTextColor = color.NRGBA{A: 255}
)

const (
	boxThickness = 2
	lineHeight   = 14 // basicfont.Face7x13 advance
	panelPadding = 6
)

// Render draws the document's findings onto a copy of the annotated image and
// saves it as a JPEG: red boxes around detected components, green boxes around
// logo candidates, blue boxes around text regions, and a summary panel in the
// top-left corner.
//
// With an empty outputPath the result is written next to the source image as
// "<name>_annotated.jpg". Rendering never fails the caller: on any error the
// original image path is returned so downstream consumers always have a
// displayable image.
func Render(cache *imaging.ImageCache, doc *Document, outputPath string) string {
	if doc == nil || !doc.Ok() {
		if doc != nil {
			return doc.ImagePath
		}
		return ""
	}

	img, err := cache.Load(doc.ImagePath)
	if err != nil {
		log.Printf("render %s: %v", doc.ImagePath, err)
		return doc.ImagePath
	}

	canvas := disimaging.Clone(img)

	if doc.DetectionResults.Ok() {
		for _, d := range doc.DetectionResults.Detections {
			r := image.Rect(int(d.BBox.X1), int(d.BBox.Y1), int(d.BBox.X2), int(d.BBox.Y2))
			drawBox(canvas, r, detectionColor)
			drawLabel(canvas, r.Min.X, r.Min.Y-4,
				fmt.Sprintf("%s: %.2f", d.ClassName, d.Confidence), detectionColor)
		}
	}

	if doc.LogoAnalysis.Ok() {
		for _, logo := range doc.LogoAnalysis.LogoCandidates {
			r := image.Rect(logo.BBox.X, logo.BBox.Y,
				logo.BBox.X+logo.BBox.Width, logo.BBox.Y+logo.BBox.Height)
			drawBox(canvas, r, logoColor)
			drawLabel(canvas, r.Min.X, r.Min.Y-4,
				fmt.Sprintf("Logo: %.2f", logo.Distinctiveness), logoColor)
		}
	}

	if doc.TextAnalysis.Ok() {
		for _, cand := range doc.TextAnalysis.TextCandidates {
			r := image.Rect(cand.BBox.X, cand.BBox.Y,
				cand.BBox.X+cand.BBox.Width, cand.BBox.Y+cand.BBox.Height)
			drawBox(canvas, r, textColor)
			drawLabel(canvas, r.Min.X, r.Min.Y-4, "Text/Insignia", textColor)
		}
	}

	drawSummaryPanel(canvas, doc)

	if outputPath == "" {
		ext := filepath.Ext(doc.ImagePath)
		outputPath = strings.TrimSuffix(doc.ImagePath, ext) + "_annotated.jpg"
	}

	if err := disimaging.Save(canvas, outputPath, disimaging.JPEGQuality(95)); err != nil {
		log.Printf("render %s: save: %v", doc.ImagePath, err)
		return doc.ImagePath
	}
	return outputPath
}

// drawSummaryPanel draws the annotation summary in the top-left corner.
func drawSummaryPanel(canvas *image.NRGBA, doc *Document) {
	lines := []string{
		"Annotated: " + doc.AnnotationTimestamp,
	}
	if doc.DetectionResults.Ok() {
		lines = append(lines, fmt.Sprintf("Components: %d", doc.DetectionResults.TotalDetections))
	}
	if doc.LogoAnalysis.Ok() {
		lines = append(lines, fmt.Sprintf("Logos: %d", doc.LogoAnalysis.TotalLogos))
	}
	if doc.TextAnalysis.Ok() {
		lines = append(lines, fmt.Sprintf("Text regions: %d", doc.TextAnalysis.TotalTextRegions))
	}
	if doc.ColorAnalysis.Ok() {
		lines = append(lines,
			fmt.Sprintf("Primary colors: %d", len(doc.ColorAnalysis.PrimaryColors)),
			"Temperature: "+doc.ColorAnalysis.ColorHarmony.ColorTemperature)
	}
	if doc.UniformFeatures.Ok() {
		lines = append(lines, fmt.Sprintf("Fabric smoothness: %.3f", doc.UniformFeatures.FabricSmoothness))
	}
	if len(doc.UniquenessSignature) >= 8 {
		lines = append(lines, "Signature: "+doc.UniquenessSignature[:8])
	}

	widest := 0
	for _, line := range lines {
		if len(line) > widest {
			widest = len(line)
		}
	}

	panel := image.Rect(0, 0,
		widest*7+2*panelPadding, len(lines)*lineHeight+2*panelPadding)
	draw.Draw(canvas, panel.Intersect(canvas.Bounds()),
		image.NewUniform(panelColor), image.Point{}, draw.Over)

	for i, line := range lines {
		drawLabel(canvas, panelPadding, panelPadding+(i+1)*lineHeight-3, line, panelTextColor)
	}
}

// drawBox draws a rectangle outline clipped to the canvas.
func drawBox(canvas *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(canvas.Bounds())
	if r.Empty() {
		return
	}
	for t := 0; t < boxThickness; t++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			setPixel(canvas, x, r.Min.Y+t, c)
			setPixel(canvas, x, r.Max.Y-1-t, c)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			setPixel(canvas, r.Min.X+t, y, c)
			setPixel(canvas, r.Max.X-1-t, y, c)
		}
	}
}

func setPixel(canvas *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(canvas.Bounds()) {
		canvas.SetNRGBA(x, y, c)
	}
}

// drawLabel renders text at the given baseline position using the built-in
// 7x13 bitmap face.
func drawLabel(canvas *image.NRGBA, x, y int, text string, c color.NRGBA) {
	if y < basicfont.Face7x13.Ascent {
		y = basicfont.Face7x13.Ascent
	}
	d := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
