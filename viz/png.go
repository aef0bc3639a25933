// Package viz: PNG histogram rendering.
package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PNG chart geometry, in pixels.
const (
	pngBarW   = 48
	pngBarGap = 16
	pngMargin = 24
	pngPlotH  = 220
	pngTextH  = 16
)

// Chart palette.
var (
	pngBarColor  = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	pngAxisColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

// HistogramPNG draws counts as a bar chart PNG: white field, one bar
// per outcome with its count above and its key below, both set in the
// fixed 7x13 face so repeated runs produce identical bytes. Bar order
// follows the same options as Histogram. Empty counts report
// ErrNoCounts.
func HistogramPNG(w io.Writer, counts map[string]int, opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	if len(counts) == 0 {
		return ErrNoCounts
	}
	o := newOptions(opts)

	keys := sortedKeys(counts, o)
	_, _, maxN, _ := histogramShape(counts, keys)

	width := 2*pngMargin + len(keys)*pngBarW + (len(keys)-1)*pngBarGap
	height := 2*pngMargin + 2*pngTextH + pngPlotH
	baseline := pngMargin + pngTextH + pngPlotH

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	labels := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i, key := range keys {
		n := counts[key]
		x0 := pngMargin + i*(pngBarW+pngBarGap)
		barH := scaleBar(n, maxN, pngPlotH)

		bar := image.Rect(x0, baseline-barH, x0+pngBarW, baseline)
		draw.Draw(img, bar, image.NewUniform(pngBarColor), image.Point{}, draw.Src)

		centerString(labels, strconv.Itoa(n), x0, baseline-barH-4)
		centerString(labels, key, x0, baseline+pngTextH)
	}

	axis := image.Rect(pngMargin-4, baseline, width-pngMargin+4, baseline+1)
	draw.Draw(img, axis, image.NewUniform(pngAxisColor), image.Point{}, draw.Src)

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("viz: encode png: %w", err)
	}

	return nil
}

// centerString sets s horizontally centered over a bar slot whose left
// edge is x, with the text baseline at y.
func centerString(d *font.Drawer, s string, x, y int) {
	tw := d.MeasureString(s).Ceil()
	d.Dot = fixed.P(x+(pngBarW-tw)/2, y)
	d.DrawString(s)
}
