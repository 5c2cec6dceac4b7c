// Package plot draws the coverage fraction per residue as a bar chart
// and writes it out as a png. One bar per residue ever seen, a line at
// the coverage cutoff, and the bars that clear the line are the
// consensus. Axis labels need a ttf font; without one you still get
// the bars, just unlabelled.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const (
	width    = 900
	height   = 300
	marginL  = 50 // room for the y axis labels
	marginR  = 10
	marginT  = 15
	marginB  = 40 // room for the x axis labels
	fontSize = 11
)

var (
	bgCol     = color.RGBA{255, 255, 255, 255}
	barCol    = color.RGBA{70, 110, 180, 255}
	inCol     = color.RGBA{40, 160, 70, 255} // bars at or above the cutoff
	cutoffCol = color.RGBA{200, 40, 40, 255}
	axisCol   = color.RGBA{0, 0, 0, 255}
)

// Args is everything the plot needs.
type Args struct {
	Residues  []int     // x positions, ascending
	Fractions []float64 // y values in [0,1], parallel to Residues
	Cutoff    float64   // where to draw the threshold line
	FontFile  string    // path to a ttf, "" for no text
}

// hline and vline paint axis lines the pedestrian way. Pulling in a
// drawing library for two rectangles would be silly.
func hline(img *image.RGBA, x0, x1, y int, c color.Color) {
	for x := x0; x <= x1; x++ {
		img.Set(x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.Color) {
	for y := y0; y <= y1; y++ {
		img.Set(x, y, c)
	}
}

// yPix maps a fraction in [0,1] to a pixel row.
func yPix(f float64) int {
	plotH := height - marginT - marginB
	return height - marginB - int(f*float64(plotH))
}

// labeller wraps the freetype context so the drawing code does not
// care whether a font was given.
type labeller struct {
	ctx *freetype.Context
}

func newLabeller(fontFile string, img *image.RGBA) (*labeller, error) {
	if fontFile == "" {
		return &labeller{}, nil
	}
	b, err := os.ReadFile(fontFile)
	if err != nil {
		return nil, fmt.Errorf("font file: %w", err)
	}
	fnt, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", fontFile, err)
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(fnt)
	ctx.SetFontSize(fontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(axisCol))
	ctx.SetHinting(font.HintingNone)
	return &labeller{ctx: ctx}, nil
}

func (l *labeller) text(s string, x, y int) {
	if l.ctx == nil {
		return
	}
	// a failed label is not worth failing the plot over
	l.ctx.DrawString(s, freetype.Pt(x, y))
}

// Write draws the chart and writes it to fname as png.
func Write(fname string, args *Args) error {
	if len(args.Residues) != len(args.Fractions) {
		return fmt.Errorf("plot: %d residues but %d fractions",
			len(args.Residues), len(args.Fractions))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{bgCol}, image.Point{}, draw.Src)

	lbl, err := newLabeller(args.FontFile, img)
	if err != nil {
		return err
	}

	// axes
	hline(img, marginL, width-marginR, height-marginB, axisCol)
	vline(img, marginL, marginT, height-marginB, axisCol)
	for _, f := range []float64{0, 0.25, 0.5, 0.75, 1} {
		y := yPix(f)
		hline(img, marginL-3, marginL, y, axisCol)
		lbl.text(fmt.Sprintf("%.2f", f), 8, y+fontSize/2)
	}

	// bars
	n := len(args.Residues)
	if n > 0 {
		plotW := width - marginL - marginR
		slot := float64(plotW) / float64(n)
		barW := int(slot * 0.8)
		if barW < 1 {
			barW = 1
		}
		labelEvery := 1 + n/15 // at most ~15 x labels
		for i, f := range args.Fractions {
			x0 := marginL + int(float64(i)*slot) + 1
			c := barCol
			if f >= args.Cutoff {
				c = inCol
			}
			r := image.Rect(x0, yPix(f), x0+barW, height-marginB)
			draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
			if i%labelEvery == 0 {
				lbl.text(fmt.Sprintf("%d", args.Residues[i]),
					x0, height-marginB+fontSize+4)
			}
		}
	}

	// cutoff line on top of the bars
	hline(img, marginL, width-marginR, yPix(args.Cutoff), cutoffCol)
	lbl.text("coverage", 8, marginT)

	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(fp, img); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
