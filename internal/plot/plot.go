// Package plot renders sampled animation traces to a PNG image: numeric
// traces as polylines, color traces as horizontal bands.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"

	"github.com/ppark2017/batik/anim"
	"github.com/ppark2017/batik/anim/values"
)

// Series is one trace to draw.
type Series struct {
	Name   string
	Times  []float64
	Values []anim.Value
}

// palette cycles across series, in a fixed order so plots are
// reproducible.
var palette = []color.RGBA{
	colornames.Crimson,
	colornames.Steelblue,
	colornames.Seagreen,
	colornames.Darkorange,
	colornames.Mediumpurple,
	colornames.Goldenrod,
}

// Render draws the series into a new image of the given size. The image
// is drawn at double resolution and downscaled, which keeps the thin
// polylines legible without a real rasterizer.
func Render(series []Series, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid plot size %dx%d", width, height)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("nothing to plot")
	}

	const margin = 16
	w2, h2 := width*2, height*2
	canvas := image.NewRGBA(image.Rect(0, 0, w2, h2))
	fill(canvas, colornames.White)

	tMax := 0.0
	vMin, vMax := math.Inf(1), math.Inf(-1)
	bands := 0
	for _, s := range series {
		if len(s.Times) > 0 && s.Times[len(s.Times)-1] > tMax {
			tMax = s.Times[len(s.Times)-1]
		}
		numeric := false
		for _, v := range s.Values {
			if f, ok := v.(values.Float); ok {
				numeric = true
				vMin = math.Min(vMin, float64(f))
				vMax = math.Max(vMax, float64(f))
			}
		}
		if !numeric {
			bands++
		}
	}
	if tMax == 0 {
		return nil, fmt.Errorf("empty traces")
	}
	if vMin > vMax {
		vMin, vMax = 0, 1
	}
	if vMin == vMax {
		vMin, vMax = vMin-1, vMax+1
	}

	// Color bands occupy strips at the bottom of the canvas.
	bandHeight := 0
	if bands > 0 {
		bandHeight = h2 / 6
	}
	plotBottom := h2 - margin - bands*bandHeight

	toX := func(t float64) float64 {
		return margin + (t/tMax)*float64(w2-2*margin)
	}
	toY := func(v float64) float64 {
		return float64(plotBottom) - (v-vMin)/(vMax-vMin)*float64(plotBottom-margin)
	}

	// Axes.
	drawLine(canvas, float64(margin), float64(plotBottom), float64(w2-margin), float64(plotBottom), colornames.Gray)
	drawLine(canvas, float64(margin), float64(margin), float64(margin), float64(plotBottom), colornames.Gray)

	band := 0
	for i, s := range series {
		c := palette[i%len(palette)]
		switch s.Values[0].(type) {
		case values.Float:
			var px, py float64
			for j, v := range s.Values {
				x := toX(s.Times[j])
				y := toY(float64(v.(values.Float)))
				if j > 0 {
					drawLine(canvas, px, py, x, y, c)
				}
				px, py = x, y
			}
		case values.Color:
			y0 := plotBottom + band*bandHeight
			for j, v := range s.Values {
				x0 := int(toX(s.Times[j]))
				x1 := w2 - margin
				if j < len(s.Values)-1 {
					x1 = int(toX(s.Times[j+1]))
				}
				rect := image.Rect(x0, y0+2, x1, y0+bandHeight-2)
				fillRect(canvas, rect, v.(values.Color).RGBA8())
			}
			band++
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	return out, nil
}

// WritePNG encodes the image to a PNG file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func fill(img *image.RGBA, c color.RGBA) {
	fillRect(img, img.Bounds(), c)
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawLine draws a 2px-wide line segment by stepping along its length.
func drawLine(img *image.RGBA, x0, y0, x1, y1 float64, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Hypot(dx, dy)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(x0 + dx*t)
		y := int(y0 + dy*t)
		img.SetRGBA(x, y, c)
		img.SetRGBA(x+1, y, c)
		img.SetRGBA(x, y+1, c)
	}
}
