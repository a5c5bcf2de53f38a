// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// stepOutline returns the outline of a filled step histogram with
// the given bin edges and counts. If horizontal, counts run along
// the X axis and the bins along Y.
func stepOutline(edges []float64, counts []int, horizontal bool) plotter.XYs {
	pts := make(plotter.XYs, 0, 2*len(counts)+2)
	add := func(bin, count float64) {
		if horizontal {
			pts = append(pts, plotter.XY{X: count, Y: bin})
		} else {
			pts = append(pts, plotter.XY{X: bin, Y: count})
		}
	}
	add(edges[0], 0)
	for i, c := range counts {
		add(edges[i], float64(c))
		add(edges[i+1], float64(c))
	}
	add(edges[len(edges)-1], 0)
	return pts
}

// newStepFill returns a filled step histogram drawn in c at half
// opacity.
func newStepFill(edges []float64, counts []int, horizontal bool, c color.Color) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(stepOutline(edges, counts, horizontal))
	if err != nil {
		return nil, err
	}
	fill := halfAlpha(c)
	poly.Color = fill
	poly.LineStyle = draw.LineStyle{Color: fill, Width: vg.Points(0.5)}
	return poly, nil
}

func halfAlpha(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A /= 2
	return n
}

// A refLine is a line across the full data area at a fixed X
// (Vertical) or Y coordinate. It does not contribute to the data
// range.
type refLine struct {
	At       float64
	Vertical bool
	draw.LineStyle
}

func (l *refLine) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	if l.Vertical {
		if l.At < p.X.Min || l.At > p.X.Max {
			return
		}
		x := trX(l.At)
		c.StrokeLine2(l.LineStyle, x, c.Min.Y, x, c.Max.Y)
		return
	}
	if l.At < p.Y.Min || l.At > p.Y.Max {
		return
	}
	y := trY(l.At)
	c.StrokeLine2(l.LineStyle, c.Min.X, y, c.Max.X, y)
}

func (l *refLine) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(l.LineStyle, c.Min.X, y, c.Max.X, y)
}

// dashDot is the dash pattern of percentile bounds.
var dashDot = []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}

// percentileLines returns the 5th, 50th and 95th percentile lines.
// The median is solid; the bounds are dash-dotted.
func percentileLines(p5, median, p95 float64, vertical bool, c color.Color) (med, lo, hi *refLine) {
	solid := draw.LineStyle{Color: c, Width: vg.Points(2)}
	dashed := solid
	dashed.Dashes = dashDot
	return &refLine{median, vertical, solid},
		&refLine{p5, vertical, dashed},
		&refLine{p95, vertical, dashed}
}
